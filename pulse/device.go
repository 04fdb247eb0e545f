package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

func init() {
	runtime.LockOSThread()

	if level, ok := ParseLogLevel(os.Getenv("WGPU_LOG_LEVEL")); ok {
		wgpu.SetLogLevel(level)
	}
}

// ParseLogLevel maps the value of WGPU_LOG_LEVEL to a wgpu log level.
func ParseLogLevel(value string) (wgpu.LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "OFF":
		return wgpu.LogLevelOff, true
	case "ERROR":
		return wgpu.LogLevelError, true
	case "WARN":
		return wgpu.LogLevelWarn, true
	case "INFO":
		return wgpu.LogLevelInfo, true
	case "DEBUG":
		return wgpu.LogLevelDebug, true
	case "TRACE":
		return wgpu.LogLevelTrace, true
	}

	return wgpu.LogLevelOff, false
}

type Options struct {
	// Request the software fallback adapter. Defaults to the value
	// of the WGPU_FORCE_FALLBACK_ADAPTER environment variable.
	ForceFallbackAdapter bool

	DeviceLabel string

	// Vertex data the device must be able to hold,
	// used to derive the required limits.
	Budget VertexBudget
}

func (o Options) WithDefaults() Options {
	if !o.ForceFallbackAdapter {
		o.ForceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"
	}

	if o.DeviceLabel == "" {
		o.DeviceLabel = "My Device"
	}

	if o.Budget == (VertexBudget{}) {
		o.Budget = DefaultVertexBudget()
	}

	return o
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter

	// Limits the device was requested with
	Limits wgpu.Limits
}

func New(sd *wgpu.SurfaceDescriptor, opts Options) (st *Context, err error) {
	opts = opts.WithDefaults()

	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)
	if st.Surface == nil {
		return st, ErrNoSurface
	}

	slog.Info("Requesting adapter", slog.Bool("forceFallback", opts.ForceFallbackAdapter))

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}

	if st.Adapter == nil {
		return st, ErrNoAdapter
	}

	info := st.Adapter.GetInfo()
	slog.Info(
		"Got adapter",
		slog.String("type", info.AdapterType.String()),
		slog.String("backend", info.BackendType.String()),
	)

	supported := st.Adapter.GetLimits()
	st.Limits = RequiredLimits(supported.Limits, opts.Budget)

	slog.Info(
		"Requesting device",
		slog.String("label", opts.DeviceLabel),
		slog.Uint64("maxBufferSize", st.Limits.MaxBufferSize),
	)

	st.Device, err = st.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:              opts.DeviceLabel,
		RequiredLimits:     &wgpu.RequiredLimits{Limits: st.Limits},
		DeviceLostCallback: logDeviceLost,
	})

	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}

	if st.Device == nil {
		return st, ErrNoDevice
	}

	slog.Info("Got device", slog.String("label", opts.DeviceLabel))

	st.Queue = st.Device.GetQueue()

	return st, nil
}

// logDeviceLost reports a lost device. Nothing is recreated, the next
// call on the device fails.
func logDeviceLost(reason wgpu.DeviceLostReason, message string) {
	slog.Error(
		"Device lost",
		slog.String("reason", reason.String()),
		slog.String("message", message),
	)
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
