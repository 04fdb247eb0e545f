package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
)

type SwapchainOptions struct {
	Label       string
	Width       uint32
	Height      uint32
	Format      wgpu.TextureFormat
	PresentMode wgpu.PresentMode
}

func (o SwapchainOptions) WithDefaults() SwapchainOptions {
	if o.Label == "" {
		o.Label = "My Swapchain"
	}

	if o.Width == 0 {
		o.Width = 800
	}

	if o.Height == 0 {
		o.Height = 600
	}

	if o.Format == wgpu.TextureFormatUndefined {
		o.Format = wgpu.TextureFormatBGRA8Unorm
	}

	if o.PresentMode == 0 {
		o.PresentMode = wgpu.PresentModeFifo
	}

	return o
}

// Swapchain is the set of render targets presented to the window surface.
// On current webgpu this is the configured surface itself.
type Swapchain struct {
	Label  string
	Config wgpu.SurfaceConfiguration
}

func (s *Swapchain) Format() wgpu.TextureFormat {
	return s.Config.Format
}

func (s *Swapchain) Size() (uint32, uint32) {
	return s.Config.Width, s.Config.Height
}

// SurfaceConfiguration builds the configuration for a surface with the given
// capabilities. The requested format and present mode are used if the surface
// supports them, otherwise the first supported format and fifo are used.
func SurfaceConfiguration(opts SwapchainOptions, caps wgpu.SurfaceCapabilities) (*wgpu.SurfaceConfiguration, error) {
	if opts.Width == 0 || opts.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidExtent, opts.Width, opts.Height)
	}

	if len(caps.Formats) == 0 {
		return nil, ErrSurfaceUnsupported
	}

	format := opts.Format
	if !slices.Contains(caps.Formats, format) {
		slog.Warn(
			"Requested swapchain format not supported",
			slog.Any("requested", format),
			slog.Any("using", caps.Formats[0]),
		)

		format = caps.Formats[0]
	}

	// fifo is the only mode every surface has to support
	presentMode := opts.PresentMode
	if len(caps.PresentModes) > 0 && !slices.Contains(caps.PresentModes, presentMode) {
		presentMode = wgpu.PresentModeFifo
	}

	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       opts.Width,
		Height:      opts.Height,
		PresentMode: presentMode,
	}

	if len(caps.AlphaModes) > 0 {
		config.AlphaMode = caps.AlphaModes[0]
	}

	return config, nil
}

// BuildSwapchain configures the contexts surface for rendering.
func BuildSwapchain(ctx *Context, opts SwapchainOptions) (*Swapchain, error) {
	opts = opts.WithDefaults()

	slog.Info("Building swapchain", slog.String("label", opts.Label))

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Debug("Available surface formats", slog.Any("formats", caps.Formats))

	config, err := SurfaceConfiguration(opts, caps)
	if err != nil {
		return nil, fmt.Errorf("configure %q: %w", opts.Label, err)
	}

	ctx.Surface.Configure(ctx.Adapter, ctx.Device, config)

	sc := &Swapchain{Label: opts.Label, Config: *config}

	slog.Info(
		"Got swapchain",
		slog.String("label", sc.Label),
		slog.Any("format", config.Format),
		slog.Int("width", int(config.Width)),
		slog.Int("height", int(config.Height)),
	)

	return sc, nil
}
