package pulse

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func testCapabilities() wgpu.SurfaceCapabilities {
	return wgpu.SurfaceCapabilities{
		Formats: []wgpu.TextureFormat{
			wgpu.TextureFormatRGBA8UnormSrgb,
			wgpu.TextureFormatBGRA8Unorm,
		},
		PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo},
		AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
	}
}

func TestSwapchainOptionsDefaults(t *testing.T) {
	opts := SwapchainOptions{}.WithDefaults()

	if opts.Label != "My Swapchain" {
		t.Errorf("unexpected label %q", opts.Label)
	}

	if opts.Width != 800 || opts.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", opts.Width, opts.Height)
	}

	if opts.Format != wgpu.TextureFormatBGRA8Unorm {
		t.Errorf("unexpected format %v", opts.Format)
	}

	if opts.PresentMode != wgpu.PresentModeFifo {
		t.Errorf("unexpected present mode %v", opts.PresentMode)
	}
}

func TestSurfaceConfiguration(t *testing.T) {
	config, err := SurfaceConfiguration(SwapchainOptions{}.WithDefaults(), testCapabilities())
	if err != nil {
		t.Fatalf("SurfaceConfiguration failed: %v", err)
	}

	if config.Format != wgpu.TextureFormatBGRA8Unorm {
		t.Errorf("requested format should be kept, got %v", config.Format)
	}

	if config.Usage != wgpu.TextureUsageRenderAttachment {
		t.Errorf("unexpected usage %v", config.Usage)
	}

	if config.Width != 800 || config.Height != 600 {
		t.Errorf("unexpected size %dx%d", config.Width, config.Height)
	}

	if config.PresentMode != wgpu.PresentModeFifo {
		t.Errorf("unexpected present mode %v", config.PresentMode)
	}

	if config.AlphaMode != wgpu.CompositeAlphaModeOpaque {
		t.Errorf("unexpected alpha mode %v", config.AlphaMode)
	}
}

func TestSurfaceConfigurationFallsBack(t *testing.T) {
	opts := SwapchainOptions{
		Width:       640,
		Height:      480,
		Format:      wgpu.TextureFormatRGBA16Float,
		PresentMode: wgpu.PresentModeMailbox,
	}

	config, err := SurfaceConfiguration(opts.WithDefaults(), testCapabilities())
	if err != nil {
		t.Fatalf("SurfaceConfiguration failed: %v", err)
	}

	if config.Format != wgpu.TextureFormatRGBA8UnormSrgb {
		t.Errorf("expected first supported format, got %v", config.Format)
	}

	if config.PresentMode != wgpu.PresentModeFifo {
		t.Errorf("expected fifo fallback, got %v", config.PresentMode)
	}
}

func TestSurfaceConfigurationErrors(t *testing.T) {
	_, err := SurfaceConfiguration(SwapchainOptions{}.WithDefaults(), wgpu.SurfaceCapabilities{})
	if !errors.Is(err, ErrSurfaceUnsupported) {
		t.Errorf("expected ErrSurfaceUnsupported, got %v", err)
	}

	_, err = SurfaceConfiguration(SwapchainOptions{Width: 800}, testCapabilities())
	if !errors.Is(err, ErrInvalidExtent) {
		t.Errorf("expected ErrInvalidExtent, got %v", err)
	}
}

func TestSwapchainAccessors(t *testing.T) {
	sc := &Swapchain{
		Label: "test",
		Config: wgpu.SurfaceConfiguration{
			Format: wgpu.TextureFormatBGRA8Unorm,
			Width:  320,
			Height: 200,
		},
	}

	if sc.Format() != wgpu.TextureFormatBGRA8Unorm {
		t.Errorf("unexpected format %v", sc.Format())
	}

	if w, h := sc.Size(); w != 320 || h != 200 {
		t.Errorf("unexpected size %dx%d", w, h)
	}
}
