package glimpse

import "github.com/cogentcore/webgpu/wgpu"

// Window is a native window that a WebGPU surface can be created for.
type Window interface {
	// GetSize returns the framebuffer size in pixels.
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Terminate()
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// Resizable is false by default, the swapchain is built
	// once for the initial window size.
	Resizable bool
}

func (o WindowOptions) WithDefaults() WindowOptions {
	if o.Width <= 0 {
		o.Width = 800
	}

	if o.Height <= 0 {
		o.Height = 600
	}

	if o.Title == "" {
		o.Title = "WebGPU"
	}

	return o
}
