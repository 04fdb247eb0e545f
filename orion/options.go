package orion

import (
	"github.com/oliverbestmann/ignite/glimpse"
	"github.com/oliverbestmann/ignite/pulse"
)

type Options struct {
	Window    glimpse.WindowOptions
	GPU       pulse.Options
	Swapchain pulse.SwapchainOptions

	// wgsl file to compile, defaults to shaders.wgsl in the working directory
	ShaderPath string
	Entries    pulse.ShaderEntryPoints

	// Tint is uploaded as the color uniform
	Tint pulse.Color

	// Geometry uploaded to the vertex and index buffers
	QuadSize   float32
	QuadColors [4]pulse.Color
}

var defaultQuadColors = [4]pulse.Color{
	pulse.ColorLinearRGBA(1, 0, 0, 1),
	pulse.ColorLinearRGBA(0, 1, 0, 1),
	pulse.ColorLinearRGBA(0, 0, 1, 1),
	pulse.ColorLinearRGBA(1, 1, 0, 1),
}

func (o Options) withDefaults() Options {
	o.Window = o.Window.WithDefaults()
	o.GPU = o.GPU.WithDefaults()
	o.Entries = o.Entries.WithDefaults()

	if o.ShaderPath == "" {
		o.ShaderPath = "shaders.wgsl"
	}

	if o.QuadSize == 0 {
		o.QuadSize = 0.5
	}

	if o.QuadColors == ([4]pulse.Color{}) {
		o.QuadColors = defaultQuadColors
	}

	return o
}

// swapchainOptions sizes the swapchain to the framebuffer of the window
// unless a size was set explicitly.
func swapchainOptions(opts pulse.SwapchainOptions, width, height uint32) pulse.SwapchainOptions {
	if opts.Width == 0 && opts.Height == 0 {
		opts.Width = width
		opts.Height = height
	}

	return opts.WithDefaults()
}
