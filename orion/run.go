package orion

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/ignite/glimpse"
	"github.com/oliverbestmann/ignite/pulse"
)

// Scene holds every handle created while bootstrapping the renderer.
type Scene struct {
	Window    glimpse.Window
	Context   *pulse.Context
	Swapchain *pulse.Swapchain
	Shader    *pulse.ShaderModule

	BindGroupLayout *wgpu.BindGroupLayout
	PipelineLayout  *wgpu.PipelineLayout
	Pipelines       *pulse.PipelineCache[pulse.RenderPipelineConfig]
	Pipeline        *wgpu.RenderPipeline

	Mesh      *pulse.Mesh
	Uniforms  *wgpu.Buffer
	BindGroup *wgpu.BindGroup

	seq sequence
}

// Steps returns the names of the setup steps that completed.
func (s *Scene) Steps() []string {
	return s.seq.completed
}

// Release releases all handles in reverse order of their creation.
func (s *Scene) Release() {
	if s == nil {
		return
	}

	s.seq.release()
}

// Bootstrap opens a window and builds everything up to a render pipeline
// with its buffers and bind group. Steps run strictly in order, the first
// failing step aborts the bootstrap and releases what was built so far.
func Bootstrap(opts Options) (scene *Scene, err error) {
	opts = opts.withDefaults()

	scene = &Scene{}

	defer func() {
		if err != nil {
			scene.Release()
			scene = nil
		}
	}()

	seq := &scene.seq

	err = seq.step("create window", func() error {
		win, err := glimpse.NewWindow(opts.Window)
		if err != nil {
			return err
		}

		scene.Window = win
		seq.onRelease(win.Terminate)

		return nil
	})

	if err != nil {
		return
	}

	err = seq.step("initialize device", func() error {
		ctx, err := pulse.New(scene.Window.SurfaceDescriptor(), opts.GPU)
		if err != nil {
			return err
		}

		scene.Context = ctx
		seq.onRelease(ctx.Release)

		return nil
	})

	if err != nil {
		return
	}

	err = seq.step("build swapchain", func() error {
		width, height := scene.Window.GetSize()

		sc, err := pulse.BuildSwapchain(scene.Context, swapchainOptions(opts.Swapchain, width, height))
		if err != nil {
			return err
		}

		scene.Swapchain = sc

		return nil
	})

	if err != nil {
		return
	}

	err = seq.step("load shader module", func() error {
		shader, err := pulse.LoadShaderModule(scene.Context, opts.ShaderPath, opts.Entries)
		if err != nil {
			return err
		}

		scene.Shader = shader
		seq.onRelease(shader.Release)

		return nil
	})

	if err != nil {
		return
	}

	err = seq.step("create bind group layout", func() error {
		bindGroupLayout, err := pulse.CreateBindGroupLayout(scene.Context)
		if err != nil {
			return err
		}

		scene.BindGroupLayout = bindGroupLayout
		seq.onRelease(bindGroupLayout.Release)

		pipelineLayout, err := pulse.CreatePipelineLayout(scene.Context, bindGroupLayout)
		if err != nil {
			return err
		}

		scene.PipelineLayout = pipelineLayout
		seq.onRelease(pipelineLayout.Release)

		return nil
	})

	if err != nil {
		return
	}

	err = seq.step("create render pipeline", func() error {
		scene.Pipelines = pulse.NewPipelineCache[pulse.RenderPipelineConfig](scene.Context.Device, 4)
		seq.onRelease(scene.Pipelines.Release)

		pipeline, err := scene.Pipelines.Get(pulse.RenderPipelineConfig{
			Label:         "My Render Pipeline",
			Module:        scene.Shader.ShaderModule,
			Layout:        scene.PipelineLayout,
			TargetFormat:  scene.Swapchain.Format(),
			VertexEntry:   scene.Shader.Entries.Vertex,
			FragmentEntry: scene.Shader.Entries.Fragment,
		})

		if err != nil {
			return err
		}

		scene.Pipeline = pipeline

		return nil
	})

	if err != nil {
		return
	}

	err = seq.step("upload geometry", func() error {
		vertices, indices := pulse.Quad(opts.QuadSize, opts.QuadColors)

		mesh, err := pulse.NewMesh(scene.Context, vertices, indices)
		if err != nil {
			return err
		}

		scene.Mesh = mesh
		seq.onRelease(mesh.Release)

		return nil
	})

	if err != nil {
		return
	}

	err = seq.step("create bind group", func() error {
		uniforms, err := pulse.NewUniformBuffer(scene.Context, pulse.Uniforms{Color: opts.Tint.ToVec()})
		if err != nil {
			return err
		}

		scene.Uniforms = uniforms
		seq.onRelease(uniforms.Release)

		bindGroup, err := pulse.CreateUniformBindGroup(scene.Context, scene.BindGroupLayout, uniforms)
		if err != nil {
			return err
		}

		scene.BindGroup = bindGroup
		seq.onRelease(bindGroup.Release)

		return nil
	})

	if err != nil {
		return
	}

	width, height := scene.Swapchain.Size()

	slog.Info(
		"Renderer ready",
		slog.Int("steps", len(seq.completed)),
		slog.String("swapchain", fmt.Sprintf("%dx%d", width, height)),
		slog.String("shader", scene.Shader.Path),
	)

	return scene, nil
}
