package pulse

import (
	"fmt"
	"log/slog"
	"structs"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/ignite/glm"
)

// Uniforms matches the uniform struct of the shader, padded to
// the 16 byte alignment wgsl uses for structs containing a vec4.
type Uniforms struct {
	_ structs.HostLayout

	Color glm.Vec4f
	Time  float32

	_ [3]float32
}

const UniformsSize = uint64(unsafe.Sizeof(Uniforms{}))

func UniformBindGroupLayoutDescriptor() *wgpu.BindGroupLayoutDescriptor {
	return &wgpu.BindGroupLayoutDescriptor{
		Label: "My Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: UniformsSize,
				},
			},
		},
	}
}

func CreateBindGroupLayout(ctx *Context) (*wgpu.BindGroupLayout, error) {
	desc := UniformBindGroupLayoutDescriptor()

	layout, err := ctx.CreateBindGroupLayout(desc)
	if err != nil {
		return nil, fmt.Errorf("create bind group layout %q: %w", desc.Label, err)
	}

	slog.Info("Got bind group layout", slog.String("label", desc.Label))

	return layout, nil
}

func CreatePipelineLayout(ctx *Context, bindGroupLayout *wgpu.BindGroupLayout) (*wgpu.PipelineLayout, error) {
	layout, err := ctx.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "My Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})

	if err != nil {
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	return layout, nil
}

func NewUniformBuffer(ctx *Context, uniforms Uniforms) (*wgpu.Buffer, error) {
	buf, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Uniforms",
		Contents: AsByteSlice(&uniforms),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})

	if err != nil {
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	return buf, nil
}

func CreateUniformBindGroup(ctx *Context, layout *wgpu.BindGroupLayout, uniforms *wgpu.Buffer) (*wgpu.BindGroup, error) {
	bindGroup, err := ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "My Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uniforms,
				Offset:  0,
				Size:    UniformsSize,
			},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	return bindGroup, nil
}
