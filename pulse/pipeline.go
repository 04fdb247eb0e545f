package pulse

import (
	"fmt"
	"log/slog"
	"structs"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/ignite/glm"
)

type Vertex struct {
	_ structs.HostLayout

	Position glm.Vec2f
	Color    glm.Vec3f
}

const VertexStride = uint64(unsafe.Sizeof(Vertex{}))

func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				// position
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
				ShaderLocation: 0,
			},
			{
				// color
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
				ShaderLocation: 1,
			},
		},
	}
}

// AlphaBlend blends color by source alpha and keeps the destination alpha.
var AlphaBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorZero,
		DstFactor: wgpu.BlendFactorOne,
		Operation: wgpu.BlendOperationAdd,
	},
}

// RenderPipelineConfig holds everything a render pipeline is specialized on.
type RenderPipelineConfig struct {
	Label         string
	Module        *wgpu.ShaderModule
	Layout        *wgpu.PipelineLayout
	TargetFormat  wgpu.TextureFormat
	VertexEntry   string
	FragmentEntry string
}

func (conf RenderPipelineConfig) Descriptor() *wgpu.RenderPipelineDescriptor {
	blend := AlphaBlend

	return &wgpu.RenderPipelineDescriptor{
		Label:  conf.Label,
		Layout: conf.Layout,
		Vertex: wgpu.VertexState{
			Module:     conf.Module,
			EntryPoint: conf.VertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{VertexBufferLayout()},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopologyTriangleList,
			StripIndexFormat: wgpu.IndexFormatUndefined,
			FrontFace:        wgpu.FrontFaceCCW,
			CullMode:         wgpu.CullModeNone,
		},
		Fragment: &wgpu.FragmentState{
			Module:     conf.Module,
			EntryPoint: conf.FragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}
}

func (conf RenderPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Creating render pipeline",
		slog.String("label", conf.Label),
		slog.Any("format", conf.TargetFormat),
	)

	pipeline, err := dev.CreateRenderPipeline(conf.Descriptor())
	if err != nil {
		return nil, fmt.Errorf("build pipeline %q: %w", conf.Label, err)
	}

	return pipeline, nil
}
