package pulse

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestVertexBufferLayout(t *testing.T) {
	layout := VertexBufferLayout()

	if layout.ArrayStride != 5*4 {
		t.Errorf("ArrayStride = %d, want 20", layout.ArrayStride)
	}

	if layout.StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("unexpected step mode %v", layout.StepMode)
	}

	if len(layout.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(layout.Attributes))
	}

	position, color := layout.Attributes[0], layout.Attributes[1]

	if position.Format != wgpu.VertexFormatFloat32x2 || position.Offset != 0 || position.ShaderLocation != 0 {
		t.Errorf("unexpected position attribute %+v", position)
	}

	if color.Format != wgpu.VertexFormatFloat32x3 || color.Offset != 2*4 || color.ShaderLocation != 1 {
		t.Errorf("unexpected color attribute %+v", color)
	}
}

func TestRenderPipelineDescriptor(t *testing.T) {
	conf := RenderPipelineConfig{
		Label:         "Test",
		TargetFormat:  wgpu.TextureFormatBGRA8Unorm,
		VertexEntry:   "main",
		FragmentEntry: "fs_main",
	}

	desc := conf.Descriptor()

	if desc.Vertex.EntryPoint != "main" || len(desc.Vertex.Buffers) != 1 {
		t.Errorf("unexpected vertex state %+v", desc.Vertex)
	}

	if desc.Primitive.Topology != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("unexpected topology %v", desc.Primitive.Topology)
	}

	if desc.Primitive.FrontFace != wgpu.FrontFaceCCW || desc.Primitive.CullMode != wgpu.CullModeNone {
		t.Errorf("unexpected primitive state %+v", desc.Primitive)
	}

	if desc.DepthStencil != nil {
		t.Error("pipeline must not use a depth stencil")
	}

	if desc.Multisample.Count != 1 || desc.Multisample.Mask != 0xFFFFFFFF || desc.Multisample.AlphaToCoverageEnabled {
		t.Errorf("unexpected multisample state %+v", desc.Multisample)
	}

	if desc.Fragment == nil || desc.Fragment.EntryPoint != "fs_main" {
		t.Fatalf("unexpected fragment state %+v", desc.Fragment)
	}

	if len(desc.Fragment.Targets) != 1 {
		t.Fatalf("expected a single color target, got %d", len(desc.Fragment.Targets))
	}

	target := desc.Fragment.Targets[0]
	if target.Format != wgpu.TextureFormatBGRA8Unorm || target.WriteMask != wgpu.ColorWriteMaskAll {
		t.Errorf("unexpected color target %+v", target)
	}

	if target.Blend == nil || *target.Blend != AlphaBlend {
		t.Errorf("expected alpha blending, got %+v", target.Blend)
	}

	// the descriptor must not alias the package level blend state
	target.Blend.Color.SrcFactor = wgpu.BlendFactorOne
	if AlphaBlend.Color.SrcFactor != wgpu.BlendFactorSrcAlpha {
		t.Error("AlphaBlend was modified through the descriptor")
	}
}

func TestAlphaBlend(t *testing.T) {
	if AlphaBlend.Color.DstFactor != wgpu.BlendFactorOneMinusSrcAlpha {
		t.Errorf("unexpected color dst factor %v", AlphaBlend.Color.DstFactor)
	}

	if AlphaBlend.Alpha.SrcFactor != wgpu.BlendFactorZero || AlphaBlend.Alpha.DstFactor != wgpu.BlendFactorOne {
		t.Errorf("unexpected alpha component %+v", AlphaBlend.Alpha)
	}
}
