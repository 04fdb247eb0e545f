package pulse

import "github.com/cogentcore/webgpu/wgpu"

// uniformBindingSize is the largest uniform binding the device needs, one mat4x4<f32>.
const uniformBindingSize = 16 * 4

// VertexBudget describes the largest vertex buffer the device must support.
type VertexBudget struct {
	Vertices uint64
	Stride   uint64
}

// DefaultVertexBudget fits a single quad of Vertex values.
func DefaultVertexBudget() VertexBudget {
	return VertexBudget{Vertices: 4, Stride: VertexStride}
}

func (b VertexBudget) BufferSize() uint64 {
	return max(b.Vertices*b.Stride, uniformBindingSize)
}

// RequiredLimits derives the limits to request a device with. It starts
// from the WebGPU defaults, tightens everything the pipeline actually uses
// and copies the alignments the adapter supports.
func RequiredLimits(supported wgpu.Limits, budget VertexBudget) wgpu.Limits {
	limits := wgpu.DefaultLimits()

	limits.MaxVertexAttributes = 2
	limits.MaxVertexBuffers = 1
	limits.MaxBufferSize = budget.BufferSize()
	limits.MinStorageBufferOffsetAlignment = supported.MinStorageBufferOffsetAlignment
	limits.MinUniformBufferOffsetAlignment = supported.MinUniformBufferOffsetAlignment
	limits.MaxBindGroups = 1
	limits.MaxUniformBuffersPerShaderStage = 1
	limits.MaxUniformBufferBindingSize = uniformBindingSize

	return limits
}
