package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga/ir"
)

// VertexInputs returns the vertex format of each @location
// argument of the given vertex entry point.
func (s *ShaderInfo) VertexInputs(entry string) (map[uint32]wgpu.VertexFormat, error) {
	fn, err := s.entryFunction(entry)
	if err != nil {
		return nil, err
	}

	inputs := map[uint32]wgpu.VertexFormat{}

	add := func(binding *ir.Binding, typ ir.TypeHandle) error {
		if binding == nil {
			return nil
		}

		location, ok := (*binding).(ir.LocationBinding)
		if !ok {
			// builtins like vertex_index are not fed from a buffer
			return nil
		}

		format, ok := s.vertexFormat(typ)
		if !ok {
			return fmt.Errorf("%w: location %d of %q has no vertex format", ErrLayoutMismatch, location.Location, entry)
		}

		inputs[location.Location] = format
		return nil
	}

	for _, arg := range fn.Arguments {
		if arg.Binding != nil {
			if err := add(arg.Binding, arg.Type); err != nil {
				return nil, err
			}

			continue
		}

		// arguments without a binding are structs with bound members
		st, ok := s.typeInner(arg.Type).(ir.StructType)
		if !ok {
			continue
		}

		for _, member := range st.Members {
			if err := add(member.Binding, member.Type); err != nil {
				return nil, err
			}
		}
	}

	return inputs, nil
}

// UniformSize returns the size in bytes of the uniform struct at the given group and binding.
func (s *ShaderInfo) UniformSize(group, binding uint32) (uint64, bool) {
	for _, global := range s.module.GlobalVariables {
		if global.Space != ir.SpaceUniform || global.Binding == nil {
			continue
		}

		if global.Binding.Group != group || global.Binding.Binding != binding {
			continue
		}

		if st, ok := s.typeInner(global.Type).(ir.StructType); ok {
			return uint64(st.Span), true
		}
	}

	return 0, false
}

// CheckVertexLayout verifies that the buffer layout provides exactly
// the inputs of the vertex entry point.
func (s *ShaderInfo) CheckVertexLayout(entry string, layout wgpu.VertexBufferLayout) error {
	inputs, err := s.VertexInputs(entry)
	if err != nil {
		return err
	}

	if len(inputs) != len(layout.Attributes) {
		return fmt.Errorf("%w: %q reads %d attributes, layout has %d",
			ErrLayoutMismatch, entry, len(inputs), len(layout.Attributes))
	}

	for _, attr := range layout.Attributes {
		format, ok := inputs[attr.ShaderLocation]
		if !ok {
			return fmt.Errorf("%w: %q has no input at location %d", ErrLayoutMismatch, entry, attr.ShaderLocation)
		}

		if format != attr.Format {
			return fmt.Errorf("%w: location %d is %v in %q, layout has %v",
				ErrLayoutMismatch, attr.ShaderLocation, format, entry, attr.Format)
		}
	}

	return nil
}

// CheckUniform verifies that the shader declares a uniform struct of the given size.
func (s *ShaderInfo) CheckUniform(group, binding uint32, size uint64) error {
	actual, ok := s.UniformSize(group, binding)
	if !ok {
		return fmt.Errorf("%w: no uniform struct at @group(%d) @binding(%d)", ErrLayoutMismatch, group, binding)
	}

	if actual != size {
		return fmt.Errorf("%w: uniform at @group(%d) @binding(%d) has %d bytes, expected %d",
			ErrLayoutMismatch, group, binding, actual, size)
	}

	return nil
}

func (s *ShaderInfo) entryFunction(entry string) (*ir.Function, error) {
	for idx := range s.module.EntryPoints {
		if ep := &s.module.EntryPoints[idx]; ep.Name == entry {
			return &ep.Function, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrMissingEntryPoint, entry)
}

func (s *ShaderInfo) typeInner(handle ir.TypeHandle) ir.TypeInner {
	if int(handle) >= len(s.module.Types) {
		return nil
	}

	return s.module.Types[handle].Inner
}

func (s *ShaderInfo) vertexFormat(handle ir.TypeHandle) (wgpu.VertexFormat, bool) {
	switch inner := s.typeInner(handle).(type) {
	case ir.ScalarType:
		return scalarVertexFormat(inner, 1)
	case ir.VectorType:
		return scalarVertexFormat(inner.Scalar, inner.Size)
	}

	return 0, false
}

func scalarVertexFormat(scalar ir.ScalarType, size ir.VectorSize) (wgpu.VertexFormat, bool) {
	if scalar.Width != 4 {
		return 0, false
	}

	formats := map[ir.ScalarKind][4]wgpu.VertexFormat{
		ir.ScalarFloat: {wgpu.VertexFormatFloat32, wgpu.VertexFormatFloat32x2, wgpu.VertexFormatFloat32x3, wgpu.VertexFormatFloat32x4},
		ir.ScalarUint:  {wgpu.VertexFormatUint32, wgpu.VertexFormatUint32x2, wgpu.VertexFormatUint32x3, wgpu.VertexFormatUint32x4},
		ir.ScalarSint:  {wgpu.VertexFormatSint32, wgpu.VertexFormatSint32x2, wgpu.VertexFormatSint32x3, wgpu.VertexFormatSint32x4},
	}

	byKind, ok := formats[scalar.Kind]
	if !ok || size < 1 || size > 4 {
		return 0, false
	}

	return byKind[size-1], true
}
