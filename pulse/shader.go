package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
)

type ShaderEntryPoints struct {
	Vertex   string
	Fragment string
}

func DefaultShaderEntryPoints() ShaderEntryPoints {
	return ShaderEntryPoints{Vertex: "main", Fragment: "fs_main"}
}

func (e ShaderEntryPoints) WithDefaults() ShaderEntryPoints {
	def := DefaultShaderEntryPoints()

	if e.Vertex == "" {
		e.Vertex = def.Vertex
	}

	if e.Fragment == "" {
		e.Fragment = def.Fragment
	}

	return e
}

// ShaderInfo describes a parsed and validated wgsl module.
type ShaderInfo struct {
	// stage of each entry point by name
	EntryPoints map[string]ir.ShaderStage

	module *ir.Module
}

// InspectShader parses, lowers and validates the wgsl source
// without involving the device.
func InspectShader(source string) (*ShaderInfo, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptyShader
	}

	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse shader: %w", err)
	}

	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("lower shader: %w", err)
	}

	problems, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("validate shader: %w", err)
	}

	if len(problems) > 0 {
		errs := make([]error, 0, len(problems))
		for _, problem := range problems {
			errs = append(errs, problem)
		}

		return nil, fmt.Errorf("validate shader: %w", errors.Join(errs...))
	}

	info := &ShaderInfo{EntryPoints: map[string]ir.ShaderStage{}, module: module}
	for _, ep := range module.EntryPoints {
		info.EntryPoints[ep.Name] = ep.Stage
	}

	return info, nil
}

// Require checks that the shader has a vertex and a fragment entry point with the given names.
func (s *ShaderInfo) Require(entries ShaderEntryPoints) error {
	if err := s.requireStage(entries.Vertex, ir.StageVertex); err != nil {
		return err
	}

	return s.requireStage(entries.Fragment, ir.StageFragment)
}

func (s *ShaderInfo) requireStage(name string, stage ir.ShaderStage) error {
	actual, ok := s.EntryPoints[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingEntryPoint, name)
	}

	if actual != stage {
		return fmt.Errorf("%w: %q is not a %s entry point", ErrMissingEntryPoint, name, stageName(stage))
	}

	return nil
}

func stageName(stage ir.ShaderStage) string {
	switch stage {
	case ir.StageVertex:
		return "vertex"
	case ir.StageFragment:
		return "fragment"
	case ir.StageCompute:
		return "compute"
	default:
		return fmt.Sprintf("stage(%d)", stage)
	}
}

func LoadShaderSource(path string) (string, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %q: %w", path, err)
	}

	if len(strings.TrimSpace(string(code))) == 0 {
		return "", fmt.Errorf("read shader %q: %w", path, ErrEmptyShader)
	}

	return string(code), nil
}

type ShaderModule struct {
	*wgpu.ShaderModule

	Path    string
	Entries ShaderEntryPoints
	Info    *ShaderInfo
}

// LoadShaderModule reads a wgsl file, checks it for the
// requested entry points and compiles it on the device.
func LoadShaderModule(ctx *Context, path string, entries ShaderEntryPoints) (*ShaderModule, error) {
	entries = entries.WithDefaults()

	source, err := LoadShaderSource(path)
	if err != nil {
		return nil, err
	}

	info, err := InspectShader(source)
	if err != nil {
		return nil, fmt.Errorf("inspect %q: %w", path, err)
	}

	if err := info.Require(entries); err != nil {
		return nil, fmt.Errorf("inspect %q: %w", path, err)
	}

	if err := info.CheckVertexLayout(entries.Vertex, VertexBufferLayout()); err != nil {
		return nil, fmt.Errorf("inspect %q: %w", path, err)
	}

	if err := info.CheckUniform(0, 0, UniformsSize); err != nil {
		return nil, fmt.Errorf("inspect %q: %w", path, err)
	}

	module, err := ctx.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          filepath.Base(path),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: source},
	})

	if err != nil {
		return nil, fmt.Errorf("compile shader %q: %w", path, err)
	}

	slog.Info(
		"Got shader module",
		slog.String("path", path),
		slog.String("vertex", entries.Vertex),
		slog.String("fragment", entries.Fragment),
	)

	return &ShaderModule{
		ShaderModule: module,
		Path:         path,
		Entries:      entries,
		Info:         info,
	}, nil
}
