package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/ignite/glm"
)

// Quad returns a square of the given half size centered at the origin,
// one color per corner, starting bottom left, counter clockwise.
func Quad(halfSize float32, colors [4]Color) ([]Vertex, []uint16) {
	corners := [4]glm.Vec2f{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices := make([]Vertex, 0, len(corners))
	for idx, corner := range corners {
		vertices = append(vertices, Vertex{
			Position: corner.MulScalar(halfSize),
			Color:    colors[idx].ToVec().Truncate(),
		})
	}

	return vertices, []uint16{0, 1, 2, 0, 2, 3}
}

// Mesh holds indexed vertex data on the device.
type Mesh struct {
	Vertices   *wgpu.Buffer
	Indices    *wgpu.Buffer
	IndexCount uint32
}

func NewMesh(ctx *Context, vertices []Vertex, indices []uint16) (mesh *Mesh, err error) {
	mesh = &Mesh{IndexCount: uint32(len(indices))}

	defer func() {
		if err != nil {
			mesh.Release()
			mesh = nil
		}
	}()

	mesh.Vertices, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Vertices",
		Contents: wgpu.ToBytes(vertices),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})

	if err != nil {
		return mesh, fmt.Errorf("create vertex buffer: %w", err)
	}

	mesh.Indices, err = ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Indices",
		Contents: wgpu.ToBytes(padIndices(indices)),
		Usage:    wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})

	if err != nil {
		return mesh, fmt.Errorf("create index buffer: %w", err)
	}

	return mesh, nil
}

func (m *Mesh) Release() {
	if m.Indices != nil {
		m.Indices.Release()
		m.Indices = nil
	}

	if m.Vertices != nil {
		m.Vertices.Release()
		m.Vertices = nil
	}
}

// padIndices pads the index data to a multiple of four bytes,
// as required for buffer copies.
func padIndices(indices []uint16) []uint16 {
	if len(indices)%2 == 0 {
		return indices
	}

	padded := make([]uint16, len(indices)+1)
	copy(padded, indices)

	return padded
}
