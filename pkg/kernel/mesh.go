package kernel

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
)

// Mesh is the concatenation of every built shell's vertex block and
// index-adjusted faces.
type Mesh struct {
	Vertices []Vertex `json:"vertices"`
	Faces    []Face   `json:"faces"`
	PartName string   `json:"partName,omitempty"` // which design part this came from
}

// NewMesh returns an empty mesh with non-nil buffers.
func NewMesh() *Mesh {
	return &Mesh{
		Vertices: []Vertex{},
		Faces:    []Face{},
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// AppendBlock appends a shell's vertex block and faces. The faces must
// already be expressed in global indices; AppendBlock returns the index
// of the block's first vertex.
func (m *Mesh) AppendBlock(vertices []Vertex, faces []Face) int {
	start := len(m.Vertices)
	m.Vertices = append(m.Vertices, vertices...)
	m.Faces = append(m.Faces, faces...)
	return start
}

// CheckIndices reports the first face referencing a vertex outside
// [0, VertexCount).
func (m *Mesh) CheckIndices() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for j, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("kernel: face %d corner %d references vertex %d, mesh has %d vertices", i, j, idx, n)
			}
		}
	}
	return nil
}

// BoundingBox returns the axis-aligned bounding box of all vertices.
// An empty mesh yields a zero box.
func (m *Mesh) BoundingBox() sdf.Box3 {
	if len(m.Vertices) == 0 {
		return sdf.Box3{}
	}
	lo, hi := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}
	return sdf.Box3{Min: lo, Max: hi}
}

// Buffers flattens the mesh into the render layout used by viewers:
// 3 float32s per vertex and 3 uint32s per triangle.
func (m *Mesh) Buffers() (vertices []float32, indices []uint32) {
	vertices = make([]float32, 0, len(m.Vertices)*3)
	for _, v := range m.Vertices {
		vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
	}
	indices = make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}
	return vertices, indices
}
