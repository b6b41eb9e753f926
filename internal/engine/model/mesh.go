package model

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roam3d/pkg/formats"
)

// ErrBadIndices is returned for index data that does not describe a triangle list.
var ErrBadIndices = errors.New("invalid mesh indices")

// Mesh is an immutable indexed triangle list. Several entities may share one.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
	bounds   Bounds
}

// BuildMesh deduplicates the face corners of a parsed OBJ into a Mesh.
// Vertices keep the order of their first appearance; missing texture
// coordinates and normals become zero vectors.
func BuildMesh(obj *formats.OBJ) (*Mesh, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[Vertex]uint32, len(obj.Faces)*3)
	vertices := make([]Vertex, 0, len(obj.Faces)*3)
	indices := make([]uint32, 0, len(obj.Faces)*3)

	for _, face := range obj.Faces {
		for _, c := range face {
			v := Vertex{Position: obj.Positions[c.Position]}
			if c.Normal != formats.NoIndex {
				v.Normal = obj.Normals[c.Normal]
			}
			if c.TexCoord != formats.NoIndex {
				v.TexCoord = obj.TexCoords[c.TexCoord]
			}

			idx, ok := seen[v]
			if !ok {
				idx = uint32(len(vertices))
				vertices = append(vertices, v)
				seen[v] = idx
			}
			indices = append(indices, idx)
		}
	}

	return newMesh(vertices, indices), nil
}

// NewMesh wraps caller-supplied geometry. indices must be a triangle list
// referencing vertices.
func NewMesh(vertices []Vertex, indices []uint32) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: count %d is not a multiple of 3", ErrBadIndices, len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("%w: indices[%d] = %d, have %d vertices", ErrBadIndices, i, idx, len(vertices))
		}
	}
	return newMesh(append([]Vertex(nil), vertices...), append([]uint32(nil), indices...)), nil
}

func newMesh(vertices []Vertex, indices []uint32) *Mesh {
	bounds := EmptyBounds()
	for i := range vertices {
		bounds.Extend(vertices[i].Position)
	}
	return &Mesh{vertices: vertices, indices: indices, bounds: bounds}
}

// Vertices returns the deduplicated vertex buffer. Callers must not modify it.
func (m *Mesh) Vertices() []Vertex { return m.vertices }

// Indices returns the triangle index buffer. Callers must not modify it.
func (m *Mesh) Indices() []uint32 { return m.indices }

// Bounds returns the model-space bounding box.
func (m *Mesh) Bounds() Bounds { return m.bounds }

// VertexCount returns the number of unique vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.indices) / 3 }
