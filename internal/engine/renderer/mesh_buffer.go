package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/roam3d/internal/engine/model"
)

// Vertex layout: position(3) + normal(3) + texcoord(2).
const (
	floatsPerVertex = 8
	vertexStride    = floatsPerVertex * 4
)

// MeshBuffer holds the GPU copy of one mesh.
type MeshBuffer struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// interleave packs mesh vertices in the shader's attribute order.
func interleave(vertices []model.Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*floatsPerVertex)
	for _, v := range vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// NewMeshBuffer uploads mesh. Must be called with a current GL context.
func NewMeshBuffer(mesh *model.Mesh) (*MeshBuffer, error) {
	b := &MeshBuffer{indexCount: int32(len(mesh.Indices()))}
	if b.indexCount == 0 {
		return b, nil
	}

	data := interleave(mesh.Vertices())
	indices := mesh.Indices()

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := glError("upload mesh"); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

// Draw issues the indexed draw call.
func (b *MeshBuffer) Draw() {
	if b.indexCount == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Close frees the GPU buffers. Safe to call twice.
func (b *MeshBuffer) Close() error {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	b.indexCount = 0
	return glError("delete mesh buffer")
}

// ErrGL wraps OpenGL error codes.
var ErrGL = errors.New("opengl error")

// glError drains the GL error queue.
func glError(op string) error {
	var codes []uint32
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, code)
		if len(codes) > 8 {
			break
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrGL, op, errorNames(codes))
}

func errorNames(codes []uint32) string {
	s := ""
	for i, c := range codes {
		if i > 0 {
			s += ", "
		}
		switch c {
		case gl.INVALID_ENUM:
			s += "GL_INVALID_ENUM"
		case gl.INVALID_VALUE:
			s += "GL_INVALID_VALUE"
		case gl.INVALID_OPERATION:
			s += "GL_INVALID_OPERATION"
		case gl.OUT_OF_MEMORY:
			s += "GL_OUT_OF_MEMORY"
		case gl.INVALID_FRAMEBUFFER_OPERATION:
			s += "GL_INVALID_FRAMEBUFFER_OPERATION"
		default:
			s += fmt.Sprintf("0x%04X", c)
		}
	}
	return s
}
