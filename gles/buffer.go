package gles

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/cellux/glplot"
)

// VertexBuffer is a GL array buffer holding glplot vertices.
type VertexBuffer struct {
	vbo uint32
	n   int
}

// CreateVertexBuffer uploads vertices into a new static array buffer.
func CreateVertexBuffer(vertices []glplot.Vertex) (*VertexBuffer, error) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		return nil, fmt.Errorf("gles: glGenBuffers failed: 0x%x", gl.GetError())
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(vertices) > 0 {
		size := len(vertices) * int(unsafe.Sizeof(glplot.Vertex{}))
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(&vertices[0].Position[0]), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteBuffers(1, &vbo)
		return nil, fmt.Errorf("gles: vertex buffer of %d vertices: 0x%x", len(vertices), code)
	}
	return &VertexBuffer{vbo: vbo, n: len(vertices)}, nil
}

func (vb *VertexBuffer) Len() int {
	return vb.n
}

func (vb *VertexBuffer) Close() error {
	if vb.vbo != 0 {
		gl.DeleteBuffers(1, &vb.vbo)
		vb.vbo = 0
	}
	return nil
}
