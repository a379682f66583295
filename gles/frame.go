package gles

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/cellux/glplot"
)

var modes = map[glplot.Topology]uint32{
	glplot.LineStrip:     gl.LINE_STRIP,
	glplot.TrianglesList: gl.TRIANGLES,
	glplot.TriangleStrip: gl.TRIANGLE_STRIP,
}

type frame struct{}

func (frame) Clear(c glplot.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (frame) Draw(vb glplot.VertexBuffer, topology glplot.Topology, program glplot.Program, u glplot.Uniforms) error {
	buf, ok := vb.(*VertexBuffer)
	if !ok {
		return fmt.Errorf("gles: foreign vertex buffer %T", vb)
	}
	p, ok := program.(*Program)
	if !ok {
		return fmt.Errorf("gles: foreign program %T", program)
	}
	mode, ok := modes[topology]
	if !ok {
		return fmt.Errorf("gles: unsupported topology %s", topology)
	}
	if buf.vbo == 0 || p.program == 0 {
		return glplot.ErrClosed
	}
	if buf.n == 0 {
		return nil
	}
	p.Use()
	gl.UniformMatrix3fv(p.uTransform, 1, false, &u.Transform[0])
	if p.uColor >= 0 {
		gl.Uniform4f(p.uColor, u.Color.R, u.Color.G, u.Color.B, u.Color.A)
	}
	if p.uTime >= 0 {
		gl.Uniform1f(p.uTime, u.Time)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.EnableVertexAttribArray(uint32(p.aPosition))
	gl.VertexAttribPointer(
		uint32(p.aPosition), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(glplot.Vertex{})),
		gl.PtrOffset(0))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(mode, 0, int32(buf.n))
	gl.Disable(gl.BLEND)
	gl.DisableVertexAttribArray(uint32(p.aPosition))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}
