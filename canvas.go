package glplot

import (
	"errors"
	"fmt"
)

const (
	// CanvasVertexShader maps each position through the transform uniform.
	CanvasVertexShader = `
    precision highp float;
    attribute vec2 position;
    uniform mat3 transform;
    void main(void) {
      vec3 p = transform * vec3(position, 1.0);
      gl_Position = vec4(p.xy, 0.0, 1.0);
    }` + "\x00"
	// CanvasFragmentShader paints everything in the color uniform.
	CanvasFragmentShader = `
    precision mediump float;
    uniform vec4 color;
    void main(void) {
      gl_FragColor = color;
    }` + "\x00"
)

type geometry struct {
	vb       VertexBuffer
	topology Topology
}

// Canvas draws a fixed set of shapes with one shared shader program,
// all positioned by the ViewPort of the render context.
//
// The geometry is uploaded once by NewCanvas; to reflect changed shapes
// build a new Canvas.
type Canvas struct {
	// Color is the flat fill and stroke color of every shape.
	Color Color

	geometry []geometry
	program  Program
}

// NewCanvas uploads the vertices of every shape to b. Shapes are drawn in
// the order given, later ones on top of earlier ones.
func NewCanvas(b Backend, shapes ...Shape) (*Canvas, error) {
	program, err := b.NewProgram(CanvasVertexShader, CanvasFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("canvas program: %w", err)
	}
	c := &Canvas{
		Color:    Yellow,
		geometry: make([]geometry, 0, len(shapes)),
		program:  program,
	}
	for i, shape := range shapes {
		vb, err := b.NewVertexBuffer(shape.Vertices())
		if err != nil {
			err = fmt.Errorf("canvas shape %d: %w", i, err)
			return nil, errors.Join(err, c.Close())
		}
		Logger().Debug("canvas geometry",
			"shape", i,
			"topology", shape.Topology().String(),
			"vertices", vb.Len())
		c.geometry = append(c.geometry, geometry{vb: vb, topology: shape.Topology()})
	}
	return c, nil
}

// Len returns the number of shapes on the canvas.
func (c *Canvas) Len() int {
	return len(c.geometry)
}

// Draw issues one draw call per shape with the transform of rc.ViewPort.
func (c *Canvas) Draw(f Frame, rc RenderContext) error {
	if c.program == nil {
		return ErrClosed
	}
	uniforms := Uniforms{
		Transform: rc.ViewPort.Transform(),
		Color:     c.Color,
		Time:      rc.Time,
	}
	for i, g := range c.geometry {
		if err := f.Draw(g.vb, g.topology, c.program, uniforms); err != nil {
			return fmt.Errorf("canvas shape %d: %w", i, err)
		}
	}
	return nil
}

// Close releases the program and all vertex buffers.
func (c *Canvas) Close() error {
	var errs []error
	for _, g := range c.geometry {
		if err := g.vb.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.geometry = nil
	if c.program != nil {
		if err := c.program.Close(); err != nil {
			errs = append(errs, err)
		}
		c.program = nil
	}
	err := errors.Join(errs...)
	if err != nil {
		Logger().Warn("canvas close", "error", err)
	}
	return err
}
