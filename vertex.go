package glplot

import (
	"fmt"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// Axis selects a coordinate of a Vertex.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
)

func (a Axis) valid() bool {
	return a == AxisX || a == AxisY
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Vertex is a 2D point. Its layout matches the single vec2 position
// attribute of the shaders, so a []Vertex can be uploaded as is.
type Vertex struct {
	Position [2]float32
}

// V is shorthand for a Vertex at (x, y).
func V(x, y float32) Vertex {
	return Vertex{Position: [2]float32{x, y}}
}

func (v Vertex) X() float32 { return v.Position[0] }
func (v Vertex) Y() float32 { return v.Position[1] }

// Coord returns the coordinate on the given axis. It panics for an axis
// other than AxisX and AxisY.
func (v Vertex) Coord(axis Axis) float32 {
	return v.Position[axis]
}

// Transform applies the homogeneous 2D transform m to v (w = 1).
func (v Vertex) Transform(m mgl.Mat3) Vertex {
	p := m.Mul3x1(mgl.Vec3{v.Position[0], v.Position[1], 1})
	return V(p[0], p[1])
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", v.Position[0], v.Position[1])
}
