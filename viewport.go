package glplot

import (
	"fmt"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// ScreenRect is an axis aligned rectangle in screen space, given by its
// lower left corner and its size.
type ScreenRect struct {
	X, Y          float32
	Width, Height float32
}

// DefaultScreen covers the whole normalized device square [-1,1]x[-1,1].
var DefaultScreen = ScreenRect{X: -1, Y: -1, Width: 2, Height: 2}

// Center returns the midpoint of the rectangle.
func (r ScreenRect) Center() (x, y float32) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

func (r ScreenRect) String() string {
	return fmt.Sprintf("%gx%g@(%g, %g)", r.Width, r.Height, r.X, r.Y)
}

// ViewPort holds the affine transform from model space (domain x range)
// to a rectangle of screen space. It is immutable: a different mapping
// needs a new ViewPort.
type ViewPort struct {
	transform mgl.Mat3
}

// IdentityViewPort passes model coordinates through unchanged. Callers can
// fall back to it when their data has no usable extent.
func IdentityViewPort() ViewPort {
	return ViewPort{transform: mgl.Ident3()}
}

// NewViewPort maps domain onto the width of screen and rng onto its
// height, so that the corners of the model rectangle land on the corners
// of screen and the model center lands on the screen center.
func NewViewPort(domain, rng Interval, screen ScreenRect) (ViewPort, error) {
	if domain.Degenerate() {
		return ViewPort{}, &DegenerateIntervalError{Axis: AxisX, Interval: domain}
	}
	if rng.Degenerate() {
		return ViewPort{}, &DegenerateIntervalError{Axis: AxisY, Interval: rng}
	}
	sx, sy := screen.Center()
	transform := mgl.Translate2D(sx, sy).
		Mul3(mgl.Scale2D(screen.Width/domain.Span, screen.Height/rng.Span)).
		Mul3(mgl.Translate2D(-domain.Center(), -rng.Center()))
	Logger().Debug("viewport",
		"domain", domain.String(),
		"range", rng.String(),
		"screen", screen.String())
	return ViewPort{transform: transform}, nil
}

// FitToData derives the domain and range from the extent of points and
// returns the ViewPort mapping them onto screen.
func FitToData(points []Vertex, screen ScreenRect) (ViewPort, error) {
	domain, err := Extent(points, AxisX)
	if err != nil {
		return ViewPort{}, err
	}
	rng, err := Extent(points, AxisY)
	if err != nil {
		return ViewPort{}, err
	}
	return NewViewPort(domain, rng, screen)
}

// Transform returns the model to screen transform in mathgl layout
// (column major), ready for glUniformMatrix3fv.
func (vp ViewPort) Transform() mgl.Mat3 {
	return vp.transform
}

// ToScreenMatrix returns the transform in row major order; the last row
// is always {0, 0, 1}.
func (vp ViewPort) ToScreenMatrix() [3][3]float32 {
	var m [3][3]float32
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			m[row][col] = vp.transform.At(row, col)
		}
	}
	return m
}

// Apply maps a model space vertex to screen space.
func (vp ViewPort) Apply(v Vertex) Vertex {
	return v.Transform(vp.transform)
}

func (vp ViewPort) String() string {
	m := vp.ToScreenMatrix()
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}
