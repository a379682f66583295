package glplot

import "fmt"

// Topology tells the backend how to assemble a vertex sequence into
// primitives.
type Topology int

const (
	LineStrip Topology = iota
	TrianglesList
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case LineStrip:
		return "LineStrip"
	case TrianglesList:
		return "TrianglesList"
	case TriangleStrip:
		return "TriangleStrip"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Shape is a geometric primitive which can be baked into a Canvas.
type Shape interface {
	Vertices() []Vertex
	Topology() Topology
}

// Polyline is an open strip of line segments through its vertices.
type Polyline struct {
	vertices []Vertex
}

// NewPolyline keeps vertices as given. A single vertex is a legal strip
// without segments.
func NewPolyline(vertices []Vertex) *Polyline {
	return &Polyline{vertices: vertices}
}

func (p *Polyline) Vertices() []Vertex { return p.vertices }
func (p *Polyline) Topology() Topology { return LineStrip }

// Rect is an axis aligned rectangle drawn as a two triangle strip.
type Rect struct {
	vertices [4]Vertex
}

// NewRect builds the rectangle spanned by two opposite corners, in any
// order.
func NewRect(a, b Vertex) *Rect {
	x := NewInterval(a.X(), b.X())
	y := NewInterval(a.Y(), b.Y())
	// bottom left, top left, bottom right, top right: the strip diagonal
	// runs from top left to bottom right
	return &Rect{vertices: [4]Vertex{
		V(x.Lower, y.Lower),
		V(x.Lower, y.Upper),
		V(x.Upper, y.Lower),
		V(x.Upper, y.Upper),
	}}
}

func (r *Rect) Vertices() []Vertex { return r.vertices[:] }
func (r *Rect) Topology() Topology { return TriangleStrip }

// Polygon is a simple polygon, triangulated up front into a flat
// triangle list.
type Polygon struct {
	outline   []Vertex
	triangles []Vertex
}

// NewPolygon triangulates the outline. It fails with an
// InvalidPolygonError for fewer than three vertices, zero area or
// self-intersecting outlines.
func NewPolygon(outline []Vertex) (*Polygon, error) {
	triangles, err := Triangulate(outline)
	if err != nil {
		return nil, err
	}
	return &Polygon{outline: outline, triangles: triangles}, nil
}

// Outline returns the vertices the polygon was built from.
func (p *Polygon) Outline() []Vertex { return p.outline }

func (p *Polygon) Vertices() []Vertex { return p.triangles }
func (p *Polygon) Topology() Topology { return TrianglesList }
