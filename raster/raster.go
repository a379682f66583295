// Package raster renders glplot scenes into an in-memory image. It needs
// no GPU and no window, which makes it suitable for tests and for
// writing snapshots.
//
// Screen space is the normalized device square [-1,1]x[-1,1] with y
// pointing up, mapped onto the whole image.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/cellux/glplot"
)

// DefaultLineWidth is the stroke width of line strips in pixels.
const DefaultLineWidth = 1.5

// DrawCall records one draw call of a frame.
type DrawCall struct {
	Topology glplot.Topology
	Vertices int
}

type program struct {
	closed bool
}

func (p *program) Close() error {
	p.closed = true
	return nil
}

type vertexBuffer struct {
	vertices []glplot.Vertex
	closed   bool
}

func (vb *vertexBuffer) Len() int {
	return len(vb.vertices)
}

func (vb *vertexBuffer) Close() error {
	vb.vertices = nil
	vb.closed = true
	return nil
}

// Display is a headless glplot.Display. Its clock is virtual: it only
// advances by the timeouts the render loop waits for, so rendering is
// deterministic.
type Display struct {
	// LineWidth is the stroke width in pixels; zero means DefaultLineWidth.
	LineWidth float32

	img     *image.RGBA
	z       *vector.Rasterizer
	now     float64
	events  []glplot.Event
	calls   []DrawCall
	current *frame
}

// NewDisplay returns a display rendering into a width x height image.
func NewDisplay(width, height int) (*Display, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	return &Display{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}, nil
}

func (d *Display) NewProgram(vertexShader, fragmentShader string) (glplot.Program, error) {
	if vertexShader == "" || fragmentShader == "" {
		return nil, errors.New("raster: empty shader source")
	}
	return &program{}, nil
}

func (d *Display) NewVertexBuffer(vertices []glplot.Vertex) (glplot.VertexBuffer, error) {
	vb := &vertexBuffer{vertices: make([]glplot.Vertex, len(vertices))}
	copy(vb.vertices, vertices)
	return vb, nil
}

func (d *Display) BeginFrame() (glplot.Frame, error) {
	if d.current != nil {
		return nil, errors.New("raster: frame already in progress")
	}
	d.current = &frame{d: d}
	return d.current, nil
}

func (d *Display) EndFrame(f glplot.Frame) error {
	fr, ok := f.(*frame)
	if !ok || fr != d.current {
		return errors.New("raster: frame does not belong to this display")
	}
	d.calls = fr.calls
	d.current = nil
	return nil
}

func (d *Display) WaitEvents(timeout float64, handle func(glplot.Event)) {
	if timeout > 0 {
		d.now += timeout
	}
	events := d.events
	d.events = nil
	for _, ev := range events {
		handle(ev)
	}
}

func (d *Display) Time() float64 {
	return d.now
}

// Post queues an event for the next WaitEvents.
func (d *Display) Post(ev glplot.Event) {
	d.events = append(d.events, ev)
}

// RequestClose queues a CloseRequested event.
func (d *Display) RequestClose() {
	d.Post(glplot.CloseRequested{})
}

// Image returns the render target. It holds the last presented frame
// between frames.
func (d *Display) Image() *image.RGBA {
	return d.img
}

// DrawCalls returns the draw calls of the last presented frame.
func (d *Display) DrawCalls() []DrawCall {
	return d.calls
}

// WritePNG encodes the render target as PNG.
func (d *Display) WritePNG(w io.Writer) error {
	return png.Encode(w, d.img)
}

type frame struct {
	d     *Display
	calls []DrawCall
}

func (f *frame) Clear(c glplot.Color) {
	draw.Draw(f.d.img, f.d.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (f *frame) Draw(vb glplot.VertexBuffer, topology glplot.Topology, p glplot.Program, u glplot.Uniforms) error {
	buf, ok := vb.(*vertexBuffer)
	if !ok {
		return fmt.Errorf("raster: foreign vertex buffer %T", vb)
	}
	prog, ok := p.(*program)
	if !ok {
		return fmt.Errorf("raster: foreign program %T", p)
	}
	if buf.closed || prog.closed {
		return glplot.ErrClosed
	}
	pts := make([][2]float32, len(buf.vertices))
	for i, v := range buf.vertices {
		pts[i] = f.toPixels(v.Transform(u.Transform))
	}
	src := image.NewUniform(u.Color.NRGBA())
	switch topology {
	case glplot.LineStrip:
		f.strokeStrip(pts, src)
	case glplot.TrianglesList:
		for i := 0; i+2 < len(pts); i += 3 {
			f.fillTriangle(pts[i], pts[i+1], pts[i+2], src)
		}
	case glplot.TriangleStrip:
		for i := 0; i+2 < len(pts); i++ {
			f.fillTriangle(pts[i], pts[i+1], pts[i+2], src)
		}
	default:
		return fmt.Errorf("raster: unsupported topology %s", topology)
	}
	f.calls = append(f.calls, DrawCall{Topology: topology, Vertices: len(pts)})
	return nil
}

// toPixels maps normalized device coordinates to image coordinates.
func (f *frame) toPixels(v glplot.Vertex) [2]float32 {
	b := f.d.img.Bounds()
	return [2]float32{
		(v.X() + 1) / 2 * float32(b.Dx()),
		(1 - v.Y()) / 2 * float32(b.Dy()),
	}
}

// fill rasterizes the closed path only over its bounding box, clipped to
// the image.
func (f *frame) fill(src image.Image, path ...[2]float32) {
	minX, minY := path[0][0], path[0][1]
	maxX, maxY := minX, minY
	for _, p := range path[1:] {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	r := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX)))+1, int(math.Ceil(float64(maxY)))+1,
	).Intersect(f.d.img.Bounds())
	if r.Empty() {
		return
	}
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	z := f.d.z
	z.Reset(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(path[0][0]-ox, path[0][1]-oy)
	for _, p := range path[1:] {
		z.LineTo(p[0]-ox, p[1]-oy)
	}
	z.ClosePath()
	z.Draw(f.d.img, r, src, image.Point{})
}

func (f *frame) fillTriangle(a, b, c [2]float32, src image.Image) {
	f.fill(src, a, b, c)
}

// strokeStrip draws every segment as a quad LineWidth pixels wide.
func (f *frame) strokeStrip(pts [][2]float32, src image.Image) {
	half := f.d.LineWidth / 2
	if half <= 0 {
		half = DefaultLineWidth / 2
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		dx, dy := b[0]-a[0], b[1]-a[1]
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		f.fill(src,
			[2]float32{a[0] + nx, a[1] + ny},
			[2]float32{b[0] + nx, b[1] + ny},
			[2]float32{b[0] - nx, b[1] - ny},
			[2]float32{a[0] - nx, a[1] - ny})
	}
}
