package raster

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/cellux/glplot"
	mgl "github.com/go-gl/mathgl/mgl32"
)

func newDisplay(t *testing.T, w, h int) *Display {
	t.Helper()
	d, err := NewDisplay(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestNewDisplayInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewDisplay(size[0], size[1]); err == nil {
			t.Errorf("NewDisplay(%d, %d) succeeded", size[0], size[1])
		}
	}
}

func TestClearKeepsAlpha(t *testing.T) {
	d := newDisplay(t, 4, 4)
	f, err := d.BeginFrame()
	if err != nil {
		t.Fatal(err)
	}
	f.Clear(glplot.Color{R: 1, G: 0, B: 0, A: 0.5})
	if err := d.EndFrame(f); err != nil {
		t.Fatal(err)
	}
	got := d.Image().At(1, 1)
	want := color.NRGBA{255, 0, 0, 128}
	r1, g1, b1, a1 := got.RGBA()
	r2, g2, b2, a2 := want.RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
		t.Errorf("cleared pixel = %v, want %v", got, want)
	}
}

func TestFillTriangleStrip(t *testing.T) {
	d := newDisplay(t, 20, 20)
	vb, err := d.NewVertexBuffer(glplot.NewRect(glplot.V(-0.5, -0.5), glplot.V(0.5, 0.5)).Vertices())
	if err != nil {
		t.Fatal(err)
	}
	p, err := d.NewProgram(glplot.CanvasVertexShader, glplot.CanvasFragmentShader)
	if err != nil {
		t.Fatal(err)
	}
	f, _ := d.BeginFrame()
	f.Clear(glplot.Black)
	u := glplot.Uniforms{Transform: mgl.Ident3(), Color: glplot.White}
	if err := f.Draw(vb, glplot.TriangleStrip, p, u); err != nil {
		t.Fatal(err)
	}
	if err := d.EndFrame(f); err != nil {
		t.Fatal(err)
	}
	img := d.Image()
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	// the square covers pixels 5..14 on both axes
	if got := img.RGBAAt(7, 12); got != white {
		t.Errorf("inside pixel = %v, want white", got)
	}
	if got := img.RGBAAt(1, 1); got != black {
		t.Errorf("outside pixel = %v, want black", got)
	}
	if got := img.RGBAAt(18, 10); got != black {
		t.Errorf("outside pixel = %v, want black", got)
	}
	calls := d.DrawCalls()
	if len(calls) != 1 || calls[0] != (DrawCall{Topology: glplot.TriangleStrip, Vertices: 4}) {
		t.Errorf("DrawCalls() = %+v", calls)
	}
}

func TestTransformApplied(t *testing.T) {
	d := newDisplay(t, 20, 20)
	// a square around the origin of model space, moved to the right half
	vb, _ := d.NewVertexBuffer(glplot.NewRect(glplot.V(-1, -1), glplot.V(1, 1)).Vertices())
	p, _ := d.NewProgram(glplot.CanvasVertexShader, glplot.CanvasFragmentShader)
	vp, err := glplot.NewViewPort(glplot.NewInterval(-1, 1), glplot.NewInterval(-1, 1),
		glplot.ScreenRect{X: 0, Y: -1, Width: 1, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	f, _ := d.BeginFrame()
	f.Clear(glplot.Black)
	if err := f.Draw(vb, glplot.TriangleStrip, p, glplot.Uniforms{Transform: vp.Transform(), Color: glplot.White}); err != nil {
		t.Fatal(err)
	}
	d.EndFrame(f)
	img := d.Image()
	if got := img.RGBAAt(4, 6); got.R != 0 {
		t.Errorf("left half pixel = %v, want black", got)
	}
	if got := img.RGBAAt(14, 6); got.R != 255 {
		t.Errorf("right half pixel = %v, want white", got)
	}
}

func TestStrokeLineStrip(t *testing.T) {
	d := newDisplay(t, 21, 21)
	// horizontal line through the middle row
	vb, _ := d.NewVertexBuffer([]glplot.Vertex{glplot.V(-1, 0), glplot.V(0, 0), glplot.V(1, 0)})
	p, _ := d.NewProgram(glplot.CanvasVertexShader, glplot.CanvasFragmentShader)
	d.LineWidth = 3
	f, _ := d.BeginFrame()
	f.Clear(glplot.Black)
	if err := f.Draw(vb, glplot.LineStrip, p, glplot.Uniforms{Transform: mgl.Ident3(), Color: glplot.White}); err != nil {
		t.Fatal(err)
	}
	d.EndFrame(f)
	img := d.Image()
	if got := img.RGBAAt(5, 10); got.R == 0 {
		t.Errorf("pixel on the line = %v, want lit", got)
	}
	if got := img.RGBAAt(5, 2); got.R != 0 {
		t.Errorf("pixel off the line = %v, want black", got)
	}
}

func TestDrawErrors(t *testing.T) {
	d := newDisplay(t, 4, 4)
	vb, _ := d.NewVertexBuffer([]glplot.Vertex{glplot.V(0, 0), glplot.V(1, 1)})
	p, _ := d.NewProgram("vs", "fs")
	f, _ := d.BeginFrame()
	u := glplot.Uniforms{Transform: mgl.Ident3()}
	if err := f.Draw(vb, glplot.Topology(42), p, u); err == nil {
		t.Error("unknown topology accepted")
	}
	vb.Close()
	if err := f.Draw(vb, glplot.LineStrip, p, u); !errors.Is(err, glplot.ErrClosed) {
		t.Errorf("closed buffer: error = %v, want ErrClosed", err)
	}
	if _, err := d.BeginFrame(); err == nil {
		t.Error("nested BeginFrame succeeded")
	}
	if err := d.EndFrame(f); err != nil {
		t.Fatal(err)
	}
	if _, err := d.NewProgram("", "fs"); err == nil {
		t.Error("empty shader accepted")
	}
}

func TestVirtualClockAndEvents(t *testing.T) {
	d := newDisplay(t, 4, 4)
	d.Post(glplot.KeyEvent{Name: "q"})
	d.RequestClose()
	var got []glplot.Event
	d.WaitEvents(0.25, func(ev glplot.Event) { got = append(got, ev) })
	if d.Time() != 0.25 {
		t.Errorf("Time() = %g, want 0.25", d.Time())
	}
	if len(got) != 2 || got[0] != (glplot.KeyEvent{Name: "q"}) || got[1] != (glplot.CloseRequested{}) {
		t.Errorf("events = %#v", got)
	}
	d.WaitEvents(-1, func(glplot.Event) { t.Error("event delivered twice") })
	if d.Time() != 0.25 {
		t.Errorf("negative timeout moved the clock to %g", d.Time())
	}
}

func TestWritePNG(t *testing.T) {
	d := newDisplay(t, 8, 6)
	var buf bytes.Buffer
	if err := d.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("decoded size %v, want 8x6", b)
	}
}
