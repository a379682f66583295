package glplot

// RenderContext is the read-only state shared by all layers of a frame.
type RenderContext struct {
	// Time is the number of seconds since the render loop started.
	Time float32
	// ViewPort is the active model to screen mapping.
	ViewPort ViewPort
}

// Layer is a self-contained drawable unit of a frame. A layer may use any
// part of the context, or none of it.
type Layer interface {
	Draw(f Frame, rc RenderContext) error
}

// ClearColor is a layer which fills the whole frame with one color.
type ClearColor struct {
	Color Color
}

func (c ClearColor) Draw(f Frame, _ RenderContext) error {
	f.Clear(c.Color)
	return nil
}

// LayerFunc adapts a function to the Layer interface.
type LayerFunc func(f Frame, rc RenderContext) error

func (fn LayerFunc) Draw(f Frame, rc RenderContext) error {
	return fn(f, rc)
}
