package glplot

import (
	mgl "github.com/go-gl/mathgl/mgl32"
)

// Program is a compiled shader program owned by a backend.
type Program interface {
	Close() error
}

// VertexBuffer is vertex data uploaded to a backend.
type VertexBuffer interface {
	// Len returns the number of vertices in the buffer.
	Len() int
	Close() error
}

// Backend allocates drawing resources. Both constructors fail only when
// the backend cannot create the resource; such errors are not worth
// retrying.
type Backend interface {
	NewProgram(vertexShader, fragmentShader string) (Program, error)
	NewVertexBuffer(vertices []Vertex) (VertexBuffer, error)
}

// Uniforms is the uniform set passed along with every draw call.
//
// The vertex shader sees one vec2 "position" attribute and the mat3
// "transform" uniform, applied as transform * vec3(position, 1.0).
type Uniforms struct {
	Transform mgl.Mat3
	Color     Color
	Time      float32
}

// Frame is the render target of a single frame.
type Frame interface {
	Clear(c Color)
	Draw(vb VertexBuffer, topology Topology, program Program, uniforms Uniforms) error
}

// Event is an opaque event delivered by a Display.
type Event interface{}

// CloseRequested asks the render loop to stop.
type CloseRequested struct{}

// KeyEvent reports a pressed key, named like "a", "Escape" or "C-c".
type KeyEvent struct {
	Name string
}

// Display is a Backend with a presentation surface and an event source.
type Display interface {
	Backend
	BeginFrame() (Frame, error)
	// EndFrame presents the frame.
	EndFrame(f Frame) error
	// WaitEvents delivers pending events to handle, waiting at most
	// timeout seconds for one to arrive. A timeout <= 0 only polls.
	WaitEvents(timeout float64, handle func(Event))
	// Time returns seconds since the display was created.
	Time() float64
}
