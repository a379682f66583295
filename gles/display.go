// Package gles draws glplot scenes with OpenGL ES 2 in a GLFW window.
//
// GL calls must come from the thread that created the window; the
// package locks the main goroutine to its OS thread at init.
package gles

import (
	"errors"
	"fmt"
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/cellux/glplot"
)

func init() {
	runtime.LockOSThread()
}

// Size is a framebuffer size in pixels.
type Size struct {
	X, Y int
}

// Options configure the window of a Display.
type Options struct {
	Title  string
	Width  int
	Height int
	// Fullscreen opens the window on the primary monitor in its current
	// video mode, ignoring Width and Height.
	Fullscreen bool
}

// Display is a GLFW window with a current OpenGL ES 2 context. It
// implements glplot.Display.
type Display struct {
	window *glfw.Window
	fbSize Size
	events []glplot.Event
}

// NewDisplay creates the window and makes its context current.
func NewDisplay(opts Options) (*Display, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}
	width, height := opts.Width, opts.Height
	var monitor *glfw.Monitor
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor == nil {
			glfw.Terminate()
			return nil, fmt.Errorf("no monitors found")
		}
		mode := monitor.GetVideoMode()
		if mode == nil {
			glfw.Terminate()
			return nil, fmt.Errorf("video mode cannot be determined")
		}
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width, height = mode.Width, mode.Height
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.AutoIconify, glfw.False)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	window, err := glfw.CreateWindow(width, height, opts.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	d := &Display{window: window}
	framebufferSizeCallback := func(w *glfw.Window, width, height int) {
		d.fbSize = Size{X: width, Y: height}
		gl.Viewport(0, 0, int32(width), int32(height))
		glplot.Logger().Debug("framebuffer size", "width", width, "height", height)
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	window.SetCloseCallback(func(w *glfw.Window) {
		d.events = append(d.events, glplot.CloseRequested{})
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		if name := keyName(key, scancode, mods); name != "" {
			d.events = append(d.events, glplot.KeyEvent{Name: name})
		}
	})
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}
	fbWidth, fbHeight := window.GetFramebufferSize()
	framebufferSizeCallback(window, fbWidth, fbHeight)
	glplot.Logger().Info("display opened",
		"title", opts.Title,
		"width", fbWidth,
		"height", fbHeight,
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return d, nil
}

// FramebufferSize returns the current size of the drawable area.
func (d *Display) FramebufferSize() Size {
	return d.fbSize
}

func (d *Display) NewProgram(vertexShader, fragmentShader string) (glplot.Program, error) {
	return CreateProgram(vertexShader, fragmentShader)
}

func (d *Display) NewVertexBuffer(vertices []glplot.Vertex) (glplot.VertexBuffer, error) {
	return CreateVertexBuffer(vertices)
}

func (d *Display) BeginFrame() (glplot.Frame, error) {
	if d.window == nil {
		return nil, glplot.ErrClosed
	}
	return frame{}, nil
}

func (d *Display) EndFrame(glplot.Frame) error {
	if d.window == nil {
		return glplot.ErrClosed
	}
	d.window.SwapBuffers()
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gles: error after frame: 0x%x", code)
	}
	return nil
}

func (d *Display) WaitEvents(timeout float64, handle func(glplot.Event)) {
	if timeout > 0 {
		glfw.WaitEventsTimeout(timeout)
	} else {
		glfw.PollEvents()
	}
	events := d.events
	d.events = nil
	for _, ev := range events {
		handle(ev)
	}
}

func (d *Display) Time() float64 {
	return glfw.GetTime()
}

// Close destroys the window and terminates GLFW. Resources created
// through the display must be closed before.
func (d *Display) Close() error {
	if d.window == nil {
		return errors.New("gles: display already closed")
	}
	d.window.Destroy()
	d.window = nil
	glfw.Terminate()
	glplot.Logger().Info("display closed")
	return nil
}
