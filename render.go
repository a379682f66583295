package glplot

import (
	"fmt"
)

// DefaultFPS is the frame rate a Loop paces itself to when FPS is zero.
const DefaultFPS = 30

// Loop draws its layers once per frame until the display reports
// CloseRequested, a layer fails, or MaxFrames frames have been presented.
type Loop struct {
	Display Display
	// Layers are drawn in order, each with the same RenderContext.
	Layers   []Layer
	ViewPort ViewPort
	// FPS caps the frame rate; negative means no cap.
	FPS int
	// MaxFrames stops the loop after that many frames when positive.
	MaxFrames int
	// OnEvent sees every event. It runs between frames, so it may change
	// ViewPort or call Stop.
	OnEvent func(l *Loop, ev Event)

	running bool
	frames  int
}

// Render is shorthand for running a Loop with default pacing.
func Render(d Display, layers []Layer, vp ViewPort) error {
	l := &Loop{Display: d, Layers: layers, ViewPort: vp}
	return l.Run()
}

// Stop makes Run return after the current frame.
func (l *Loop) Stop() {
	l.running = false
}

// Frames returns the number of frames presented so far.
func (l *Loop) Frames() int {
	return l.frames
}

func (l *Loop) frameSeconds() float64 {
	switch {
	case l.FPS < 0:
		return 0
	case l.FPS == 0:
		return 1.0 / DefaultFPS
	default:
		return 1.0 / float64(l.FPS)
	}
}

// Run blocks until the loop ends. It returns nil after a close request.
func (l *Loop) Run() error {
	d := l.Display
	l.running = true
	l.frames = 0
	start := d.Time()
	Logger().Info("render loop started", "layers", len(l.Layers))
	for l.running {
		frameStart := d.Time()
		rc := RenderContext{
			Time:     float32(frameStart - start),
			ViewPort: l.ViewPort,
		}
		f, err := d.BeginFrame()
		if err != nil {
			return fmt.Errorf("begin frame: %w", err)
		}
		for i, layer := range l.Layers {
			if err := layer.Draw(f, rc); err != nil {
				return fmt.Errorf("layer %d: %w", i, err)
			}
		}
		if err := d.EndFrame(f); err != nil {
			return fmt.Errorf("end frame: %w", err)
		}
		l.frames++
		if l.MaxFrames > 0 && l.frames >= l.MaxFrames {
			l.running = false
		}
		remaining := l.frameSeconds() - (d.Time() - frameStart)
		d.WaitEvents(remaining, l.handleEvent)
	}
	Logger().Info("render loop stopped", "frames", l.frames)
	return nil
}

func (l *Loop) handleEvent(ev Event) {
	if _, ok := ev.(CloseRequested); ok {
		l.running = false
	}
	if l.OnEvent != nil {
		l.OnEvent(l, ev)
	}
}
