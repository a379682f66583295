package glplot

import (
	"errors"
	"testing"
)

func TestClearColorPassesAlpha(t *testing.T) {
	f := &recordingFrame{}
	bg := ClearColor{Color: Color{0.1, 0.2, 0.3, 0.4}}
	if err := bg.Draw(f, RenderContext{}); err != nil {
		t.Fatal(err)
	}
	if len(f.calls) != 1 || f.calls[0].clear == nil {
		t.Fatalf("calls = %+v, want one clear", f.calls)
	}
	if got := *f.calls[0].clear; got != bg.Color {
		t.Errorf("cleared to %v, want %v", got, bg.Color)
	}
}

func TestLoopStopsOnClose(t *testing.T) {
	r := &recorder{
		step:   0.5,
		events: map[int][]Event{2: {KeyEvent{Name: "a"}, CloseRequested{}}},
	}
	var contexts []RenderContext
	probe := LayerFunc(func(f Frame, rc RenderContext) error {
		contexts = append(contexts, rc)
		return nil
	})
	vp, err := NewViewPort(NewInterval(0, 1), NewInterval(0, 1), DefaultScreen)
	if err != nil {
		t.Fatal(err)
	}
	var seen []Event
	l := &Loop{
		Display:  r,
		Layers:   []Layer{ClearColor{Color: Black}, probe, probe},
		ViewPort: vp,
		OnEvent:  func(l *Loop, ev Event) { seen = append(seen, ev) },
	}
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if l.Frames() != 3 || len(r.frames) != 3 {
		t.Fatalf("rendered %d frames, want 3", len(r.frames))
	}
	if len(seen) != 2 {
		t.Errorf("OnEvent saw %d events, want 2", len(seen))
	}
	for i, frame := range r.frames {
		if len(frame) != 1 || frame[0].clear == nil {
			t.Errorf("frame %d: calls = %+v, want a single clear", i, frame)
		}
	}
	// both probes of a frame get the same context
	if len(contexts) != 6 {
		t.Fatalf("probes ran %d times, want 6", len(contexts))
	}
	for i := 0; i < len(contexts); i += 2 {
		if contexts[i] != contexts[i+1] {
			t.Errorf("frame %d: layers saw different contexts %+v and %+v", i/2, contexts[i], contexts[i+1])
		}
		if contexts[i].ViewPort != vp {
			t.Errorf("frame %d: wrong viewport", i/2)
		}
		if want := float32(i/2) * 0.5; contexts[i].Time != want {
			t.Errorf("frame %d: time = %g, want %g", i/2, contexts[i].Time, want)
		}
	}
}

func TestLoopMaxFramesAndPacing(t *testing.T) {
	r := &recorder{step: 0.01}
	l := &Loop{Display: r, ViewPort: IdentityViewPort(), FPS: 20, MaxFrames: 4}
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if len(r.frames) != 4 {
		t.Fatalf("rendered %d frames, want 4", len(r.frames))
	}
	for i, w := range r.waits {
		if w < 0.0399 || w > 0.0401 {
			t.Errorf("wait %d = %g, want 0.04", i, w)
		}
	}

	r = &recorder{}
	l = &Loop{Display: r, FPS: -1, MaxFrames: 2}
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	for i, w := range r.waits {
		if w > 0 {
			t.Errorf("uncapped wait %d = %g, want <= 0", i, w)
		}
	}
}

func TestLoopViewPortChangesBetweenFrames(t *testing.T) {
	r := &recorder{events: map[int][]Event{0: {KeyEvent{Name: "z"}}}}
	a := IdentityViewPort()
	b, err := NewViewPort(NewInterval(0, 4), NewInterval(0, 4), DefaultScreen)
	if err != nil {
		t.Fatal(err)
	}
	var got []ViewPort
	l := &Loop{
		Display:   r,
		Layers:    []Layer{LayerFunc(func(f Frame, rc RenderContext) error { got = append(got, rc.ViewPort); return nil })},
		ViewPort:  a,
		MaxFrames: 2,
		OnEvent: func(l *Loop, ev Event) {
			if k, ok := ev.(KeyEvent); ok && k.Name == "z" {
				l.ViewPort = b
			}
		},
	}
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("viewports = %v, want [%v %v]", got, a, b)
	}
}

func TestLoopLayerError(t *testing.T) {
	boom := errors.New("boom")
	r := &recorder{}
	l := &Loop{
		Display: r,
		Layers: []Layer{
			ClearColor{Color: White},
			LayerFunc(func(Frame, RenderContext) error { return boom }),
		},
		MaxFrames: 10,
	}
	if err := l.Run(); !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, want boom", err)
	}
	if len(r.frames) != 0 {
		t.Errorf("frame presented despite layer failure")
	}

	r = &recorder{endErrs: map[int]error{0: boom}}
	if err := Render(r, nil, IdentityViewPort()); !errors.Is(err, boom) {
		t.Errorf("Render() = %v, want boom from EndFrame", err)
	}
}

func TestLoopStop(t *testing.T) {
	r := &recorder{}
	l := &Loop{Display: r}
	l.Layers = []Layer{LayerFunc(func(Frame, RenderContext) error {
		l.Stop()
		return nil
	})}
	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if l.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", l.Frames())
	}
}
