package glplot

import (
	"errors"
)

type fakeProgram struct {
	vs, fs string
	closed bool
}

func (p *fakeProgram) Close() error {
	p.closed = true
	return nil
}

type fakeBuffer struct {
	vertices []Vertex
	closed   bool
	closeErr error
}

func (b *fakeBuffer) Len() int { return len(b.vertices) }

func (b *fakeBuffer) Close() error {
	b.closed = true
	return b.closeErr
}

type call struct {
	clear    *Color
	topology Topology
	vertices int
	uniforms Uniforms
}

// recorder is a Display which records what it is asked to do.
type recorder struct {
	programs []*fakeProgram
	buffers  []*fakeBuffer
	// failBuffer makes the n-th NewVertexBuffer call fail (1 based).
	failBuffer  int
	failProgram bool
	// closeErr is returned by Close of every buffer created.
	closeErr error

	now    float64
	step   float64
	frames [][]call
	frame  *recordingFrame
	// events[i] is delivered after frame i.
	events  map[int][]Event
	waits   []float64
	endErrs map[int]error
}

var (
	errBackend = errors.New("backend failure")
	errRelease = errors.New("release failure")
)

func (r *recorder) NewProgram(vs, fs string) (Program, error) {
	if r.failProgram {
		return nil, errBackend
	}
	p := &fakeProgram{vs: vs, fs: fs}
	r.programs = append(r.programs, p)
	return p, nil
}

func (r *recorder) NewVertexBuffer(vertices []Vertex) (VertexBuffer, error) {
	if r.failBuffer > 0 && len(r.buffers)+1 == r.failBuffer {
		return nil, errBackend
	}
	b := &fakeBuffer{vertices: vertices, closeErr: r.closeErr}
	r.buffers = append(r.buffers, b)
	return b, nil
}

type recordingFrame struct {
	calls []call
}

func (f *recordingFrame) Clear(c Color) {
	f.calls = append(f.calls, call{clear: &c})
}

func (f *recordingFrame) Draw(vb VertexBuffer, topology Topology, p Program, u Uniforms) error {
	if vb.(*fakeBuffer).closed || p.(*fakeProgram).closed {
		return ErrClosed
	}
	f.calls = append(f.calls, call{topology: topology, vertices: vb.Len(), uniforms: u})
	return nil
}

func (r *recorder) BeginFrame() (Frame, error) {
	r.frame = &recordingFrame{}
	return r.frame, nil
}

func (r *recorder) EndFrame(f Frame) error {
	r.frames = append(r.frames, f.(*recordingFrame).calls)
	r.now += r.step
	return r.endErrs[len(r.frames)-1]
}

func (r *recorder) WaitEvents(timeout float64, handle func(Event)) {
	r.waits = append(r.waits, timeout)
	for _, ev := range r.events[len(r.frames)-1] {
		handle(ev)
	}
}

func (r *recorder) Time() float64 {
	return r.now
}
