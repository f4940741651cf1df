package lui

import (
	"errors"

	"golang.org/x/image/font"
)

// --- Fake backend ---

type fakeBackend struct {
	windows []*fakeWindow
	queue   []Event
	fail    error
	nextID  WindowID
}

func (b *fakeBackend) CreateWindow(spec WindowSpec) (Window, error) {
	if b.fail != nil {
		return nil, b.fail
	}
	b.nextID++
	w := &fakeWindow{id: b.nextID, spec: spec, visible: spec.Visible, w: spec.Width, h: spec.Height}
	b.windows = append(b.windows, w)
	return w, nil
}

func (b *fakeBackend) PollEvents(buf []Event) []Event {
	buf = append(buf, b.queue...)
	b.queue = b.queue[:0]
	return buf
}

func (b *fakeBackend) push(ev Event) { b.queue = append(b.queue, ev) }

func (b *fakeBackend) open() int {
	n := 0
	for _, w := range b.windows {
		if !w.closed {
			n++
		}
	}
	return n
}

type fakeWindow struct {
	id        WindowID
	spec      WindowSpec
	title     string
	visible   bool
	w, h      int
	x, y      int
	closed    bool
	paints    int
	regions   []Rect
	surface   fakeSurface
	failPaint error
}

func (w *fakeWindow) ID() WindowID              { return w.id }
func (w *fakeWindow) Handle() uintptr           { return uintptr(w.id) }
func (w *fakeWindow) SetTitle(title string)     { w.title = title }
func (w *fakeWindow) SetVisible(visible bool)   { w.visible = visible }
func (w *fakeWindow) SetSize(width, height int) { w.w, w.h = width, height }
func (w *fakeWindow) Size() (int, int)          { return w.w, w.h }
func (w *fakeWindow) SetPosition(x, y int)      { w.x, w.y = x, y }
func (w *fakeWindow) ScaleFactor() float64      { return 1 }

func (w *fakeWindow) Paint(region Rect, draw func(Surface)) error {
	if w.closed {
		return errors.New("window closed")
	}
	if w.failPaint != nil {
		return w.failPaint
	}
	w.paints++
	w.regions = append(w.regions, region)
	w.surface.ops = w.surface.ops[:0]
	draw(&w.surface)
	return nil
}

func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}

type fakeOp struct {
	kind  string // "clip", "fill", "text", "fillpath", "strokepath"
	rect  Rect   // path ops record the path bounds
	color Color
	text  string
	width float64
}

type fakeSurface struct {
	ops []fakeOp
}

func (s *fakeSurface) SetClip(r Rect) { s.ops = append(s.ops, fakeOp{kind: "clip", rect: r}) }

func (s *fakeSurface) FillRect(r Rect, c Color) {
	s.ops = append(s.ops, fakeOp{kind: "fill", rect: r, color: c})
}

func (s *fakeSurface) DrawText(_ font.Face, text string, x, y float64, c Color) {
	s.ops = append(s.ops, fakeOp{kind: "text", rect: Rect{X: x, Y: y}, color: c, text: text})
}

func (s *fakeSurface) FillPath(p *Path, c Color) {
	s.ops = append(s.ops, fakeOp{kind: "fillpath", rect: p.Bounds(), color: c})
}

func (s *fakeSurface) StrokePath(p *Path, width float64, c Color) {
	s.ops = append(s.ops, fakeOp{kind: "strokepath", rect: p.Bounds(), color: c, width: width})
}

func (s *fakeSurface) fills() []fakeOp {
	var out []fakeOp
	for _, op := range s.ops {
		if op.kind == "fill" {
			out = append(out, op)
		}
	}
	return out
}

// --- Fake error handler ---

type recordingHandler struct {
	errors []*Error
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *Error)      { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

// --- Event sink ---

type recordingSink struct {
	events []InteractionEvent
}

func (s *recordingSink) EmitEvent(e InteractionEvent) { s.events = append(s.events, e) }

func (s *recordingSink) ofType(t EventType) []InteractionEvent {
	var out []InteractionEvent
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// --- Setup helpers ---

func newTestMain() (*Main, *fakeBackend, *recordingHandler) {
	b := &fakeBackend{}
	m := NewMain(ModeProgram, b)
	h := &recordingHandler{}
	m.SetErrorHandler(h)
	return m, b, h
}

func newRoot(name string, w, h float64) *Widget {
	r := NewWidget()
	r.SetName(name)
	r.SetSize(w, h)
	return r
}

func elevate(t testingT, m *Main, root Component) *View {
	t.Helper()
	v, err := m.Elevate(root, ViewNone)
	if err != nil {
		t.Fatalf("Elevate: %v", err)
	}
	return v
}

// testingT is the subset of testing.TB used by helpers.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

func press(b *fakeBackend, v *View, x, y float64) {
	b.push(Event{Type: EventPointerDown, Window: v.Window().ID(), X: x, Y: y, Button: MouseButtonLeft})
}

func move(b *fakeBackend, v *View, x, y float64) {
	b.push(Event{Type: EventPointerMove, Window: v.Window().ID(), X: x, Y: y})
}

func release(b *fakeBackend, v *View, x, y float64) {
	b.push(Event{Type: EventPointerUp, Window: v.Window().ID(), X: x, Y: y, Button: MouseButtonLeft})
}

func loop(t testingT, m *Main) {
	t.Helper()
	if err := m.Loop(1.0 / 60.0); err != nil {
		t.Fatalf("Loop: %v", err)
	}
}
