package lui

import (
	"testing"

	"github.com/gonutz/check"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 30, true},
		{9, 15, false},
		{31, 15, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 10}
	if !c.Contains(50, 50) || !c.Contains(60, 50) {
		t.Error("center and edge should be inside")
	}
	if c.Contains(58, 58) {
		t.Error("(58, 58) is outside radius 10")
	}
}

func TestHitPolygonContains(t *testing.T) {
	tri := HitPolygon{Points: []Point{{0, 0}, {100, 0}, {50, 100}}}
	if !tri.Contains(50, 30) {
		t.Error("(50, 30) should be inside")
	}
	if tri.Contains(5, 90) {
		t.Error("(5, 90) should be outside")
	}
	reversed := HitPolygon{Points: []Point{{50, 100}, {100, 0}, {0, 0}}}
	if !reversed.Contains(50, 30) {
		t.Error("winding order should not matter")
	}
	if (HitPolygon{Points: []Point{{0, 0}, {1, 1}}}).Contains(0, 0) {
		t.Error("degenerate polygon should contain nothing")
	}
}

// --- Hit test traversal tests ---

func hitTree() (root, a, b, nested *Widget) {
	root = newRoot("root", 200, 200)
	a = NewWidget()
	a.SetName("a")
	a.SetBounds(0, 0, 100, 100)
	b = NewWidget()
	b.SetName("b")
	b.SetBounds(50, 50, 100, 100)
	nested = NewWidget()
	nested.SetName("nested")
	nested.SetBounds(10, 10, 20, 20)
	root.Add(a)
	root.Add(b)
	b.Add(nested)
	return
}

func TestHitTest(t *testing.T) {
	root, a, b, nested := hitTree()
	tests := []struct {
		name string
		x, y float64
		want *Widget
	}{
		{"a only", 10, 10, a},
		{"overlap goes to topmost", 95, 95, b},
		{"nested", 65, 65, nested},
		{"root background", 190, 10, root},
		{"right edge is outside", 200, 10, nil},
		{"outside", -1, 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := root.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, want %v", tt.x, tt.y, name(got), name(tt.want))
			}
		})
	}
}

func name(w *Widget) string {
	if w == nil {
		return "<nil>"
	}
	return w.Name()
}

func TestHitTestSkipsHidden(t *testing.T) {
	root, a, b, _ := hitTree()
	b.SetVisible(false)
	if got := root.HitTest(75, 75); got != a {
		t.Errorf("got %s, want a", name(got))
	}
}

func TestHitTestNonInteractivePassesThrough(t *testing.T) {
	root, a, b, nested := hitTree()
	b.SetInteractive(false)
	if got := root.HitTest(95, 95); got != a {
		t.Errorf("got %s, want a", name(got))
	}
	if got := root.HitTest(65, 65); got != nested {
		t.Errorf("children of a non-interactive widget should be hit, got %s", name(got))
	}
}

func TestHitTestChildOutsideParent(t *testing.T) {
	root := newRoot("root", 100, 100)
	p := NewWidget()
	p.SetBounds(0, 0, 50, 50)
	c := NewWidget()
	c.SetBounds(40, 40, 50, 50)
	root.Add(p)
	p.Add(c)
	if got := root.HitTest(70, 70); got != root {
		t.Errorf("points outside the parent must not reach its children, got %s", name(got))
	}
}

func TestHitTestZeroArea(t *testing.T) {
	root := newRoot("root", 100, 100)
	z := NewWidget()
	z.SetBounds(10, 10, 0, 0)
	root.Add(z)
	if got := root.HitTest(10, 10); got != root {
		t.Errorf("zero-area widget should never be hit, got %s", name(got))
	}
}

func TestHitTestWithShape(t *testing.T) {
	root := newRoot("root", 100, 100)
	c := NewWidget()
	c.SetBounds(0, 0, 40, 40)
	c.SetHitShape(HitCircle{CenterX: 20, CenterY: 20, Radius: 10})
	root.Add(c)
	if root.HitTest(20, 20) != c {
		t.Error("center should hit the circle")
	}
	if root.HitTest(2, 2) != root {
		t.Error("corner should fall through to root")
	}
}

func TestObstructed(t *testing.T) {
	_, a, _, _ := hitTree()
	check.Eq(t, a.Obstructed(10, 10), false)
	check.Eq(t, a.Obstructed(75, 75), true)
}

// --- Pointer dispatch ---

type recorder struct {
	*Widget
	accept bool
	log    []string
	pos    []Point
}

func newRecorder(name string, accept bool) *recorder {
	p := &recorder{accept: accept}
	p.Widget = NewWidgetFor(p)
	p.SetName(name)
	return p
}

func (p *recorder) PointerDown(ev *PointerEvent) bool {
	p.log = append(p.log, "down")
	p.pos = append(p.pos, ev.Pos)
	return p.accept
}

func (p *recorder) PointerMove(ev *PointerEvent) {
	p.log = append(p.log, "move")
	p.pos = append(p.pos, ev.Pos)
}

func (p *recorder) PointerUp(ev *PointerEvent) {
	p.log = append(p.log, "up")
	p.pos = append(p.pos, ev.Pos)
}

func (p *recorder) PointerEnter(*PointerEvent) { p.log = append(p.log, "enter") }
func (p *recorder) PointerLeave(*PointerEvent) { p.log = append(p.log, "leave") }
func (p *recorder) PointerCancel()             { p.log = append(p.log, "cancel") }

func (p *recorder) Scroll(ev *PointerEvent) bool {
	p.log = append(p.log, "scroll")
	return p.accept
}

func TestPointerCapture(t *testing.T) {
	m, b, _ := newTestMain()
	root := newRoot("root", 200, 200)
	p := newRecorder("p", true)
	p.SetBounds(10, 10, 50, 50)
	root.Add(p)
	v := elevate(t, m, root)

	press(b, v, 20, 20)
	move(b, v, 150, 150)
	release(b, v, 150, 150)
	loop(t, m)

	check.Eq(t, p.log, []string{"enter", "down", "move", "up", "leave"})
	check.Eq(t, p.pos, []Point{{10, 10}, {140, 140}, {140, 140}})
	if v.CapturedWidget() != nil {
		t.Error("capture should be released")
	}
}

func TestPointerDownBubbles(t *testing.T) {
	m, b, _ := newTestMain()
	root := newRoot("root", 200, 200)
	outer := newRecorder("outer", true)
	outer.SetBounds(0, 0, 100, 100)
	inner := newRecorder("inner", false)
	inner.SetBounds(10, 10, 20, 20)
	root.Add(outer)
	outer.Add(inner)
	v := elevate(t, m, root)

	press(b, v, 15, 15)
	loop(t, m)
	if v.CapturedWidget() != outer.Widget {
		t.Errorf("captured = %s, want outer", name(v.CapturedWidget()))
	}
	check.Eq(t, inner.log, []string{"enter", "down"})
	check.Eq(t, outer.log, []string{"down"})
}

func TestChordedPressIgnored(t *testing.T) {
	m, b, _ := newTestMain()
	root := newRoot("root", 200, 200)
	p := newRecorder("p", true)
	p.SetBounds(0, 0, 100, 100)
	root.Add(p)
	v := elevate(t, m, root)

	press(b, v, 10, 10)
	b.push(Event{Type: EventPointerDown, Window: v.Window().ID(), X: 10, Y: 10, Button: MouseButtonRight})
	b.push(Event{Type: EventPointerUp, Window: v.Window().ID(), X: 10, Y: 10, Button: MouseButtonRight})
	release(b, v, 10, 10)
	loop(t, m)
	check.Eq(t, p.log, []string{"enter", "down", "up"})
}

func TestHoverEnterLeave(t *testing.T) {
	m, b, _ := newTestMain()
	root := newRoot("root", 200, 200)
	a := newRecorder("a", false)
	a.SetBounds(0, 0, 50, 50)
	c := newRecorder("c", false)
	c.SetBounds(100, 0, 50, 50)
	root.Add(a)
	root.Add(c)
	v := elevate(t, m, root)

	move(b, v, 10, 10)
	move(b, v, 20, 20)
	move(b, v, 110, 10)
	b.push(Event{Type: EventPointerLeave, Window: v.Window().ID()})
	loop(t, m)

	check.Eq(t, a.log, []string{"enter", "move", "move", "leave"})
	check.Eq(t, c.log, []string{"enter", "move", "leave"})
	if v.HoveredWidget() != nil {
		t.Error("hover should be cleared after the pointer leaves the window")
	}
}

func TestScrollBubbles(t *testing.T) {
	m, b, _ := newTestMain()
	root := newRoot("root", 200, 200)
	outer := newRecorder("outer", true)
	outer.SetBounds(0, 0, 100, 100)
	inner := newRecorder("inner", false)
	inner.SetBounds(0, 0, 50, 50)
	root.Add(outer)
	outer.Add(inner)
	v := elevate(t, m, root)

	b.push(Event{Type: EventScroll, Window: v.Window().ID(), X: 10, Y: 10, DeltaY: 1})
	loop(t, m)
	check.Eq(t, inner.log, []string{"scroll"})
	check.Eq(t, outer.log, []string{"scroll"})
}

func TestHideCancelsCapture(t *testing.T) {
	m, b, _ := newTestMain()
	root := newRoot("root", 200, 200)
	p := newRecorder("p", true)
	p.SetBounds(0, 0, 100, 100)
	root.Add(p)
	v := elevate(t, m, root)

	press(b, v, 10, 10)
	loop(t, m)
	p.SetVisible(false)
	release(b, v, 10, 10)
	loop(t, m)

	check.Eq(t, p.log, []string{"enter", "down", "cancel", "leave"})
	if v.CapturedWidget() != nil || v.HoveredWidget() != root {
		t.Error("pointer state should not refer to a hidden widget")
	}
}

func TestRemoveCancelsCapture(t *testing.T) {
	m, b, _ := newTestMain()
	root := newRoot("root", 200, 200)
	p := newRecorder("p", true)
	p.SetBounds(0, 0, 100, 100)
	root.Add(p)
	v := elevate(t, m, root)

	press(b, v, 10, 10)
	loop(t, m)
	p.RemoveFromParent()
	check.Eq(t, p.log, []string{"enter", "down", "cancel", "leave"})
	if v.CapturedWidget() != nil {
		t.Error("capture should be cleared")
	}
}

func TestPanickingHandlerIsolated(t *testing.T) {
	m, b, h := newTestMain()
	root := newRoot("root", 200, 200)
	bad := NewWidget()
	bad.SetBounds(0, 0, 50, 50)
	root.Add(bad)
	good := newRecorder("good", true)
	good.SetBounds(100, 0, 50, 50)
	root.Add(good)
	bad.SetPainter(func(*Graphics) { panic("boom") })
	v := elevate(t, m, root)

	press(b, v, 110, 10)
	release(b, v, 110, 10)
	loop(t, m)

	if len(h.panics) != 1 || h.panics[0].Op != "lui.Widget.Paint" {
		t.Fatalf("panics = %v, want one paint panic", h.panics)
	}
	check.Eq(t, good.log, []string{"enter", "down", "up"})
	if !m.Running() {
		t.Error("a panicking callback must not stop the loop")
	}
}

// --- Event sink ---

func TestEventSinkReceivesInteractions(t *testing.T) {
	m, b, _ := newTestMain()
	sink := &recordingSink{}
	m.SetEventSink(sink)
	root := newRoot("root", 200, 200)
	p := newRecorder("target", true)
	p.SetBounds(10, 20, 50, 50)
	root.Add(p)
	v := elevate(t, m, root)

	press(b, v, 15, 25)
	loop(t, m)

	downs := sink.ofType(EventPointerDown)
	if len(downs) != 1 {
		t.Fatalf("got %d pointer-down events, want 1", len(downs))
	}
	e := downs[0]
	check.Eq(t, e.WidgetID, p.ID())
	check.Eq(t, e.WidgetName, "target")
	check.Eq(t, []float64{e.ViewX, e.ViewY, e.LocalX, e.LocalY}, []float64{15, 25, 5, 5})
	check.Eq(t, e.Window, v.Window().ID())
	check.Eq(t, len(sink.ofType(EventPointerEnter)), 1)
}
