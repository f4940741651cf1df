package lui

// --- Built-in HitShape types ---

// HitShape is a custom hit area in a widget's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Point
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Hit testing ---

// Contains reports whether the local point (x, y) falls in w's hit area:
// inside its bounds and, when set, inside its HitShape or HitTester area.
func (w *Widget) Contains(x, y float64) bool {
	if !w.LocalBounds().Contains(x, y) {
		return false
	}
	if w.hitShape != nil {
		return w.hitShape.Contains(x, y)
	}
	if ht, ok := w.owner.(HitTester); ok {
		return ht.HitTestLocal(x, y)
	}
	return true
}

// HitTest returns the topmost visible, interactive widget in w's subtree at
// the local point (x, y), or nil. Children are tested from the topmost down.
// A point outside w's bounds never hits w or its descendants.
func (w *Widget) HitTest(x, y float64) *Widget {
	if !w.visible || w.bounds.Empty() || !w.LocalBounds().Contains(x, y) {
		return nil
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i]
		if hit := c.HitTest(x-c.bounds.X, y-c.bounds.Y); hit != nil {
			return hit
		}
	}
	if w.interactive && w.Contains(x, y) {
		return w
	}
	return nil
}

// Obstructed reports whether the local point (x, y) of w is covered by a
// widget outside w's subtree.
func (w *Widget) Obstructed(x, y float64) bool {
	p := w.ToView(Point{x, y})
	hit := w.Root().HitTest(p.X, p.Y)
	return hit != nil && !isAncestor(w, hit)
}

// --- Pointer events ---

// PointerEvent carries pointer data to a widget. Pos is in the receiving
// widget's local coordinates.
type PointerEvent struct {
	Widget    *Widget
	Pos       Point
	ViewPos   Point
	Button    MouseButton
	Modifiers KeyModifiers
	// DeltaX and DeltaY are set for scroll events.
	DeltaX, DeltaY float64
}

// Inside reports whether the event position lies within the receiving
// widget's bounds.
func (e *PointerEvent) Inside() bool {
	return e.Widget != nil && e.Widget.LocalBounds().ContainsPoint(e.Pos)
}

// --- Per-view pointer state ---

type pointerState struct {
	down     bool
	button   MouseButton // button captured at press time
	start    Point
	last     Point
	hit      *Widget // topmost widget under the press
	captured *Widget // widget that accepted the press
	hover    *Widget
}

func (v *View) pointerEvent(w *Widget, p Point, ev Event) *PointerEvent {
	return &PointerEvent{
		Widget:    w,
		Pos:       w.FromView(p),
		ViewPos:   p,
		Button:    ev.Button,
		Modifiers: ev.Modifiers,
		DeltaX:    ev.DeltaX,
		DeltaY:    ev.DeltaY,
	}
}

// hitTest returns the widget under the view point p.
func (v *View) hitTest(p Point) *Widget {
	return v.root.HitTest(p.X, p.Y)
}

// pointerDown offers the press to the widget under the pointer and then to
// its ancestors until one accepts it.
func (v *View) pointerDown(ev Event) {
	p := Point{ev.X, ev.Y}
	ps := &v.ptr
	if ps.down {
		// Chorded presses are ignored until the first button is released.
		return
	}
	v.updateHover(p, ev)

	hit := v.hitTest(p)
	ps.down = true
	ps.button = ev.Button
	ps.start = p
	ps.last = p
	ps.hit = hit
	ps.captured = nil

	for w := hit; w != nil; w = w.parent {
		h, ok := w.owner.(PointerHandler)
		if !ok {
			continue
		}
		pe := v.pointerEvent(w, p, ev)
		accepted := false
		v.main.rep.call("lui.PointerHandler.PointerDown", func() { accepted = h.PointerDown(pe) })
		if accepted {
			ps.captured = w
			break
		}
	}
	v.emit(EventPointerDown, hit, p, ev)
}

// pointerMove routes motion to the capturing widget while a press is held,
// otherwise to the hovered widget.
func (v *View) pointerMove(ev Event) {
	p := Point{ev.X, ev.Y}
	ps := &v.ptr
	ps.last = p

	target := ps.captured
	if !ps.down {
		v.updateHover(p, ev)
		target = ps.hover
	}
	if target != nil {
		if h, ok := target.owner.(PointerHandler); ok {
			pe := v.pointerEvent(target, p, ev)
			v.main.rep.call("lui.PointerHandler.PointerMove", func() { h.PointerMove(pe) })
		}
	}
	v.emit(EventPointerMove, target, p, ev)
}

// pointerUp ends the current press and releases capture.
func (v *View) pointerUp(ev Event) {
	p := Point{ev.X, ev.Y}
	ps := &v.ptr
	if !ps.down || ev.Button != ps.button {
		return
	}
	target := ps.captured
	ps.down = false
	ps.captured = nil
	ps.hit = nil
	ps.last = p

	if target != nil {
		if h, ok := target.owner.(PointerHandler); ok {
			pe := v.pointerEvent(target, p, ev)
			v.main.rep.call("lui.PointerHandler.PointerUp", func() { h.PointerUp(pe) })
		}
	}
	v.emit(EventPointerUp, target, p, ev)
	v.updateHover(p, ev)
}

// pointerLeave handles the pointer leaving the window.
func (v *View) pointerLeave(ev Event) {
	if v.ptr.down {
		return
	}
	v.setHover(nil, v.ptr.last, ev)
}

// scroll offers a wheel event to the widget under the pointer and then to
// its ancestors until one handles it.
func (v *View) scroll(ev Event) {
	p := Point{ev.X, ev.Y}
	hit := v.hitTest(p)
	for w := hit; w != nil; w = w.parent {
		h, ok := w.owner.(ScrollHandler)
		if !ok {
			continue
		}
		pe := v.pointerEvent(w, p, ev)
		handled := false
		v.main.rep.call("lui.ScrollHandler.Scroll", func() { handled = h.Scroll(pe) })
		if handled {
			break
		}
	}
	v.emit(EventScroll, hit, p, ev)
}

// updateHover fires leave and enter when the widget under p changes.
// Hover is frozen while a press is held.
func (v *View) updateHover(p Point, ev Event) {
	if v.ptr.down {
		return
	}
	v.setHover(v.hitTest(p), p, ev)
}

func (v *View) setHover(w *Widget, p Point, ev Event) {
	ps := &v.ptr
	old := ps.hover
	if w == old {
		return
	}
	ps.hover = w
	if old != nil {
		if h, ok := old.owner.(HoverHandler); ok {
			pe := v.pointerEvent(old, p, ev)
			v.main.rep.call("lui.HoverHandler.PointerLeave", func() { h.PointerLeave(pe) })
		}
		v.emit(EventPointerLeave, old, p, ev)
	}
	if w != nil {
		if h, ok := w.owner.(HoverHandler); ok {
			pe := v.pointerEvent(w, p, ev)
			v.main.rep.call("lui.HoverHandler.PointerEnter", func() { h.PointerEnter(pe) })
		}
		v.emit(EventPointerEnter, w, p, ev)
	}
}

// forget drops pointer state referring to w's subtree. A captured press is
// cancelled; the matching release is swallowed.
func (v *View) forget(w *Widget) {
	ps := &v.ptr
	if ps.captured != nil && isAncestor(w, ps.captured) {
		c := ps.captured
		ps.captured = nil
		if pc, ok := c.owner.(PointerCanceler); ok {
			v.main.rep.call("lui.PointerCanceler.PointerCancel", pc.PointerCancel)
		}
	}
	if ps.hit != nil && isAncestor(w, ps.hit) {
		ps.hit = nil
	}
	if ps.hover != nil && isAncestor(w, ps.hover) {
		old := ps.hover
		ps.hover = nil
		if h, ok := old.owner.(HoverHandler); ok {
			pe := &PointerEvent{Widget: old, Pos: old.FromView(ps.last), ViewPos: ps.last}
			v.main.rep.call("lui.HoverHandler.PointerLeave", func() { h.PointerLeave(pe) })
		}
	}
}

// CapturedWidget returns the widget holding the current press, or nil.
func (v *View) CapturedWidget() *Widget { return v.ptr.captured }

// HoveredWidget returns the widget under the pointer, or nil.
func (v *View) HoveredWidget() *Widget { return v.ptr.hover }
