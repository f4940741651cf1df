package lui

import "strings"

// ViewFlags control how a View's window is created.
type ViewFlags uint32

const (
	// ViewResizable lets the user resize the window; the root widget follows.
	ViewResizable ViewFlags = 1 << iota
	// ViewBorderless creates a window without decorations.
	ViewBorderless
	// ViewAlwaysOnTop keeps the window above others.
	ViewAlwaysOnTop

	// ViewNone requests a plain, fixed-size window.
	ViewNone ViewFlags = 0

	viewFlagsMask = ViewResizable | ViewBorderless | ViewAlwaysOnTop
)

func (f ViewFlags) String() string {
	if f == ViewNone {
		return "none"
	}
	var parts []string
	if f&ViewResizable != 0 {
		parts = append(parts, "resizable")
	}
	if f&ViewBorderless != 0 {
		parts = append(parts, "borderless")
	}
	if f&ViewAlwaysOnTop != 0 {
		parts = append(parts, "always-on-top")
	}
	if f&^viewFlagsMask != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// DefaultBackground is the color a View clears to before painting its tree.
var DefaultBackground = RGB(0x20, 0x22, 0x25)

// View binds one root widget to one native window. Views are created by
// Main.Elevate and live until closed by the application, the user, or
// disposal of the root.
type View struct {
	main   *Main
	root   *Widget
	window Window
	flags  ViewFlags

	background Color
	dirty      Rect
	ptr        pointerState
	closed     bool
}

func newView(m *Main, root *Widget, win Window, flags ViewFlags) *View {
	return &View{
		main:       m,
		root:       root,
		window:     win,
		flags:      flags,
		background: DefaultBackground,
	}
}

// Root returns the elevated root widget.
func (v *View) Root() *Widget { return v.root }

// Window returns the native window.
func (v *View) Window() Window { return v.window }

// Main returns the owning context.
func (v *View) Main() *Main { return v.main }

// Flags returns the creation flags.
func (v *View) Flags() ViewFlags { return v.flags }

// Closed reports whether the View has been closed.
func (v *View) Closed() bool { return v.closed }

// Size returns the client size, which is the root's size.
func (v *View) Size() (width, height float64) {
	return v.root.bounds.Width, v.root.bounds.Height
}

// SetSize resizes the root and the window.
func (v *View) SetSize(width, height float64) {
	if v.closed {
		return
	}
	v.root.SetSize(width, height)
}

// SetPosition moves the window on screen.
func (v *View) SetPosition(x, y int) {
	if v.closed {
		return
	}
	v.window.SetPosition(x, y)
}

// ScaleFactor returns the window's device pixel ratio.
func (v *View) ScaleFactor() float64 {
	if v.closed {
		return 1
	}
	return v.window.ScaleFactor()
}

// Background returns the clear color.
func (v *View) Background() Color { return v.background }

// SetBackground sets the color painted beneath the root widget.
func (v *View) SetBackground(c Color) {
	v.background = c
	v.Repaint()
}

// Repaint marks the whole View for painting.
func (v *View) Repaint() {
	v.invalidate(v.root.LocalBounds())
}

// DirtyRegion returns the area waiting to be painted, in view coordinates.
func (v *View) DirtyRegion() Rect { return v.dirty }

// Close destroys the window and detaches the root. If this was the last
// View and the quit policy is set, Main stops.
func (v *View) Close() {
	if v.main == nil || v.closed {
		return
	}
	v.main.closeView(v)
}

func (v *View) invalidate(r Rect) {
	if v.closed {
		return
	}
	r = r.Intersection(v.root.LocalBounds())
	if r.Empty() {
		return
	}
	v.dirty = v.dirty.Union(r)
}

// handleEvent translates one backend event into widget dispatch.
func (v *View) handleEvent(ev Event) {
	switch ev.Type {
	case EventPointerDown:
		v.pointerDown(ev)
	case EventPointerUp:
		v.pointerUp(ev)
	case EventPointerMove:
		v.pointerMove(ev)
	case EventPointerLeave:
		v.pointerLeave(ev)
	case EventScroll:
		v.scroll(ev)
	case EventResize:
		v.resized(ev.Width, ev.Height)
	case EventExpose:
		if ev.Region.Empty() {
			v.Repaint()
		} else {
			v.invalidate(ev.Region)
		}
	case EventClose:
		v.Close()
	}
}

// resized applies a native size change. Views created without
// ViewResizable keep their size.
func (v *View) resized(width, height int) {
	if v.flags&ViewResizable == 0 || width < 0 || height < 0 {
		return
	}
	r := v.root.bounds
	r.Width = float64(width)
	r.Height = float64(height)
	v.root.setBounds(r, true)
	v.Repaint()
}

// paint repaints the dirty region. It returns false when nothing was due.
func (v *View) paint() (stats paintStats, painted bool) {
	if v.closed || v.dirty.Empty() || !v.root.visible {
		return stats, false
	}
	region := v.dirty
	v.dirty = Rect{}

	err := v.window.Paint(region, func(s Surface) {
		g := NewGraphics(s, region)
		if !v.root.opaque || v.root.alpha < 1 {
			g.SetColor(v.background)
			g.FillAll()
		}
		paintWidget(v.root, g, v.main.rep, &stats)
	})
	if err != nil {
		v.main.rep.report(&Error{Op: "lui.View.paint", Kind: KindBackend, Err: err})
	}
	return stats, true
}

// emit forwards an interaction to the Main's EventSink.
func (v *View) emit(t EventType, w *Widget, p Point, ev Event) {
	sink := v.main.sink
	if sink == nil {
		return
	}
	ie := InteractionEvent{
		Type:      t,
		Window:    v.window.ID(),
		ViewX:     p.X,
		ViewY:     p.Y,
		Button:    ev.Button,
		Modifiers: ev.Modifiers,
		DeltaX:    ev.DeltaX,
		DeltaY:    ev.DeltaY,
	}
	if w != nil {
		local := w.FromView(p)
		ie.WidgetID = w.id
		ie.WidgetName = w.name
		ie.LocalX = local.X
		ie.LocalY = local.Y
	}
	sink.EmitEvent(ie)
}
