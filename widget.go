package lui

// --- Capabilities ---

// Component is implemented by *Widget and by every type that embeds one.
// Tree and Main operations accept a Component so concrete widgets can be
// passed directly.
type Component interface {
	Base() *Widget
}

// Painter draws a widget's own content. Children are painted afterwards, on
// top. The Graphics origin is the widget's top-left corner and drawing is
// clipped to its bounds.
type Painter interface {
	Paint(g *Graphics)
}

// Layouter positions a widget's children. Layout is called whenever the
// widget's size changes and when its View is created.
type Layouter interface {
	Layout()
}

// HitTester refines the area of a widget that responds to the pointer.
// Points outside the widget's bounds never reach it.
type HitTester interface {
	HitTestLocal(x, y float64) bool
}

// PointerHandler receives pointer button and motion events. PointerDown
// returns true to accept the press; the accepting widget then receives every
// PointerMove and the PointerUp for that press, wherever the pointer goes.
// Returning false passes the press on to the parent.
type PointerHandler interface {
	PointerDown(ev *PointerEvent) bool
	PointerMove(ev *PointerEvent)
	PointerUp(ev *PointerEvent)
}

// HoverHandler receives enter and leave notifications.
type HoverHandler interface {
	PointerEnter(ev *PointerEvent)
	PointerLeave(ev *PointerEvent)
}

// ScrollHandler receives wheel events. Returning false passes the event on
// to the parent.
type ScrollHandler interface {
	Scroll(ev *PointerEvent) bool
}

// PointerCanceler is notified when a press it accepted ends without a
// PointerUp: the widget was hidden, removed, or its View closed.
type PointerCanceler interface {
	PointerCancel()
}

// --- ID counter ---

// widgetIDCounter is a plain counter (no atomic, lui is single-threaded).
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// --- Widget ---

// Widget is the element of the UI tree. Bounds are relative to the parent,
// in logical pixels. A widget owns its children; the parent pointer is a
// non-owning back reference.
//
// Concrete widgets embed *Widget and are created with NewWidgetFor so that
// their capability interfaces (Painter, Layouter, PointerHandler, ...) are
// found during dispatch.
type Widget struct {
	id       uint32
	name     string
	bounds   Rect
	alpha    float64
	hitShape HitShape

	visible     bool
	opaque      bool
	interactive bool
	disposed    bool

	parent   *Widget
	children []*Widget
	owner    any
	view     *View // set on an elevated root only

	paintFn  func(g *Graphics)
	layoutFn func(w *Widget)

	// UserData is free for application use.
	UserData any
}

// NewWidget creates a detached, visible, interactive widget with empty bounds.
func NewWidget() *Widget {
	return NewWidgetFor(nil)
}

// NewWidgetFor creates a widget whose behavior is supplied by owner, which is
// usually the concrete type embedding the returned *Widget.
func NewWidgetFor(owner any) *Widget {
	w := &Widget{owner: owner}
	w.id = nextWidgetID()
	w.alpha = 1
	w.visible = true
	w.interactive = true
	return w
}

// Base returns w.
func (w *Widget) Base() *Widget { return w }

// ID returns the widget's process-unique identifier. Zero after Dispose.
func (w *Widget) ID() uint32 { return w.id }

// Owner returns the concrete widget that embeds w, or w itself.
func (w *Widget) Owner() any {
	if w.owner != nil {
		return w.owner
	}
	return w
}

// Name returns the widget's name.
func (w *Widget) Name() string { return w.name }

// SetName sets the widget's name. Names are not unique. The name of an
// elevated root is its window title.
func (w *Widget) SetName(name string) {
	w.name = name
	if w.view != nil {
		w.view.window.SetTitle(name)
	}
}

// --- Geometry ---

// Bounds returns the widget's rectangle in parent coordinates.
func (w *Widget) Bounds() Rect { return w.bounds }

// X returns the left edge in parent coordinates.
func (w *Widget) X() float64 { return w.bounds.X }

// Y returns the top edge in parent coordinates.
func (w *Widget) Y() float64 { return w.bounds.Y }

// Width returns the widget's width.
func (w *Widget) Width() float64 { return w.bounds.Width }

// Height returns the widget's height.
func (w *Widget) Height() float64 { return w.bounds.Height }

// LocalBounds returns the widget's rectangle in its own coordinates.
func (w *Widget) LocalBounds() Rect {
	return Rect{0, 0, w.bounds.Width, w.bounds.Height}
}

// SetBounds sets position and size in parent coordinates. A size change runs
// the widget's layout. On an elevated root, the window follows.
// Panics with an *Error matching ErrInvalidOperation if width or height is
// negative.
func (w *Widget) SetBounds(x, y, width, height float64) {
	w.setBounds(Rect{x, y, width, height}, false)
}

// SetSize sets the size, keeping the position.
func (w *Widget) SetSize(width, height float64) {
	w.setBounds(Rect{w.bounds.X, w.bounds.Y, width, height}, false)
}

// SetPosition sets the position, keeping the size.
func (w *Widget) SetPosition(x, y float64) {
	w.setBounds(Rect{x, y, w.bounds.Width, w.bounds.Height}, false)
}

func (w *Widget) setBounds(r Rect, fromWindow bool) {
	if r.Width < 0 || r.Height < 0 {
		panic(invalidOp("lui.Widget.SetBounds", "negative size %vx%v for %q", r.Width, r.Height, w.name))
	}
	if w.disposed || r == w.bounds {
		return
	}
	old := w.bounds
	w.invalidateArea()
	w.bounds = r
	w.invalidateArea()

	resized := old.Width != r.Width || old.Height != r.Height
	if w.view != nil && !fromWindow {
		if resized {
			w.view.window.SetSize(pixels(r.Width), pixels(r.Height))
		}
		if old.X != r.X || old.Y != r.Y {
			w.view.window.SetPosition(int(r.X), int(r.Y))
		}
	}
	if resized {
		w.layout()
	}
}

func (w *Widget) layout() {
	if l, ok := w.owner.(Layouter); ok {
		w.reporter().call("lui.Widget.Layout", l.Layout)
	} else if w.layoutFn != nil {
		w.reporter().call("lui.Widget.Layout", func() { w.layoutFn(w) })
	}
}

// --- Flags ---

// Visible reports the widget's own visibility flag.
func (w *Widget) Visible() bool { return w.visible }

// Showing reports whether the widget and all its ancestors are visible.
func (w *Widget) Showing() bool {
	for p := w; p != nil; p = p.parent {
		if !p.visible {
			return false
		}
	}
	return true
}

// SetVisible shows or hides the widget and its subtree. Hidden widgets stay
// in the tree but are neither painted nor hit. Hiding cancels any press or
// hover inside the subtree. On an elevated root, the window follows.
func (w *Widget) SetVisible(visible bool) {
	if w.visible == visible || w.disposed {
		return
	}
	if visible {
		w.visible = true
		w.invalidateArea()
	} else {
		w.invalidateArea()
		w.visible = false
		if v := w.View(); v != nil {
			v.forget(w)
		}
	}
	if w.view != nil {
		w.view.window.SetVisible(visible)
	}
}

// Opaque reports whether the widget promises to cover its whole rectangle.
func (w *Widget) Opaque() bool { return w.opaque }

// SetOpaque marks the widget as painting every pixel of its bounds. Content
// beneath a fully opaque widget is skipped during paint.
func (w *Widget) SetOpaque(opaque bool) {
	if w.opaque == opaque {
		return
	}
	w.opaque = opaque
	w.Repaint()
}

// Alpha returns the widget's opacity multiplier.
func (w *Widget) Alpha() float64 { return w.alpha }

// SetAlpha sets the opacity multiplier applied to the widget and its subtree.
// Values are clamped to [0, 1].
func (w *Widget) SetAlpha(a float64) {
	a = clamp(a, 0, 1)
	if w.alpha == a {
		return
	}
	w.alpha = a
	w.Repaint()
}

// Interactive reports whether the widget itself can be hit.
func (w *Widget) Interactive() bool { return w.interactive }

// SetInteractive controls whether the widget itself can be hit. Children of
// a non-interactive widget are still hit-tested.
func (w *Widget) SetInteractive(interactive bool) {
	w.interactive = interactive
}

// HitShape returns the custom hit area, or nil.
func (w *Widget) HitShape() HitShape { return w.hitShape }

// SetHitShape restricts the hit area to shape, in local coordinates.
// Pass nil to use the full bounds.
func (w *Widget) SetHitShape(shape HitShape) {
	w.hitShape = shape
}

// SetPainter sets a paint function for a plain widget. Ignored when the
// owner implements Painter.
func (w *Widget) SetPainter(fn func(g *Graphics)) {
	w.paintFn = fn
	w.Repaint()
}

// SetLayout sets a layout function for a plain widget. Ignored when the
// owner implements Layouter.
func (w *Widget) SetLayout(fn func(w *Widget)) {
	w.layoutFn = fn
}

// --- Tree manipulation ---

// Add appends child as the topmost child of w.
// Fails with ErrInvalidOperation if child is nil, is w or one of its
// ancestors, already has a parent, is elevated, or either widget is disposed.
func (w *Widget) Add(child Component) error {
	return w.insert("lui.Widget.Add", child, -1)
}

// AddAt inserts child at index among w's children. Index 0 is painted first.
func (w *Widget) AddAt(child Component, index int) error {
	return w.insert("lui.Widget.AddAt", child, index)
}

func (w *Widget) insert(op string, c Component, index int) error {
	var child *Widget
	if c != nil {
		child = c.Base()
	}
	if child == nil {
		return invalidOp(op, "nil child")
	}
	if w.disposed || child.disposed {
		return invalidOp(op, "disposed widget")
	}
	if isAncestor(child, w) {
		return invalidOp(op, "adding %q to %q would create a cycle", child.name, w.name)
	}
	if child.parent != nil {
		return invalidOp(op, "%q already has a parent %q", child.name, child.parent.name)
	}
	if child.view != nil {
		return invalidOp(op, "%q is the root of a view", child.name)
	}
	if index > len(w.children) {
		return invalidOp(op, "child index %d out of range", index)
	}

	child.parent = w
	if index < 0 {
		w.children = append(w.children, child)
	} else {
		w.children = append(w.children, nil)
		copy(w.children[index+1:], w.children[index:])
		w.children[index] = child
	}
	child.invalidateArea()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
	return nil
}

// Remove detaches child from w without destroying it.
// Fails with ErrInvalidOperation if child is not a direct child of w.
func (w *Widget) Remove(child Component) error {
	var c *Widget
	if child != nil {
		c = child.Base()
	}
	if c == nil || c.parent != w {
		return invalidOp("lui.Widget.Remove", "not a child of %q", w.name)
	}
	c.invalidateArea()
	if v := w.View(); v != nil {
		v.forget(c)
	}
	w.removeChildByPtr(c)
	c.parent = nil
	return nil
}

// RemoveFromParent detaches w from its parent.
// No-op if w has no parent.
func (w *Widget) RemoveFromParent() {
	if w.parent == nil {
		return
	}
	_ = w.parent.Remove(w)
}

// SetChildIndex moves child to a new index among its siblings.
func (w *Widget) SetChildIndex(child Component, index int) error {
	var c *Widget
	if child != nil {
		c = child.Base()
	}
	if c == nil || c.parent != w {
		return invalidOp("lui.Widget.SetChildIndex", "not a child of %q", w.name)
	}
	if index < 0 || index >= len(w.children) {
		return invalidOp("lui.Widget.SetChildIndex", "child index %d out of range", index)
	}
	old := -1
	for i, x := range w.children {
		if x == c {
			old = i
			break
		}
	}
	if old < 0 {
		internalError("%q has parent %q but is not among its children", c.name, w.name)
	}
	if old == index {
		return nil
	}
	if old < index {
		copy(w.children[old:], w.children[old+1:index+1])
	} else {
		copy(w.children[index+1:], w.children[index:old])
	}
	w.children[index] = c
	c.Repaint()
	return nil
}

// Parent returns the parent widget, or nil.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (w *Widget) Children() []*Widget { return w.children }

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int { return len(w.children) }

// ChildAt returns the child at the given index.
func (w *Widget) ChildAt(index int) *Widget { return w.children[index] }

// Root returns the topmost ancestor of w, which may be w.
func (w *Widget) Root() *Widget {
	r := w
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// View returns the View showing w's tree, or nil if the tree is not elevated.
func (w *Widget) View() *View {
	return w.Root().view
}

// Elevated reports whether w is the root of a View.
func (w *Widget) Elevated() bool { return w.view != nil }

// FindByName returns the first widget named name in w's subtree, searching
// depth-first with w itself first.
func (w *Widget) FindByName(name string) *Widget {
	if w.name == name {
		return w
	}
	for _, c := range w.children {
		if f := c.FindByName(name); f != nil {
			return f
		}
	}
	return nil
}

// --- Disposal ---

// Dispose detaches w, closes its View if it is an elevated root, and
// destroys w and its whole subtree. Disposed widgets reject tree operations.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	if w.view != nil {
		w.view.Close()
	}
	w.RemoveFromParent()
	w.dispose()
}

func (w *Widget) dispose() {
	w.disposed = true
	w.id = 0
	for _, c := range w.children {
		c.parent = nil
		c.dispose()
	}
	w.children = nil
	w.parent = nil
	w.hitShape = nil
	w.paintFn = nil
	w.layoutFn = nil
	w.UserData = nil
}

// Disposed reports whether w has been disposed.
func (w *Widget) Disposed() bool { return w.disposed }

// --- Repaint ---

// Repaint marks the widget's visible area for painting on the next loop.
func (w *Widget) Repaint() {
	if w.visible {
		w.invalidateArea()
	}
}

// RepaintRect marks part of the widget, in local coordinates, for painting.
func (w *Widget) RepaintRect(r Rect) {
	if !w.visible {
		return
	}
	v, clip, ok := w.exposedArea()
	if !ok {
		return
	}
	off := w.viewOffset()
	v.invalidate(r.Translated(off.X, off.Y).Intersection(clip))
}

// invalidateArea marks w's area dirty regardless of its own visibility flag.
// Used around changes that alter what w covers.
func (w *Widget) invalidateArea() {
	if v, clip, ok := w.exposedArea(); ok {
		v.invalidate(clip)
	}
}

// exposedArea returns w's View and its bounds in view space clipped by every
// ancestor. ok is false when there is no View or an ancestor is hidden.
func (w *Widget) exposedArea() (v *View, clip Rect, ok bool) {
	root := w
	clip = w.BoundsInView()
	for p := w.parent; p != nil; p = p.parent {
		if !p.visible {
			return nil, Rect{}, false
		}
		clip = clip.Intersection(p.BoundsInView())
		root = p
	}
	if root.view == nil || clip.Empty() {
		return nil, Rect{}, false
	}
	return root.view, clip, true
}

// --- Helpers ---

func (w *Widget) reporter() reporter {
	if v := w.View(); v != nil && v.main != nil {
		return v.main.rep
	}
	return reporter{}
}

func (w *Widget) paintSelf(g *Graphics) {
	if p, ok := w.owner.(Painter); ok {
		p.Paint(g)
	} else if w.paintFn != nil {
		w.paintFn(g)
	}
}

// isAncestor reports whether candidate is node or an ancestor of node.
func isAncestor(candidate, node *Widget) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from w.children without clearing child.parent.
func (w *Widget) removeChildByPtr(child *Widget) {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
	internalError("%q has parent %q but is not among its children", child.name, w.name)
}

// pixels converts a logical size to whole window pixels, rounding up.
func pixels(v float64) int {
	n := int(v)
	if float64(n) < v {
		n++
	}
	return n
}
