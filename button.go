package lui

// ButtonState is the visual state of a Button.
type ButtonState uint8

const (
	ButtonIdle ButtonState = iota
	ButtonHover
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	default:
		return "idle"
	}
}

// ButtonStyle holds the colors a Button paints with.
type ButtonStyle struct {
	Idle    Color
	Hover   Color
	Pressed Color
	Border  Color
	Text    Color
}

// DefaultButtonStyle is used by buttons created with NewButton.
var DefaultButtonStyle = ButtonStyle{
	Idle:    RGB(0x3a, 0x3d, 0x42),
	Hover:   RGB(0x4a, 0x4e, 0x55),
	Pressed: RGB(0x2a, 0x7f, 0xd4),
	Border:  RGB(0x18, 0x19, 0x1b),
	Text:    RGB(0xe8, 0xe8, 0xe8),
}

type clickListener struct {
	id uint64
	fn func()
}

// Button is a clickable widget with a text label. A click is a primary
// button press followed by a release inside the button.
type Button struct {
	*Widget
	text      string
	pressed   bool
	hovered   bool
	style     ButtonStyle
	listeners []clickListener
	nextID    uint64
}

// NewButton creates a detached, visible button with empty bounds.
func NewButton() *Button {
	b := &Button{style: DefaultButtonStyle}
	b.Widget = NewWidgetFor(b)
	b.SetOpaque(true)
	return b
}

// Text returns the label.
func (b *Button) Text() string { return b.text }

// SetText sets the label and repaints on change.
func (b *Button) SetText(text string) {
	if text == b.text {
		return
	}
	b.text = text
	b.Repaint()
}

// Style returns the button colors.
func (b *Button) Style() ButtonStyle { return b.style }

// SetStyle replaces the button colors.
func (b *Button) SetStyle(s ButtonStyle) {
	b.style = s
	b.Repaint()
}

// Pressed reports whether a press is held on the button.
func (b *Button) Pressed() bool { return b.pressed }

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// State returns the visual state.
func (b *Button) State() ButtonState {
	switch {
	case b.pressed:
		return ButtonPressed
	case b.hovered:
		return ButtonHover
	default:
		return ButtonIdle
	}
}

// ClickHandle identifies one registered click listener.
type ClickHandle struct {
	b  *Button
	id uint64
}

// Remove unregisters the listener. Removing twice is a no-op.
func (h ClickHandle) Remove() {
	if h.b == nil {
		return
	}
	for i, l := range h.b.listeners {
		if l.id == h.id {
			h.b.listeners = append(h.b.listeners[:i:i], h.b.listeners[i+1:]...)
			return
		}
	}
}

// OnClick registers fn to run on every click, after previously registered
// listeners. The same function may be registered more than once.
func (b *Button) OnClick(fn func()) ClickHandle {
	if fn == nil {
		return ClickHandle{}
	}
	b.nextID++
	b.listeners = append(b.listeners, clickListener{id: b.nextID, fn: fn})
	return ClickHandle{b: b, id: b.nextID}
}

// Click runs the click listeners as if the button had been clicked.
func (b *Button) Click() {
	b.fireClick(nil)
}

func (b *Button) fireClick(ev *PointerEvent) {
	// Listeners may add or remove listeners while running.
	ls := make([]clickListener, len(b.listeners))
	copy(ls, b.listeners)
	rep := b.reporter()
	for _, l := range ls {
		rep.call("lui.Button.OnClick", l.fn)
		if b.Disposed() {
			break
		}
	}
	if v := b.View(); v != nil && ev != nil {
		v.emit(EventClick, b.Widget, ev.ViewPos, Event{Button: ev.Button, Modifiers: ev.Modifiers})
	}
}

// --- Pointer handling ---

// PointerDown implements PointerHandler. It captures left-button presses.
func (b *Button) PointerDown(ev *PointerEvent) bool {
	if ev.Button != MouseButtonLeft || !b.Showing() {
		return false
	}
	b.pressed = true
	b.Repaint()
	return true
}

// PointerMove implements PointerHandler. It tracks whether a held press is
// still over the button.
func (b *Button) PointerMove(ev *PointerEvent) {
	hovered := ev.Inside()
	if hovered != b.hovered {
		b.hovered = hovered
		b.Repaint()
	}
}

// PointerUp implements PointerHandler. Releasing inside the bounds clicks.
func (b *Button) PointerUp(ev *PointerEvent) {
	if !b.pressed {
		return
	}
	b.pressed = false
	b.Repaint()
	if b.Contains(ev.Pos.X, ev.Pos.Y) && b.Showing() {
		b.fireClick(ev)
	}
}

// PointerCancel implements PointerCanceler. It drops the press without a click.
func (b *Button) PointerCancel() {
	if b.pressed {
		b.pressed = false
		b.Repaint()
	}
}

// PointerEnter implements HoverHandler.
func (b *Button) PointerEnter(*PointerEvent) {
	b.hovered = true
	b.Repaint()
}

// PointerLeave implements HoverHandler.
func (b *Button) PointerLeave(*PointerEvent) {
	b.hovered = false
	b.Repaint()
}

// --- Painting ---

// Paint implements Painter. It fills the state color and centers the label.
func (b *Button) Paint(g *Graphics) {
	r := b.LocalBounds()
	switch b.State() {
	case ButtonPressed:
		g.SetColor(b.style.Pressed)
	case ButtonHover:
		g.SetColor(b.style.Hover)
	default:
		g.SetColor(b.style.Idle)
	}
	g.FillRect(r)
	g.SetColor(b.style.Border)
	g.DrawRect(r, 1)
	if b.text != "" {
		g.SetColor(b.style.Text)
		g.DrawText(b.text, r.Reduced(4, 2), FitCentered)
	}
}
