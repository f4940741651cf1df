package lui

// Orientation selects the axis of a Slider.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

type valueListener struct {
	id uint64
	fn func(value float64)
}

// Slider selects a value within a Range by dragging along its track. The
// wheel steps the value by Step (one hundredth of the range when zero).
// Vertical sliders grow upward.
type Slider struct {
	*Widget
	orientation Orientation
	rng         Range
	value       float64
	Step        float64
	dragging    bool

	TrackColor Color
	FillColor  Color
	ThumbColor Color

	listeners []valueListener
	nextID    uint64
}

// NewSlider creates a detached slider over [0, 1] with value 0.
func NewSlider(o Orientation) *Slider {
	s := &Slider{
		orientation: o,
		rng:         Range{0, 1},
		TrackColor:  RGB(0x30, 0x33, 0x38),
		FillColor:   RGB(0x2a, 0x7f, 0xd4),
		ThumbColor:  RGB(0xe8, 0xe8, 0xe8),
	}
	s.Widget = NewWidgetFor(s)
	return s
}

// Orientation returns the slider axis.
func (s *Slider) Orientation() Orientation { return s.orientation }

// Range returns the value range.
func (s *Slider) Range() Range { return s.rng }

// SetRange sets the value range and re-clamps the current value.
func (s *Slider) SetRange(r Range) {
	s.rng = r
	s.SetValue(s.value)
	s.Repaint()
}

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue clamps v to the range and, if it changed, notifies listeners.
func (s *Slider) SetValue(v float64) {
	v = s.rng.Clamp(v)
	if v == s.value {
		return
	}
	s.value = v
	s.Repaint()
	ls := make([]valueListener, len(s.listeners))
	copy(ls, s.listeners)
	rep := s.reporter()
	for _, l := range ls {
		rep.call("lui.Slider.OnValueChanged", func() { l.fn(v) })
	}
}

// ValueHandle identifies one registered value listener.
type ValueHandle struct {
	s  *Slider
	id uint64
}

// Remove unregisters the listener.
func (h ValueHandle) Remove() {
	if h.s == nil {
		return
	}
	for i, l := range h.s.listeners {
		if l.id == h.id {
			h.s.listeners = append(h.s.listeners[:i:i], h.s.listeners[i+1:]...)
			return
		}
	}
}

// OnValueChanged registers fn to run whenever the value changes.
func (s *Slider) OnValueChanged(fn func(value float64)) ValueHandle {
	if fn == nil {
		return ValueHandle{}
	}
	s.nextID++
	s.listeners = append(s.listeners, valueListener{id: s.nextID, fn: fn})
	return ValueHandle{s: s, id: s.nextID}
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool { return s.dragging }

// track returns the pixel range the value maps onto.
func (s *Slider) track() Range {
	if s.orientation == Vertical {
		return Range{s.Height(), 0}
	}
	return Range{0, s.Width()}
}

func (s *Slider) valueAt(p Point) float64 {
	pos := p.X
	if s.orientation == Vertical {
		pos = p.Y
	}
	t := s.track()
	return t.Convert(s.rng, t.Clamp(pos))
}

// PointerDown implements PointerHandler. A press jumps the value to the
// pointer and starts a drag.
func (s *Slider) PointerDown(ev *PointerEvent) bool {
	if ev.Button != MouseButtonLeft {
		return false
	}
	s.dragging = true
	s.SetValue(s.valueAt(ev.Pos))
	return true
}

// PointerMove implements PointerHandler.
func (s *Slider) PointerMove(ev *PointerEvent) {
	if s.dragging {
		s.SetValue(s.valueAt(ev.Pos))
	}
}

// PointerUp implements PointerHandler. It ends the drag.
func (s *Slider) PointerUp(ev *PointerEvent) {
	if s.dragging {
		s.dragging = false
		s.SetValue(s.valueAt(ev.Pos))
	}
}

// PointerCancel implements PointerCanceler.
func (s *Slider) PointerCancel() { s.dragging = false }

// Scroll implements ScrollHandler. Each wheel notch moves the value by one step.
func (s *Slider) Scroll(ev *PointerEvent) bool {
	d := ev.DeltaY
	if d == 0 {
		d = ev.DeltaX
	}
	if d == 0 || s.rng.Empty() {
		return false
	}
	step := s.Step
	if step <= 0 {
		step = s.rng.Diff() / 100
	}
	if d < 0 {
		step = -step
	}
	s.SetValue(s.value + step)
	return true
}

// Paint implements Painter.
func (s *Slider) Paint(g *Graphics) {
	r := s.LocalBounds()
	g.SetColor(s.TrackColor)
	g.FillRect(r)

	pos := s.rng.Convert(s.track(), s.value)
	const thumb = 4.0
	fill := r
	var knob Rect
	if s.orientation == Vertical {
		fill = fill.SliceBottom(r.Height - pos)
		knob = Rect{r.X, pos - thumb/2, r.Width, thumb}
	} else {
		fill = fill.SliceLeft(pos)
		knob = Rect{pos - thumb/2, r.Y, thumb, r.Height}
	}
	g.SetColor(s.FillColor)
	g.FillRect(fill)
	g.SetColor(s.ThumbColor)
	g.FillRect(knob)
}
