package lui

import (
	"testing"

	"github.com/gonutz/check"
)

func TestSliderValueClamped(t *testing.T) {
	s := NewSlider(Horizontal)
	s.SetRange(Range{10, 20})
	check.Eq(t, s.Value(), 10.0)
	s.SetValue(25)
	check.Eq(t, s.Value(), 20.0)
	s.SetValue(15)
	check.Eq(t, s.Value(), 15.0)
	s.SetRange(Range{0, 12})
	check.Eq(t, s.Value(), 12.0)
}

func TestSliderListeners(t *testing.T) {
	s := NewSlider(Horizontal)
	var got []float64
	h := s.OnValueChanged(func(v float64) { got = append(got, v) })
	s.SetValue(0.5)
	s.SetValue(0.5)
	s.SetValue(2)
	check.Eq(t, got, []float64{0.5, 1})
	h.Remove()
	s.SetValue(0)
	check.Eq(t, len(got), 2)
}

func sliderScene(t *testing.T, o Orientation) (*Main, *fakeBackend, *View, *Slider) {
	t.Helper()
	m, b, _ := newTestMain()
	root := newRoot("root", 300, 300)
	s := NewSlider(o)
	s.SetRange(Range{0, 100})
	s.SetBounds(50, 50, 200, 200)
	root.Add(s)
	v := elevate(t, m, root)
	return m, b, v, s
}

func TestSliderDrag(t *testing.T) {
	m, b, v, s := sliderScene(t, Horizontal)
	press(b, v, 100, 60)
	loop(t, m)
	check.Eq(t, s.Value(), 25.0)
	check.Eq(t, s.Dragging(), true)

	move(b, v, 400, 60)
	loop(t, m)
	check.Eq(t, s.Value(), 100.0)

	release(b, v, 150, 60)
	loop(t, m)
	check.Eq(t, s.Value(), 50.0)
	check.Eq(t, s.Dragging(), false)
}

func TestSliderVertical(t *testing.T) {
	m, b, v, s := sliderScene(t, Vertical)
	press(b, v, 60, 200)
	release(b, v, 60, 200)
	loop(t, m)
	check.Eq(t, s.Value(), 25.0)
}

func TestSliderScroll(t *testing.T) {
	m, b, v, s := sliderScene(t, Horizontal)
	s.Step = 5
	b.push(Event{Type: EventScroll, Window: v.Window().ID(), X: 100, Y: 100, DeltaY: 1})
	b.push(Event{Type: EventScroll, Window: v.Window().ID(), X: 100, Y: 100, DeltaY: 1})
	b.push(Event{Type: EventScroll, Window: v.Window().ID(), X: 100, Y: 100, DeltaY: -1})
	loop(t, m)
	check.Eq(t, s.Value(), 5.0)
}

func TestSliderCancel(t *testing.T) {
	m, b, v, s := sliderScene(t, Horizontal)
	press(b, v, 100, 60)
	loop(t, m)
	s.SetVisible(false)
	check.Eq(t, s.Dragging(), false)
	check.Eq(t, v.CapturedWidget() == nil, true)
}
