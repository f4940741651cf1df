package headless

import (
	"testing"

	"github.com/lvtk/lui"
)

var red = lui.RGB(0xff, 0, 0)

func newMain(mode lui.Mode) (*lui.Main, *Backend) {
	b := New()
	m := lui.NewMain(mode, b)
	m.SetErrorHandler(quietHandler{})
	return m, b
}

type quietHandler struct{}

func (quietHandler) HandleError(*lui.Error)      {}
func (quietHandler) HandlePanic(*lui.PanicError) {}

func newRoot(name string, w, h float64) *lui.Widget {
	r := lui.NewWidget()
	r.SetName(name)
	r.SetSize(w, h)
	return r
}

func elevate(t *testing.T, m *lui.Main, b *Backend, root lui.Component, flags lui.ViewFlags) (*lui.View, *Window) {
	t.Helper()
	v, err := m.Elevate(root, flags)
	if err != nil {
		t.Fatalf("Elevate: %v", err)
	}
	w := b.Window(v.Window().ID())
	if w == nil {
		t.Fatalf("no headless window for view")
	}
	return v, w
}

func loop(t *testing.T, m *lui.Main) {
	t.Helper()
	if err := m.Loop(1.0 / 60.0); err != nil {
		t.Fatalf("Loop: %v", err)
	}
}

// demo builds the three-button window used by the scenario tests: a
// 550x400 root with an exit button at (420, 340, 110, 40).
type demo struct {
	root   *lui.Widget
	hello  *lui.Button
	cancel *lui.Button
	exit   *lui.Button
	clicks map[string]int
}

func newDemo(m *lui.Main) *demo {
	d := &demo{root: newRoot("demo", 550, 400), clicks: map[string]int{}}
	add := func(name, text string, x float64) *lui.Button {
		btn := lui.NewButton()
		btn.SetName(name)
		btn.SetText(text)
		btn.SetBounds(x, 340, 110, 40)
		btn.OnClick(func() { d.clicks[name]++ })
		if err := d.root.Add(btn); err != nil {
			panic(err)
		}
		return btn
	}
	d.hello = add("hello", "Hello", 20)
	d.cancel = add("cancel", "Cancel", 150)
	d.exit = add("exit", "Exit", 420)
	d.exit.OnClick(func() { m.Exit(0) })
	return d
}
