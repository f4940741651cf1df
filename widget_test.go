package lui

import (
	"errors"
	"testing"

	"github.com/gonutz/check"
)

// --- Constructor defaults ---

func TestNewWidgetDefaults(t *testing.T) {
	w := NewWidget()
	if w.ID() == 0 {
		t.Error("ID should be non-zero")
	}
	if !w.Visible() || !w.Interactive() {
		t.Error("widget should be visible and interactive")
	}
	if w.Opaque() {
		t.Error("widget should not be opaque")
	}
	check.Eq(t, w.Alpha(), 1.0)
	check.Eq(t, w.Bounds(), Rect{})
	if w.Parent() != nil || w.NumChildren() != 0 || w.View() != nil {
		t.Error("new widget should be detached")
	}
	if w.Owner() != w {
		t.Error("Owner of a plain widget should be itself")
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 100; i++ {
		id := NewWidget().ID()
		if seen[id] {
			t.Fatalf("duplicate ID %d", id)
		}
		seen[id] = true
	}
}

// --- Bounds ---

func TestSetBounds(t *testing.T) {
	w := NewWidget()
	w.SetBounds(10, 20, 30, 40)
	check.Eq(t, w.Bounds(), Rect{10, 20, 30, 40})
	check.Eq(t, w.LocalBounds(), Rect{0, 0, 30, 40})
	w.SetSize(50, 60)
	check.Eq(t, w.Bounds(), Rect{10, 20, 50, 60})
	w.SetPosition(1, 2)
	check.Eq(t, w.Bounds(), Rect{1, 2, 50, 60})
	check.Eq(t, []float64{w.X(), w.Y(), w.Width(), w.Height()}, []float64{1, 2, 50, 60})
}

func TestSetBoundsZeroAreaAllowed(t *testing.T) {
	w := NewWidget()
	w.SetBounds(5, 5, 0, 0)
	check.Eq(t, w.Bounds(), Rect{5, 5, 0, 0})
}

func TestSetBoundsNegativePanics(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"width", -1, 10},
		{"height", 10, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				v := recover()
				err, ok := v.(*Error)
				if !ok {
					t.Fatalf("panic value = %v, want *Error", v)
				}
				if !errors.Is(err, ErrInvalidOperation) {
					t.Errorf("error %v should match ErrInvalidOperation", err)
				}
			}()
			NewWidget().SetBounds(0, 0, tt.width, tt.height)
		})
	}
}

type layoutCounter struct {
	*Widget
	calls int
}

func (l *layoutCounter) Layout() { l.calls++ }

func TestLayoutOnResizeOnly(t *testing.T) {
	l := &layoutCounter{}
	l.Widget = NewWidgetFor(l)
	l.SetBounds(0, 0, 10, 10)
	check.Eq(t, l.calls, 1)
	l.SetPosition(5, 5)
	check.Eq(t, l.calls, 1)
	l.SetSize(10, 10)
	check.Eq(t, l.calls, 1)
	l.SetSize(20, 10)
	check.Eq(t, l.calls, 2)
}

func TestLayoutHook(t *testing.T) {
	w := NewWidget()
	child := NewWidget()
	w.Add(child)
	w.SetLayout(func(w *Widget) {
		w.ChildAt(0).SetBounds(0, 0, w.Width()/2, w.Height())
	})
	w.SetSize(100, 40)
	check.Eq(t, child.Bounds(), Rect{0, 0, 50, 40})
}

// --- Tree ---

func TestAddRemove(t *testing.T) {
	parent := NewWidget()
	a, b := NewWidget(), NewWidget()
	if err := parent.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := parent.Add(b); err != nil {
		t.Fatal(err)
	}
	check.Eq(t, parent.NumChildren(), 2)
	if a.Parent() != parent || parent.ChildAt(1) != b {
		t.Error("children not attached in order")
	}
	if err := parent.Remove(a); err != nil {
		t.Fatal(err)
	}
	if a.Parent() != nil || parent.NumChildren() != 1 {
		t.Error("Remove should detach")
	}
	if a.Disposed() {
		t.Error("Remove should not destroy")
	}
	if err := parent.Remove(a); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("removing a non-child: err = %v", err)
	}
	b.RemoveFromParent()
	b.RemoveFromParent()
	check.Eq(t, parent.NumChildren(), 0)
}

func TestAddRejects(t *testing.T) {
	parent := NewWidget()
	child := NewWidget()
	grandchild := NewWidget()
	parent.Add(child)
	child.Add(grandchild)
	other := NewWidget()
	disposed := NewWidget()
	disposed.Dispose()

	tests := []struct {
		name  string
		to    *Widget
		child Component
	}{
		{"nil", parent, nil},
		{"self", parent, parent},
		{"ancestor", grandchild, parent},
		{"parent of self", child, parent},
		{"already parented", other, grandchild},
		{"disposed child", parent, disposed},
		{"disposed parent", disposed, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.to.Add(tt.child)
			if !errors.Is(err, ErrInvalidOperation) {
				t.Errorf("err = %v, want ErrInvalidOperation", err)
			}
		})
	}
	if grandchild.Parent() != child {
		t.Error("failed Add must not change the tree")
	}
}

func TestAddElevatedRejected(t *testing.T) {
	m, _, _ := newTestMain()
	root := newRoot("root", 100, 100)
	elevate(t, m, root)
	if err := NewWidget().Add(root); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("err = %v, want ErrInvalidOperation", err)
	}
}

func TestAddAtAndSetChildIndex(t *testing.T) {
	p := NewWidget()
	a, b, c := NewWidget(), NewWidget(), NewWidget()
	a.SetName("a")
	b.SetName("b")
	c.SetName("c")
	p.Add(a)
	p.Add(c)
	if err := p.AddAt(b, 1); err != nil {
		t.Fatal(err)
	}
	names := func() []string {
		var out []string
		for _, w := range p.Children() {
			out = append(out, w.Name())
		}
		return out
	}
	check.Eq(t, names(), []string{"a", "b", "c"})

	p.SetChildIndex(a, 2)
	check.Eq(t, names(), []string{"b", "c", "a"})
	p.SetChildIndex(a, 0)
	check.Eq(t, names(), []string{"a", "b", "c"})

	if err := p.SetChildIndex(a, 3); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("out of range index: err = %v", err)
	}
	if err := p.AddAt(NewWidget(), 10); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("out of range insert: err = %v", err)
	}
}

func TestRootAndFind(t *testing.T) {
	root := NewWidget()
	mid := NewWidget()
	leaf := NewWidget()
	leaf.SetName("leaf")
	root.Add(mid)
	mid.Add(leaf)
	if leaf.Root() != root || root.Root() != root {
		t.Error("Root mismatch")
	}
	if root.FindByName("leaf") != leaf {
		t.Error("FindByName did not find leaf")
	}
	if root.FindByName("nope") != nil {
		t.Error("FindByName should return nil")
	}
}

// --- Visibility ---

func TestShowingInheritsVisibility(t *testing.T) {
	root := NewWidget()
	mid := NewWidget()
	leaf := NewWidget()
	root.Add(mid)
	mid.Add(leaf)
	mid.SetVisible(false)
	if !leaf.Visible() {
		t.Error("leaf's own flag should stay true")
	}
	if leaf.Showing() {
		t.Error("leaf should not be showing under a hidden parent")
	}
	mid.SetVisible(true)
	if !leaf.Showing() {
		t.Error("leaf should be showing again")
	}
}

func TestAlphaClamped(t *testing.T) {
	w := NewWidget()
	w.SetAlpha(2)
	check.Eq(t, w.Alpha(), 1.0)
	w.SetAlpha(-1)
	check.Eq(t, w.Alpha(), 0.0)
}

// --- Dispose ---

func TestDisposeSubtree(t *testing.T) {
	parent := NewWidget()
	w := NewWidget()
	child := NewWidget()
	parent.Add(w)
	w.Add(child)
	w.Dispose()
	if !w.Disposed() || !child.Disposed() {
		t.Error("subtree should be disposed")
	}
	if parent.NumChildren() != 0 {
		t.Error("disposed widget should be detached")
	}
	check.Eq(t, w.ID(), uint32(0))
	w.Dispose()
}

func TestDisposeElevatedRootClosesView(t *testing.T) {
	m, b, _ := newTestMain()
	m.SetQuitOnLastViewClosed(false)
	root := newRoot("root", 100, 100)
	v := elevate(t, m, root)
	root.Dispose()
	if !v.Closed() || !b.windows[0].closed {
		t.Error("disposing the root should close its view and window")
	}
	check.Eq(t, len(m.Views()), 0)
}

// --- Repaint ---

func TestRepaintTracksDirtyRegion(t *testing.T) {
	m, _, _ := newTestMain()
	root := newRoot("root", 200, 200)
	child := NewWidget()
	child.SetBounds(10, 10, 50, 50)
	root.Add(child)
	v := elevate(t, m, root)
	loop(t, m)
	check.Eq(t, v.DirtyRegion(), Rect{})

	child.Repaint()
	check.Eq(t, v.DirtyRegion(), Rect{10, 10, 50, 50})
	loop(t, m)

	child.RepaintRect(Rect{5, 5, 100, 100})
	check.Eq(t, v.DirtyRegion(), Rect{15, 15, 45, 45})
	loop(t, m)

	child.SetPosition(100, 100)
	check.Eq(t, v.DirtyRegion(), Rect{10, 10, 140, 140})
	loop(t, m)

	child.SetVisible(false)
	check.Eq(t, v.DirtyRegion(), Rect{100, 100, 50, 50})
	loop(t, m)
	child.Repaint()
	check.Eq(t, v.DirtyRegion(), Rect{})
}
