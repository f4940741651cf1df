package lui

import (
	"math"
	"testing"

	"github.com/gonutz/check"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearPoint(t *testing.T, got, want Point) {
	t.Helper()
	if !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// --- Matrix ---

func TestTransformIdentity(t *testing.T) {
	check.Eq(t, Identity.IsIdentity(), true)
	check.Eq(t, Transform{}.IsIdentity(), false)
	check.Eq(t, Identity.Map(Point{3, 4}), Point{3, 4})
}

func TestTransformTranslation(t *testing.T) {
	tr := Translation(10, 20)
	check.Eq(t, tr.Map(Point{1, 2}), Point{11, 22})
	check.Eq(t, tr.Translated(5, 5), Translation(15, 25))
}

func TestTransformRotation(t *testing.T) {
	r := Rotation(math.Pi / 2)
	check.Eq(t, near(r.M00, 0), true)
	check.Eq(t, near(r.M01, -1), true)
	check.Eq(t, near(r.M10, 1), true)
	check.Eq(t, near(r.M11, 0), true)
	nearPoint(t, r.Map(Point{1, 0}), Point{0, 1})
	nearPoint(t, Identity.Rotated(math.Pi).Map(Point{1, 2}), Point{-1, -2})
}

func TestTransformScale(t *testing.T) {
	check.Eq(t, Scaling(2, 3).Map(Point{1, 1}), Point{2, 3})
	check.Eq(t, Translation(1, 1).Scaled(2).Map(Point{0, 0}), Point{2, 2})
	check.Eq(t, Identity.ScaledXY(2, 4).Map(Point{1, 1}), Point{2, 4})
}

func TestTransformThenInverted(t *testing.T) {
	tr := Translation(5, -3).Then(Rotation(0.7)).Then(Scaling(2, 0.5))
	p := Point{12, 34}
	nearPoint(t, tr.Inverted().Map(tr.Map(p)), p)
	check.Eq(t, Scaling(0, 1).Inverted(), Identity)
}

func TestTransformMapRect(t *testing.T) {
	r := Rect{0, 0, 10, 20}
	check.Eq(t, Translation(5, 5).MapRect(r), Rect{5, 5, 10, 20})
	got := Rotation(math.Pi / 2).MapRect(r)
	check.Eq(t, near(got.X, -20) && near(got.Width, 20) && near(got.Height, 10), true)
}

// --- Widget coordinates ---

func TestWidgetViewCoordinates(t *testing.T) {
	root := newRoot("root", 400, 300)
	root.SetPosition(1000, 1000) // window position, not part of view space
	panel := NewWidget()
	panel.SetBounds(50, 60, 200, 100)
	child := NewWidget()
	child.SetBounds(10, 20, 30, 30)
	root.Add(panel)
	panel.Add(child)

	check.Eq(t, child.ToView(Point{1, 2}), Point{61, 82})
	check.Eq(t, child.FromView(Point{61, 82}), Point{1, 2})
	check.Eq(t, child.BoundsInView(), Rect{60, 80, 30, 30})
	check.Eq(t, child.ViewTransform(), Translation(60, 80))
	check.Eq(t, root.BoundsInView(), Rect{0, 0, 400, 300})
}
