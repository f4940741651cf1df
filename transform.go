package lui

import "math"

// Transform is a 2D affine matrix.
//
//	| M00  M01  M02 |
//	| M10  M11  M12 |
//	|  0    0    1  |
//
// The zero value is not the identity; use Identity.
type Transform struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
}

// Identity is the identity transform.
var Identity = Transform{M00: 1, M11: 1}

// Translation returns a transform that moves points by (dx, dy).
func Translation(dx, dy float64) Transform {
	return Transform{1, 0, dx, 0, 1, dy}
}

// Rotation returns a counterclockwise rotation by angle radians about the origin.
func Rotation(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{cos, -sin, 0, sin, cos, 0}
}

// Scaling returns a transform that scales by (sx, sy) about the origin.
func Scaling(sx, sy float64) Transform {
	return Transform{sx, 0, 0, 0, sy, 0}
}

// Translated returns t followed by a translation of (dx, dy).
func (t Transform) Translated(dx, dy float64) Transform {
	t.M02 += dx
	t.M12 += dy
	return t
}

// Scaled returns t followed by a uniform scale.
func (t Transform) Scaled(f float64) Transform {
	return t.ScaledXY(f, f)
}

// ScaledXY returns t followed by a scale of (sx, sy).
func (t Transform) ScaledXY(sx, sy float64) Transform {
	return Transform{
		t.M00 * sx, t.M01 * sx, t.M02 * sx,
		t.M10 * sy, t.M11 * sy, t.M12 * sy,
	}
}

// Rotated returns t followed by a rotation of angle radians.
func (t Transform) Rotated(angle float64) Transform {
	return t.Then(Rotation(angle))
}

// Then returns the transform that applies t first and next second.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		next.M00*t.M00 + next.M01*t.M10,
		next.M00*t.M01 + next.M01*t.M11,
		next.M00*t.M02 + next.M01*t.M12 + next.M02,
		next.M10*t.M00 + next.M11*t.M10,
		next.M10*t.M01 + next.M11*t.M11,
		next.M10*t.M02 + next.M11*t.M12 + next.M12,
	}
}

// Inverted returns the inverse of t. A singular matrix yields Identity.
func (t Transform) Inverted() Transform {
	det := t.M00*t.M11 - t.M01*t.M10
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	inv := 1.0 / det
	a := t.M11 * inv
	b := -t.M01 * inv
	c := -t.M10 * inv
	d := t.M00 * inv
	return Transform{
		a, b, -(a*t.M02 + b*t.M12),
		c, d, -(c*t.M02 + d*t.M12),
	}
}

// IsIdentity reports whether t leaves every point unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// Map applies t to p.
func (t Transform) Map(p Point) Point {
	return Point{
		X: t.M00*p.X + t.M01*p.Y + t.M02,
		Y: t.M10*p.X + t.M11*p.Y + t.M12,
	}
}

// MapRect returns the bounding box of r after applying t.
func (t Transform) MapRect(r Rect) Rect {
	p1 := t.Map(Point{r.X, r.Y})
	p2 := t.Map(Point{r.Right(), r.Y})
	p3 := t.Map(Point{r.X, r.Bottom()})
	p4 := t.Map(Point{r.Right(), r.Bottom()})
	x1 := math.Min(math.Min(p1.X, p2.X), math.Min(p3.X, p4.X))
	y1 := math.Min(math.Min(p1.Y, p2.Y), math.Min(p3.Y, p4.Y))
	x2 := math.Max(math.Max(p1.X, p2.X), math.Max(p3.X, p4.X))
	y2 := math.Max(math.Max(p1.Y, p2.Y), math.Max(p3.Y, p4.Y))
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// --- Coordinate conversion ---

// viewOffset returns the position of w's origin in its View's coordinates.
// The root's own position is where its window sits on screen and does not
// contribute.
func (w *Widget) viewOffset() Point {
	var off Point
	for p := w; p != nil && p.parent != nil; p = p.parent {
		off.X += p.bounds.X
		off.Y += p.bounds.Y
	}
	return off
}

// ToView converts a point in w's local space to the coordinates of its root.
func (w *Widget) ToView(p Point) Point {
	return p.Add(w.viewOffset())
}

// FromView converts a point in root coordinates to w's local space.
func (w *Widget) FromView(p Point) Point {
	return p.Sub(w.viewOffset())
}

// ViewTransform returns the transform mapping w's local space to root space.
func (w *Widget) ViewTransform() Transform {
	off := w.viewOffset()
	return Translation(off.X, off.Y)
}

// BoundsInView returns w's rectangle in root coordinates.
func (w *Widget) BoundsInView() Rect {
	off := w.viewOffset()
	return Rect{off.X, off.Y, w.bounds.Width, w.bounds.Height}
}
