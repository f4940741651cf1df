package lui

import "math"

// PathOp identifies the kind of a path segment.
type PathOp uint8

const (
	PathMove PathOp = iota
	PathLine
	PathQuad
	PathCubic
	PathClose
)

var pathOpNames = [...]string{"move", "line", "quad", "cubic", "close"}

func (op PathOp) String() string {
	if int(op) < len(pathOpNames) {
		return pathOpNames[op]
	}
	return "unknown"
}

// PathItem is one path segment. Move and Line use X1/Y1; Quad uses the
// control point X1/Y1 and end point X2/Y2; Cubic uses all three points.
type PathItem struct {
	Op     PathOp
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// Corners selects the corners rounded by AddRoundedRect.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	AllCorners = CornerTopLeft | CornerTopRight | CornerBottomLeft | CornerBottomRight
)

// kappa places cubic control points for a quarter ellipse.
const kappa = 0.5522847498

// Path is a sequence of sub-paths made of lines and Bézier curves.
// The zero value is an empty path ready to use.
type Path struct {
	items []PathItem
}

// Items returns the segments in order. The returned slice MUST NOT be
// mutated.
func (p *Path) Items() []PathItem { return p.items }

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.items) }

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool { return len(p.items) == 0 }

// Clear removes every segment and keeps the allocated storage.
func (p *Path) Clear() { p.items = p.items[:0] }

// Reserve grows the storage to hold n more segments without reallocating.
func (p *Path) Reserve(n int) {
	if n <= 0 || cap(p.items)-len(p.items) >= n {
		return
	}
	items := make([]PathItem, len(p.items), len(p.items)+n)
	copy(items, p.items)
	p.items = items
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.items = append(p.items, PathItem{Op: PathMove, X1: x, Y1: y})
}

// ensureStart begins the path at the origin when nothing precedes a
// drawing segment.
func (p *Path) ensureStart() {
	if len(p.items) == 0 {
		p.MoveTo(0, 0)
	}
}

// LineTo adds a straight line to (x, y). On an empty path the line starts
// at the origin.
func (p *Path) LineTo(x, y float64) {
	p.ensureStart()
	p.items = append(p.items, PathItem{Op: PathLine, X1: x, Y1: y})
}

// QuadTo adds a quadratic Bézier curve through control point (x1, y1)
// ending at (x2, y2).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.ensureStart()
	p.items = append(p.items, PathItem{Op: PathQuad, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// CubicTo adds a cubic Bézier curve through control points (x1, y1) and
// (x2, y2) ending at (x3, y3).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.ensureStart()
	p.items = append(p.items, PathItem{Op: PathCubic, X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3})
}

// Close joins the current sub-path back to its start. Closing an empty or
// already closed path does nothing.
func (p *Path) Close() {
	if n := len(p.items); n == 0 || p.items[n-1].Op == PathClose {
		return
	}
	p.items = append(p.items, PathItem{Op: PathClose})
}

// AddRect adds r as a closed sub-path.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.X, r.Y)
	p.LineTo(r.Right(), r.Y)
	p.LineTo(r.Right(), r.Bottom())
	p.LineTo(r.X, r.Bottom())
	p.Close()
}

// AddEllipse adds the ellipse inscribed in r as a closed sub-path of four
// cubic curves. Empty rectangles add nothing.
func (p *Path) AddEllipse(r Rect) {
	if r.Empty() {
		return
	}
	rx, ry := r.Width/2, r.Height/2
	cx, cy := r.X+rx, r.Y+ry
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// AddRoundedRect adds r with the selected corners rounded by radii rx and
// ry, clamped to half the size. Corners not selected stay square.
func (p *Path) AddRoundedRect(r Rect, rx, ry float64, corners Corners) {
	if r.Empty() {
		return
	}
	rx = math.Min(rx, r.Width/2)
	ry = math.Min(ry, r.Height/2)
	if rx <= 0 || ry <= 0 {
		corners = 0
	}
	x1, y1, x2, y2 := r.X, r.Y, r.Right(), r.Bottom()
	kx, ky := rx*kappa, ry*kappa
	round := func(c Corners) bool { return corners&c != 0 }

	if round(CornerTopLeft) {
		p.MoveTo(x1+rx, y1)
	} else {
		p.MoveTo(x1, y1)
	}
	if round(CornerTopRight) {
		p.LineTo(x2-rx, y1)
		p.CubicTo(x2-rx+kx, y1, x2, y1+ry-ky, x2, y1+ry)
	} else {
		p.LineTo(x2, y1)
	}
	if round(CornerBottomRight) {
		p.LineTo(x2, y2-ry)
		p.CubicTo(x2, y2-ry+ky, x2-rx+kx, y2, x2-rx, y2)
	} else {
		p.LineTo(x2, y2)
	}
	if round(CornerBottomLeft) {
		p.LineTo(x1+rx, y2)
		p.CubicTo(x1+rx-kx, y2, x1, y2-ry+ky, x1, y2-ry)
	} else {
		p.LineTo(x1, y2)
	}
	if round(CornerTopLeft) {
		p.LineTo(x1, y1+ry)
		p.CubicTo(x1, y1+ry-ky, x1+rx-kx, y1, x1+rx, y1)
	}
	p.Close()
}

// points returns the number of points an item of op carries.
func (op PathOp) points() int {
	switch op {
	case PathMove, PathLine:
		return 1
	case PathQuad:
		return 2
	case PathCubic:
		return 3
	}
	return 0
}

// Bounds returns the smallest rectangle holding every point of the path,
// control points included. Straight horizontal or vertical paths yield a
// zero width or height.
func (p *Path) Bounds() Rect {
	first := true
	var x1, y1, x2, y2 float64
	for i := range p.items {
		it := &p.items[i]
		pts := [3]Point{{it.X1, it.Y1}, {it.X2, it.Y2}, {it.X3, it.Y3}}
		for _, pt := range pts[:it.Op.points()] {
			if first {
				x1, y1, x2, y2 = pt.X, pt.Y, pt.X, pt.Y
				first = false
				continue
			}
			x1, y1 = math.Min(x1, pt.X), math.Min(y1, pt.Y)
			x2, y2 = math.Max(x2, pt.X), math.Max(y2, pt.Y)
		}
	}
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Transformed returns a copy of the path with every point mapped by t.
func (p *Path) Transformed(t Transform) *Path {
	out := &Path{items: make([]PathItem, len(p.items))}
	for i, it := range p.items {
		n := it.Op.points()
		if n >= 1 {
			q := t.Map(Point{it.X1, it.Y1})
			it.X1, it.Y1 = q.X, q.Y
		}
		if n >= 2 {
			q := t.Map(Point{it.X2, it.Y2})
			it.X2, it.Y2 = q.X, q.Y
		}
		if n >= 3 {
			q := t.Map(Point{it.X3, it.Y3})
			it.X3, it.Y3 = q.X, q.Y
		}
		out.items[i] = it
	}
	return out
}

// Flatten approximates the path with polylines, one per sub-path, so that
// curves deviate from their chords by roughly tolerance. Closed sub-paths
// end with their starting point. Sub-paths with a single point are dropped.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out        [][]Point
		cur        []Point
		pen, start Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, it := range p.items {
		if it.Op != PathMove && it.Op != PathClose && cur == nil {
			cur = []Point{pen}
		}
		switch it.Op {
		case PathMove:
			flush()
			start = Point{it.X1, it.Y1}
			pen = start
			cur = []Point{pen}
		case PathLine:
			pen = Point{it.X1, it.Y1}
			cur = append(cur, pen)
		case PathQuad:
			c, end := Point{it.X1, it.Y1}, Point{it.X2, it.Y2}
			n := curveSteps(tolerance, pen, c, end)
			for i := 1; i <= n; i++ {
				cur = append(cur, quadAt(pen, c, end, float64(i)/float64(n)))
			}
			pen = end
		case PathCubic:
			c1, c2, end := Point{it.X1, it.Y1}, Point{it.X2, it.Y2}, Point{it.X3, it.Y3}
			n := curveSteps(tolerance, pen, c1, c2, end)
			for i := 1; i <= n; i++ {
				cur = append(cur, cubicAt(pen, c1, c2, end, float64(i)/float64(n)))
			}
			pen = end
		case PathClose:
			if len(cur) > 0 && cur[len(cur)-1] != start {
				cur = append(cur, start)
			}
			flush()
			pen = start
		}
	}
	flush()
	return out
}

// curveSteps picks a segment count from the control polygon length.
func curveSteps(tolerance float64, pts ...Point) int {
	var length float64
	for i := 1; i < len(pts); i++ {
		length += math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	n := int(math.Ceil(math.Sqrt(length / tolerance)))
	return min(max(n, 1), 100)
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	return Point{
		u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
