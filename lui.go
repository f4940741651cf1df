package lui

import (
	"math"
	"strconv"
)

// Point is a position or offset in logical pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p minus q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

func (p Point) String() string {
	return formatFloat(p.X) + " " + formatFloat(p.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. A Rect with a non-positive width
// or height is empty.
type Rect struct {
	X, Y, Width, Height float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Pos returns the top-left corner.
func (r Rect) Pos() Point { return Point{r.X, r.Y} }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// At returns a rectangle of the same size positioned at (x, y).
func (r Rect) At(x, y float64) Rect {
	return Rect{x, y, r.Width, r.Height}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inside; the right and bottom edges are not.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// ContainsRect reports whether other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Intersection returns the overlapping area of r and other, or the zero Rect
// when they do not intersect.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x1 := math.Max(r.X, other.X)
	y1 := math.Max(r.Y, other.Y)
	x2 := math.Min(r.Right(), other.Right())
	y2 := math.Min(r.Bottom(), other.Bottom())
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Union returns the smallest rectangle containing both r and other.
// Empty rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x1 := math.Min(r.X, other.X)
	y1 := math.Min(r.Y, other.Y)
	x2 := math.Max(r.Right(), other.Right())
	y2 := math.Max(r.Bottom(), other.Bottom())
	return Rect{x1, y1, x2 - x1, y2 - y1}
}

// Translated returns r moved by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{r.X + dx, r.Y + dy, r.Width, r.Height}
}

// Reduced shrinks r by dx on the left and right and dy on the top and bottom.
// The size never drops below zero.
func (r Rect) Reduced(dx, dy float64) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  math.Max(0, r.Width-2*dx),
		Height: math.Max(0, r.Height-2*dy),
	}
}

// Bigger grows r by d on every side.
func (r Rect) Bigger(d float64) Rect {
	return r.Reduced(-d, -d)
}

// Scaled multiplies position and size by f.
func (r Rect) Scaled(f float64) Rect {
	return Rect{r.X * f, r.Y * f, r.Width * f, r.Height * f}
}

// SliceTop removes amount from the top of r and returns the removed strip.
func (r *Rect) SliceTop(amount float64) Rect {
	amount = clamp(amount, 0, r.Height)
	s := Rect{r.X, r.Y, r.Width, amount}
	r.Y += amount
	r.Height -= amount
	return s
}

// SliceBottom removes amount from the bottom of r and returns the removed strip.
func (r *Rect) SliceBottom(amount float64) Rect {
	amount = clamp(amount, 0, r.Height)
	r.Height -= amount
	return Rect{r.X, r.Y + r.Height, r.Width, amount}
}

// SliceLeft removes amount from the left of r and returns the removed strip.
func (r *Rect) SliceLeft(amount float64) Rect {
	amount = clamp(amount, 0, r.Width)
	s := Rect{r.X, r.Y, amount, r.Height}
	r.X += amount
	r.Width -= amount
	return s
}

// SliceRight removes amount from the right of r and returns the removed strip.
func (r *Rect) SliceRight(amount float64) Rect {
	amount = clamp(amount, 0, r.Width)
	r.Width -= amount
	return Rect{r.X + r.Width, r.Y, amount, r.Height}
}

// String formats r as "x y width height".
func (r Rect) String() string {
	return formatFloat(r.X) + " " + formatFloat(r.Y) + " " +
		formatFloat(r.Width) + " " + formatFloat(r.Height)
}

// Range is a general-purpose min/max range.
// Used by Slider and for converting values between scales.
type Range struct {
	Min, Max float64
}

// Empty reports whether the range spans no values.
func (r Range) Empty() bool { return r.Min == r.Max }

// Diff returns Max - Min.
func (r Range) Diff() float64 { return r.Max - r.Min }

// Ratio returns the position of v within the range, 0 at Min and 1 at Max.
// An empty range yields 0.
func (r Range) Ratio(v float64) float64 {
	if r.Empty() {
		return 0
	}
	return (v - r.Min) / r.Diff()
}

// Convert maps v from r onto other.
func (r Range) Convert(other Range, v float64) float64 {
	return other.Min + r.Ratio(v)*other.Diff()
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return clamp(v, lo, hi)
}

// EventType identifies a kind of backend or interaction event.
type EventType uint8

const (
	EventPointerDown  EventType = iota // a pointer button was pressed
	EventPointerUp                     // a pointer button was released
	EventPointerMove                   // the pointer moved
	EventPointerEnter                  // the pointer entered a widget
	EventPointerLeave                  // the pointer left a widget or window
	EventClick                         // press then release over the same button
	EventScroll                        // wheel or touchpad scroll
	EventResize                        // a window changed size
	EventExpose                        // a window area needs repainting
	EventClose                         // the user asked to close a window
)

var eventTypeNames = [...]string{
	EventPointerDown:  "pointer-down",
	EventPointerUp:    "pointer-up",
	EventPointerMove:  "pointer-move",
	EventPointerEnter: "pointer-enter",
	EventPointerLeave: "pointer-leave",
	EventClick:        "click",
	EventScroll:       "scroll",
	EventResize:       "resize",
	EventExpose:       "expose",
	EventClose:        "close",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "event(" + strconv.Itoa(int(t)) + ")"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
