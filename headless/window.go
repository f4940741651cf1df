package headless

import (
	"image"
	"math"
	"slices"

	"github.com/lvtk/lui"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// OpKind identifies a recorded drawing primitive.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpText
	OpFillPath
	OpStrokePath
)

// Op is one primitive from the last paint, in window coordinates.
type Op struct {
	Kind  OpKind
	Rect  lui.Rect // fill area, text origin in X/Y, or path bounds
	Clip  lui.Rect
	Color lui.Color
	Text  string
	Width float64 // stroke width
}

// Window is an in-memory lui.Window.
type Window struct {
	b       *Backend
	id      lui.WindowID
	spec    lui.WindowSpec
	title   string
	visible bool
	x, y    int
	closed  bool

	img    *image.RGBA
	ops    []Op
	paints int
	last   lui.Rect
}

var _ lui.Window = (*Window)(nil)

func (w *Window) ID() lui.WindowID { return w.id }

// Handle returns a fake native handle derived from the id.
func (w *Window) Handle() uintptr { return uintptr(w.id) << 4 }

func (w *Window) SetTitle(title string) { w.title = title }

func (w *Window) SetVisible(visible bool) { w.visible = visible }

// SetSize resizes the backing image. Content in the overlapping area is kept.
func (w *Window) SetSize(width, height int) {
	if width < 0 || height < 0 {
		return
	}
	old := w.img
	w.img = image.NewRGBA(image.Rect(0, 0, width, height))
	if old != nil {
		draw.Draw(w.img, w.img.Bounds(), old, image.Point{}, draw.Src)
	}
}

func (w *Window) Size() (width, height int) {
	b := w.img.Bounds()
	return b.Dx(), b.Dy()
}

func (w *Window) SetPosition(x, y int) { w.x, w.y = x, y }

func (w *Window) ScaleFactor() float64 { return w.b.scale() }

// Paint runs draw against the backing image, restricted to region.
func (w *Window) Paint(region lui.Rect, drawFn func(lui.Surface)) error {
	if w.closed {
		return ErrClosed
	}
	w.paints++
	w.last = region
	w.ops = w.ops[:0]
	s := &surface{w: w, clip: toImageRect(region).Intersect(w.img.Bounds())}
	s.clipRect = region
	drawFn(s)
	return nil
}

func (w *Window) Close() error {
	w.closed = true
	return nil
}

// Title returns the current title.
func (w *Window) Title() string { return w.title }

// Visible reports the window visibility.
func (w *Window) Visible() bool { return w.visible }

// Position returns the screen position.
func (w *Window) Position() (x, y int) { return w.x, w.y }

// Closed reports whether Close was called.
func (w *Window) Closed() bool { return w.closed }

// Spec returns the creation parameters.
func (w *Window) Spec() lui.WindowSpec { return w.spec }

// Image returns the backing image. It is reused across paints.
func (w *Window) Image() *image.RGBA { return w.img }

// At returns the color of the pixel at (x, y).
func (w *Window) At(x, y int) lui.Color {
	return lui.ColorFrom(w.img.At(x, y))
}

// Ops returns the primitives drawn by the last paint.
func (w *Window) Ops() []Op { return w.ops }

// Texts returns the strings drawn by the last paint, in order.
func (w *Window) Texts() []string {
	var out []string
	for _, op := range w.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Paints returns the number of completed paints.
func (w *Window) Paints() int { return w.paints }

// LastRegion returns the region of the last paint.
func (w *Window) LastRegion() lui.Rect { return w.last }

// --- Surface ---

type surface struct {
	w        *Window
	clip     image.Rectangle
	clipRect lui.Rect
}

func (s *surface) SetClip(r lui.Rect) {
	s.clipRect = r
	s.clip = toImageRect(r).Intersect(s.w.img.Bounds())
}

func (s *surface) FillRect(r lui.Rect, c lui.Color) {
	s.w.ops = append(s.w.ops, Op{Kind: OpFill, Rect: r, Clip: s.clipRect, Color: c})
	dst := toImageRect(r).Intersect(s.clip)
	if dst.Empty() {
		return
	}
	op := draw.Over
	if c.Alpha() == 0xff {
		op = draw.Src
	}
	draw.Draw(s.w.img, dst, image.NewUniform(c), image.Point{}, op)
}

func (s *surface) DrawText(face font.Face, text string, x, y float64, c lui.Color) {
	s.w.ops = append(s.w.ops, Op{Kind: OpText, Rect: lui.Rect{X: x, Y: y}, Clip: s.clipRect, Color: c, Text: text})
	if s.clip.Empty() {
		return
	}
	if face == nil {
		face = lui.DefaultFace
	}
	d := font.Drawer{
		Dst:  s.w.img.SubImage(s.clip).(*image.RGBA),
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x * 64)),
			Y: fixed.Int26_6(math.Round((y + lui.TextAscent(face)) * 64)),
		},
	}
	d.DrawString(text)
}

// flatness is the maximum distance in pixels between a stroked curve and
// the polyline standing in for it.
const flatness = 0.2

func (s *surface) FillPath(p *lui.Path, c lui.Color) {
	s.w.ops = append(s.w.ops, Op{Kind: OpFillPath, Rect: p.Bounds(), Clip: s.clipRect, Color: c})
	z := s.rasterizer()
	if z == nil {
		return
	}
	ox, oy := float64(s.clip.Min.X), float64(s.clip.Min.Y)
	pt := func(x, y float64) (float32, float32) { return float32(x - ox), float32(y - oy) }
	open := false
	for _, it := range p.Items() {
		switch it.Op {
		case lui.PathMove:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(it.X1, it.Y1))
			open = true
		case lui.PathLine:
			z.LineTo(pt(it.X1, it.Y1))
		case lui.PathQuad:
			x1, y1 := pt(it.X1, it.Y1)
			x2, y2 := pt(it.X2, it.Y2)
			z.QuadTo(x1, y1, x2, y2)
		case lui.PathCubic:
			x1, y1 := pt(it.X1, it.Y1)
			x2, y2 := pt(it.X2, it.Y2)
			x3, y3 := pt(it.X3, it.Y3)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case lui.PathClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	s.drawMask(z, c)
}

// StrokePath covers each flattened segment with a quad and each joint with
// a square of side width, all wound clockwise.
func (s *surface) StrokePath(p *lui.Path, width float64, c lui.Color) {
	s.w.ops = append(s.w.ops, Op{Kind: OpStrokePath, Rect: p.Bounds(), Clip: s.clipRect, Color: c, Width: width})
	z := s.rasterizer()
	if z == nil || width <= 0 {
		return
	}
	off := lui.Point{X: float64(s.clip.Min.X), Y: float64(s.clip.Min.Y)}
	hw := width / 2
	for _, line := range p.Flatten(flatness) {
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			dx, dy := b.X-a.X, b.Y-a.Y
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			nx, ny := -dy/l*hw, dx/l*hw
			polygon(z, off,
				lui.Point{X: a.X + nx, Y: a.Y + ny},
				lui.Point{X: b.X + nx, Y: b.Y + ny},
				lui.Point{X: b.X - nx, Y: b.Y - ny},
				lui.Point{X: a.X - nx, Y: a.Y - ny})
		}
		for _, v := range line[1 : len(line)-1] {
			polygon(z, off,
				lui.Point{X: v.X - hw, Y: v.Y - hw},
				lui.Point{X: v.X + hw, Y: v.Y - hw},
				lui.Point{X: v.X + hw, Y: v.Y + hw},
				lui.Point{X: v.X - hw, Y: v.Y + hw})
		}
	}
	s.drawMask(z, c)
}

// rasterizer returns a rasterizer covering the clip, or nil when the clip
// is empty.
func (s *surface) rasterizer() *vector.Rasterizer {
	if s.clip.Empty() {
		return nil
	}
	return vector.NewRasterizer(s.clip.Dx(), s.clip.Dy())
}

func (s *surface) drawMask(z *vector.Rasterizer, c lui.Color) {
	z.DrawOp = draw.Over
	z.Draw(s.w.img, s.clip, image.NewUniform(c), image.Point{})
}

// polygon adds a closed polygon, offset by -off, with clockwise winding.
func polygon(z *vector.Rasterizer, off lui.Point, pts ...lui.Point) {
	var area float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area < 0 {
		slices.Reverse(pts)
	}
	z.MoveTo(float32(pts[0].X-off.X), float32(pts[0].Y-off.Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-off.X), float32(p.Y-off.Y))
	}
	z.ClosePath()
}

// toImageRect converts to whole pixels, covering every partially touched pixel.
func toImageRect(r lui.Rect) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}
