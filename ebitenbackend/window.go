package ebitenbackend

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lvtk/lui"
	"golang.org/x/image/font"
)

// change flags record window properties not yet pushed to Ebitengine.
type change uint8

const (
	changeTitle change = 1 << iota
	changeSize
	changePosition
	changeFlags
	changeAll = changeTitle | changeSize | changePosition | changeFlags
)

// Window is the single Ebitengine window.
type Window struct {
	id      lui.WindowID
	spec    lui.WindowSpec
	title   string
	visible bool
	w, h    int
	x, y    int
	closed  bool
	changed change

	canvas *ebiten.Image
	faces  map[font.Face]*text.GoXFace
}

var _ lui.Window = (*Window)(nil)

func (w *Window) ID() lui.WindowID { return w.id }

// Handle returns 0; Ebitengine does not expose native handles.
func (w *Window) Handle() uintptr { return 0 }

func (w *Window) SetTitle(title string) {
	w.title = title
	w.changed |= changeTitle
}

// SetVisible is recorded only; Ebitengine windows cannot be hidden.
func (w *Window) SetVisible(visible bool) { w.visible = visible }

func (w *Window) SetSize(width, height int) {
	if width < 0 || height < 0 || (width == w.w && height == w.h) {
		return
	}
	w.w, w.h = width, height
	w.changed |= changeSize
}

func (w *Window) Size() (width, height int) { return w.w, w.h }

func (w *Window) SetPosition(x, y int) {
	w.x, w.y = x, y
	w.changed |= changePosition
}

func (w *Window) ScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

// Paint draws into the retained canvas.
func (w *Window) Paint(region lui.Rect, draw func(lui.Surface)) error {
	if w.closed {
		return nil
	}
	w.ensureCanvas()
	s := &surface{w: w}
	s.SetClip(region)
	draw(s)
	return nil
}

func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.canvas != nil {
		w.canvas.Deallocate()
		w.canvas = nil
	}
	return nil
}

// Closed reports whether the window was closed.
func (w *Window) Closed() bool { return w.closed }

// ensureCanvas allocates the canvas at the current size, keeping old content.
func (w *Window) ensureCanvas() {
	cw, ch := max(w.w, 1), max(w.h, 1)
	if w.canvas != nil {
		b := w.canvas.Bounds()
		if b.Dx() == cw && b.Dy() == ch {
			return
		}
	}
	img := ebiten.NewImage(cw, ch)
	if old := w.canvas; old != nil {
		img.DrawImage(old, nil)
		old.Deallocate()
	}
	w.canvas = img
}

// sync pushes recorded property changes to Ebitengine.
func (w *Window) sync() {
	c := w.changed
	w.changed = 0
	if c&changeTitle != 0 {
		ebiten.SetWindowTitle(w.title)
	}
	if c&changeSize != 0 && w.w > 0 && w.h > 0 {
		ebiten.SetWindowSize(w.w, w.h)
	}
	if c&changePosition != 0 && (w.x != 0 || w.y != 0) {
		ebiten.SetWindowPosition(w.x, w.y)
	}
	if c&changeFlags != 0 {
		mode := ebiten.WindowResizingModeDisabled
		if w.spec.Flags&lui.ViewResizable != 0 {
			mode = ebiten.WindowResizingModeEnabled
		}
		ebiten.SetWindowResizingMode(mode)
		ebiten.SetWindowDecorated(w.spec.Flags&lui.ViewBorderless == 0)
		ebiten.SetWindowFloating(w.spec.Flags&lui.ViewAlwaysOnTop != 0)
		ebiten.SetWindowClosingHandled(true)
	}
}

func (w *Window) face(f font.Face) *text.GoXFace {
	if f == nil {
		f = lui.DefaultFace
	}
	if gf, ok := w.faces[f]; ok {
		return gf
	}
	if w.faces == nil {
		w.faces = make(map[font.Face]*text.GoXFace)
	}
	gf := text.NewGoXFace(f)
	w.faces[f] = gf
	return gf
}

// --- Surface ---

type surface struct {
	w      *Window
	clip   image.Rectangle
	target *ebiten.Image
}

func (s *surface) SetClip(r lui.Rect) {
	s.clip = image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	).Intersect(s.w.canvas.Bounds())
	s.target = nil
	if !s.clip.Empty() {
		s.target = s.w.canvas.SubImage(s.clip).(*ebiten.Image)
	}
}

func (s *surface) FillRect(r lui.Rect, c lui.Color) {
	if s.target == nil || r.Empty() {
		return
	}
	if c.Alpha() == 0xff {
		// Opaque fills replace the retained content beneath them.
		if area := image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom()))).Intersect(s.clip); area == s.clip {
			s.target.Fill(c)
			return
		}
	}
	vector.DrawFilledRect(s.target, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c, false)
}

func (s *surface) DrawText(f font.Face, str string, x, y float64, c lui.Color) {
	if s.target == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.target, str, s.w.face(f), op)
}

func (s *surface) FillPath(p *lui.Path, c lui.Color) {
	if s.target == nil {
		return
	}
	vector.FillPath(s.target, vectorPath(p), nil, pathOptions(c))
}

func (s *surface) StrokePath(p *lui.Path, width float64, c lui.Color) {
	if s.target == nil || width <= 0 {
		return
	}
	so := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	vector.StrokePath(s.target, vectorPath(p), so, pathOptions(c))
}

func pathOptions(c lui.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	return op
}

// vectorPath converts p to an Ebitengine path in canvas coordinates.
func vectorPath(p *lui.Path) *vector.Path {
	var vp vector.Path
	f := func(v float64) float32 { return float32(v) }
	for _, it := range p.Items() {
		switch it.Op {
		case lui.PathMove:
			vp.MoveTo(f(it.X1), f(it.Y1))
		case lui.PathLine:
			vp.LineTo(f(it.X1), f(it.Y1))
		case lui.PathQuad:
			vp.QuadTo(f(it.X1), f(it.Y1), f(it.X2), f(it.Y2))
		case lui.PathCubic:
			vp.CubicTo(f(it.X1), f(it.Y1), f(it.X2), f(it.Y2), f(it.X3), f(it.Y3))
		case lui.PathClose:
			vp.Close()
		}
	}
	return &vp
}
