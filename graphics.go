package lui

import "golang.org/x/image/font"

type graphicsState struct {
	origin Point // translation from local to surface coordinates
	clip   Rect  // surface coordinates
	color  Color
	alpha  float64
	face   font.Face
	line   float64 // stroke width
}

// Graphics is the drawing context passed to Painter.Paint. Coordinates are
// local to the widget being painted; the clip starts at the widget bounds
// intersected with the region being repainted.
type Graphics struct {
	surface Surface
	state   graphicsState
	stack   []graphicsState

	applied    Rect
	clipSynced bool
}

// NewGraphics wraps a Surface. clip is the paintable area in surface
// coordinates.
func NewGraphics(s Surface, clip Rect) *Graphics {
	return &Graphics{
		surface: s,
		state: graphicsState{
			clip:  clip,
			color: Black,
			alpha: 1,
			face:  DefaultFace,
			line:  1,
		},
	}
}

// Save pushes the current origin, clip, color, alpha, font and line width.
func (g *Graphics) Save() {
	g.stack = append(g.stack, g.state)
}

// Restore pops the state pushed by the matching Save.
func (g *Graphics) Restore() {
	if len(g.stack) == 0 {
		return
	}
	g.state = g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
}

func (g *Graphics) depth() int { return len(g.stack) }

func (g *Graphics) restoreTo(depth int) {
	for len(g.stack) > depth {
		g.Restore()
	}
}

// Translate moves the origin by (dx, dy).
func (g *Graphics) Translate(dx, dy float64) {
	g.state.origin.X += dx
	g.state.origin.Y += dy
}

// Origin returns the current origin in surface coordinates.
func (g *Graphics) Origin() Point { return g.state.origin }

// ClipRect intersects the clip with r, in local coordinates. It reports
// whether anything remains drawable.
func (g *Graphics) ClipRect(r Rect) bool {
	abs := r.Translated(g.state.origin.X, g.state.origin.Y)
	g.state.clip = g.state.clip.Intersection(abs)
	return !g.state.clip.Empty()
}

// Clip returns the clip in local coordinates.
func (g *Graphics) Clip() Rect {
	return g.state.clip.Translated(-g.state.origin.X, -g.state.origin.Y)
}

// SetColor sets the color for fills and text.
func (g *Graphics) SetColor(c Color) { g.state.color = c }

// Color returns the current color.
func (g *Graphics) Color() Color { return g.state.color }

// MultiplyAlpha scales the opacity of everything drawn afterwards.
func (g *Graphics) MultiplyAlpha(a float64) {
	g.state.alpha *= clamp(a, 0, 1)
}

// Alpha returns the current opacity multiplier.
func (g *Graphics) Alpha() float64 { return g.state.alpha }

// SetFont sets the face used by DrawText and MeasureText. Nil restores
// DefaultFace.
func (g *Graphics) SetFont(face font.Face) {
	if face == nil {
		face = DefaultFace
	}
	g.state.face = face
}

// Font returns the current face.
func (g *Graphics) Font() font.Face { return g.state.face }

// SetLineWidth sets the width used by StrokePath. Non-positive widths are
// ignored.
func (g *Graphics) SetLineWidth(width float64) {
	if width > 0 {
		g.state.line = width
	}
}

// LineWidth returns the stroke width.
func (g *Graphics) LineWidth() float64 { return g.state.line }

// FillRect fills r, in local coordinates, with the current color.
func (g *Graphics) FillRect(r Rect) {
	abs := r.Translated(g.state.origin.X, g.state.origin.Y).Intersection(g.state.clip)
	if abs.Empty() {
		return
	}
	c := g.effectiveColor()
	if c.Alpha() == 0 {
		return
	}
	g.syncClip()
	g.surface.FillRect(abs, c)
}

// FillAll fills the whole clip.
func (g *Graphics) FillAll() {
	g.FillRect(g.Clip())
}

// DrawRect outlines r with lines of the given thickness, drawn inside r.
func (g *Graphics) DrawRect(r Rect, thickness float64) {
	if thickness <= 0 || r.Empty() {
		return
	}
	t := thickness
	inner := r
	g.FillRect(inner.SliceTop(t))
	g.FillRect(inner.SliceBottom(t))
	g.FillRect(inner.SliceLeft(t))
	g.FillRect(inner.SliceRight(t))
}

// FillPath fills p, in local coordinates, with the current color.
func (g *Graphics) FillPath(p *Path) {
	if abs, c, ok := g.pathOnSurface(p, 0); ok {
		g.surface.FillPath(abs, c)
	}
}

// StrokePath outlines p, in local coordinates, with the current color and
// line width. The line is centered on the path.
func (g *Graphics) StrokePath(p *Path) {
	if abs, c, ok := g.pathOnSurface(p, g.state.line/2); ok {
		g.surface.StrokePath(abs, g.state.line, c)
	}
}

// FillEllipse fills the ellipse inscribed in r.
func (g *Graphics) FillEllipse(r Rect) {
	var p Path
	p.AddEllipse(r)
	g.FillPath(&p)
}

// FillRoundedRect fills r with every corner rounded by radius.
func (g *Graphics) FillRoundedRect(r Rect, radius float64) {
	var p Path
	p.AddRoundedRect(r, radius, radius, AllCorners)
	g.FillPath(&p)
}

// pathOnSurface moves p into surface coordinates and syncs the clip. It
// reports false when nothing would be drawn. grow widens the bounds used
// for the visibility check.
func (g *Graphics) pathOnSurface(p *Path, grow float64) (*Path, Color, bool) {
	if p == nil || p.Empty() || g.state.clip.Empty() {
		return nil, 0, false
	}
	c := g.effectiveColor()
	if c.Alpha() == 0 {
		return nil, 0, false
	}
	abs := p
	if o := g.state.origin; o.X != 0 || o.Y != 0 {
		abs = p.Transformed(Translation(o.X, o.Y))
	}
	if !abs.Bounds().Bigger(grow).Intersects(g.state.clip) {
		return nil, 0, false
	}
	g.syncClip()
	return abs, c, true
}

// DrawText draws a single line of text placed inside r according to fit.
// Text is never scaled; fit only aligns it.
func (g *Graphics) DrawText(text string, r Rect, fit Fitment) {
	if text == "" {
		return
	}
	w, h := MeasureText(g.state.face, text)
	box := (fit | FitNoResize).Apply(Rect{0, 0, w, h}, r)
	g.DrawTextAt(text, box.X, box.Y)
}

// DrawTextAt draws text with its top-left corner at (x, y).
func (g *Graphics) DrawTextAt(text string, x, y float64) {
	if text == "" || g.state.clip.Empty() {
		return
	}
	c := g.effectiveColor()
	if c.Alpha() == 0 {
		return
	}
	g.syncClip()
	g.surface.DrawText(g.state.face, text, x+g.state.origin.X, y+g.state.origin.Y, c)
}

// MeasureText returns the size of text in the current face.
func (g *Graphics) MeasureText(text string) (width, height float64) {
	return MeasureText(g.state.face, text)
}

func (g *Graphics) effectiveColor() Color {
	c := g.state.color
	if g.state.alpha >= 1 {
		return c
	}
	return c.WithAlphaFloat(c.FAlpha() * g.state.alpha)
}

func (g *Graphics) syncClip() {
	if g.clipSynced && g.applied == g.state.clip {
		return
	}
	g.surface.SetClip(g.state.clip)
	g.applied = g.state.clip
	g.clipSynced = true
}
