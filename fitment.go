package lui

import "math"

// Fitment describes how a source rectangle is scaled and aligned inside a
// destination rectangle. Flags combine with bitwise OR. The zero value
// behaves as Centered.
type Fitment uint16

const (
	FitLeft     Fitment = 1 << iota // align to the left edge
	FitRight                        // align to the right edge
	FitCenterX                      // center horizontally
	FitTop                          // align to the top edge
	FitBottom                       // align to the bottom edge
	FitCenterY                      // center vertically
	FitNoGrow                       // never scale up
	FitNoShrink                     // never scale down
	FitStretch                      // fill the destination, ignoring aspect ratio
	FitFill                         // cover the destination, keeping aspect ratio

	FitCentered   = FitCenterX | FitCenterY
	FitOnlyShrink = FitNoGrow
	FitOnlyGrow   = FitNoShrink
	FitNoResize   = FitNoGrow | FitNoShrink
)

// scale returns the uniform factor applied to a w x h source placed in dst.
func (f Fitment) scale(w, h float64, dst Rect) float64 {
	sx := dst.Width / w
	sy := dst.Height / h
	s := math.Min(sx, sy)
	if f&FitFill != 0 {
		s = math.Max(sx, sy)
	}
	if f&FitNoGrow != 0 && s > 1 {
		s = 1
	}
	if f&FitNoShrink != 0 && s < 1 {
		s = 1
	}
	return s
}

// Apply returns src scaled and positioned inside dst. A source with zero
// width or height is returned unchanged.
func (f Fitment) Apply(src, dst Rect) Rect {
	if src.Width == 0 || src.Height == 0 {
		return src
	}
	if f&FitStretch != 0 {
		return dst
	}
	s := f.scale(src.Width, src.Height, dst)
	w := src.Width * s
	h := src.Height * s
	return Rect{f.alignX(w, dst), f.alignY(h, dst), w, h}
}

// Transform returns the mapping from src into the rectangle Apply would
// produce. An empty source yields Identity.
func (f Fitment) Transform(src, dst Rect) Transform {
	if src.Width == 0 || src.Height == 0 {
		return Identity
	}
	if f&FitStretch != 0 {
		return Translation(-src.X, -src.Y).
			ScaledXY(dst.Width/src.Width, dst.Height/src.Height).
			Translated(dst.X, dst.Y)
	}
	out := f.Apply(src, dst)
	s := out.Width / src.Width
	return Translation(-src.X, -src.Y).Scaled(s).Translated(out.X, out.Y)
}

func (f Fitment) alignX(w float64, dst Rect) float64 {
	switch {
	case f&FitLeft != 0:
		return dst.X
	case f&FitRight != 0:
		return dst.X + dst.Width - w
	default:
		return dst.X + (dst.Width-w)/2
	}
}

func (f Fitment) alignY(h float64, dst Rect) float64 {
	switch {
	case f&FitTop != 0:
		return dst.Y
	case f&FitBottom != 0:
		return dst.Y + dst.Height - h
	default:
		return dst.Y + (dst.Height-h)/2
	}
}
