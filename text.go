package lui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace is the face used when a Graphics has no font set.
var DefaultFace font.Face = basicfont.Face7x13

// MeasureText returns the advance width and line height of a single line of
// text, rounded up to whole pixels.
func MeasureText(face font.Face, text string) (width, height float64) {
	if face == nil {
		face = DefaultFace
	}
	adv := font.MeasureString(face, text)
	return float64(adv.Ceil()), float64(face.Metrics().Height.Ceil())
}

// TextAscent returns the distance from the top of a line to its baseline.
// Surfaces add it to the y passed to DrawText.
func TextAscent(face font.Face) float64 {
	if face == nil {
		face = DefaultFace
	}
	return float64(face.Metrics().Ascent.Ceil())
}
