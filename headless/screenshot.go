package headless

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/draw"
)

// Snapshot returns a straight-alpha copy of the window content at device
// resolution. Windows with a scale factor other than 1 are scaled with
// nearest-neighbour sampling.
func (w *Window) Snapshot() *image.NRGBA {
	src := w.img
	sb := src.Bounds()
	scale := w.ScaleFactor()
	if scale == 1 {
		dst := image.NewNRGBA(sb)
		draw.Draw(dst, sb, src, sb.Min, draw.Src)
		return dst
	}
	dw := int(math.Ceil(float64(sb.Dx()) * scale))
	dh := int(math.Ceil(float64(sb.Dy()) * scale))
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}

// Screenshot writes the window content to dir as a PNG named after the
// current time and label, and returns the file path.
func (w *Window) Screenshot(dir, label string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, w.Snapshot()); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
