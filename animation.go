package lui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 properties of a Widget simultaneously.
// Create one via the convenience constructors (TweenBounds, TweenPosition,
// TweenAlpha) and either call Update(dt) each frame or hand it to
// Main.Animate. The group writes values through the widget's setters, so
// repaint and layout follow. If the target widget is disposed, the group
// stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	values [4]float64
	count  int
	apply  func(v *[4]float64)
	target *Widget
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target. If the target widget has been disposed, Done is set to true and
// no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.Disposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(&g.values)
}

// Stop ends the group without applying further values.
func (g *TweenGroup) Stop() { g.Done = true }

// Target returns the animated widget.
func (g *TweenGroup) Target() *Widget { return g.target }

func newTweenGroup(w *Widget, from, to []float64, duration float32, fn ease.TweenFunc, apply func(v *[4]float64)) *TweenGroup {
	g := &TweenGroup{count: len(from), apply: apply, target: w}
	if fn == nil {
		fn = ease.Linear
	}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
		g.values[i] = from[i]
	}
	return g
}

// tweenTarget returns c's widget, or nil when there is nothing to animate.
func tweenTarget(c Component) *Widget {
	if c == nil {
		return nil
	}
	return c.Base()
}

// TweenBounds creates a TweenGroup that animates the widget's bounds to r
// over the specified duration using the easing function. Negative
// intermediate sizes are clamped to zero. For a nil c the group starts Done.
func TweenBounds(c Component, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	w := tweenTarget(c)
	if w == nil {
		return &TweenGroup{Done: true}
	}
	b := w.Bounds()
	return newTweenGroup(w,
		[]float64{b.X, b.Y, b.Width, b.Height},
		[]float64{to.X, to.Y, to.Width, to.Height},
		duration, fn,
		func(v *[4]float64) { w.SetBounds(v[0], v[1], max(v[2], 0), max(v[3], 0)) })
}

// TweenPosition creates a TweenGroup that animates the widget's position to
// (toX, toY).
func TweenPosition(c Component, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	w := tweenTarget(c)
	if w == nil {
		return &TweenGroup{Done: true}
	}
	return newTweenGroup(w,
		[]float64{w.X(), w.Y()},
		[]float64{toX, toY},
		duration, fn,
		func(v *[4]float64) { w.SetPosition(v[0], v[1]) })
}

// TweenAlpha creates a TweenGroup that animates the widget's opacity to the
// target value.
func TweenAlpha(c Component, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	w := tweenTarget(c)
	if w == nil {
		return &TweenGroup{Done: true}
	}
	return newTweenGroup(w,
		[]float64{w.Alpha()},
		[]float64{to},
		duration, fn,
		func(v *[4]float64) { w.SetAlpha(v[0]) })
}
