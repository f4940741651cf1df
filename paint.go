package lui

// paintStats counts work done in one paint pass. Only reported in debug mode.
type paintStats struct {
	widgets  int
	skipped  int
	occluded int
}

// paintWidget paints w and its subtree. g's origin is w's parent origin on
// entry. Widgets outside the clip are skipped, and so is everything beneath
// a fully opaque child covering the whole clip.
func paintWidget(w *Widget, g *Graphics, rep reporter, stats *paintStats) {
	if !w.visible || w.bounds.Empty() || w.alpha <= 0 {
		return
	}
	depth := g.depth()
	g.Save()
	defer g.restoreTo(depth)

	if w.parent != nil {
		g.Translate(w.bounds.X, w.bounds.Y)
	}
	if !g.ClipRect(w.LocalBounds()) {
		stats.skipped++
		return
	}
	g.MultiplyAlpha(w.alpha)
	stats.widgets++

	clip := g.Clip()
	start := occludingChild(w, clip)
	if start < 0 {
		inner := g.depth()
		g.Save()
		rep.call("lui.Widget.Paint", func() { w.paintSelf(g) })
		g.restoreTo(inner)
		start = 0
	} else {
		stats.occluded += start + 1
	}

	for _, c := range w.children[start:] {
		if !c.visible || !c.bounds.Intersects(clip) {
			stats.skipped++
			continue
		}
		paintWidget(c, g, rep, stats)
	}
}

// occludingChild returns the index of the topmost child that is visible,
// opaque, fully solid and covers clip, or -1.
func occludingChild(w *Widget, clip Rect) int {
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i]
		if c.visible && c.opaque && c.alpha >= 1 && c.bounds.ContainsRect(clip) {
			return i
		}
	}
	return -1
}
