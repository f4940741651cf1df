// Package headless is an in-memory lui backend for tests, CI and scripted
// screenshots.
//
// Windows rasterize into an [image.RGBA] and keep a display list of the
// primitives drawn in the last paint. Input is injected with methods such
// as [Backend.Click] and [Backend.Drag]; like real input, synthetic pointer
// events are delivered one per loop iteration, so a drag over N frames
// takes N calls to Main.Loop.
//
//	b := headless.New()
//	m := lui.NewMain(lui.ModeProgram, b)
//	view, _ := m.Elevate(root, lui.ViewNone)
//	w := b.Window(view.Window().ID())
//	b.Click(w.ID(), 40, 30)
//	for b.Pending() > 0 {
//		m.Loop(1.0 / 60)
//	}
//
// Scripts loaded with [LoadScript] drive the same injection API from JSON
// or YAML.
package headless
