// Package lui is a small, embeddable GUI toolkit core.
//
// lui provides the widget tree, hit testing, pointer dispatch, damage
// tracking and painting that a plugin or tool UI needs, on top of a
// pluggable native [Backend]. The core never blocks and never owns the
// thread: the host calls [Main.Loop] at its own pace.
//
// # Quick start
//
//	m := lui.NewMain(lui.ModeProgram, headless.New())
//
//	root := lui.NewWidget()
//	root.SetName("Demo")
//	root.SetSize(550, 400)
//
//	ok := lui.NewButton()
//	ok.SetText("OK")
//	ok.SetBounds(20, 20, 90, 30)
//	ok.OnClick(func() { m.Exit(0) })
//	root.Add(ok)
//
//	if _, err := m.Elevate(root, lui.ViewResizable); err != nil {
//		os.Exit(1)
//	}
//	for m.Running() {
//		m.Loop(1.0 / 60.0)
//	}
//	os.Exit(m.ExitCode())
//
// The ebitenbackend package provides a real window and a Run helper that
// drives the loop from Ebitengine's update cycle.
//
// # Widgets
//
// Every element is a [Widget]. Bounds are relative to the parent in
// logical pixels. Children are painted after their parent, in order, so
// the last child is topmost and is hit first.
//
// Concrete widgets embed *Widget and create it with [NewWidgetFor] so that
// the optional capability interfaces they implement ([Painter],
// [Layouter], [PointerHandler], [HoverHandler], [ScrollHandler],
// [HitTester], [PointerCanceler]) are used during dispatch. [Button] and
// [Slider] are built this way.
//
// # Views and the loop
//
// [Main.Elevate] binds a detached root to a new native window and returns
// its [View]. Each call to [Main.Loop] drains backend events, dispatches
// them, fires timers ([Main.After], [Main.Every]), advances tweens
// ([Main.Animate]) and repaints the dirty region of every View.
//
// Callbacks run on the loop goroutine. A panicking callback is recovered
// and reported to the [ErrorHandler]; the loop keeps going.
//
// # ECS integration
//
// [Main.SetEventSink] forwards [InteractionEvent] values to an [EventSink].
// The lui/ecs package adapts this to a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package lui
