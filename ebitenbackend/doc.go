// Package ebitenbackend runs lui on Ebitengine.
//
// Ebitengine owns a single window per process, so the backend supports one
// open View at a time. [Run] drives Main.Loop from the game's Update and
// returns when the Main stops or the window is closed:
//
//	b := ebitenbackend.New()
//	m := lui.NewMain(lui.ModeProgram, b)
//	if _, err := m.Elevate(root, lui.ViewResizable); err != nil {
//		log.Fatal(err)
//	}
//	if err := ebitenbackend.Run(m, ebitenbackend.RunConfig{ShowFPS: true}); err != nil {
//		log.Fatal(err)
//	}
//	os.Exit(m.ExitCode())
//
// Widgets paint into a retained offscreen image; only dirty regions are
// redrawn and the image is copied to the screen every frame.
package ebitenbackend
