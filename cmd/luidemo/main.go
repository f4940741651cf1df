// Luidemo opens a window with three buttons. Exit stops the program with
// exit code 0; the other two print to stdout.
//
// Usage:
//
//	luidemo [-config lui.yaml] [-backend ebiten|headless] [-script steps.json] [-shots dir] [-frames n]
//
// With the headless backend the program runs without a display: it plays
// the script, if any, writing screenshots to -shots, or runs -frames loop
// iterations.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lvtk/lui"
	"github.com/lvtk/lui/ebitenbackend"
	"github.com/lvtk/lui/headless"
	"github.com/lvtk/lui/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	config  string
	backend string
	script  string
	shots   string
	frames  int
	fps     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("luidemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{}
	fs.StringVar(&o.config, "config", config.FileName, "optional YAML configuration file")
	fs.StringVar(&o.backend, "backend", "", "ebiten or headless (overrides the config file)")
	fs.StringVar(&o.script, "script", "", "JSON or YAML input script (headless only)")
	fs.StringVar(&o.shots, "shots", "screenshots", "screenshot directory for scripts")
	fs.IntVar(&o.frames, "frames", 600, "maximum loop iterations in headless mode")
	fs.BoolVar(&o.fps, "fps", false, "show FPS (ebiten only)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// run returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	cfg, err := config.Resolve(o.config, ".")
	if err != nil {
		fmt.Fprintf(stderr, "luidemo: %v\n", err)
		return 1
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}

	var backend lui.Backend
	switch cfg.Backend {
	case "ebiten":
		backend = ebitenbackend.New()
	case "headless":
		backend = headless.New()
	default:
		fmt.Fprintf(stderr, "luidemo: unknown backend %q\n", cfg.Backend)
		return 1
	}

	m := lui.NewMain(cfg.Mode, backend)
	cfg.Apply(m)
	m.SetLogOutput(stderr)

	root := newDemo(m, cfg, stdout)
	view, err := m.Elevate(root, cfg.Flags)
	if err != nil {
		fmt.Fprintf(stderr, "luidemo: %v\n", err)
		return 1
	}

	switch b := backend.(type) {
	case *ebitenbackend.Backend:
		err = ebitenbackend.Run(m, ebitenbackend.RunConfig{TPS: cfg.Rate, ShowFPS: o.fps})
	case *headless.Backend:
		err = runHeadless(m, b, view, cfg.Rate, o)
	}
	if err != nil {
		fmt.Fprintf(stderr, "luidemo: %v\n", err)
		return 1
	}
	return m.ExitCode()
}

func runHeadless(m *lui.Main, b *headless.Backend, view *lui.View, rate int, o *options) error {
	dt := 1 / float64(rate)
	w := b.Window(view.Window().ID())
	if o.script != "" {
		data, err := os.ReadFile(o.script)
		if err != nil {
			return err
		}
		r, err := headless.LoadScript(data)
		if err != nil {
			return err
		}
		r.Dir = o.shots
		return r.Run(m, w, dt, o.frames)
	}
	for i := 0; i < o.frames && m.Running(); i++ {
		if err := m.Loop(dt); err != nil {
			return err
		}
	}
	return nil
}

// newDemo builds the root widget: a window-sized panel with three buttons
// along the bottom edge.
func newDemo(m *lui.Main, cfg *config.Resolved, out io.Writer) *lui.Widget {
	root := lui.NewWidget()
	root.SetName(cfg.Title)
	root.SetSize(float64(cfg.Width), float64(cfg.Height))

	buttons := []struct {
		name, text string
		onClick    func()
	}{
		{"hello", "Hello", func() { fmt.Fprintln(out, "hello") }},
		{"about", "About", func() { fmt.Fprintln(out, "lui demo") }},
		{"exit", "Exit", func() { m.Exit(0) }},
	}
	for _, spec := range buttons {
		b := lui.NewButton()
		b.SetName(spec.name)
		b.SetText(spec.text)
		b.OnClick(spec.onClick)
		root.Add(b)
	}

	// Buttons are 110x40 and keep a 20px margin; Exit sits in the bottom
	// right corner.
	root.SetLayout(func(w *lui.Widget) {
		const bw, bh, margin = 110, 40, 20
		y := w.Height() - bh - margin
		w.FindByName("hello").SetBounds(margin, y, bw, bh)
		w.FindByName("about").SetBounds(margin*2+bw, y, bw, bh)
		w.FindByName("exit").SetBounds(w.Width()-bw-margin, y, bw, bh)
	})
	return root
}
