package headless

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/lvtk/lui"
	"gopkg.in/yaml.v3"
)

// step is a single action in a script.
type step struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	DX     float64 `yaml:"dx,omitempty"`
	DY     float64 `yaml:"dy,omitempty"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type script struct {
	Steps []step `yaml:"steps"`
}

var actions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"move":       true,
	"drag":       true,
	"scroll":     true,
	"wait":       true,
	"resize":     true,
	"close":      true,
}

// Runner sequences injected input and screenshots across loop iterations.
type Runner struct {
	// Dir receives screenshots. Empty means the working directory.
	Dir string

	steps     []step
	cursor    int
	waitCount int
	done      bool
	shots     []string // labels queued until the next paint
	written   []string
}

// LoadScript parses a script. JSON and YAML are both accepted:
//
//	{"steps": [{"action": "click", "x": 40, "y": 30}, {"action": "screenshot", "label": "after"}]}
func LoadScript(data []byte) (*Runner, error) {
	var s script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse script: empty")
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !actions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Runner{steps: s.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *Runner) Done() bool { return r.done }

// Screenshots returns the files written so far.
func (r *Runner) Screenshots() []string { return r.written }

// Step advances the script by one frame against window w. Call it once
// before each Main.Loop.
func (r *Runner) Step(b *Backend, w *Window) {
	if r.done {
		return
	}
	if b.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	id := w.ID()
	switch st.Action {
	case "screenshot":
		r.shots = append(r.shots, st.Label)
	case "click":
		b.Click(id, st.X, st.Y)
	case "move":
		b.Move(id, st.X, st.Y)
	case "drag":
		b.Drag(id, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		b.Scroll(id, st.X, st.Y, st.DX, st.DY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "resize":
		b.Resize(id, st.Width, st.Height)
	case "close":
		b.RequestClose(id)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && b.Pending() == 0 {
		r.done = true
	}
}

// flush writes the screenshots queued by Step.
func (r *Runner) flush(w *Window) error {
	for _, label := range r.shots {
		path, err := w.Screenshot(r.Dir, label)
		if err != nil {
			r.shots = r.shots[:0]
			return err
		}
		r.written = append(r.written, path)
	}
	r.shots = r.shots[:0]
	return nil
}

// Run drives m until the script is done, m stops or maxFrames iterations
// have run. Screenshots are taken after each iteration's paint.
func (r *Runner) Run(m *lui.Main, w *Window, dt float64, maxFrames int) error {
	b, ok := m.Backend().(*Backend)
	if !ok {
		return fmt.Errorf("run script: backend is %T, not headless", m.Backend())
	}
	for frame := 0; frame < maxFrames; frame++ {
		if r.done && len(r.shots) == 0 {
			return nil
		}
		r.Step(b, w)
		if err := m.Loop(dt); err != nil {
			if errors.Is(err, lui.ErrStopped) {
				return nil
			}
			return err
		}
		if err := r.flush(w); err != nil {
			return err
		}
	}
	if !r.done {
		return fmt.Errorf("run script: not finished after %d frames (step %d of %d)", maxFrames, r.cursor, len(r.steps))
	}
	return nil
}
