package lui

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"time"
)

// EventSink is the interface for optional ECS integration.
// When set on a Main, interaction events are forwarded to it.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for an EventSink.
type InteractionEvent struct {
	Type       EventType
	Window     WindowID
	WidgetID   uint32 // zero when no widget was involved
	WidgetName string
	ViewX      float64
	ViewY      float64
	LocalX     float64
	LocalY     float64
	Button     MouseButton
	Modifiers  KeyModifiers
	// Scroll fields (valid for EventScroll)
	DeltaX float64
	DeltaY float64
}

// Mode selects how a Main is hosted.
type Mode uint8

const (
	// ModeProgram is a standalone application: closing the last View stops
	// the loop by default.
	ModeProgram Mode = iota
	// ModeModule is UI hosted inside another application, such as a plugin.
	// The host decides when to stop.
	ModeModule
)

func (m Mode) String() string {
	if m == ModeModule {
		return "module"
	}
	return "program"
}

type mainState uint8

const (
	stateConstructed mainState = iota
	stateRunning
	stateStopped
)

// Default window size for roots elevated with empty bounds.
const (
	DefaultViewWidth  = 640
	DefaultViewHeight = 360
)

// Main owns the Views of one UI and drives its event loop. It is an
// ordinary value: create as many as needed, each with its own Backend.
// All methods must be called from the goroutine that calls Loop.
type Main struct {
	backend Backend
	mode    Mode
	state   mainState

	exitCode       int
	quitOnLastView bool

	views  []*View
	events []Event
	timers []*Timer
	dueBuf []*Timer
	tweens []*TweenGroup
	nextID uint64

	clock float64
	frame uint64

	rep   reporter
	sink  EventSink
	debug bool
	log   io.Writer
}

// NewMain creates a context bound to backend. Panics if backend is nil.
func NewMain(mode Mode, backend Backend) *Main {
	if backend == nil {
		panic("lui: NewMain requires a backend")
	}
	return &Main{
		backend:        backend,
		mode:           mode,
		quitOnLastView: mode == ModeProgram,
		log:            os.Stderr,
	}
}

// Backend returns the platform backend.
func (m *Main) Backend() Backend { return m.backend }

// Mode returns the hosting mode.
func (m *Main) Mode() Mode { return m.mode }

// --- Elevation ---

// Elevate creates a top-level window for root and returns its View.
//
// root must be detached, not disposed and not already elevated, and flags
// must be a combination of the ViewFlags constants; otherwise the error
// matches ErrInvalidOperation. A root with empty bounds is resized to
// DefaultViewWidth x DefaultViewHeight. If the backend cannot create the
// window the error matches ErrResourceExhausted and nothing is registered.
func (m *Main) Elevate(root Component, flags ViewFlags) (*View, error) {
	return m.elevate("lui.Main.Elevate", root, flags, 0)
}

// ElevateIn is Elevate for a window embedded in the native parent handle,
// as plugin hosts require.
func (m *Main) ElevateIn(root Component, flags ViewFlags, parent uintptr) (*View, error) {
	if parent == 0 {
		return nil, invalidOp("lui.Main.ElevateIn", "zero parent handle")
	}
	return m.elevate("lui.Main.ElevateIn", root, flags, parent)
}

func (m *Main) elevate(op string, c Component, flags ViewFlags, parent uintptr) (*View, error) {
	if m.state == stateStopped {
		return nil, &Error{Op: op, Kind: KindStopped, Err: ErrStopped}
	}
	var root *Widget
	if c != nil {
		root = c.Base()
	}
	switch {
	case root == nil:
		return nil, invalidOp(op, "nil root")
	case root.disposed:
		return nil, invalidOp(op, "root is disposed")
	case root.view != nil:
		return nil, invalidOp(op, "%q is already elevated", root.name)
	case root.parent != nil:
		return nil, invalidOp(op, "%q has parent %q; only detached widgets can be elevated", root.name, root.parent.name)
	case flags&^viewFlagsMask != 0:
		return nil, invalidOp(op, "unknown view flags %#x", uint32(flags&^viewFlagsMask))
	}

	size := root.bounds
	if size.Empty() {
		size.Width, size.Height = DefaultViewWidth, DefaultViewHeight
	}
	spec := WindowSpec{
		Title:   root.name,
		Width:   pixels(size.Width),
		Height:  pixels(size.Height),
		Flags:   flags,
		Visible: root.visible,
		Parent:  parent,
	}
	win, err := m.backend.CreateWindow(spec)
	if err == nil && win == nil {
		err = errors.New("backend returned no window")
	}
	if err != nil {
		return nil, &Error{Op: op, Kind: KindResource, Err: err}
	}

	root.bounds = size
	v := newView(m, root, win, flags)
	root.view = v
	m.views = append(m.views, v)
	if root.bounds.X != 0 || root.bounds.Y != 0 {
		win.SetPosition(int(root.bounds.X), int(root.bounds.Y))
	}
	root.layout()
	v.Repaint()
	m.debugf("elevated %q as window %d (%dx%d, %s)", root.name, win.ID(), spec.Width, spec.Height, flags)
	return v, nil
}

// Views returns the open Views. The returned slice MUST NOT be mutated.
func (m *Main) Views() []*View { return m.views }

func (m *Main) viewFor(id WindowID) *View {
	for _, v := range m.views {
		if v.window.ID() == id {
			return v
		}
	}
	return nil
}

func (m *Main) closeView(v *View) {
	v.forget(v.root)
	v.closed = true
	v.root.view = nil
	for i, x := range m.views {
		if x == v {
			copy(m.views[i:], m.views[i+1:])
			m.views[len(m.views)-1] = nil
			m.views = m.views[:len(m.views)-1]
			break
		}
	}
	if err := v.window.Close(); err != nil {
		m.rep.report(&Error{Op: "lui.View.Close", Kind: KindBackend, Err: err})
	}
	m.debugf("closed view %q (window %d), %d remaining", v.root.name, v.window.ID(), len(m.views))
	if m.quitOnLastView && len(m.views) == 0 {
		m.stop()
	}
}

// --- Loop ---

// Loop runs one iteration: it drains backend events and dispatches them,
// advances timers and animations by dt seconds, then paints every View with
// a dirty region. It never blocks. After the Main has stopped, Loop returns
// an error matching ErrStopped.
func (m *Main) Loop(dt float64) error {
	if m.state == stateStopped {
		return &Error{Op: "lui.Main.Loop", Kind: KindStopped, Err: ErrStopped}
	}
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	m.state = stateRunning
	m.frame++

	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	m.events = m.backend.PollEvents(m.events[:0])
	for i := range m.events {
		if m.state == stateStopped {
			break
		}
		if v := m.viewFor(m.events[i].Window); v != nil {
			v.handleEvent(m.events[i])
		}
	}
	nEvents := len(m.events)

	if m.state == stateStopped {
		return nil
	}
	m.advance(dt)
	if m.state == stateStopped {
		return nil
	}

	var total paintStats
	painted := 0
	for _, v := range slices.Clone(m.views) {
		if m.state == stateStopped {
			break
		}
		if stats, ok := v.paint(); ok {
			painted++
			total.widgets += stats.widgets
			total.skipped += stats.skipped
			total.occluded += stats.occluded
		}
	}
	if m.debug && (painted > 0 || nEvents > 0) {
		m.debugf("frame %d: events: %d | views painted: %d | widgets: %d | skipped: %d | occluded: %d | %v",
			m.frame, nEvents, painted, total.widgets, total.skipped, total.occluded, time.Since(t0))
	}
	return nil
}

func (m *Main) advance(dt float64) {
	m.clock += dt
	m.runTimers()

	live := m.tweens[:0]
	for _, g := range m.tweens {
		m.rep.call("lui.TweenGroup.Update", func() { g.Update(float32(dt)) })
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(m.tweens[len(live):])
	m.tweens = live
}

// Animate registers g to be advanced by every Loop until it is done.
func (m *Main) Animate(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	m.tweens = append(m.tweens, g)
}

// --- Lifecycle ---

// Running reports whether Loop may still be called.
func (m *Main) Running() bool { return m.state != stateStopped }

// Frame returns the number of Loop iterations run.
func (m *Main) Frame() uint64 { return m.frame }

// Clock returns the seconds accumulated from Loop's dt.
func (m *Main) Clock() float64 { return m.clock }

// SetExitCode records the exit code. It does not stop the loop.
func (m *Main) SetExitCode(code int) { m.exitCode = code }

// ExitCode returns the last recorded exit code (default 0).
func (m *Main) ExitCode() int { return m.exitCode }

// Quit stops the loop. Views stay open until Close.
func (m *Main) Quit() { m.stop() }

// Exit records code and stops the loop.
func (m *Main) Exit(code int) {
	m.SetExitCode(code)
	m.stop()
}

// Close destroys every View and stops the loop.
func (m *Main) Close() {
	for len(m.views) > 0 {
		m.closeView(m.views[len(m.views)-1])
	}
	m.stop()
}

func (m *Main) stop() {
	if m.state == stateStopped {
		return
	}
	m.state = stateStopped
	m.debugf("stopped with exit code %d", m.exitCode)
}

// QuitOnLastViewClosed reports the quit policy.
func (m *Main) QuitOnLastViewClosed() bool { return m.quitOnLastView }

// SetQuitOnLastViewClosed controls whether closing the last View stops
// the loop. The default is true for ModeProgram and false for ModeModule.
func (m *Main) SetQuitOnLastViewClosed(quit bool) { m.quitOnLastView = quit }

// --- Configuration ---

// SetErrorHandler routes reports from this Main's widgets, timers and
// listeners to h. Nil restores DefaultHandler.
func (m *Main) SetErrorHandler(h ErrorHandler) { m.rep.handler = h }

// SetEventSink sets the optional ECS bridge.
func (m *Main) SetEventSink(sink EventSink) { m.sink = sink }

// SetLogOutput sets the writer for debug output. Nil means os.Stderr.
func (m *Main) SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	m.log = w
}

// SetDebugMode enables or disables debug mode. When enabled, tree depth and
// child count warnings are printed, and elevation, view closing and
// per-frame paint stats are logged.
func (m *Main) SetDebugMode(enabled bool) {
	m.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Main debug flag so that widget
// operations (which lack a Main pointer) can check it cheaply.
var globalDebug bool

func (m *Main) debugf(format string, args ...any) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(m.log, "[lui] "+format+"\n", args...)
}
