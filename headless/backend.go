package headless

import (
	"errors"
	"fmt"
	"image"

	"github.com/lvtk/lui"
)

// ErrTooManyWindows is returned by CreateWindow when MaxWindows is reached.
var ErrTooManyWindows = errors.New("headless: too many windows")

// ErrClosed is returned when painting a closed window.
var ErrClosed = errors.New("headless: window closed")

// Backend is an in-memory lui.Backend.
type Backend struct {
	// MaxWindows limits the number of open windows. Zero means no limit.
	MaxWindows int
	// Scale is reported as every window's ScaleFactor. Zero means 1.
	Scale float64

	windows  []*Window
	nextID   lui.WindowID
	failNext error

	events []lui.Event // delivered on the next poll
	inject []lui.Event // synthetic pointer input, one per poll
}

var _ lui.Backend = (*Backend)(nil)

// New creates an empty backend.
func New() *Backend {
	return &Backend{}
}

// FailNext makes the next CreateWindow call fail with err.
func (b *Backend) FailNext(err error) {
	if err == nil {
		err = errors.New("headless: injected failure")
	}
	b.failNext = err
}

// CreateWindow implements lui.Backend.
func (b *Backend) CreateWindow(spec lui.WindowSpec) (lui.Window, error) {
	if err := b.failNext; err != nil {
		b.failNext = nil
		return nil, err
	}
	if b.MaxWindows > 0 && len(b.OpenWindows()) >= b.MaxWindows {
		return nil, fmt.Errorf("%w (limit %d)", ErrTooManyWindows, b.MaxWindows)
	}
	if spec.Width < 0 || spec.Height < 0 {
		return nil, fmt.Errorf("headless: invalid window size %dx%d", spec.Width, spec.Height)
	}
	b.nextID++
	w := &Window{
		b:       b,
		id:      b.nextID,
		spec:    spec,
		title:   spec.Title,
		visible: spec.Visible,
		img:     image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height)),
	}
	b.windows = append(b.windows, w)
	return w, nil
}

// PollEvents implements lui.Backend. Window events are delivered at once;
// at most one injected pointer event is delivered per call.
func (b *Backend) PollEvents(buf []lui.Event) []lui.Event {
	buf = append(buf, b.events...)
	clear(b.events)
	b.events = b.events[:0]
	if len(b.inject) > 0 {
		buf = append(buf, b.inject[0])
		copy(b.inject, b.inject[1:])
		b.inject = b.inject[:len(b.inject)-1]
	}
	return buf
}

// Post queues an arbitrary event for the next poll.
func (b *Backend) Post(ev lui.Event) {
	b.events = append(b.events, ev)
}

// Pending returns the number of events not yet delivered.
func (b *Backend) Pending() int {
	return len(b.events) + len(b.inject)
}

// Windows returns every window created, including closed ones.
func (b *Backend) Windows() []*Window { return b.windows }

// OpenWindows returns the windows that have not been closed.
func (b *Backend) OpenWindows() []*Window {
	var out []*Window
	for _, w := range b.windows {
		if !w.closed {
			out = append(out, w)
		}
	}
	return out
}

// Window returns the window with the given id, or nil.
func (b *Backend) Window(id lui.WindowID) *Window {
	for _, w := range b.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

func (b *Backend) scale() float64 {
	if b.Scale > 0 {
		return b.Scale
	}
	return 1
}
