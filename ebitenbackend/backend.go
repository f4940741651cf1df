package ebitenbackend

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lvtk/lui"
)

var (
	// ErrSingleWindow is returned when a second window is requested while
	// one is open.
	ErrSingleWindow = errors.New("ebitenbackend: only one window is supported")
	// ErrEmbedding is returned for windows with a parent handle.
	ErrEmbedding = errors.New("ebitenbackend: embedding in a parent window is not supported")
)

// Backend is a lui.Backend over Ebitengine.
type Backend struct {
	win    *Window
	nextID lui.WindowID
	events []lui.Event
	ptr    pointerTracker
}

var _ lui.Backend = (*Backend)(nil)

// New creates a backend. Nothing is shown until Run.
func New() *Backend {
	return &Backend{}
}

// CreateWindow implements lui.Backend.
func (b *Backend) CreateWindow(spec lui.WindowSpec) (lui.Window, error) {
	if spec.Parent != 0 {
		return nil, ErrEmbedding
	}
	if b.win != nil && !b.win.closed {
		return nil, ErrSingleWindow
	}
	b.nextID++
	b.win = &Window{
		id:      b.nextID,
		spec:    spec,
		title:   spec.Title,
		visible: spec.Visible,
		w:       spec.Width,
		h:       spec.Height,
		changed: changeAll,
	}
	b.ptr = pointerTracker{}
	return b.win, nil
}

// PollEvents implements lui.Backend.
func (b *Backend) PollEvents(buf []lui.Event) []lui.Event {
	buf = append(buf, b.events...)
	clear(b.events)
	b.events = b.events[:0]
	return buf
}

// Window returns the current window, or nil.
func (b *Backend) Window() *Window { return b.win }

func (b *Backend) post(ev lui.Event) {
	b.events = append(b.events, ev)
}

// readInput samples Ebitengine's input state for the current tick.
func (b *Backend) readInput() {
	w := b.win
	if w == nil || w.closed {
		return
	}
	cx, cy := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	in := inputState{
		X:         float64(cx),
		Y:         float64(cy),
		Width:     w.w,
		Height:    w.h,
		WheelX:    wx,
		WheelY:    wy,
		Closing:   ebiten.IsWindowBeingClosed(),
		Modifiers: readModifiers(),
	}
	for i, eb := range mouseButtons {
		in.Pressed[i] = ebiten.IsMouseButtonPressed(eb)
	}
	b.events = b.ptr.translate(w.id, in, b.events)
}
