package lui

import "golang.org/x/image/font"

// WindowID identifies a native window within one Backend.
type WindowID uint64

// WindowSpec describes a window to create.
type WindowSpec struct {
	Title string
	// Width and Height are the initial client size in logical pixels.
	Width, Height int
	Flags         ViewFlags
	Visible       bool
	// Parent is a native handle to embed into, or 0 for a top-level window.
	Parent uintptr
}

// Backend is the platform layer: it creates native windows and reports their
// events. lui calls it only from the goroutine running Main.Loop.
type Backend interface {
	// CreateWindow creates a native window. An error means no window exists.
	CreateWindow(spec WindowSpec) (Window, error)
	// PollEvents appends every pending event to buf and returns it. It must
	// not block.
	PollEvents(buf []Event) []Event
}

// Window is a native window owned by exactly one View.
type Window interface {
	ID() WindowID
	// Handle returns the native handle, for embedding child content.
	Handle() uintptr
	SetTitle(title string)
	SetVisible(visible bool)
	SetSize(width, height int)
	Size() (width, height int)
	SetPosition(x, y int)
	// ScaleFactor is the ratio of device pixels to logical pixels.
	ScaleFactor() float64
	// Paint calls draw with a Surface restricted to region. The backend
	// presents the result when draw returns.
	Paint(region Rect, draw func(s Surface)) error
	// Close destroys the native window. Further calls are no-ops.
	Close() error
}

// Surface receives drawing primitives in window coordinates.
type Surface interface {
	// SetClip limits subsequent drawing to r.
	SetClip(r Rect)
	FillRect(r Rect, c Color)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(face font.Face, text string, x, y float64, c Color)
	// FillPath fills p using the nonzero winding rule.
	FillPath(p *Path, c Color)
	// StrokePath outlines p with lines of the given width.
	StrokePath(p *Path, width float64, c Color)
}

// Event is a platform event reported by Backend.PollEvents. Coordinates
// are logical pixels relative to the window's client area.
type Event struct {
	Type      EventType
	Window    WindowID
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
	// DeltaX and DeltaY are the scroll amounts for EventScroll.
	DeltaX, DeltaY float64
	// Width and Height are the new client size for EventResize.
	Width, Height int
	// Region is the damaged area for EventExpose. Empty means everything.
	Region Rect
}
