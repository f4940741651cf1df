package headless

import "github.com/lvtk/lui"

// Synthetic pointer input. Each injected event is consumed by one poll, so
// a Click spans two loop iterations and a Drag spans frames iterations.

func (b *Backend) pointer(t lui.EventType, id lui.WindowID, x, y float64) {
	b.inject = append(b.inject, lui.Event{
		Type:   t,
		Window: id,
		X:      x,
		Y:      y,
		Button: lui.MouseButtonLeft,
	})
}

// Press queues a left button press at the window point (x, y).
func (b *Backend) Press(id lui.WindowID, x, y float64) {
	b.pointer(lui.EventPointerDown, id, x, y)
}

// Move queues pointer motion to (x, y).
func (b *Backend) Move(id lui.WindowID, x, y float64) {
	b.pointer(lui.EventPointerMove, id, x, y)
}

// Release queues a left button release at (x, y).
func (b *Backend) Release(id lui.WindowID, x, y float64) {
	b.pointer(lui.EventPointerUp, id, x, y)
}

// Click queues a press followed by a release at the same point.
func (b *Backend) Click(id lui.WindowID, x, y float64) {
	b.Press(id, x, y)
	b.Release(id, x, y)
}

// Drag queues a press at (fromX, fromY), frames-2 interpolated moves and a
// release at (toX, toY). Frames below 2 are raised to 2.
func (b *Backend) Drag(id lui.WindowID, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	b.Press(id, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		b.Move(id, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	b.Release(id, toX, toY)
}

// Scroll queues a wheel event at (x, y).
func (b *Backend) Scroll(id lui.WindowID, x, y, dx, dy float64) {
	b.inject = append(b.inject, lui.Event{
		Type:   lui.EventScroll,
		Window: id,
		X:      x,
		Y:      y,
		DeltaX: dx,
		DeltaY: dy,
	})
}

// Leave queues the pointer leaving the window.
func (b *Backend) Leave(id lui.WindowID) {
	b.inject = append(b.inject, lui.Event{Type: lui.EventPointerLeave, Window: id})
}

// Resize simulates the user resizing a window. Windows created without
// lui.ViewResizable keep their size but still report the request.
func (b *Backend) Resize(id lui.WindowID, width, height int) {
	if w := b.Window(id); w != nil && w.spec.Flags&lui.ViewResizable != 0 {
		w.SetSize(width, height)
	}
	b.Post(lui.Event{Type: lui.EventResize, Window: id, Width: width, Height: height})
}

// Expose reports that region of a window was damaged. An empty region
// means the whole window.
func (b *Backend) Expose(id lui.WindowID, region lui.Rect) {
	b.Post(lui.Event{Type: lui.EventExpose, Window: id, Region: region})
}

// RequestClose simulates the user clicking a window's close button.
func (b *Backend) RequestClose(id lui.WindowID) {
	b.Post(lui.Event{Type: lui.EventClose, Window: id})
}
