package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lvtk/lui"
)

// mouseButtons maps lui buttons, by index, to Ebitengine buttons.
var mouseButtons = [...]ebiten.MouseButton{
	lui.MouseButtonLeft:   ebiten.MouseButtonLeft,
	lui.MouseButtonRight:  ebiten.MouseButtonRight,
	lui.MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// inputState is one tick's sample of the mouse and window.
type inputState struct {
	X, Y           float64
	Width, Height  int
	Pressed        [len(mouseButtons)]bool
	WheelX, WheelY float64
	Closing        bool
	Modifiers      lui.KeyModifiers
}

// pointerTracker turns successive input samples into lui events.
type pointerTracker struct {
	started bool
	x, y    float64
	inside  bool // last position reported to lui was in the client area
	pressed [len(mouseButtons)]bool
}

func (p *pointerTracker) translate(id lui.WindowID, in inputState, out []lui.Event) []lui.Event {
	ev := func(t lui.EventType) lui.Event {
		return lui.Event{Type: t, Window: id, X: in.X, Y: in.Y, Modifiers: in.Modifiers}
	}
	inside := in.X >= 0 && in.Y >= 0 && in.X < float64(in.Width) && in.Y < float64(in.Height)
	held := false
	for _, down := range p.pressed {
		held = held || down
	}

	moved := !p.started || in.X != p.x || in.Y != p.y
	if moved && (inside || held) {
		out = append(out, ev(lui.EventPointerMove))
	}
	if p.inside && !inside && !held {
		out = append(out, ev(lui.EventPointerLeave))
	}

	for i, down := range in.Pressed {
		if down == p.pressed[i] {
			continue
		}
		// Presses outside the client area belong to the window frame.
		if down && !inside {
			continue
		}
		e := ev(lui.EventPointerUp)
		if down {
			e.Type = lui.EventPointerDown
		}
		e.Button = lui.MouseButton(i)
		out = append(out, e)
		p.pressed[i] = down
	}

	if (in.WheelX != 0 || in.WheelY != 0) && inside {
		e := ev(lui.EventScroll)
		e.DeltaX, e.DeltaY = in.WheelX, in.WheelY
		out = append(out, e)
	}
	if in.Closing {
		out = append(out, lui.Event{Type: lui.EventClose, Window: id})
	}

	p.started = true
	p.x, p.y = in.X, in.Y
	if inside || !held {
		p.inside = inside
	}
	return out
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() lui.KeyModifiers {
	var mods lui.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= lui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= lui.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= lui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= lui.ModMeta
	}
	return mods
}
