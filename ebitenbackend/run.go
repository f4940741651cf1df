package ebitenbackend

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lvtk/lui"
)

// RunConfig configures Run.
type RunConfig struct {
	// TPS is the loop rate. Zero keeps Ebitengine's default of 60.
	TPS int
	// ShowFPS overlays the measured frame and tick rates.
	ShowFPS bool
}

// Run drives m with Ebitengine until m stops or its window is closed. The
// view must already be elevated on a Backend created with New.
func Run(m *lui.Main, cfg RunConfig) error {
	b, ok := m.Backend().(*Backend)
	if !ok {
		return fmt.Errorf("ebitenbackend: backend is %T", m.Backend())
	}
	if b.win == nil || b.win.closed {
		return errors.New("ebitenbackend: no open window; elevate a widget first")
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	b.win.sync()
	err := ebiten.RunGame(&game{b: b, m: m, cfg: cfg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// game adapts Main to ebiten.Game.
type game struct {
	b   *Backend
	m   *lui.Main
	cfg RunConfig
}

func (g *game) Update() error {
	w := g.b.win
	if !g.m.Running() || w == nil || w.closed {
		return ebiten.Termination
	}
	g.b.readInput()
	if err := g.m.Loop(1.0 / float64(ebiten.TPS())); err != nil {
		if errors.Is(err, lui.ErrStopped) {
			return ebiten.Termination
		}
		return err
	}
	if w = g.b.win; w == nil || w.closed || !g.m.Running() {
		return ebiten.Termination
	}
	w.sync()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if w := g.b.win; w != nil && w.canvas != nil {
		screen.DrawImage(w.canvas, nil)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout reports user resizes to lui as resize events.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.b.win
	if w == nil || w.closed {
		return outsideWidth, outsideHeight
	}
	if w.spec.Flags&lui.ViewResizable != 0 && (outsideWidth != w.w || outsideHeight != w.h) {
		w.w, w.h = outsideWidth, outsideHeight
		g.b.post(lui.Event{Type: lui.EventResize, Window: w.id, Width: outsideWidth, Height: outsideHeight})
	}
	return max(w.w, 1), max(w.h, 1)
}
