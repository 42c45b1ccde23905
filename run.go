package overlay

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts an Overlay to ebiten.Game.
type game struct {
	overlay *Overlay
}

func (g *game) Update() error {
	g.overlay.Update()
	return nil
}

// Draw skips the paint pass when nothing requested one. The screen is not
// cleared between frames, so the previous frame stays on screen.
func (g *game) Draw(screen *ebiten.Image) {
	if g.overlay.NeedsRedraw() {
		g.overlay.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := Bounds{Right: outsideWidth, Bottom: outsideHeight}
	if b != g.overlay.Bounds() {
		g.overlay.Layout(b)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives o until the window is closed. Gestures are
// attached if none are set yet, so input is routed from the first frame.
func Run(o *Overlay, cfg RunConfig) error {
	def := DefaultRunConfig()
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}

	if o.gestures == nil {
		o.SetGestures(struct{}{})
	}
	if cfg.ShowFPS {
		o.AddRenderer(NewDebugRenderer())
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(&game{overlay: o}); err != nil {
		return fmt.Errorf("run overlay: %w", err)
	}
	return nil
}
