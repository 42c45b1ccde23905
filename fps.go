package overlay

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugRenderer draws FPS, TPS and the overlay's renderer counts in the
// top-left corner. The text is refreshed every ~0.5 seconds. It animates
// continuously, so an overlay showing it never goes idle.
type DebugRenderer struct {
	BaseRenderer

	img     *ebiten.Image
	elapsed float64
	stale   bool
}

// NewDebugRenderer creates a DebugRenderer.
func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

// Animating returns true.
func (d *DebugRenderer) Animating() bool { return true }

// Text returns the current stats line.
func (d *DebugRenderer) Text() string {
	var clients, touch int
	if o := d.Overlay(); o != nil {
		clients, touch = o.ClientCount(), o.TouchClientCount()
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nR: %d T: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), clients, touch)
}

// Tick marks the stats text stale every half second.
func (d *DebugRenderer) Tick(dt float32) {
	d.elapsed += float64(dt)
	if d.elapsed >= 0.5 {
		d.elapsed = 0
		d.stale = true
	}
}

func (d *DebugRenderer) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	if d.img == nil {
		// 120x48 fits three lines of DebugPrint text.
		d.img = ebiten.NewImage(120, 48)
		d.stale = true
	}
	if d.stale {
		d.stale = false
		d.img.Clear()
		d.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(d.img, d.Text())
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(d.bounds.Left), float64(d.bounds.Top))
	screen.DrawImage(d.img, op)
}
