package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ProgressRenderer draws a progress bar along the bottom edge of the overlay.
// Changes to the displayed value are tweened, and the renderer reports itself
// as animating until the tween finishes, which keeps the overlay repainting.
type ProgressRenderer struct {
	BaseRenderer

	// Height is the bar thickness in pixels.
	Height float32

	// Margin is the inset from the left, right and bottom edges.
	Margin float32

	Track Color
	Fill  Color

	// Duration is the tween length in seconds for SetProgress.
	Duration float32
	Ease     ease.TweenFunc

	value   float64
	target  float64
	tween   *gween.Tween
	visible bool
}

// NewProgressRenderer creates a hidden progress bar at 0.
func NewProgressRenderer() *ProgressRenderer {
	return &ProgressRenderer{
		Height:   6,
		Margin:   16,
		Track:    Color{1, 1, 1, 0.25},
		Fill:     ColorWhite,
		Duration: 0.25,
		Ease:     ease.OutQuad,
	}
}

// SetProgress tweens the bar towards v, clamped to [0, 1], and shows it.
func (p *ProgressRenderer) SetProgress(v float64) {
	v = clamp01(v)
	p.visible = true
	p.target = v
	if p.Duration <= 0 {
		p.value = v
		p.tween = nil
	} else {
		fn := p.Ease
		if fn == nil {
			fn = ease.Linear
		}
		p.tween = gween.New(float32(p.value), float32(v), p.Duration, fn)
	}
	p.Invalidate()
}

// Progress returns the currently displayed value.
func (p *ProgressRenderer) Progress() float64 { return p.value }

// Show makes the bar visible.
func (p *ProgressRenderer) Show() {
	p.visible = true
	p.Invalidate()
}

// Hide hides the bar and stops any running tween.
func (p *ProgressRenderer) Hide() {
	p.visible = false
	p.tween = nil
	p.value = p.target
	p.Invalidate()
}

// Visible reports whether the bar is shown.
func (p *ProgressRenderer) Visible() bool { return p.visible }

// Tick advances the tween by dt seconds.
func (p *ProgressRenderer) Tick(dt float32) {
	if p.tween == nil {
		return
	}
	val, finished := p.tween.Update(dt)
	p.value = float64(val)
	if finished {
		p.value = p.target
		p.tween = nil
	}
}

// Animating reports whether a tween is running on a visible bar.
func (p *ProgressRenderer) Animating() bool {
	return p.visible && p.tween != nil
}

// Draw draws the bar at the current tween value.
func (p *ProgressRenderer) Draw(screen *ebiten.Image) {
	if !p.visible || screen == nil {
		return
	}
	b := p.bounds
	w := float32(b.Width()) - 2*p.Margin
	if w <= 0 {
		return
	}
	x := float32(b.Left) + p.Margin
	y := float32(b.Bottom) - p.Margin - p.Height
	vector.DrawFilledRect(screen, x, y, w, p.Height, p.Track.toRGBA(), false)
	if fill := w * float32(p.value); fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, p.Height, p.Fill.toRGBA(), false)
	}
}
