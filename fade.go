package overlay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeRenderer wraps another renderer and tweens its opacity. While the fade
// is partial, the wrapped renderer draws into an offscreen image that is
// composited with a scaled alpha. Register the FadeRenderer instead of the
// wrapped one; registration, layout, touch and ticks are forwarded.
type FadeRenderer struct {
	BaseRenderer

	// Inner is the wrapped renderer. It must not be nil.
	Inner Renderer

	// Duration is the fade length in seconds.
	Duration float32
	Ease     ease.TweenFunc

	alpha     float64
	target    float64
	tween     *gween.Tween
	offscreen *ebiten.Image
}

// NewFadeRenderer wraps inner, fully opaque.
func NewFadeRenderer(inner Renderer) *FadeRenderer {
	return &FadeRenderer{
		Inner:    inner,
		Duration: 0.3,
		Ease:     ease.OutQuad,
		alpha:    1,
		target:   1,
	}
}

// FadeIn tweens to fully opaque.
func (f *FadeRenderer) FadeIn() { f.FadeTo(1) }

// FadeOut tweens to fully transparent.
func (f *FadeRenderer) FadeOut() { f.FadeTo(0) }

// FadeTo tweens the opacity towards a, clamped to [0, 1]. A non-positive
// Duration applies it immediately.
func (f *FadeRenderer) FadeTo(a float64) {
	a = clamp01(a)
	f.target = a
	if f.Duration <= 0 || a == f.alpha {
		f.alpha = a
		f.tween = nil
	} else {
		fn := f.Ease
		if fn == nil {
			fn = ease.Linear
		}
		f.tween = gween.New(float32(f.alpha), float32(a), f.Duration, fn)
	}
	f.Invalidate()
}

// Alpha returns the current opacity.
func (f *FadeRenderer) Alpha() float64 { return f.alpha }

// Hidden reports whether the wrapped renderer is fully faded out and not
// fading back in.
func (f *FadeRenderer) Hidden() bool { return f.alpha <= 0 && f.tween == nil }

// HandlesTouch reports the wrapped renderer's choice.
func (f *FadeRenderer) HandlesTouch() bool { return f.Inner.HandlesTouch() }

// OnTouchEvent forwards ev to the wrapped renderer. While hidden only
// releases and cancels get through, so a gesture started before the fade can
// still finish.
func (f *FadeRenderer) OnTouchEvent(ev PointerEvent) bool {
	if f.Hidden() {
		switch ev.Action {
		case ActionUp, ActionPointerUp, ActionCancel:
		default:
			return false
		}
	}
	return f.Inner.OnTouchEvent(ev)
}

func (f *FadeRenderer) SetOverlay(o *Overlay) {
	f.BaseRenderer.SetOverlay(o)
	f.Inner.SetOverlay(o)
}

func (f *FadeRenderer) Layout(left, top, right, bottom int) {
	f.BaseRenderer.Layout(left, top, right, bottom)
	f.Inner.Layout(left, top, right, bottom)
}

// Tick advances the fade and then the wrapped renderer, if it ticks.
func (f *FadeRenderer) Tick(dt float32) {
	if f.tween != nil {
		v, done := f.tween.Update(dt)
		f.alpha = clamp01(float64(v))
		if done {
			f.alpha = f.target
			f.tween = nil
		}
	}
	if t, ok := f.Inner.(Ticker); ok {
		t.Tick(dt)
	}
}

// Animating reports whether the fade is running or the visible wrapped
// renderer is animating.
func (f *FadeRenderer) Animating() bool {
	return f.tween != nil || (f.alpha > 0 && f.Inner.Animating())
}

// Draw draws the wrapped renderer at the current opacity.
func (f *FadeRenderer) Draw(screen *ebiten.Image) {
	if f.alpha <= 0 {
		return
	}
	if screen == nil || f.alpha >= 1 {
		f.Inner.Draw(screen)
		return
	}

	size := screen.Bounds().Size()
	if f.offscreen == nil || f.offscreen.Bounds().Size() != size {
		if f.offscreen != nil {
			f.offscreen.Deallocate()
		}
		f.offscreen = ebiten.NewImage(size.X, size.Y)
	} else {
		f.offscreen.Clear()
	}
	f.Inner.Draw(f.offscreen)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(f.alpha))
	screen.DrawImage(f.offscreen, op)
}
