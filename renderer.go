package overlay

// Ticker is implemented by renderers that animate. Overlay.Update calls Tick
// once per game tick with the tick length in seconds, before input is
// dispatched. Draw may run less often than Tick, so animation state must only
// advance here.
type Ticker interface {
	Tick(dt float32)
}

// BaseRenderer implements the bookkeeping half of Renderer. Embed it and
// provide Draw; override HandlesTouch, OnTouchEvent or Animating as needed.
type BaseRenderer struct {
	overlay *Overlay
	bounds  Bounds
}

// SetOverlay records the owning overlay, or nil after removal.
func (b *BaseRenderer) SetOverlay(o *Overlay) { b.overlay = o }

// Overlay returns the owning overlay, or nil if not registered.
func (b *BaseRenderer) Overlay() *Overlay { return b.overlay }

// Layout records the bounds of the most recent layout pass.
func (b *BaseRenderer) Layout(left, top, right, bottom int) {
	b.bounds = Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Bounds returns the bounds of the most recent layout pass.
func (b *BaseRenderer) Bounds() Bounds { return b.bounds }

// HandlesTouch returns false.
func (b *BaseRenderer) HandlesTouch() bool { return false }

// OnTouchEvent consumes nothing.
func (b *BaseRenderer) OnTouchEvent(PointerEvent) bool { return false }

// Animating returns false.
func (b *BaseRenderer) Animating() bool { return false }

// Invalidate asks the owning overlay for another paint pass. It does
// nothing while the renderer is not registered.
func (b *BaseRenderer) Invalidate() {
	if b.overlay != nil {
		b.overlay.Invalidate()
	}
}
