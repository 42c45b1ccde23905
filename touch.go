package overlay

import "slices"

// SetGestures attaches the host gesture recognizer. Touch dispatch reports
// every event as not handled while no gestures are attached.
func (o *Overlay) SetGestures(g Gestures) {
	o.gestures = g
}

// SetTapListener sets the listener notified by RoutePrimary and
// HandleFrameTouch. Pass nil to remove it.
func (o *Overlay) SetTapListener(fn TapListener) {
	o.tapListener = fn
}

// DispatchTouch routes ev through the overlay and reports whether any
// receiver consumed it.
//
// While a forced target is set (see DispatchTo) it receives the event
// exclusively. Otherwise every touch-capable renderer receives the event,
// most recently registered first, whether or not an earlier one consumed it.
func (o *Overlay) DispatchTouch(ev PointerEvent) bool {
	if o.gestures == nil {
		if o.debug {
			o.debugf("touch %s dropped: no gestures", ev.Action)
		}
		return false
	}

	if o.forced != nil {
		consumed := o.forced.OnTouchEvent(ev)
		if o.debug {
			o.debugf("touch %s forced to %T: consumed=%v", ev.Action, o.forced, consumed)
		}
		return consumed
	}

	if len(o.touchClients) == 0 {
		return false
	}
	consumed := false
	for _, r := range slices.Clone(o.touchClients) {
		if r.OnTouchEvent(ev) {
			consumed = true
		}
	}
	if o.debug {
		o.debugf("touch %s to %d clients: consumed=%v", ev.Action, len(o.touchClients), consumed)
	}
	return consumed
}

// DispatchTo delivers ev to target alone, bypassing ambient routing. The
// override lasts for this one event; it is cleared on every return path,
// including a panicking handler.
func (o *Overlay) DispatchTo(ev PointerEvent, target Renderer) bool {
	o.forced = target
	defer func() { o.forced = nil }()
	return o.DispatchTouch(ev)
}

// RoutePrimary sends ev to the primary renderer if it is open. Otherwise a
// press notifies the tap listener at the event position.
func (o *Overlay) RoutePrimary(ev PointerEvent) {
	if p := o.primary; p != nil && p.IsOpen() {
		p.OnTouchEvent(ev)
		return
	}
	if o.tapListener != nil && ev.Action == ActionDown {
		o.tapListener(int(ev.X), int(ev.Y))
	}
}

// HandleFrameTouch handles an event that reached the overlay frame itself
// rather than the drawing surface. A release notifies the tap listener. The
// event is always reported as consumed.
func (o *Overlay) HandleFrameTouch(ev PointerEvent) bool {
	if o.tapListener != nil && ev.Action == ActionUp {
		o.tapListener(int(ev.X), int(ev.Y))
	}
	return true
}
