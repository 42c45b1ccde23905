package overlay

import (
	"reflect"
	"slices"
)

// AddRenderer appends r to the draw list, so it draws on top of every
// renderer added before it. Renderers are compared by identity; register
// pointer types. A renderer whose dynamic type is not comparable can be
// added, but never matches in Remove or RemoveTouchClient.
func (o *Overlay) AddRenderer(r Renderer) {
	if r == nil {
		return
	}
	o.clients = append(o.clients, r)
	o.register(r)
}

// InsertRenderer inserts r into the draw list at index. The index is clamped
// to the current list, so a negative index draws r first and an index past
// the end draws it last. Touch registration works exactly as in AddRenderer.
func (o *Overlay) InsertRenderer(index int, r Renderer) {
	if r == nil {
		return
	}
	index = max(0, min(index, len(o.clients)))
	o.clients = slices.Insert(o.clients, index, r)
	o.register(r)
}

// AddPrimary appends p like AddRenderer and makes it the primary renderer
// used by RoutePrimary. A previously set primary stays registered as an
// ordinary renderer.
func (o *Overlay) AddPrimary(p PrimaryRenderer) {
	if p == nil {
		return
	}
	o.primary = p
	o.AddRenderer(p)
}

// Primary returns the primary renderer, or nil.
func (o *Overlay) Primary() PrimaryRenderer {
	return o.primary
}

// register runs the steps shared by every insertion path: the back-reference,
// touch registration, and an immediate layout with the current bounds.
func (o *Overlay) register(r Renderer) {
	r.SetOverlay(o)
	if r.HandlesTouch() {
		// A renderer re-added while still in the touch list moves to the front.
		if i := indexRenderer(o.touchClients, r); i >= 0 {
			o.touchClients = slices.Delete(o.touchClients, i, i+1)
		}
		o.touchClients = slices.Insert(o.touchClients, 0, r)
	}
	b := o.bounds
	r.Layout(b.Left, b.Top, b.Right, b.Bottom)
	o.Invalidate()
	if o.debug {
		o.debugf("add renderer %T (clients: %d, touch: %d)", r, len(o.clients), len(o.touchClients))
	}
}

// Remove takes r out of the draw list and clears its back-reference. Removing
// a renderer that is not registered does nothing.
//
// Unless the overlay was configured with PruneTouchOnRemove, a touch-capable
// renderer keeps receiving ambient touch events after removal.
func (o *Overlay) Remove(r Renderer) {
	if i := indexRenderer(o.clients, r); i >= 0 {
		o.removeAt(i)
	}
}

func (o *Overlay) removeAt(i int) {
	r := o.clients[i]
	o.clients = slices.Delete(o.clients, i, i+1)
	r.SetOverlay(nil)
	if o.primary != nil && sameRenderer(o.primary, r) {
		o.primary = nil
	}
	if o.pruneTouch {
		o.RemoveTouchClient(r)
	}
	o.Invalidate()
	if o.debug {
		o.debugf("remove renderer %T (clients: %d, touch: %d)", r, len(o.clients), len(o.touchClients))
	}
}

// RemoveTouchClient stops delivering ambient touch events to r without
// touching the draw list.
func (o *Overlay) RemoveTouchClient(r Renderer) {
	if i := indexRenderer(o.touchClients, r); i >= 0 {
		o.touchClients = slices.Delete(o.touchClients, i, i+1)
	}
}

// ClientCount returns the number of renderers in the draw list.
func (o *Overlay) ClientCount() int {
	return len(o.clients)
}

// TouchClientCount returns the number of renderers receiving ambient touch
// events.
func (o *Overlay) TouchClientCount() int {
	return len(o.touchClients)
}

// Renderers returns the draw list in draw order. The returned slice MUST NOT
// be mutated.
func (o *Overlay) Renderers() []Renderer {
	return o.clients
}

// Clear removes every renderer, empties the touch list, and drops the
// gestures and tap listener. The overlay is inert until SetGestures is called
// again.
func (o *Overlay) Clear() {
	o.gestures = nil
	for len(o.clients) > 0 {
		o.removeAt(0)
	}
	o.touchClients = nil
	o.primary = nil
	o.tapListener = nil
	o.Invalidate()
}

// sameRenderer reports whether a and b are the same renderer. Interface
// equality panics on non-comparable dynamic types, so those never match.
func sameRenderer(a, b Renderer) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta != nil && !ta.Comparable() {
		return false
	}
	return a == b
}

func indexRenderer(list []Renderer, r Renderer) int {
	return slices.IndexFunc(list, func(c Renderer) bool { return sameRenderer(c, r) })
}
