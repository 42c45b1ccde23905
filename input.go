package overlay

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// Update advances every Ticker by one tick, then polls ebiten input and
// dispatches the resulting pointer events through DispatchTouch. Call it once
// per tick from the game's Update. When a synthetic event is queued it
// replaces real mouse input for that tick.
func (o *Overlay) Update() {
	o.tick(float32(1.0 / float64(ebiten.TPS())))
	if o.testRunner != nil {
		o.testRunner.step(o)
	}
	if !o.processInjectedInput() {
		o.processMousePointer()
	}
	o.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0). Any button counts as
// a press.
func (o *Overlay) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	o.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (o *Overlay) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(o.prevTouches[:0])
	o.prevTouches = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := o.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		o.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if o.touchUsed[i] && !activeSlots[i] {
			ps := &o.pointers[i]
			if ps.down {
				o.processPointer(i, ps.lastX, ps.lastY, false)
			}
			o.touchUsed[i] = false
			o.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (o *Overlay) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if o.touchUsed[i] && o.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !o.touchUsed[i] {
			o.touchUsed[i] = true
			o.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// pointersDown counts pressed pointers other than skip.
func (o *Overlay) pointersDown(skip int) int {
	n := 0
	for i := range o.pointers {
		if i != skip && o.pointers[i].down {
			n++
		}
	}
	return n
}

// processPointer turns the sampled state of one pointer into at most one
// PointerEvent. Hover movement produces no event.
func (o *Overlay) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &o.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		action := ActionDown
		if o.pointersDown(pointerID) > 0 {
			action = ActionPointerDown
		}
		ps.down = true
		ps.lastX, ps.lastY = x, y
		o.DispatchTouch(PointerEvent{Action: action, PointerID: pointerID, X: x, Y: y})
	case !pressed && ps.down:
		action := ActionUp
		if o.pointersDown(pointerID) > 0 {
			action = ActionPointerUp
		}
		ps.down = false
		ps.lastX, ps.lastY = x, y
		o.DispatchTouch(PointerEvent{Action: action, PointerID: pointerID, X: x, Y: y})
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			ps.lastX, ps.lastY = x, y
			o.DispatchTouch(PointerEvent{Action: ActionMove, PointerID: pointerID, X: x, Y: y})
		}
	default:
		ps.lastX, ps.lastY = x, y
	}
}

// CancelPointers sends ActionCancel for every pressed pointer and resets the
// pointer state. Use it when the host takes input away from the overlay.
func (o *Overlay) CancelPointers() {
	for i := range o.pointers {
		ps := &o.pointers[i]
		if !ps.down {
			continue
		}
		ps.down = false
		o.DispatchTouch(PointerEvent{Action: ActionCancel, PointerID: i, X: ps.lastX, Y: ps.lastY})
	}
}
