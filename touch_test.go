package overlay

import "testing"

func TestDispatchTouchInertWithoutGestures(t *testing.T) {
	o := New(Config{})
	r := newTouchFake("r", nil, true)
	o.AddRenderer(r)

	if o.DispatchTouch(PointerEvent{Action: ActionDown}) {
		t.Error("dispatch without gestures should not be handled")
	}
	if o.DispatchTo(PointerEvent{Action: ActionDown}, r) {
		t.Error("forced dispatch without gestures should not be handled")
	}
	if len(r.events) != 0 {
		t.Errorf("renderer received %d events", len(r.events))
	}
	if o.ClientCount() != 1 || o.TouchClientCount() != 1 {
		t.Error("renderer lists should be unchanged")
	}
}

func TestDispatchTouchMostRecentFirst(t *testing.T) {
	log := &callLog{}
	o := newTestOverlay()
	o.AddRenderer(newTouchFake("r1", log, false))
	o.AddRenderer(newTouchFake("r2", log, false))
	o.AddRenderer(newFake("plain", log))
	log.calls = nil

	o.DispatchTouch(PointerEvent{Action: ActionDown})
	want := []string{"r2:touch", "r1:touch"}
	if !equalStrings(log.calls, want) {
		t.Errorf("touch order = %v, want %v", log.calls, want)
	}
}

func TestDispatchTouchConsumedIsOr(t *testing.T) {
	o := newTestOverlay()
	a := newTouchFake("a", nil, false)
	b := newTouchFake("b", nil, true)
	c := newTouchFake("c", nil, false)
	o.AddRenderer(a)
	o.AddRenderer(b)
	o.AddRenderer(c)

	if !o.DispatchTouch(PointerEvent{Action: ActionMove, X: 5, Y: 6}) {
		t.Error("event should be consumed when any renderer consumes it")
	}
	for _, r := range []*fakeRenderer{a, b, c} {
		if len(r.events) != 1 {
			t.Errorf("%s received %d events, want 1", r.name, len(r.events))
		}
	}

	b.consume = false
	if o.DispatchTouch(PointerEvent{Action: ActionMove}) {
		t.Error("event should not be consumed when nobody consumes it")
	}
}

func TestDispatchTouchEmpty(t *testing.T) {
	o := newTestOverlay()
	o.AddRenderer(newFake("plain", nil))
	if o.DispatchTouch(PointerEvent{Action: ActionDown}) {
		t.Error("no touch clients should mean not handled")
	}
}

func TestDispatchToExclusive(t *testing.T) {
	o := newTestOverlay()
	a := newTouchFake("a", nil, false)
	plain := newFake("plain", nil)
	plain.consume = true
	o.AddRenderer(a)
	o.AddRenderer(plain)

	if !o.DispatchTo(PointerEvent{Action: ActionDown}, plain) {
		t.Error("forced dispatch should return the target's result")
	}
	if len(plain.events) != 1 {
		t.Errorf("target received %d events, want 1", len(plain.events))
	}
	if len(a.events) != 0 {
		t.Errorf("touch client received %d events during forced dispatch", len(a.events))
	}
}

func TestDispatchToScopedToOneEvent(t *testing.T) {
	o := newTestOverlay()
	a := newTouchFake("a", nil, false)
	x := newTouchFake("x", nil, true)
	o.AddRenderer(x)
	o.AddRenderer(a)

	o.DispatchTo(PointerEvent{Action: ActionDown}, x)
	if o.forced != nil {
		t.Fatal("forced target should be cleared after dispatch")
	}

	o.DispatchTouch(PointerEvent{Action: ActionMove})
	if len(a.events) != 1 {
		t.Errorf("next ambient event should reach a, got %d events", len(a.events))
	}
	if len(x.events) != 2 {
		t.Errorf("x should have 1 forced + 1 ambient event, got %d", len(x.events))
	}
}

func TestDispatchToClearsOnPanic(t *testing.T) {
	o := newTestOverlay()
	x := newTouchFake("x", nil, true)
	x.onTouch = func(PointerEvent) { panic("boom") }
	o.AddRenderer(x)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		o.DispatchTo(PointerEvent{Action: ActionDown}, x)
	}()
	if o.forced != nil {
		t.Error("forced target should be cleared after a panicking handler")
	}
}

func TestDispatchToReentrant(t *testing.T) {
	o := newTestOverlay()
	inner := newFake("inner", nil)
	outer := newFake("outer", nil)
	outer.onTouch = func(ev PointerEvent) {
		o.DispatchTo(ev, inner)
	}
	o.AddRenderer(inner)
	o.AddRenderer(outer)

	o.DispatchTo(PointerEvent{Action: ActionDown}, outer)
	if len(inner.events) != 1 {
		t.Errorf("inner received %d events, want 1", len(inner.events))
	}
	if o.forced != nil {
		t.Error("forced target should be cleared after nested dispatch")
	}
}

func TestDispatchToNilTargetUsesAmbient(t *testing.T) {
	o := newTestOverlay()
	a := newTouchFake("a", nil, true)
	o.AddRenderer(a)
	if !o.DispatchTo(PointerEvent{Action: ActionDown}, nil) {
		t.Error("nil target should fall back to ambient routing")
	}
	if len(a.events) != 1 {
		t.Errorf("a received %d events", len(a.events))
	}
}

func TestRoutePrimary(t *testing.T) {
	type tap struct{ x, y int }

	tests := []struct {
		name        string
		withPrimary bool
		open        bool
		action      PointerAction
		wantPrimary int
		wantTaps    []tap
	}{
		{"open primary gets event", true, true, ActionDown, 1, nil},
		{"open primary gets move", true, true, ActionMove, 1, nil},
		{"closed primary press taps", true, false, ActionDown, 0, []tap{{12, 34}}},
		{"closed primary move ignored", true, false, ActionMove, 0, nil},
		{"no primary press taps", false, false, ActionDown, 0, []tap{{12, 34}}},
		{"no primary release ignored", false, false, ActionUp, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOverlay()
			var taps []tap
			o.SetTapListener(func(x, y int) { taps = append(taps, tap{x, y}) })
			other := newTouchFake("other", nil, true)
			o.AddRenderer(other)
			p := &fakePrimary{fakeRenderer: fakeRenderer{name: "p"}, open: tt.open}
			if tt.withPrimary {
				o.AddPrimary(p)
			}

			o.RoutePrimary(PointerEvent{Action: tt.action, X: 12.7, Y: 34.2})

			if len(p.events) != tt.wantPrimary {
				t.Errorf("primary events = %d, want %d", len(p.events), tt.wantPrimary)
			}
			if len(other.events) != 0 {
				t.Error("RoutePrimary should never use ambient routing")
			}
			if len(taps) != len(tt.wantTaps) {
				t.Fatalf("taps = %v, want %v", taps, tt.wantTaps)
			}
			for i := range taps {
				if taps[i] != tt.wantTaps[i] {
					t.Errorf("tap %d = %v, want %v", i, taps[i], tt.wantTaps[i])
				}
			}
		})
	}
}

func TestTapCoordinatesAreWindowRelative(t *testing.T) {
	o := newTestOverlay()
	o.Layout(Bounds{40, 30, 360, 270})
	var x, y int
	o.SetTapListener(func(tx, ty int) { x, y = tx, ty })

	o.RoutePrimary(PointerEvent{Action: ActionDown, X: 50.9, Y: 35.5})
	if x != 50 || y != 35 {
		t.Errorf("tap = (%d, %d), want the event's (50, 35) unshifted by offset (%d, %d)",
			x, y, o.OffsetX(), o.OffsetY())
	}
}

func TestRoutePrimaryWithoutListener(t *testing.T) {
	o := newTestOverlay()
	o.RoutePrimary(PointerEvent{Action: ActionDown}) // should not panic
}

func TestHandleFrameTouch(t *testing.T) {
	o := newTestOverlay()
	var taps int
	var lastX, lastY int
	o.SetTapListener(func(x, y int) {
		taps++
		lastX, lastY = x, y
	})

	if !o.HandleFrameTouch(PointerEvent{Action: ActionDown, X: 1, Y: 2}) {
		t.Error("frame touch should always be consumed")
	}
	if taps != 0 {
		t.Error("press should not tap")
	}
	if !o.HandleFrameTouch(PointerEvent{Action: ActionUp, X: 8, Y: 9}) {
		t.Error("frame touch should always be consumed")
	}
	if taps != 1 || lastX != 8 || lastY != 9 {
		t.Errorf("taps = %d at (%d, %d), want 1 at (8, 9)", taps, lastX, lastY)
	}

	o.SetTapListener(nil)
	if !o.HandleFrameTouch(PointerEvent{Action: ActionUp}) {
		t.Error("frame touch should be consumed without a listener")
	}
}
