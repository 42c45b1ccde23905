package overlay

import "testing"

func TestFadeRendererDefaults(t *testing.T) {
	inner := newTouchFake("inner", nil, true)
	f := NewFadeRenderer(inner)
	if f.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", f.Alpha())
	}
	if f.Animating() || f.Hidden() {
		t.Error("new fade renderer should be idle and visible")
	}
	if !f.HandlesTouch() {
		t.Error("HandlesTouch should follow the wrapped renderer")
	}
	if !f.OnTouchEvent(PointerEvent{Action: ActionDown}) || len(inner.events) != 1 {
		t.Error("touch should reach the wrapped renderer")
	}
}

func TestFadeRendererTween(t *testing.T) {
	inner := newFake("inner", nil)
	f := NewFadeRenderer(inner)
	f.Duration = 0.5
	f.FadeOut()

	if !f.Animating() {
		t.Fatal("FadeOut should start animating")
	}
	f.Tick(0.25)
	if a := f.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("midway alpha = %v, want in (0, 1)", a)
	}
	f.Draw(nil)
	if inner.draws != 1 {
		t.Errorf("partially faded draws = %d, want 1", inner.draws)
	}

	f.Tick(0.5)
	if f.Animating() {
		t.Error("fade should be finished")
	}
	if f.Alpha() != 0 || !f.Hidden() {
		t.Errorf("Alpha() = %v, Hidden() = %v, want 0, true", f.Alpha(), f.Hidden())
	}
	f.Draw(nil)
	if inner.draws != 1 {
		t.Errorf("hidden renderer drew: draws = %d", inner.draws)
	}

	f.FadeIn()
	if f.Hidden() {
		t.Error("fading back in should not count as hidden")
	}
	f.Tick(1)
	if f.Alpha() != 1 {
		t.Errorf("Alpha() after FadeIn = %v, want 1", f.Alpha())
	}
}

func TestFadeRendererImmediate(t *testing.T) {
	tests := []struct {
		name string
		to   float64
		want float64
	}{
		{"out", 0, 0},
		{"partial", 0.4, 0.4},
		{"clamps high", 3, 1},
		{"clamps low", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFadeRenderer(newFake("inner", nil))
			f.Duration = 0
			f.FadeTo(tt.to)
			if f.Alpha() != tt.want {
				t.Errorf("Alpha() = %v, want %v", f.Alpha(), tt.want)
			}
			if f.Animating() {
				t.Error("zero duration should not animate")
			}
		})
	}
}

func TestFadeRendererHiddenTouch(t *testing.T) {
	inner := newTouchFake("inner", nil, true)
	f := NewFadeRenderer(inner)
	f.Duration = 0
	f.FadeOut()

	tests := []struct {
		action  PointerAction
		forward bool
	}{
		{ActionDown, false},
		{ActionMove, false},
		{ActionPointerDown, false},
		{ActionUp, true},
		{ActionPointerUp, true},
		{ActionCancel, true},
	}
	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			n := len(inner.events)
			got := f.OnTouchEvent(PointerEvent{Action: tt.action})
			if forwarded := len(inner.events) > n; forwarded != tt.forward {
				t.Errorf("forwarded = %v, want %v", forwarded, tt.forward)
			}
			if got != tt.forward {
				t.Errorf("consumed = %v, want %v", got, tt.forward)
			}
		})
	}
}

func TestFadeRendererForwardsRegistration(t *testing.T) {
	o := newTestOverlay()
	o.Layout(Bounds{0, 0, 320, 240})
	inner := &tickingFake{fakeRenderer: fakeRenderer{name: "inner", touch: true}}
	f := NewFadeRenderer(inner)
	o.AddRenderer(f)

	if inner.overlay != o || f.Overlay() != o {
		t.Error("SetOverlay should reach the wrapped renderer")
	}
	if len(inner.layouts) != 1 || inner.layouts[0] != (Bounds{0, 0, 320, 240}) {
		t.Errorf("inner layouts = %v", inner.layouts)
	}
	if o.TouchClientCount() != 1 {
		t.Errorf("TouchClientCount() = %d, want 1", o.TouchClientCount())
	}

	o.tick(0.1)
	if len(inner.ticks) != 1 || inner.ticks[0] != 0.1 {
		t.Errorf("inner ticks = %v, want [0.1]", inner.ticks)
	}

	o.Remove(f)
	if inner.overlay != nil {
		t.Error("removal should clear the wrapped renderer's overlay")
	}
}

func TestFadeRendererDrivesRedrawLoop(t *testing.T) {
	o := newTestOverlay()
	inner := newFake("inner", nil)
	f := NewFadeRenderer(inner)
	o.AddRenderer(f)
	o.Draw(nil)
	if o.NeedsRedraw() {
		t.Fatal("opaque idle fade should leave the overlay idle")
	}

	f.FadeOut()
	if !o.NeedsRedraw() {
		t.Fatal("FadeOut should invalidate the overlay")
	}
	start := o.Passes()
	for i := 0; i < 1000 && o.NeedsRedraw(); i++ {
		o.tick(1.0 / 60)
		o.Draw(nil)
	}
	if o.NeedsRedraw() {
		t.Fatal("overlay should settle once the fade finishes")
	}
	if o.Passes()-start < 2 {
		t.Errorf("expected several passes while fading, got %d", o.Passes()-start)
	}

	// A hidden wrapper does not keep an animating renderer alive.
	inner.animating = true
	o.Invalidate()
	o.Draw(nil)
	if o.NeedsRedraw() {
		t.Error("hidden wrapped renderer should not request redraws")
	}
}
