package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/overlay"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TouchEventType is the Donburi event type for overlay pointer events.
// Subscribe to this in your ECS systems to receive routed touch input.
var TouchEventType = events.NewEventType[overlay.PointerEvent]()

// TouchBridge is a touch-capable renderer that publishes every pointer event
// it receives into a Donburi world. It draws nothing.
type TouchBridge struct {
	overlay.BaseRenderer

	// Consume is reported back to the overlay for every event.
	Consume bool

	world donburi.World
}

// NewTouchBridge creates a TouchBridge publishing to world. Events are
// queued and delivered by TouchEventType.ProcessEvents.
func NewTouchBridge(world donburi.World) *TouchBridge {
	return &TouchBridge{world: world}
}

// HandlesTouch returns true.
func (b *TouchBridge) HandlesTouch() bool { return true }

func (b *TouchBridge) OnTouchEvent(ev overlay.PointerEvent) bool {
	TouchEventType.Publish(b.world, ev)
	return b.Consume
}

func (b *TouchBridge) Draw(*ebiten.Image) {}
