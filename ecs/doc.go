// Package ecs provides ECS adapters for overlay touch routing.
//
// The primary adapter is [NewTouchBridge], a renderer that forwards every
// pointer event routed to it into a [Donburi] world as a typed event.
// Subscribe to [TouchEventType] in your ECS systems to receive them.
//
// Usage:
//
//	bridge := ecs.NewTouchBridge(world)
//	o.AddRenderer(bridge)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
