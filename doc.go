// Package overlay is a compositing surface for [Ebitengine] that stacks
// pluggable renderers and routes touch input to them.
//
// # Quick start
//
//	o := overlay.New(overlay.Config{})
//	o.AddRenderer(progress)
//	o.AddPrimary(overlay.NewPieMenu(items...))
//	overlay.Run(o, overlay.RunConfig{Title: "Camera", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Overlay.Update], [Overlay.Layout] and [Overlay.Draw] directly.
//
// # Drawing
//
// Renderers draw in registration order, so the first one added is furthest
// back. [Overlay.InsertRenderer] places a renderer at a specific depth. After
// every pass the overlay asks each renderer whether it is still animating;
// if any is, another pass is requested. [Overlay.NeedsRedraw] reports whether
// a pass is pending, which lets the host skip idle frames.
//
// # Touch routing
//
// Renderers that return true from HandlesTouch at registration receive
// ambient touch events through [Overlay.DispatchTouch], most recently
// registered first. Every one of them sees every event; the event counts as
// consumed if any of them consumed it. Nothing is routed until
// [Overlay.SetGestures] attaches the host gesture recognizer.
//
// [Overlay.DispatchTo] sends one event to one renderer, bypassing ambient
// routing. [Overlay.RoutePrimary] serves the single primary renderer
// registered with [Overlay.AddPrimary], falling back to the tap listener.
//
// Removing a renderer does not stop ambient touch delivery to it unless
// [Config].PruneTouchOnRemove is set or [Overlay.RemoveTouchClient] is called.
//
// # Tweens and ECS
//
// [ProgressRenderer], [PieMenu] and [FadeRenderer] animate with [gween].
// Renderers that implement [Ticker] are advanced once per tick by
// [Overlay.Update]; Draw only paints the current state. The ecs submodule
// forwards routed touch events into a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package overlay
