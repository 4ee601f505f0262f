// Package ecs bridges vectorview interaction events into a [Donburi] world.
//
// [NewDonburiSink] publishes every event as a typed Donburi event and keeps
// a single entity carrying the [Selection] component up to date. Subscribe to
// [SelectionEventType] in your ECS systems to receive the events:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
//	ecs.SelectionEventType.Subscribe(world, func(w donburi.World, e vectorview.SelectionEvent) {
//		...
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
