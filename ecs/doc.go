// Package ecs provides ECS adapters for lui's interaction event system.
//
// The primary adapter is [NewDonburiSink], which bridges lui interaction
// events (pointer, click, scroll) into a [Donburi] world as typed events.
// Subscribe to [InteractionEventType] in your ECS systems to receive every
// event, or to [EntityEventType] to receive only events for widgets bound to
// an entity with [Sink.Bind].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sink.Bind(playButton, playEntity)
//	main.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
