// Package ecs provides ECS adapters for geng's registry events.
//
// The primary adapter is [NewDonburiSink], which bridges registry changes
// (insert, remove, select, deselect, background) into a [Donburi] world as
// typed events. Subscribe to [SceneEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	reg.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
