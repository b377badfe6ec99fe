// Package ecs provides ECS adapters for pluribus engine events.
//
// The primary adapter is [NewDonburiSink], which forwards engine lifecycle
// events (rebuilds, wave spawns and retirements, the end of the reveal) into
// a [Donburi] world as typed events. Subscribe to [EngineEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
