// Package ecs provides ECS adapters for the router's event stream.
//
// The primary adapter is [NewDonburiStore], which mirrors every routed
// event (press, click, drag, scroll, key, focus, touch) into a [Donburi]
// world as a typed event. Subscribe to [RoutedEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	r.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
