// Package ecs provides ECS adapters for panzoom's transform notifications.
//
// The primary adapter is [NewDonburiStore], which bridges every view
// transform change (pan, pinch, wheel, initial apply) into a [Donburi] world
// as a typed event. Subscribe to [TransformEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	ctrl, err := panzoom.New(surface, panzoom.Config{
//		OnTransform: redraw,
//		Store:       ecs.NewDonburiStore(world),
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
