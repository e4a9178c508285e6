package ecs

import (
	"github.com/phanxgames/panzoom"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransformEventType is the Donburi event type for panzoom transform changes.
var TransformEventType = events.NewEventType[panzoom.TransformEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates a TransformStore backed by a Donburi world.
// Transform events are published to TransformEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) panzoom.TransformStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitTransform(event panzoom.TransformEvent) {
	TransformEventType.Publish(s.world, event)
}
