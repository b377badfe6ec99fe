package ecs

import (
	pluribus "github.com/dmartinsuarez/Pluribus-intro"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EngineEventType is the Donburi event type for pluribus engine events.
var EngineEventType = events.NewEventType[pluribus.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on EngineEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) pluribus.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event pluribus.Event) {
	EngineEventType.Publish(s.world, event)
}
