package ecs

import (
	"github.com/SveOls/geng"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for geng registry events.
var SceneEventType = events.NewEventType[geng.SceneEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) geng.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event geng.SceneEvent) {
	SceneEventType.Publish(s.world, event)
}
