package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/router"
)

// RoutedEvent is the Donburi payload for a routed semantic event. The
// target is flattened to its ID so systems need not hold scene nodes.
type RoutedEvent struct {
	Type     string
	TargetID string // empty for global events
	Button   int
	Touch    bool
	X, Y     float64
	DeltaX   float64
	DeltaY   float64
	Position float64
	Key      router.KeyInfo
	Action   router.TouchAction
	Points   []router.TouchPoint
	Pressed  bool
	Width    int
	Height   int
}

// RoutedEventType is the Donburi event type for routed events.
// Subscribe to this in your ECS systems to receive press, click, drag,
// scroll, key, focus and touch events.
var RoutedEventType = events.NewEventType[RoutedEvent]()

// FromEvent flattens a router event.
func FromEvent(ev router.Event) RoutedEvent {
	re := RoutedEvent{
		Type:     ev.Type,
		Button:   ev.Button,
		Touch:    ev.Touch,
		X:        ev.Point.X,
		Y:        ev.Point.Y,
		DeltaX:   ev.Delta.X,
		DeltaY:   ev.Delta.Y,
		Position: ev.Position,
		Key:      ev.Key,
		Action:   ev.Action,
		Pressed:  ev.Pressed,
		Width:    ev.Width,
		Height:   ev.Height,
	}
	if ev.Target != nil {
		re.TargetID = ev.Target.ID()
	}
	if len(ev.Points) > 0 {
		re.Points = append([]router.TouchPoint(nil), ev.Points...)
	}
	return re
}

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Routed events are published to RoutedEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) router.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event router.Event) {
	RoutedEventType.Publish(s.world, FromEvent(event))
}
