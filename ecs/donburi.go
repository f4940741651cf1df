package ecs

import (
	"github.com/lvtk/lui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for lui interaction events.
// Subscribe to this in your ECS systems to receive pointer, click and scroll
// events.
var InteractionEventType = events.NewEventType[lui.InteractionEvent]()

// EntityEvent is an interaction on a widget bound to an entity.
type EntityEvent struct {
	Entity donburi.Entity
	Event  lui.InteractionEvent
}

// EntityEventType carries events for bound widgets only.
var EntityEventType = events.NewEventType[EntityEvent]()

// Sink is a lui.EventSink backed by a Donburi world.
type Sink struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

var _ lui.EventSink = (*Sink)(nil)

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *Sink {
	return &Sink{world: world, entities: make(map[uint32]donburi.Entity)}
}

// World returns the world events are published to.
func (s *Sink) World() donburi.World { return s.world }

// Bind associates w with entity so that its events are also published to
// EntityEventType.
func (s *Sink) Bind(w lui.Component, entity donburi.Entity) {
	s.entities[w.Base().ID()] = entity
}

// Unbind removes the association for w.
func (s *Sink) Unbind(w lui.Component) {
	delete(s.entities, w.Base().ID())
}

// Entity returns the entity bound to the widget with the given ID.
func (s *Sink) Entity(widgetID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[widgetID]
	return e, ok
}

func (s *Sink) EmitEvent(event lui.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
	if event.WidgetID == 0 {
		return
	}
	if e, ok := s.entities[event.WidgetID]; ok {
		if !s.world.Valid(e) {
			delete(s.entities, event.WidgetID)
			return
		}
		EntityEventType.Publish(s.world, EntityEvent{Entity: e, Event: event})
	}
}
