// Package ecs provides ECS adapters for vectorview.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/vectorview"
)

// SelectionEventType is the Donburi event type for vectorview interaction
// events. Subscribe to this in your ECS systems to receive selection, hover,
// marquee, and mode changes.
var SelectionEventType = events.NewEventType[vectorview.SelectionEvent]()

// SelectionState mirrors the viewer's current selection and hover.
type SelectionState struct {
	IDs           []uint64
	HoverID       uint64
	SelectionMode bool
}

// Selection is the component holding the mirrored SelectionState. The sink
// keeps exactly one entity carrying it.
var Selection = donburi.NewComponentType[SelectionState]()

type donburiSink struct {
	world donburi.World
	state donburi.Entity
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to SelectionEventType and can be consumed with
// events.Subscribe and ProcessEvents. The latest selection is also written
// synchronously to the Selection component.
func NewDonburiSink(world donburi.World) vectorview.EventSink {
	return &donburiSink{world: world, state: world.Create(Selection)}
}

func (s *donburiSink) EmitEvent(event vectorview.SelectionEvent) {
	s.mirror(event)
	SelectionEventType.Publish(s.world, event)
}

func (s *donburiSink) mirror(event vectorview.SelectionEvent) {
	if !s.world.Valid(s.state) {
		s.state = s.world.Create(Selection)
	}
	st := Selection.Get(s.world.Entry(s.state))
	st.SelectionMode = event.SelectionMode
	switch event.Type {
	case vectorview.EventSelectionChanged:
		st.IDs = append(st.IDs[:0], event.IDs...)
	case vectorview.EventHoverChanged:
		st.HoverID = event.HoverID
	}
}

// CurrentSelection returns the mirrored state from world, if a sink has
// been attached to it.
func CurrentSelection(world donburi.World) (SelectionState, bool) {
	entry, ok := Selection.First(world)
	if !ok {
		return SelectionState{}, false
	}
	return *Selection.Get(entry), true
}

// ProcessOnSceneEvents registers scene callbacks that deliver queued
// SelectionEventType events to subscribers as soon as any interaction event
// fires. The sink publishes before scene callbacks run, so each event is
// delivered within the call that produced it.
func ProcessOnSceneEvents(scene *vectorview.Scene, world donburi.World) []vectorview.CallbackHandle {
	process := func(vectorview.SelectionEvent) { SelectionEventType.ProcessEvents(world) }
	types := []vectorview.EventType{
		vectorview.EventSelectionChanged,
		vectorview.EventHoverChanged,
		vectorview.EventMarqueeBegin,
		vectorview.EventMarqueeEnd,
		vectorview.EventModeChanged,
	}
	handles := make([]vectorview.CallbackHandle, 0, len(types))
	for _, et := range types {
		handles = append(handles, scene.OnEvent(et, process))
	}
	return handles
}
