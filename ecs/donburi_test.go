package ecs

import (
	"slices"
	"testing"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/vectorview"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
	if _, ok := CurrentSelection(world); !ok {
		t.Fatal("expected selection state entity")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []vectorview.SelectionEvent
	SelectionEventType.Subscribe(world, func(w donburi.World, e vectorview.SelectionEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(vectorview.SelectionEvent{
		Type:          vectorview.EventSelectionChanged,
		IDs:           []uint64{4, 9},
		SelectionMode: true,
	})
	sink.EmitEvent(vectorview.SelectionEvent{
		Type:    vectorview.EventHoverChanged,
		HoverID: 12,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected queued events, got %d delivered", len(received))
	}
	SelectionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != vectorview.EventSelectionChanged || len(received[0].IDs) != 2 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != vectorview.EventHoverChanged || received[1].HoverID != 12 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_MirrorsSelection(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	ids := []uint64{1, 2, 3}
	sink.EmitEvent(vectorview.SelectionEvent{Type: vectorview.EventSelectionChanged, IDs: ids, SelectionMode: true})
	ids[0] = 99 // the mirror must not alias the event slice

	st, ok := CurrentSelection(world)
	if !ok {
		t.Fatal("no selection state")
	}
	if len(st.IDs) != 3 || st.IDs[0] != 1 {
		t.Errorf("IDs = %v, want [1 2 3]", st.IDs)
	}
	if !st.SelectionMode {
		t.Error("SelectionMode should be mirrored")
	}

	sink.EmitEvent(vectorview.SelectionEvent{Type: vectorview.EventSelectionChanged})
	st, _ = CurrentSelection(world)
	if len(st.IDs) != 0 {
		t.Errorf("IDs after clear = %v, want empty", st.IDs)
	}
}

func TestDonburiSink_WithScene(t *testing.T) {
	world := donburi.NewWorld()
	scene := vectorview.NewScene(vectorview.Config{GridDisabled: true, SelectionMode: true})
	scene.SetEventSink(NewDonburiSink(world))

	scene.AddBuilder(vectorview.BuilderFunc(func(vectorview.BuildContext) []vectorview.Entity {
		return []vectorview.Entity{
			vectorview.NewLine(vectorview.CategoryScene, 100,
				vectorview.Vec2{X: -50, Y: 0}, vectorview.Vec2{X: 50, Y: 0}, vectorview.Color{R: 1, A: 1}, 2),
		}
	}))
	scene.Update(1.0 / 60)

	// World origin is at the viewport center.
	scene.SetPointer(400, 300)
	scene.PointerDown(vectorview.MouseButtonLeft)
	scene.PointerUp(vectorview.MouseButtonLeft)

	st, _ := CurrentSelection(world)
	if len(st.IDs) != 1 {
		t.Fatalf("mirrored IDs = %v, want one", st.IDs)
	}
}

func TestProcessOnSceneEvents(t *testing.T) {
	world := donburi.NewWorld()
	scene := vectorview.NewScene(vectorview.Config{GridDisabled: true, SelectionMode: true})
	scene.SetEventSink(NewDonburiSink(world))
	handles := ProcessOnSceneEvents(scene, world)
	if len(handles) != 5 {
		t.Fatalf("handles = %d, want one per event type", len(handles))
	}
	scene.Update(1.0 / 60)

	var got []vectorview.EventType
	SelectionEventType.Subscribe(world, func(_ donburi.World, ev vectorview.SelectionEvent) {
		got = append(got, ev.Type)
	})

	// Empty scene: the press misses and starts a marquee.
	scene.SetPointer(400, 300)
	scene.PointerDown(vectorview.MouseButtonLeft)
	if !slices.Contains(got, vectorview.EventMarqueeBegin) {
		t.Errorf("delivered %v, want marquee-begin without a selection change", got)
	}

	got = got[:0]
	scene.ToggleSelectionMode()
	if !slices.Contains(got, vectorview.EventModeChanged) {
		t.Errorf("delivered %v, want mode-changed", got)
	}
}
