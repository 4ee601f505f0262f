package vectorview

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticPress
	syntheticRelease
	syntheticWheel
)

// syntheticEvent represents a single injected input event. Client
// coordinates are used and go through the same handlers as real input.
type syntheticEvent struct {
	kind    syntheticKind
	x, y    float64
	button  MouseButton
	notches float64
}

// InjectPress queues a primary button press at the given client
// coordinates. The event is consumed on a later Update.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticPress, x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectMove queues a pointer move to the given client coordinates. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectRelease queues a primary button release at the given client
// coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticRelease, x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectWheel queues a wheel event at the given client coordinates.
func (s *Scene) InjectWheel(x, y, notches float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticWheel, x: x, y: y, notches: notches,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same client coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued synthetic events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the input handlers. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.SetPointer(evt.x, evt.y)
	switch evt.kind {
	case syntheticPress:
		s.PointerDown(evt.button)
	case syntheticRelease:
		s.PointerUp(evt.button)
	case syntheticWheel:
		s.Wheel(evt.notches)
	}
	return true
}
