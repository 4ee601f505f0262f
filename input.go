package vectorview

import "math"

// SelectionEvent describes one interaction state change. Which fields are
// meaningful depends on Type.
type SelectionEvent struct {
	Type EventType

	// IDs is the new selection (EventSelectionChanged), in application order.
	IDs []uint64
	// HoverID is the newly hovered entity, 0 when the hover was cleared
	// (EventHoverChanged).
	HoverID uint64
	// Mode is the containment rule used (EventMarqueeEnd).
	Mode MarqueeMode
	// Cancelled is set when a marquee ended without selecting
	// (EventMarqueeEnd).
	Cancelled bool

	// SelectionMode and World describe the controller at emission time.
	SelectionMode bool
	World         Vec2
}

// EventSink receives every interaction event a Scene emits. The ecs
// package provides a Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event SelectionEvent)
}

type eventHandler struct {
	id uint32
	fn func(SelectionEvent)
}

// handlerRegistry stores scene-level callbacks per event type.
type handlerRegistry struct {
	handlers [eventTypeCount][]eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= eventTypeCount {
		return
	}
	s := h.reg.handlers[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.handlers[h.event] = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) add(event EventType, fn func(SelectionEvent)) CallbackHandle {
	if event >= eventTypeCount || fn == nil {
		return CallbackHandle{}
	}
	r.nextID++
	r.handlers[event] = append(r.handlers[event], eventHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

func (r *handlerRegistry) fire(ev SelectionEvent) {
	if ev.Type >= eventTypeCount {
		return
	}
	for _, h := range r.handlers[ev.Type] {
		h.fn(ev)
	}
}

// OnEvent registers fn for events of the given type.
func (s *Scene) OnEvent(event EventType, fn func(SelectionEvent)) CallbackHandle {
	return s.handlers.add(event, fn)
}

// OnSelectionChanged registers a callback for selection replacements.
func (s *Scene) OnSelectionChanged(fn func(SelectionEvent)) CallbackHandle {
	return s.handlers.add(EventSelectionChanged, fn)
}

// OnHoverChanged registers a callback for hover changes.
func (s *Scene) OnHoverChanged(fn func(SelectionEvent)) CallbackHandle {
	return s.handlers.add(EventHoverChanged, fn)
}

// SetEventSink sets the optional event bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Scene) dispatch(ev SelectionEvent) {
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
	s.handlers.fire(ev)
	if s.debug {
		s.log.Debug("interaction event",
			"type", ev.Type, "ids", len(ev.IDs), "hover", ev.HoverID, "cancelled", ev.Cancelled)
	}
}

// --- Input handlers ---

// SetPointer records the pointer position in client pixels. While the
// secondary button is held the camera pans with the pointer.
func (s *Scene) SetPointer(x, y float64) {
	p := Vec2{x, y}
	if s.panning {
		d := p.Sub(s.panLast)
		s.camera.PanByPixels(-d.X, -d.Y)
		s.panLast = p
	}
	s.ctrl.SetPointer(p)
}

// PointerDown handles a button press at the current pointer position.
func (s *Scene) PointerDown(button MouseButton) {
	switch button {
	case MouseButtonLeft:
		s.ctrl.PrimaryDown()
	case MouseButtonRight:
		s.panning = true
		s.panLast = s.ctrl.PointerClient()
	}
}

// PointerUp handles a button release.
func (s *Scene) PointerUp(button MouseButton) {
	switch button {
	case MouseButtonLeft:
		s.ctrl.PrimaryUp()
	case MouseButtonRight:
		s.panning = false
	}
}

// Wheel zooms at the pointer by WheelStep per notch. Positive notches zoom
// in; fractional notches from smooth-scrolling devices scale accordingly.
func (s *Scene) Wheel(notches float64) {
	if notches == 0 || math.IsNaN(notches) {
		return
	}
	s.camera.ZoomAt(s.ctrl.PointerClient(), math.Pow(s.cfg.WheelStep, notches))
}

// ToggleSelectionMode switches picking on or off.
func (s *Scene) ToggleSelectionMode() {
	s.SetSelectionMode(!s.ctrl.SelectionMode())
}

// SetSelectionMode arms or disarms picking. The HUD is rebuilt to reflect it.
func (s *Scene) SetSelectionMode(on bool) {
	if s.ctrl.SelectionMode() == on {
		return
	}
	s.ctrl.SetSelectionMode(on)
	s.sceneDirty = true
}

// ToggleGrid shows or hides the background grid.
func (s *Scene) ToggleGrid() {
	s.gridEnabled = !s.gridEnabled
	s.sceneDirty = true
}

// PanByPixels pans the camera by a client-pixel delta.
func (s *Scene) PanByPixels(dx, dy float64) {
	s.camera.PanByPixels(dx, dy)
	s.ctrl.RefreshPointer()
}

// ZoomAt multiplies the zoom by factor around client point (x, y).
func (s *Scene) ZoomAt(x, y, factor float64) {
	s.camera.ZoomAt(Vec2{x, y}, factor)
	s.ctrl.RefreshPointer()
}

// Resize sets the viewport size in pixels.
func (s *Scene) Resize(width, height float64) {
	vp := s.camera.Viewport()
	if vp.X == math.Max(1, width) && vp.Y == math.Max(1, height) {
		return
	}
	s.camera.Resize(width, height)
	s.ctrl.RefreshPointer()
}

// ClearSelection deselects everything.
func (s *Scene) ClearSelection() {
	s.ctrl.ClearSelection()
}
