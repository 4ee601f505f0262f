package vectorview

// OverlayKind identifies one of the persistent cursor overlay shapes.
type OverlayKind uint8

const (
	OverlayCrosshair OverlayKind = iota // full-viewport cross, shown outside selection mode
	OverlayCursorBox                    // pick-box outline around the pointer
	OverlayMarquee                      // rubber-band rectangle while dragging
	overlayKindCount
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayCrosshair:
		return "crosshair"
	case OverlayCursorBox:
		return "cursor-box"
	case OverlayMarquee:
		return "marquee"
	default:
		return "unknown"
	}
}

// lineCount returns how many line entities make up the shape.
func (k OverlayKind) lineCount() int {
	if k == OverlayCrosshair {
		return 2
	}
	return 4
}

// overlaySet owns the Cursor-category line entities. They are created once,
// survive scene rebuilds, and are rewritten in place every frame in
// overlay coordinates (client pixels, Y up).
type overlaySet struct {
	lines [overlayKindCount][]Handle
	valid bool
}

// ensure creates the overlay lines if they do not exist or any of them has
// gone missing from the store. Returns true when entities were added.
func (o *overlaySet) ensure(store *EntityStore, order int) bool {
	if o.valid && o.intact(store) {
		return false
	}
	if o.valid {
		store.RemoveWhere(func(e *Entity) bool { return e.Category == CategoryCursor })
	}
	for k := OverlayKind(0); k < overlayKindCount; k++ {
		hs := make([]Handle, k.lineCount())
		for i := range hs {
			e := NewLine(CategoryCursor, order, Vec2{}, Vec2{}, ColorWhite, 1)
			e.ScreenSpace = true
			hs[i] = store.Add(e)
		}
		o.lines[k] = hs
	}
	o.valid = true
	store.SortByDrawOrder()
	return true
}

func (o *overlaySet) intact(store *EntityStore) bool {
	for k := range o.lines {
		for i := range o.lines[k] {
			if _, ok := store.Resolve(&o.lines[k][i]); !ok {
				return false
			}
		}
	}
	return true
}

// refresh rewrites every overlay line from the pointer and marquee state.
// Hidden shapes are collapsed to a point at the cursor.
func (o *overlaySet) refresh(store *EntityStore, cam *Camera, ctrl *InteractionController, boxSize float64) {
	if !o.valid {
		return
	}
	vp := cam.Viewport()
	c := cam.FlipY(ctrl.PointerClient())

	if ctrl.SelectionMode() {
		o.collapse(store, OverlayCrosshair, c)
	} else {
		o.set(store, OverlayCrosshair, 0, Vec2{0, c.Y}, Vec2{vp.X, c.Y})
		o.set(store, OverlayCrosshair, 1, Vec2{c.X, 0}, Vec2{c.X, vp.Y})
	}

	o.rect(store, OverlayCursorBox, RectAround(c, boxSize/2))

	if m := ctrl.Marquee(); m.Active {
		o.rect(store, OverlayMarquee, RectFromPoints(cam.FlipY(m.StartClient), cam.FlipY(m.EndClient)))
	} else {
		o.collapse(store, OverlayMarquee, c)
	}
}

func (o *overlaySet) rect(store *EntityStore, k OverlayKind, r Rect) {
	p00 := r.Min()
	p11 := r.Max()
	p10 := Vec2{p11.X, p00.Y}
	p01 := Vec2{p00.X, p11.Y}
	o.set(store, k, 0, p00, p10)
	o.set(store, k, 1, p10, p11)
	o.set(store, k, 2, p11, p01)
	o.set(store, k, 3, p01, p00)
}

func (o *overlaySet) collapse(store *EntityStore, k OverlayKind, p Vec2) {
	for i := range o.lines[k] {
		o.set(store, k, i, p, p)
	}
}

func (o *overlaySet) set(store *EntityStore, k OverlayKind, i int, a, b Vec2) {
	e, ok := store.Resolve(&o.lines[k][i])
	if !ok || e.Kind != KindLine {
		return
	}
	e.ScreenSpace = true
	e.Line.Start = a
	e.Line.End = b
}

// shape returns the current line payloads of an overlay shape.
func (o *overlaySet) shape(store *EntityStore, k OverlayKind) []LineData {
	out := make([]LineData, 0, len(o.lines[k]))
	for i := range o.lines[k] {
		if e, ok := store.Resolve(&o.lines[k][i]); ok {
			out = append(out, e.Line)
		}
	}
	return out
}
