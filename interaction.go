package vectorview

// InteractionState is the state of the selection state machine.
type InteractionState uint8

const (
	StateIdle            InteractionState = iota // selection mode off
	StatePickArmed                               // selection mode on, no drag
	StateMarqueeDragging                         // primary button held after a pick miss
)

func (s InteractionState) String() string {
	switch s {
	case StatePickArmed:
		return "pick-armed"
	case StateMarqueeDragging:
		return "marquee-dragging"
	default:
		return "idle"
	}
}

// Marquee is the rubber-band rectangle between a pick miss and the release.
type Marquee struct {
	Active      bool
	StartClient Vec2
	EndClient   Vec2
	StartWorld  Vec2
	EndWorld    Vec2
}

// Mode returns crossing for a leftward drag and window otherwise.
func (m Marquee) Mode() MarqueeMode {
	if m.EndClient.X-m.StartClient.X < 0 {
		return MarqueeCrossing
	}
	return MarqueeWindow
}

// WorldRect returns the marquee rectangle in world coordinates.
func (m Marquee) WorldRect() Rect {
	return RectFromPoints(m.StartWorld, m.EndWorld)
}

// ClientRect returns the marquee rectangle in client pixels.
func (m Marquee) ClientRect() Rect {
	return RectFromPoints(m.StartClient, m.EndClient)
}

// selectedEntry records a selected position. prev is only meaningful when
// recolored is set, which happens for line entities only.
type selectedEntry struct {
	id        uint64
	key       uint64
	prev      Color
	recolored bool
}

type hoverState struct {
	active bool
	pos    int
	id     uint64
	prev   Color
}

// InteractionController owns selection, hover, and marquee state plus the
// pick index. Selection and hover are keyed by store position; each record
// also carries the entity ID so positions can be re-derived whenever the
// store generation moves.
type InteractionController struct {
	store  *EntityStore
	camera *Camera
	index  SpatialIndex
	cfg    Config

	selectionMode bool
	indexDirty    bool

	pointerClient Vec2
	pointerWorld  Vec2

	order    []int
	selected map[int]selectedEntry
	hover    hoverState
	marquee  Marquee

	// Store generation the positions above belong to.
	generation uint64

	emit    func(SelectionEvent)
	itemBuf []IndexItem
}

// NewInteractionController creates a controller over store and camera.
func NewInteractionController(store *EntityStore, camera *Camera, cfg Config) *InteractionController {
	return &InteractionController{
		store:      store,
		camera:     camera,
		cfg:        cfg.withDefaults(),
		selected:   make(map[int]selectedEntry),
		indexDirty: true,
		generation: store.Generation(),
	}
}

// State returns the current state machine state.
func (c *InteractionController) State() InteractionState {
	switch {
	case !c.selectionMode:
		return StateIdle
	case c.marquee.Active:
		return StateMarqueeDragging
	default:
		return StatePickArmed
	}
}

// SelectionMode reports whether picking is armed.
func (c *InteractionController) SelectionMode() bool {
	return c.selectionMode
}

// ToggleSelectionMode switches between Idle and PickArmed. Leaving selection
// mode clears the hover highlight and cancels a marquee in progress.
func (c *InteractionController) ToggleSelectionMode() {
	c.SetSelectionMode(!c.selectionMode)
}

// SetSelectionMode arms or disarms picking.
func (c *InteractionController) SetSelectionMode(on bool) {
	if c.selectionMode == on {
		return
	}
	c.selectionMode = on
	if !on {
		if c.marquee.Active {
			c.marquee.Active = false
			c.fire(SelectionEvent{Type: EventMarqueeEnd, Cancelled: true})
		}
		c.ClearHover()
	}
	c.fire(SelectionEvent{Type: EventModeChanged, SelectionMode: on})
}

// SetPointer records the client pointer position. While a marquee is being
// dragged the end point follows the pointer.
func (c *InteractionController) SetPointer(client Vec2) {
	c.pointerClient = client
	c.pointerWorld = c.camera.ClientToWorld(client)
	if c.marquee.Active {
		c.marquee.EndClient = client
		c.marquee.EndWorld = c.pointerWorld
	}
}

// RefreshPointer recomputes the pointer's world position after a camera change.
func (c *InteractionController) RefreshPointer() {
	c.pointerWorld = c.camera.ClientToWorld(c.pointerClient)
}

// PointerClient returns the last client pointer position.
func (c *InteractionController) PointerClient() Vec2 { return c.pointerClient }

// PointerWorld returns the pointer position in world coordinates.
func (c *InteractionController) PointerWorld() Vec2 { return c.pointerWorld }

// Marquee returns a copy of the marquee state.
func (c *InteractionController) Marquee() Marquee { return c.marquee }

// --- Pick index ---

// InvalidateIndex forces a rebuild on the next EnsureIndex.
func (c *InteractionController) InvalidateIndex() {
	c.indexDirty = true
}

// IndexLen returns the number of entries in the pick index.
func (c *InteractionController) IndexLen() int {
	return c.index.Len()
}

// EnsureIndex rebuilds the pick index when it is dirty or was built against
// an older store generation or camera revision.
func (c *InteractionController) EnsureIndex() bool {
	c.Sync()
	gen, rev := c.store.Generation(), c.camera.Revision()
	if !c.indexDirty && c.index.fresh(gen, rev) {
		return false
	}
	c.buildIndex()
	c.index.stamp(gen, rev)
	c.indexDirty = false
	return true
}

// buildIndex indexes every Scene line, padded by half the pick box so thin
// lines stay hittable at any zoom.
func (c *InteractionController) buildIndex() {
	pad := c.camera.PixelsToWorld(c.cfg.PickBoxSize / 2)
	items := c.itemBuf[:0]
	ents := c.store.Entities()
	for i := range ents {
		e := &ents[i]
		if e.Category != CategoryScene || e.Kind != KindLine {
			continue
		}
		items = append(items, IndexItem{Box: e.Line.Bounds().Expand(pad), Pos: i})
	}
	c.index.Build(items)
	c.itemBuf = items[:0]
}

// PickBox returns the world-space query square around the pointer.
func (c *InteractionController) PickBox() Rect {
	return RectAround(c.pointerWorld, c.camera.PixelsToWorld(c.cfg.PickBoxSize/2))
}

// Pick queries the index at the pointer. The pointer's world position is
// re-derived first, since the camera may have moved since the last SetPointer.
func (c *InteractionController) Pick() (int, bool) {
	c.RefreshPointer()
	c.EnsureIndex()
	return c.index.QueryFirstIntersecting(c.PickBox())
}

// --- Pointer buttons ---

// PrimaryDown handles a primary button press. Outside selection mode it does
// nothing. A hit selects that entity; a miss starts a marquee. Returns true
// when the press was consumed.
func (c *InteractionController) PrimaryDown() bool {
	if !c.selectionMode || c.marquee.Active {
		return false
	}
	if pos, ok := c.Pick(); ok {
		c.ApplySelection([]int{pos})
		return true
	}
	c.marquee = Marquee{
		Active:      true,
		StartClient: c.pointerClient,
		EndClient:   c.pointerClient,
		StartWorld:  c.pointerWorld,
		EndWorld:    c.pointerWorld,
	}
	c.ClearHover()
	c.fire(SelectionEvent{Type: EventMarqueeBegin})
	return true
}

// PrimaryUp finishes a marquee drag, if one is active.
func (c *InteractionController) PrimaryUp() {
	if !c.marquee.Active {
		return
	}
	m := c.marquee
	c.marquee.Active = false

	d := m.EndClient.Sub(m.StartClient)
	if abs(d.X) < c.cfg.DragThreshold && abs(d.Y) < c.cfg.DragThreshold {
		c.fire(SelectionEvent{Type: EventMarqueeEnd, Cancelled: true})
		return
	}

	mode := m.Mode()
	c.ApplySelection(c.MarqueeHits(m.WorldRect(), mode))
	c.fire(SelectionEvent{Type: EventMarqueeEnd, Mode: mode})
}

// MarqueeHits returns the positions of Scene lines selected by a marquee
// rectangle: intersecting boxes in crossing mode, fully contained boxes in
// window mode.
func (c *InteractionController) MarqueeHits(rect Rect, mode MarqueeMode) []int {
	c.Sync()
	var hits []int
	ents := c.store.Entities()
	for i := range ents {
		e := &ents[i]
		if e.Category != CategoryScene || e.Kind != KindLine {
			continue
		}
		b := e.Line.Bounds()
		if mode == MarqueeCrossing {
			if rect.Intersects(b) {
				hits = append(hits, i)
			}
		} else if rect.ContainsRect(b) {
			hits = append(hits, i)
		}
	}
	return hits
}

// --- Selection ---

// ApplySelection replaces the selection with positions. The previous
// selection is always cleared first; selection is never additive. Out of
// range positions are skipped. Selected lines are recolored with the
// highlight color; their prior color is kept for ClearSelection. A position
// that is currently hovered hands its pre-hover color to the selection.
func (c *InteractionController) ApplySelection(positions []int) {
	c.Sync()
	c.restoreSelection()

	ents := c.store.Mutable()
	for _, pos := range positions {
		if pos < 0 || pos >= len(ents) {
			continue
		}
		if _, dup := c.selected[pos]; dup {
			continue
		}
		e := &ents[pos]
		entry := selectedEntry{id: e.ID, key: e.Key}
		if e.Kind == KindLine {
			entry.prev = e.Line.Color
			if c.hover.active && c.hover.pos == pos {
				entry.prev = c.hover.prev
				c.hover = hoverState{}
			}
			e.Line.Color = c.cfg.HighlightColor
			entry.recolored = true
		}
		c.selected[pos] = entry
		c.order = append(c.order, pos)
	}
	c.fireSelection()
}

// ClearSelection restores every selected line's color and empties the
// selection.
func (c *InteractionController) ClearSelection() {
	c.Sync()
	had := len(c.order) > 0
	c.restoreSelection()
	if had {
		c.fireSelection()
	}
}

// restoreSelection writes saved colors back. Each write is guarded by a
// bounds, identity, and kind check; failed checks are skipped.
func (c *InteractionController) restoreSelection() {
	ents := c.store.Mutable()
	for pos, entry := range c.selected {
		if !entry.recolored || pos >= len(ents) {
			continue
		}
		e := &ents[pos]
		if e.ID == entry.id && e.Kind == KindLine {
			e.Line.Color = entry.prev
		}
	}
	clear(c.selected)
	c.order = c.order[:0]
}

// Selected returns the selected positions in application order.
func (c *InteractionController) Selected() []int {
	c.Sync()
	return append([]int(nil), c.order...)
}

// SelectedIDs returns the identifiers of the selected entities.
func (c *InteractionController) SelectedIDs() []uint64 {
	c.Sync()
	ids := make([]uint64, 0, len(c.order))
	for _, pos := range c.order {
		ids = append(ids, c.selected[pos].id)
	}
	return ids
}

// IsSelected reports whether position pos is selected.
func (c *InteractionController) IsSelected(pos int) bool {
	c.Sync()
	_, ok := c.selected[pos]
	return ok
}

// --- Hover ---

// Hovered returns the hovered position, if any.
func (c *InteractionController) Hovered() (int, bool) {
	c.Sync()
	return c.hover.pos, c.hover.active
}

// UpdateHover re-runs the pick query at the pointer and moves the hover
// highlight. Selected entities are never hover-highlighted. Outside
// PickArmed the hover is cleared instead.
func (c *InteractionController) UpdateHover() {
	if c.State() != StatePickArmed {
		c.ClearHover()
		return
	}
	c.EnsureIndex()
	prevID := c.hover.id
	c.clearHoverState()

	if pos, ok := c.index.QueryFirstIntersecting(c.PickBox()); ok {
		if _, sel := c.selected[pos]; !sel {
			if e, ok := c.store.At(pos); ok && e.Kind == KindLine {
				c.hover = hoverState{active: true, pos: pos, id: e.ID, prev: e.Line.Color}
				e.Line.Color = c.cfg.HighlightColor
			}
		}
	}
	if c.hover.id != prevID {
		c.fire(SelectionEvent{Type: EventHoverChanged, HoverID: c.hover.id})
	}
}

// ClearHover removes the hover highlight, if any.
func (c *InteractionController) ClearHover() {
	c.Sync()
	prevID := c.hover.id
	c.clearHoverState()
	if prevID != 0 {
		c.fire(SelectionEvent{Type: EventHoverChanged})
	}
}

// clearHoverState restores the hovered line's color unless the position is
// selected, then forgets the hover.
func (c *InteractionController) clearHoverState() {
	if !c.hover.active {
		return
	}
	if _, sel := c.selected[c.hover.pos]; !sel {
		if e, ok := c.store.At(c.hover.pos); ok && e.ID == c.hover.id && e.Kind == KindLine {
			e.Line.Color = c.hover.prev
		}
	}
	c.hover = hoverState{}
}

// --- Generation tracking ---

// Sync re-derives selection and hover positions when the store generation
// has moved since they were recorded. Entities are matched by ID first and
// then by content key; a keyed match is a recreated entity, so its current
// color becomes the saved color and the highlight is reapplied. Records that
// match nothing are dropped. The hover is always dropped (after restoring
// its color) and is recomputed on the next UpdateHover. A selection event
// fires when any record was dropped or moved to a new ID.
func (c *InteractionController) Sync() {
	gen := c.store.Generation()
	if gen == c.generation {
		return
	}
	c.generation = gen
	if len(c.order) == 0 && !c.hover.active {
		return
	}

	ents := c.store.Mutable()
	byID := make(map[uint64]int, len(ents))
	byKey := make(map[uint64]int)
	for i := range ents {
		byID[ents[i].ID] = i
		if ents[i].Key != 0 && ents[i].Category == CategoryScene {
			byKey[ents[i].Key] = i
		}
	}

	hoverDropped := false
	if c.hover.active {
		if pos, ok := byID[c.hover.id]; ok && ents[pos].Kind == KindLine {
			ents[pos].Line.Color = c.hover.prev
		}
		c.hover = hoverState{}
		hoverDropped = true
	}

	// changed is set when an entry is dropped or re-keyed to a new ID.
	changed := false
	oldOrder := c.order
	oldSel := c.selected
	c.order = make([]int, 0, len(oldOrder))
	c.selected = make(map[int]selectedEntry, len(oldSel))
	for _, oldPos := range oldOrder {
		entry := oldSel[oldPos]
		if pos, ok := byID[entry.id]; ok {
			c.selected[pos] = entry
			c.order = append(c.order, pos)
			continue
		}
		pos, ok := byKey[entry.key]
		if entry.key == 0 || !ok {
			changed = true
			continue
		}
		if _, dup := c.selected[pos]; dup {
			continue
		}
		e := &ents[pos]
		entry.id = e.ID
		changed = true
		entry.recolored = false
		if e.Kind == KindLine {
			entry.prev = e.Line.Color
			e.Line.Color = c.cfg.HighlightColor
			entry.recolored = true
		}
		c.selected[pos] = entry
		c.order = append(c.order, pos)
	}

	if hoverDropped {
		c.fire(SelectionEvent{Type: EventHoverChanged})
	}
	if changed {
		c.fireSelection()
	}
}

// --- Events ---

func (c *InteractionController) fireSelection() {
	ids := make([]uint64, 0, len(c.order))
	for _, pos := range c.order {
		ids = append(ids, c.selected[pos].id)
	}
	c.fire(SelectionEvent{Type: EventSelectionChanged, IDs: ids})
}

func (c *InteractionController) fire(ev SelectionEvent) {
	if c.emit == nil {
		return
	}
	ev.World = c.pointerWorld
	ev.SelectionMode = c.selectionMode
	c.emit(ev)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
