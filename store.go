package vectorview

// Handle references an entity returned by EntityStore.Add. Index is only
// trusted while Generation matches the store; after that the handle falls
// back to a linear ID lookup.
type Handle struct {
	ID         uint64
	Index      int
	Generation uint64
}

// EntityStore is an ordered, mutable collection of entities. Positions are
// indices into a dense slice and are only valid for the generation they
// were observed at: every structural mutation bumps Generation.
//
// EntityStore is not safe for concurrent use. The scene that owns it is the
// only mutator; renderers read Entities between updates.
type EntityStore struct {
	entities   []Entity
	sortBuf    []Entity
	nextID     uint64
	generation uint64
}

// NewEntityStore creates an empty store with room for capacity entities.
func NewEntityStore(capacity int) *EntityStore {
	return &EntityStore{entities: make([]Entity, 0, capacity)}
}

// Add appends e, assigning it the next identifier, and returns a handle to it.
// An ID preset on e is overwritten so identifiers stay unique per store.
func (s *EntityStore) Add(e Entity) Handle {
	s.nextID++
	e.ID = s.nextID
	s.entities = append(s.entities, e)
	s.generation++
	return Handle{ID: e.ID, Index: len(s.entities) - 1, Generation: s.generation}
}

// RemoveWhere deletes every entity matching pred, preserving the relative
// order of survivors. Returns the number removed.
func (s *EntityStore) RemoveWhere(pred func(e *Entity) bool) int {
	kept := s.entities[:0]
	for i := range s.entities {
		if !pred(&s.entities[i]) {
			kept = append(kept, s.entities[i])
		}
	}
	removed := len(s.entities) - len(kept)
	// Zero the tail so removed text payloads can be collected.
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = Entity{}
	}
	s.entities = kept
	if removed > 0 {
		s.generation++
	}
	return removed
}

// Clear removes every entity. Identifiers keep increasing afterwards.
func (s *EntityStore) Clear() {
	s.RemoveWhere(func(*Entity) bool { return true })
}

// Entities returns the ordered entity sequence. The returned slice MUST NOT
// be mutated and MUST NOT be retained across a structural mutation.
func (s *EntityStore) Entities() []Entity {
	return s.entities
}

// Mutable returns the ordered entity sequence for in-place edits of payload
// fields (colors, overlay geometry). Changing positions, count, or order
// through it is not allowed; call Invalidate after editing pickable geometry.
func (s *EntityStore) Mutable() []Entity {
	return s.entities
}

// Snapshot copies the current sequence into buf and returns it.
func (s *EntityStore) Snapshot(buf []Entity) []Entity {
	return append(buf[:0], s.entities...)
}

// Len returns the number of entities.
func (s *EntityStore) Len() int {
	return len(s.entities)
}

// At returns the entity at position i, or false when i is out of range.
func (s *EntityStore) At(i int) (*Entity, bool) {
	if i < 0 || i >= len(s.entities) {
		return nil, false
	}
	return &s.entities[i], true
}

// Generation returns the structural mutation counter.
func (s *EntityStore) Generation() uint64 {
	return s.generation
}

// Invalidate bumps the generation without a structural change, forcing
// position-keyed consumers (pick index, selection) to re-derive their state.
func (s *EntityStore) Invalidate() {
	s.generation++
}

// FindByID returns the entity with the given identifier and its position.
// Linear scan: the store is small enough that no ID map is kept.
func (s *EntityStore) FindByID(id uint64) (*Entity, int, bool) {
	if id == 0 {
		return nil, -1, false
	}
	for i := range s.entities {
		if s.entities[i].ID == id {
			return &s.entities[i], i, true
		}
	}
	return nil, -1, false
}

// Resolve returns the entity a handle refers to. When the handle is stale it
// is refreshed in place from a linear lookup.
func (s *EntityStore) Resolve(h *Handle) (*Entity, bool) {
	if h.Generation == s.generation {
		if e, ok := s.At(h.Index); ok && e.ID == h.ID {
			return e, true
		}
	}
	e, i, ok := s.FindByID(h.ID)
	if !ok {
		return nil, false
	}
	h.Index = i
	h.Generation = s.generation
	return e, true
}

// SortByDrawOrder orders entities by (DrawOrder, category layer, ID). Input
// that is already ordered is left untouched, including its generation.
func (s *EntityStore) SortByDrawOrder() {
	n := len(s.entities)
	if n <= 1 || s.isSorted() {
		return
	}
	s.mergeSort()
	s.generation++
}

func (s *EntityStore) isSorted() bool {
	for i := 1; i < len(s.entities); i++ {
		if entityLess(&s.entities[i], &s.entities[i-1]) {
			return false
		}
	}
	return true
}

// mergeSort sorts s.entities in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: stable, and zero allocations after the sort buffer
// reaches its high-water mark.
func (s *EntityStore) mergeSort() {
	n := len(s.entities)
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]Entity, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.entities
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.entities, s.sortBuf)
	}
	clear(s.sortBuf)
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []Entity, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if !entityLess(&src[j], &src[i]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
