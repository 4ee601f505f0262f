package vectorview

import "github.com/tidwall/rtree"

// IndexItem is one spatial index entry: a padded world box and the store
// position the box was computed from.
type IndexItem struct {
	Box Rect
	Pos int
}

// SpatialIndex is a bulk-rebuilt R-tree over entity boxes. It is never
// updated incrementally: Clear and Build replace the whole tree whenever
// the store or the camera changes.
type SpatialIndex struct {
	tree  rtree.RTreeG[int]
	count int

	// Store generation and camera revision the entries were built against.
	generation uint64
	revision   uint64
	built      bool
}

// Clear drops every entry.
func (x *SpatialIndex) Clear() {
	x.tree = rtree.RTreeG[int]{}
	x.count = 0
	x.built = false
}

// Build replaces the index contents with items.
func (x *SpatialIndex) Build(items []IndexItem) {
	x.Clear()
	for _, it := range items {
		mn, mx := it.Box.Min(), it.Box.Max()
		x.tree.Insert([2]float64{mn.X, mn.Y}, [2]float64{mx.X, mx.Y}, it.Pos)
	}
	x.count = len(items)
	x.built = true
}

// Len returns the number of indexed entries.
func (x *SpatialIndex) Len() int {
	return x.count
}

// QueryFirstIntersecting returns the position of an entry whose box
// intersects box. When several do, the highest store position wins: the
// store is in paint order, so that is the entity drawn on top. An empty
// index never reports a hit.
func (x *SpatialIndex) QueryFirstIntersecting(box Rect) (int, bool) {
	if x.count == 0 {
		return -1, false
	}
	best := -1
	mn, mx := box.Min(), box.Max()
	x.tree.Search([2]float64{mn.X, mn.Y}, [2]float64{mx.X, mx.Y},
		func(_, _ [2]float64, pos int) bool {
			if pos > best {
				best = pos
			}
			return true
		})
	return best, best >= 0
}

// QueryAll appends the positions of every entry intersecting box to buf.
// Order follows the tree traversal and is not meaningful.
func (x *SpatialIndex) QueryAll(box Rect, buf []int) []int {
	if x.count == 0 {
		return buf
	}
	mn, mx := box.Min(), box.Max()
	x.tree.Search([2]float64{mn.X, mn.Y}, [2]float64{mx.X, mx.Y},
		func(_, _ [2]float64, pos int) bool {
			buf = append(buf, pos)
			return true
		})
	return buf
}

// stamp records the state the current entries belong to.
func (x *SpatialIndex) stamp(generation, revision uint64) {
	x.generation = generation
	x.revision = revision
}

// fresh reports whether the index was built against the given store
// generation and camera revision.
func (x *SpatialIndex) fresh(generation, revision uint64) bool {
	return x.built && x.generation == generation && x.revision == revision
}
