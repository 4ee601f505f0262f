package vectorview

import "testing"

func lineAt(cat Category, order int) Entity {
	return NewLine(cat, order, Vec2{}, Vec2{1, 1}, ColorWhite, 1)
}

func ids(ents []Entity) []uint64 {
	out := make([]uint64, len(ents))
	for i := range ents {
		out[i] = ents[i].ID
	}
	return out
}

func equalIDs(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStoreAddAssignsIDs(t *testing.T) {
	s := NewEntityStore(0)
	e := lineAt(CategoryScene, 0)
	e.ID = 77 // overwritten
	h1 := s.Add(e)
	h2 := s.Add(lineAt(CategoryScene, 0))
	if h1.ID != 1 || h2.ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", h1.ID, h2.ID)
	}
	if h2.Index != 1 {
		t.Errorf("h2.Index = %d, want 1", h2.Index)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}

	s.Clear()
	if h := s.Add(lineAt(CategoryScene, 0)); h.ID != 3 {
		t.Errorf("ID after Clear = %d, want 3 (never reused)", h.ID)
	}
}

func TestStoreSortScenarioA(t *testing.T) {
	s := NewEntityStore(0)
	s.Add(lineAt(CategoryScene, 0))
	s.Add(lineAt(CategoryScene, 1))
	s.Add(lineAt(CategoryScene, 0))
	s.SortByDrawOrder()

	want := []uint64{1, 3, 2}
	if got := ids(s.Entities()); !equalIDs(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestStoreSortTotalOrder(t *testing.T) {
	s := NewEntityStore(0)
	s.Add(lineAt(CategoryHud, 5))    // 1
	s.Add(lineAt(CategoryScene, 5))  // 2
	s.Add(lineAt(CategoryGrid, 5))   // 3
	s.Add(lineAt(CategoryCursor, 5)) // 4
	s.Add(lineAt(CategoryGrid, 5))   // 5
	s.Add(lineAt(CategoryScene, 0))  // 6
	s.Add(lineAt(CategoryHud, -1))   // 7
	s.SortByDrawOrder()

	want := []uint64{7, 6, 3, 5, 2, 4, 1}
	if got := ids(s.Entities()); !equalIDs(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestStoreSortStableLarge(t *testing.T) {
	s := NewEntityStore(0)
	for i := range 1000 {
		s.Add(lineAt(CategoryScene, (i*7919)%13))
	}
	s.SortByDrawOrder()
	ents := s.Entities()
	for i := 1; i < len(ents); i++ {
		if entityLess(&ents[i], &ents[i-1]) {
			t.Fatalf("entities %d and %d out of order", i-1, i)
		}
		if ents[i].DrawOrder == ents[i-1].DrawOrder && ents[i].ID < ents[i-1].ID {
			t.Fatalf("equal draw orders not in ID order at %d", i)
		}
	}
}

func TestStoreGeneration(t *testing.T) {
	s := NewEntityStore(0)
	g0 := s.Generation()

	s.Add(lineAt(CategoryScene, 0))
	s.Add(lineAt(CategoryScene, 1))
	g1 := s.Generation()
	if g1 == g0 {
		t.Fatal("Add did not bump the generation")
	}

	s.SortByDrawOrder()
	if s.Generation() != g1 {
		t.Error("sorting sorted input bumped the generation")
	}

	s.Add(lineAt(CategoryScene, 0))
	g2 := s.Generation()
	s.SortByDrawOrder()
	if s.Generation() == g2 {
		t.Error("a sort that moved entities did not bump the generation")
	}

	g3 := s.Generation()
	if n := s.RemoveWhere(func(*Entity) bool { return false }); n != 0 {
		t.Errorf("removed %d, want 0", n)
	}
	if s.Generation() != g3 {
		t.Error("a no-op RemoveWhere bumped the generation")
	}

	s.Invalidate()
	if s.Generation() == g3 {
		t.Error("Invalidate did not bump the generation")
	}
}

func TestStoreRemoveWherePreservesOrder(t *testing.T) {
	s := NewEntityStore(0)
	for i := range 6 {
		cat := CategoryScene
		if i%2 == 1 {
			cat = CategoryGrid
		}
		s.Add(lineAt(cat, i))
	}
	n := s.RemoveWhere(func(e *Entity) bool { return e.Category == CategoryGrid })
	if n != 3 {
		t.Fatalf("removed %d, want 3", n)
	}
	if got, want := ids(s.Entities()), []uint64{1, 3, 5}; !equalIDs(got, want) {
		t.Errorf("survivors = %v, want %v", got, want)
	}
}

func TestStoreResolve(t *testing.T) {
	s := NewEntityStore(0)
	ha := s.Add(lineAt(CategoryScene, 10))
	hb := s.Add(lineAt(CategoryScene, 0))

	e, ok := s.Resolve(&hb)
	if !ok || e.ID != hb.ID {
		t.Fatalf("Resolve(hb) = %v, %v", e, ok)
	}

	s.SortByDrawOrder() // b moves to the front
	e, ok = s.Resolve(&ha)
	if !ok || e.ID != ha.ID {
		t.Fatalf("Resolve(ha) after sort = %v, %v", e, ok)
	}
	if ha.Index != 1 || ha.Generation != s.Generation() {
		t.Errorf("handle not refreshed: %+v", ha)
	}

	s.RemoveWhere(func(e *Entity) bool { return e.ID == hb.ID })
	if _, ok := s.Resolve(&hb); ok {
		t.Error("Resolve of a removed entity should fail")
	}
}

func TestStoreFindAndAt(t *testing.T) {
	s := NewEntityStore(0)
	s.Add(lineAt(CategoryScene, 0))
	h := s.Add(lineAt(CategoryScene, 0))

	if _, pos, ok := s.FindByID(h.ID); !ok || pos != 1 {
		t.Errorf("FindByID = %d, %v", pos, ok)
	}
	if _, _, ok := s.FindByID(0); ok {
		t.Error("FindByID(0) should fail")
	}
	if _, ok := s.At(2); ok {
		t.Error("At past the end should fail")
	}
	if _, ok := s.At(-1); ok {
		t.Error("At(-1) should fail")
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewEntityStore(0)
	s.Add(lineAt(CategoryScene, 0))
	snap := s.Snapshot(nil)
	s.Mutable()[0].Line.Color = Color{R: 1, A: 1}
	if snap[0].Line.Color != ColorWhite {
		t.Error("snapshot aliases the store")
	}
}
