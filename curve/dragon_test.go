package curve

import (
	"testing"

	"github.com/phanxgames/vectorview"
)

func TestTurns(t *testing.T) {
	tests := []struct {
		iterations int
		want       string // R = right, L = left
	}{
		{0, ""},
		{1, "R"},
		{2, "RRL"},
		{3, "RRLRRLL"},
	}
	for _, tt := range tests {
		got := ""
		for _, r := range Turns(tt.iterations) {
			if r {
				got += "R"
			} else {
				got += "L"
			}
		}
		if got != tt.want {
			t.Errorf("Turns(%d) = %q, want %q", tt.iterations, got, tt.want)
		}
	}
}

func TestDragonSegmentCount(t *testing.T) {
	for _, n := range []int{1, 4, 12} {
		segs := Dragon(n, vectorview.Vec2{}, 6)
		if len(segs) != 1<<n {
			t.Errorf("Dragon(%d) has %d segments, want %d", n, len(segs), 1<<n)
		}
	}
	if segs := Dragon(0, vectorview.Vec2{}, 6); segs != nil {
		t.Errorf("Dragon(0) = %v, want nil", segs)
	}
}

func TestDragonIsConnected(t *testing.T) {
	origin := vectorview.Vec2{X: 10, Y: -5}
	segs := Dragon(8, origin, 6)
	if segs[0].A != origin {
		t.Fatalf("first segment starts at %v, want %v", segs[0].A, origin)
	}
	for i, s := range segs {
		d := s.B.Sub(s.A)
		if !(d.X == 0 && (d.Y == 6 || d.Y == -6)) && !(d.Y == 0 && (d.X == 6 || d.X == -6)) {
			t.Fatalf("segment %d is not an axis-aligned leg: %v", i, d)
		}
		if i > 0 && segs[i-1].B != s.A {
			t.Fatalf("segment %d does not continue from %d", i, i-1)
		}
	}
}

func TestDragonFirstTurnIsRight(t *testing.T) {
	// Y grows downward, so the first right turn heads +Y.
	segs := Dragon(1, vectorview.Vec2{}, 1)
	if segs[0].B != (vectorview.Vec2{X: 1}) {
		t.Errorf("leg 0 ends at %v, want (1, 0)", segs[0].B)
	}
	if segs[1].B != (vectorview.Vec2{X: 1, Y: 1}) {
		t.Errorf("leg 1 ends at %v, want (1, 1)", segs[1].B)
	}
}

func TestDragonBuilderDefaults(t *testing.T) {
	b := NewDragonBuilder()
	ents := b.Build(vectorview.BuildContext{})
	if len(ents) != 1<<12 {
		t.Fatalf("got %d entities, want %d", len(ents), 1<<12)
	}
	for i, e := range ents {
		if e.Kind != vectorview.KindLine || e.Category != vectorview.CategoryScene {
			t.Fatalf("entity %d: kind %v category %v", i, e.Kind, e.Category)
		}
		if e.DrawOrder != 100 || e.Line.Thickness != 2 {
			t.Fatalf("entity %d: order %d thickness %v", i, e.DrawOrder, e.Line.Thickness)
		}
		if e.Key != uint64(i+1) {
			t.Fatalf("entity %d: key %d, want %d", i, e.Key, i+1)
		}
		c := e.Line.Color
		for _, ch := range []float64{c.R, c.G, c.B} {
			if ch < 0.15 || ch >= 1 {
				t.Fatalf("entity %d: channel %v outside [0.15, 1)", i, ch)
			}
		}
		if c.A != 1 {
			t.Fatalf("entity %d: alpha %v", i, c.A)
		}
	}
}

func TestDragonBuilderDeterministic(t *testing.T) {
	a := (&DragonBuilder{Iterations: 6}).Build(vectorview.BuildContext{})
	b := (&DragonBuilder{Iterations: 6}).Build(vectorview.BuildContext{})
	for i := range a {
		if a[i].Line != b[i].Line {
			t.Fatalf("entity %d differs between builders", i)
		}
	}

	c := (&DragonBuilder{Iterations: 6, Seed: 7}).Build(vectorview.BuildContext{})
	same := true
	for i := range a {
		if a[i].Line.Color != c[i].Line.Color {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical colors")
	}
}

func TestDragonBuilderReturnsCopies(t *testing.T) {
	b := &DragonBuilder{Iterations: 3}
	first := b.Build(vectorview.BuildContext{})
	first[0].Line.Color = vectorview.ColorWhite
	second := b.Build(vectorview.BuildContext{})
	if second[0].Line.Color == vectorview.ColorWhite {
		t.Error("mutating a build result changed the cache")
	}

	b.Iterations = 4
	b.Reset()
	if n := len(b.Build(vectorview.BuildContext{})); n != 16 {
		t.Errorf("after Reset got %d entities, want 16", n)
	}
}
