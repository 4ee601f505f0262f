// Package curve generates procedural line content for a vectorview scene.
package curve

import (
	"math/rand/v2"

	"github.com/phanxgames/vectorview"
)

// MaxIterations bounds Dragon so the segment count stays addressable.
const MaxIterations = 24

// Segment is one leg of a generated polyline.
type Segment struct {
	A, B vectorview.Vec2
}

// Turns returns the dragon-curve turn sequence for the given number of
// iterations: 2^iterations - 1 entries, true for a right turn. Each
// iteration appends a right turn and the reversed, inverted previous
// sequence.
func Turns(iterations int) []bool {
	if iterations <= 0 {
		return nil
	}
	iterations = min(iterations, MaxIterations)
	turns := make([]bool, 1, (1<<iterations)-1)
	turns[0] = true
	for i := 1; i < iterations; i++ {
		n := len(turns)
		turns = append(turns, true)
		for j := n - 1; j >= 0; j-- {
			turns = append(turns, !turns[j])
		}
	}
	return turns
}

// Dragon returns the 2^iterations segments of a dragon curve starting at
// origin heading +X, each leg units long. World Y grows downward, so a
// right turn rotates from +X toward +Y.
func Dragon(iterations int, origin vectorview.Vec2, leg float64) []Segment {
	if iterations <= 0 {
		return nil
	}
	turns := Turns(iterations)
	segs := make([]Segment, 0, len(turns)+1)

	dir := 0 // 0=E 1=S 2=W 3=N
	p := origin
	step := func() {
		q := p
		switch dir {
		case 0:
			q.X += leg
		case 1:
			q.Y += leg
		case 2:
			q.X -= leg
		case 3:
			q.Y -= leg
		}
		segs = append(segs, Segment{A: p, B: q})
		p = q
	}

	step()
	for _, right := range turns {
		if right {
			dir = (dir + 1) & 3
		} else {
			dir = (dir + 3) & 3
		}
		step()
	}
	return segs
}

// DragonBuilder populates a scene with a dragon curve, one Scene line per
// segment with a random but reproducible color. Each line carries a content
// key (segment index + 1) so selections survive rebuilds.
type DragonBuilder struct {
	Iterations int             // default 12
	Origin     vectorview.Vec2 // start point in world units
	Leg        float64         // default 6
	Seed       uint64          // color seed, default 1337
	DrawOrder  int             // default 100
	Thickness  float64         // default 2

	cache []vectorview.Entity
}

// NewDragonBuilder returns a builder with the default settings.
func NewDragonBuilder() *DragonBuilder {
	return &DragonBuilder{}
}

// Build implements vectorview.Builder. The segment list is generated once
// and copied on every call.
func (d *DragonBuilder) Build(vectorview.BuildContext) []vectorview.Entity {
	if d.cache == nil {
		d.cache = d.generate()
	}
	return append([]vectorview.Entity(nil), d.cache...)
}

// Reset drops the cached geometry so the next Build regenerates it from
// the current fields.
func (d *DragonBuilder) Reset() {
	d.cache = nil
}

func (d *DragonBuilder) generate() []vectorview.Entity {
	iter, leg, seed, order, thick := d.Iterations, d.Leg, d.Seed, d.DrawOrder, d.Thickness
	if iter <= 0 {
		iter = 12
	}
	if leg <= 0 {
		leg = 6
	}
	if seed == 0 {
		seed = 1337
	}
	if order == 0 {
		order = 100
	}
	if thick <= 0 {
		thick = 2
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	channel := func() float64 { return 0.15 + 0.85*rng.Float64() }

	segs := Dragon(iter, d.Origin, leg)
	out := make([]vectorview.Entity, 0, len(segs))
	for i, s := range segs {
		c := vectorview.Color{R: channel(), G: channel(), B: channel(), A: 1}
		e := vectorview.NewLine(vectorview.CategoryScene, order, s.A, s.B, c, thick)
		e.Key = uint64(i + 1)
		out = append(out, e)
	}
	return out
}
