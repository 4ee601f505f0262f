package strokefont

import (
	"math"
	"testing"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/vectorview"
)

func mustDefault(t *testing.T) *Font {
	t.Helper()
	f, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return f
}

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func bounds(lines []vectorview.LineData) vectorview.Rect {
	r := lines[0].Bounds()
	for _, l := range lines[1:] {
		r = r.Union(l.Bounds())
	}
	return r
}

func TestNewRejectsGarbage(t *testing.T) {
	if _, err := New([]byte("not a font"), 16); err == nil {
		t.Error("expected parse error")
	}
}

func TestMetrics(t *testing.T) {
	f := mustDefault(t)
	if f.Ascent() <= 0 || f.LineHeight() <= f.Ascent() {
		t.Errorf("ascent %v, line height %v", f.Ascent(), f.LineHeight())
	}
}

func TestGoRegularSize(t *testing.T) {
	small, err := GoRegular(0)
	if err != nil {
		t.Fatal(err)
	}
	big, err := GoRegular(32)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(big.LineHeight(), 2*small.LineHeight(), 1) {
		t.Errorf("line height at 32 = %v, want about twice %v", big.LineHeight(), small.LineHeight())
	}
}

func TestLayoutProducesStrokes(t *testing.T) {
	f := mustDefault(t)
	red := vectorview.Color{R: 1, A: 1}
	lines := f.Layout(vectorview.TextData{Content: "Hi", Scale: 1, StrokeWidth: 1.5, Color: red})
	if len(lines) == 0 {
		t.Fatal("no lines for \"Hi\"")
	}
	for _, l := range lines {
		if l.Color != red || l.Thickness != 1.5 {
			t.Fatalf("line style = %v/%v, want text color and stroke width", l.Color, l.Thickness)
		}
	}
	b := bounds(lines)
	// Glyphs sit between the top of the line and the first baseline.
	if b.Y < -1 || b.Max().Y > f.Ascent()+1 {
		t.Errorf("bounds %v outside [0, ascent=%v]", b, f.Ascent())
	}
	if b.X < 0 || b.Max().X > f.Measure("Hi")+1 {
		t.Errorf("bounds %v wider than advance %v", b, f.Measure("Hi"))
	}
}

func TestLayoutSpaceIsEmpty(t *testing.T) {
	f := mustDefault(t)
	if lines := f.Layout(vectorview.TextData{Content: "   "}); len(lines) != 0 {
		t.Errorf("spaces produced %d lines", len(lines))
	}
	if f.Measure(" ") <= 0 {
		t.Error("space should still advance")
	}
}

func TestLayoutNewlines(t *testing.T) {
	f := mustDefault(t)
	one := bounds(f.Layout(vectorview.TextData{Content: "A"}))
	two := bounds(f.Layout(vectorview.TextData{Content: "A\nA"}))
	if !approxEqual(two.Height-one.Height, f.LineHeight(), 0.5) {
		t.Errorf("second row offset = %v, want line height %v", two.Height-one.Height, f.LineHeight())
	}
}

func TestWrap(t *testing.T) {
	f := mustDefault(t)
	word := f.Measure("word")
	tests := []struct {
		name  string
		text  string
		width float64
		rows  int
	}{
		{"fits", "word word", 3 * word, 1},
		{"breaks", "word word word", 1.5 * word, 3},
		{"long word alone", "extraordinarily", word, 1},
		{"explicit newline", "word\nword", 10 * word, 2},
		{"empty", "", 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := f.wrap(tt.text, tt.width)
			if len(rows) != tt.rows {
				t.Errorf("wrap(%q, %v) = %q, want %d rows", tt.text, tt.width, rows, tt.rows)
			}
		})
	}
}

func TestAlign(t *testing.T) {
	f := mustDefault(t)
	w := f.Measure("ab")
	box := w + 100

	left := bounds(f.Layout(vectorview.TextData{Content: "ab", BoxWidth: box, Align: vectorview.TextAlignLeft}))
	center := bounds(f.Layout(vectorview.TextData{Content: "ab", BoxWidth: box, Align: vectorview.TextAlignCenter}))
	right := bounds(f.Layout(vectorview.TextData{Content: "ab", BoxWidth: box, Align: vectorview.TextAlignRight}))

	if !approxEqual(center.X-left.X, 50, 0.01) {
		t.Errorf("center offset = %v, want 50", center.X-left.X)
	}
	if !approxEqual(right.X-left.X, 100, 0.01) {
		t.Errorf("right offset = %v, want 100", right.X-left.X)
	}

	// Text wider than the box never shifts left of the anchor.
	narrow := bounds(f.Layout(vectorview.TextData{Content: "ab", BoxWidth: 1, Align: vectorview.TextAlignRight}))
	if !approxEqual(narrow.X, left.X, 0.01) {
		t.Errorf("overflowing right-aligned text starts at %v, want %v", narrow.X, left.X)
	}
}

func TestFlattenClosesContours(t *testing.T) {
	p := func(x, y float64) fixed.Point26_6 {
		return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	}
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{p(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{p(4, 0)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{p(4, 4), p(0, 4)}},
	}
	lines := flatten(segs)
	if want := 1 + quadSteps + 1; len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
	last := lines[len(lines)-1]
	if last.End != (vectorview.Vec2{}) {
		t.Errorf("contour not closed: last line ends at %v", last.End)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i].Start != lines[i-1].End {
			t.Fatalf("line %d does not continue the outline", i)
		}
	}
}
