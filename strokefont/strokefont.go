// Package strokefont lays out text as line segments traced from TrueType
// glyph outlines, so text can be drawn by the same line renderer as the
// rest of a vectorview scene.
package strokefont

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/phanxgames/vectorview"
)

// Curve flattening resolution, in line segments per outline curve.
const (
	quadSteps  = 6
	cubicSteps = 8
)

// Font converts text into outline strokes. It implements
// vectorview.TextLayout. A Font is not safe for concurrent use.
type Font struct {
	f    *opentype.Font
	buf  sfnt.Buffer
	ppem fixed.Int26_6

	ascent     float64
	lineHeight float64

	glyphs map[rune]glyph
}

type glyph struct {
	index   sfnt.GlyphIndex
	advance float64
	lines   []vectorview.LineData // baseline-relative, Y down
}

// New parses TrueType or OpenType data and returns a Font rendering at
// size pixels per em.
func New(data []byte, size float64) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("strokefont: parse font: %w", err)
	}
	if size <= 0 {
		size = 16
	}
	ft := &Font{
		f:      f,
		ppem:   fixed.Int26_6(size * 64),
		glyphs: make(map[rune]glyph),
	}
	m, err := f.Metrics(&ft.buf, ft.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("strokefont: metrics: %w", err)
	}
	ft.ascent = fromFixed(m.Ascent)
	ft.lineHeight = fromFixed(m.Height)
	if ft.lineHeight <= 0 {
		ft.lineHeight = fromFixed(m.Ascent + m.Descent)
	}
	return ft, nil
}

// DefaultSize is the pixel size used by Default.
const DefaultSize = 16

// Default returns the Go Regular font at DefaultSize.
func Default() (*Font, error) {
	return New(goregular.TTF, DefaultSize)
}

// GoRegular returns the Go Regular font at size pixels. Sizes of zero or
// less use DefaultSize.
func GoRegular(size float64) (*Font, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return New(goregular.TTF, size)
}

// LineHeight returns the distance between baselines at scale 1.
func (ft *Font) LineHeight() float64 { return ft.lineHeight }

// Ascent returns the distance from the top of a line to its baseline.
func (ft *Font) Ascent() float64 { return ft.ascent }

// Layout implements vectorview.TextLayout. Output is in pixels at scale 1,
// relative to the anchor, Y down. Lines are wrapped at BoxWidth/Scale when
// Wrap is set and aligned within that width.
func (ft *Font) Layout(t vectorview.TextData) []vectorview.LineData {
	scale := t.Scale
	if scale <= 0 {
		scale = 1
	}
	boxW := t.BoxWidth / scale

	var rows []string
	if t.Wrap && boxW > 0 {
		rows = ft.wrap(t.Content, boxW)
	} else {
		rows = strings.Split(t.Content, "\n")
	}

	var out []vectorview.LineData
	for i, row := range rows {
		w := ft.Measure(row)
		x := 0.0
		switch t.Align {
		case vectorview.TextAlignRight:
			x = max(0, boxW-w)
		case vectorview.TextAlignCenter:
			x = max(0, (boxW-w)/2)
		}
		baseline := ft.ascent + float64(i)*ft.lineHeight
		out = ft.appendRow(out, row, x, baseline, t)
	}
	return out
}

// Measure returns the advance width of a single line of text at scale 1.
func (ft *Font) Measure(s string) float64 {
	w := 0.0
	prev := sfnt.GlyphIndex(0)
	for _, r := range s {
		g, ok := ft.glyph(r)
		if !ok {
			continue
		}
		w += ft.kern(prev, g.index) + g.advance
		prev = g.index
	}
	return w
}

func (ft *Font) appendRow(out []vectorview.LineData, row string, x, baseline float64, t vectorview.TextData) []vectorview.LineData {
	prev := sfnt.GlyphIndex(0)
	for _, r := range row {
		g, ok := ft.glyph(r)
		if !ok {
			continue
		}
		x += ft.kern(prev, g.index)
		prev = g.index
		for _, l := range g.lines {
			out = append(out, vectorview.LineData{
				Start:     vectorview.Vec2{X: x + l.Start.X, Y: baseline + l.Start.Y},
				End:       vectorview.Vec2{X: x + l.End.X, Y: baseline + l.End.Y},
				Color:     t.Color,
				Thickness: t.StrokeWidth,
			})
		}
		x += g.advance
	}
	return out
}

// wrap splits s into rows no wider than width. Explicit newlines always
// break; a single word wider than width gets a row of its own.
func (ft *Font) wrap(s string, width float64) []string {
	var rows []string
	space := ft.Measure(" ")
	for _, para := range strings.Split(s, "\n") {
		words := strings.FieldsFunc(para, unicode.IsSpace)
		if len(words) == 0 {
			rows = append(rows, "")
			continue
		}
		cur := words[0]
		curW := ft.Measure(cur)
		for _, w := range words[1:] {
			ww := ft.Measure(w)
			if curW+space+ww <= width {
				cur += " " + w
				curW += space + ww
				continue
			}
			rows = append(rows, cur)
			cur, curW = w, ww
		}
		rows = append(rows, cur)
	}
	return rows
}

// glyph returns the cached outline of r, loading it on first use. Runes
// the font has no glyph for are skipped.
func (ft *Font) glyph(r rune) (glyph, bool) {
	if g, ok := ft.glyphs[r]; ok {
		return g, g.index != 0 || r == ' '
	}
	g := glyph{}
	idx, err := ft.f.GlyphIndex(&ft.buf, r)
	if err != nil || idx == 0 {
		ft.glyphs[r] = g
		return g, false
	}
	g.index = idx
	if adv, err := ft.f.GlyphAdvance(&ft.buf, idx, ft.ppem, font.HintingNone); err == nil {
		g.advance = fromFixed(adv)
	}
	if segs, err := ft.f.LoadGlyph(&ft.buf, idx, ft.ppem, nil); err == nil {
		g.lines = flatten(segs)
	}
	ft.glyphs[r] = g
	return g, true
}

func (ft *Font) kern(a, b sfnt.GlyphIndex) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	k, err := ft.f.Kern(&ft.buf, a, b, ft.ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fromFixed(k)
}

// flatten turns outline segments into straight lines, closing each contour.
func flatten(segs sfnt.Segments) []vectorview.LineData {
	var out []vectorview.LineData
	var start, cur vectorview.Vec2
	open := false

	emit := func(p vectorview.Vec2) {
		if p != cur {
			out = append(out, vectorview.LineData{Start: cur, End: p})
		}
		cur = p
	}
	closeContour := func() {
		if open {
			emit(start)
		}
	}

	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			start = point(s.Args[0])
			cur = start
			open = true
		case sfnt.SegmentOpLineTo:
			emit(point(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p0, p1, p2 := cur, point(s.Args[0]), point(s.Args[1])
			for i := 1; i <= quadSteps; i++ {
				t := float64(i) / quadSteps
				u := 1 - t
				emit(vectorview.Vec2{
					X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
					Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
				})
			}
		case sfnt.SegmentOpCubeTo:
			p0, p1, p2, p3 := cur, point(s.Args[0]), point(s.Args[1]), point(s.Args[2])
			for i := 1; i <= cubicSteps; i++ {
				t := float64(i) / cubicSteps
				u := 1 - t
				emit(vectorview.Vec2{
					X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
					Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
				})
			}
		}
	}
	closeContour()
	return out
}

func point(p fixed.Point26_6) vectorview.Vec2 {
	return vectorview.Vec2{X: fromFixed(p.X), Y: fromFixed(p.Y)}
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
