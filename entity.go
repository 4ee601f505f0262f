package vectorview

// LineData is the payload of a KindLine entity.
type LineData struct {
	Start, End Vec2
	Color      Color
	Thickness  float64
}

// Bounds returns the unpadded axis-aligned box of the segment.
func (l LineData) Bounds() Rect {
	return RectFromPoints(l.Start, l.End)
}

// TextData is the payload of a KindText entity. Layout into line geometry is
// done by a TextLayout; the core never interprets the glyphs.
type TextData struct {
	Content     string
	Anchor      Vec2
	BoxWidth    float64
	BoxHeight   float64
	Wrap        bool
	Align       TextAlign
	Scale       float64
	StrokeWidth float64
	Color       Color
}

// Bounds returns the text box anchored at its top-left corner.
func (t TextData) Bounds() Rect {
	return Rect{X: t.Anchor.X, Y: t.Anchor.Y, Width: t.BoxWidth, Height: t.BoxHeight}
}

// TextLayout converts a text entity into line segments. Output points are in
// pixels at scale 1, relative to the anchor, with Y increasing downward.
type TextLayout interface {
	Layout(t TextData) []LineData
}

// Entity is one drawable unit. A single flat struct is used for both kinds
// to avoid interface dispatch when the renderer walks the list.
type Entity struct {
	// Identity. ID is assigned by EntityStore.Add and never reused.
	ID  uint64
	Key uint64 // optional builder-assigned content key, 0 = none

	Kind        EntityKind
	Category    Category
	DrawOrder   int
	ScreenSpace bool

	Line LineData
	Text TextData
}

// NewLine creates a line entity with the given category and draw order.
func NewLine(cat Category, drawOrder int, start, end Vec2, color Color, thickness float64) Entity {
	return Entity{
		Kind:      KindLine,
		Category:  cat,
		DrawOrder: drawOrder,
		Line: LineData{
			Start:     start,
			End:       end,
			Color:     color,
			Thickness: thickness,
		},
	}
}

// NewText creates a text entity. Scale and StrokeWidth default to 1.
func NewText(cat Category, drawOrder int, content string, anchor Vec2, color Color) Entity {
	return Entity{
		Kind:      KindText,
		Category:  cat,
		DrawOrder: drawOrder,
		Text: TextData{
			Content:     content,
			Anchor:      anchor,
			Scale:       1,
			StrokeWidth: 1,
			Color:       color,
		},
	}
}

// Bounds returns the entity's axis-aligned box in its own coordinate space.
func (e *Entity) Bounds() Rect {
	if e.Kind == KindText {
		return e.Text.Bounds()
	}
	return e.Line.Bounds()
}

// Color returns the active payload's color.
func (e *Entity) Color() Color {
	if e.Kind == KindText {
		return e.Text.Color
	}
	return e.Line.Color
}

// entityLess is the draw-order total order:
// (DrawOrder, category layer, ID) ascending.
func entityLess(a, b *Entity) bool {
	if a.DrawOrder != b.DrawOrder {
		return a.DrawOrder < b.DrawOrder
	}
	la, lb := a.Category.Layer(), b.Category.Layer()
	if la != lb {
		return la < lb
	}
	return a.ID < b.ID
}
