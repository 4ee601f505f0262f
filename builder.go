package vectorview

import "math"

// BuildContext describes the view a builder is populating.
type BuildContext struct {
	// Bounds is the visible world rectangle.
	Bounds Rect
	// Zoom is the camera zoom factor.
	Zoom float64
	// Viewport is the client size in pixels.
	Viewport Vec2

	SelectionMode bool
	GridEnabled   bool
}

// Builder produces the Grid, Scene, and Hud entities of one rebuild. The
// returned entities are added to the store as-is; their IDs are assigned on
// insertion. Cursor entities are owned by the scene and are rejected.
type Builder interface {
	Build(ctx BuildContext) []Entity
}

// BuilderFunc adapts a plain function to Builder.
type BuilderFunc func(ctx BuildContext) []Entity

// Build calls f(ctx).
func (f BuilderFunc) Build(ctx BuildContext) []Entity { return f(ctx) }

// Grid colors and spacing.
var (
	GridMinorColor = Color{0.22, 0.22, 0.22, 1}
	GridMajorColor = Color{0.32, 0.32, 0.32, 1}
	GridXAxisColor = Color{0.2, 0.8, 0.2, 1} // the line x = 0
	GridYAxisColor = Color{0.8, 0.2, 0.2, 1} // the line y = 0
)

// GridBuilder emits a world-space grid covering the visible bounds plus one
// screen of overscan on every side.
type GridBuilder struct {
	MinorStep int     // default 25
	MajorStep int     // default 100
	Thickness float64 // default 1.5
}

// Build implements Builder. It emits nothing when the grid is disabled.
func (g GridBuilder) Build(ctx BuildContext) []Entity {
	if !ctx.GridEnabled {
		return nil
	}
	minor, major, thick := g.MinorStep, g.MajorStep, g.Thickness
	if minor <= 0 {
		minor = 25
	}
	if major <= 0 {
		major = 100
	}
	if thick <= 0 {
		thick = 1.5
	}

	b := ctx.Bounds
	l, r := b.X-b.Width, b.X+2*b.Width
	t, btm := b.Y-b.Height, b.Y+2*b.Height

	x0, x1 := floorToStep(l, minor), ceilToStep(r, minor)
	y0, y1 := floorToStep(t, minor), ceilToStep(btm, minor)

	out := make([]Entity, 0, (x1-x0)/minor+(y1-y0)/minor+2)
	for x := x0; x <= x1; x += minor {
		c := GridMinorColor
		if x == 0 {
			c = GridXAxisColor
		} else if x%major == 0 {
			c = GridMajorColor
		}
		out = append(out, NewLine(CategoryGrid, 0,
			Vec2{float64(x), float64(y0)}, Vec2{float64(x), float64(y1)}, c, thick))
	}
	for y := y0; y <= y1; y += minor {
		c := GridMinorColor
		if y == 0 {
			c = GridYAxisColor
		} else if y%major == 0 {
			c = GridMajorColor
		}
		out = append(out, NewLine(CategoryGrid, 0,
			Vec2{float64(x0), float64(y)}, Vec2{float64(x1), float64(y)}, c, thick))
	}
	return out
}

func floorToStep(v float64, step int) int {
	return int(math.Floor(v/float64(step))) * step
}

func ceilToStep(v float64, step int) int {
	return int(math.Ceil(v/float64(step))) * step
}

// Status texts shown by StatusBuilder.
const (
	StatusSelectionOn  = "Selection: ON (LMB pick)"
	StatusSelectionOff = "Selection: OFF (Crosshair)"
)

// StatusBuilder emits the HUD line describing the selection mode, anchored
// near the top-left corner of the viewport.
type StatusBuilder struct {
	Color Color // default white
}

// Build implements Builder.
func (s StatusBuilder) Build(ctx BuildContext) []Entity {
	content := StatusSelectionOff
	if ctx.SelectionMode {
		content = StatusSelectionOn
	}
	c := s.Color
	if c == (Color{}) {
		c = ColorWhite
	}
	// Overlay coordinates are Y-up; the anchor sits 24 px below the top edge.
	e := NewText(CategoryHud, 950, content, Vec2{16, ctx.Viewport.Y - 1 - 24}, c)
	e.ScreenSpace = true
	e.Text.BoxWidth = 900
	e.Text.BoxHeight = 40
	return []Entity{e}
}
