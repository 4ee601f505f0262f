package vectorview

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default entity color and the default highlight color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the smallest rect containing both points.
func RectFromPoints(a, b Vec2) Rect {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// RectAround returns a square of half-size h centered at c.
func RectAround(c Vec2, h float64) Rect {
	return Rect{X: c.X - h, Y: c.Y - h, Width: 2 * h, Height: 2 * h}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{r.X + r.Width, r.Y + r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Expand grows the rectangle by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, Width: r.Width + 2*pad, Height: r.Height + 2*pad}
}

// Union returns the smallest rect containing r and other.
func (r Rect) Union(other Rect) Rect {
	return RectFromPoints(
		Vec2{math.Min(r.X, other.X), math.Min(r.Y, other.Y)},
		Vec2{math.Max(r.X+r.Width, other.X+other.Width), math.Max(r.Y+r.Height, other.Y+other.Height)},
	)
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsRect reports whether other lies entirely inside r.
// Shared edges count as inside.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.X+other.Width <= r.X+r.Width &&
		other.Y >= r.Y && other.Y+other.Height <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// EntityKind selects which payload of an Entity is active.
type EntityKind uint8

const (
	KindLine EntityKind = iota // a single stroked segment
	KindText                   // a text block laid out by a TextLayout
)

// Category is the coarse layer tag of an entity. It breaks draw-order ties
// and decides which entities a scene rebuild replaces.
type Category uint8

const (
	CategoryGrid   Category = iota // background grid, rebuilt with the scene
	CategoryScene                  // world content, pickable
	CategoryCursor                 // persistent cursor/marquee overlays
	CategoryHud                    // top overlay text, rebuilt with the scene
)

// Layer returns the sort priority of the category.
func (c Category) Layer() int {
	switch c {
	case CategoryGrid:
		return 0
	case CategoryScene:
		return 1
	case CategoryCursor:
		return 2
	case CategoryHud:
		return 3
	default:
		return 1
	}
}

func (c Category) String() string {
	switch c {
	case CategoryGrid:
		return "grid"
	case CategoryScene:
		return "scene"
	case CategoryCursor:
		return "cursor"
	case CategoryHud:
		return "hud"
	default:
		return "unknown"
	}
}

// TextAlign controls horizontal text alignment within a text box.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary button: pick and marquee
	MouseButtonRight                     // secondary button: drag to pan
	MouseButtonMiddle                    // unused by the viewer
)

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventSelectionChanged EventType = iota // the selected set was replaced or cleared
	EventHoverChanged                      // the hovered entity changed (HoverID 0 = none)
	EventMarqueeBegin                      // a pick missed and a marquee drag started
	EventMarqueeEnd                        // the marquee was released or cancelled
	EventModeChanged                       // selection mode was toggled
	eventTypeCount
)

func (t EventType) String() string {
	switch t {
	case EventSelectionChanged:
		return "selection-changed"
	case EventHoverChanged:
		return "hover-changed"
	case EventMarqueeBegin:
		return "marquee-begin"
	case EventMarqueeEnd:
		return "marquee-end"
	case EventModeChanged:
		return "mode-changed"
	default:
		return "unknown"
	}
}

// MarqueeMode is the containment rule used when a marquee is released.
type MarqueeMode uint8

const (
	MarqueeWindow   MarqueeMode = iota // entity box must lie fully inside
	MarqueeCrossing                    // entity box only has to intersect
)

func (m MarqueeMode) String() string {
	if m == MarqueeCrossing {
		return "crossing"
	}
	return "window"
}
