package vectorview

// Config holds the tunables of a Scene. Zero fields are replaced by the
// values from DefaultConfig.
type Config struct {
	// Width and Height are the initial viewport size in pixels.
	Width, Height float64

	// PickBoxSize is the side, in client pixels, of the square around the
	// cursor used for pick and hover queries. Index boxes are padded by half
	// of it so thin lines stay hittable.
	PickBoxSize float64

	// DragThreshold is the client-pixel displacement below which a marquee
	// release on both axes counts as a cancelled click.
	DragThreshold float64

	// WheelStep is the zoom factor applied per wheel notch.
	WheelStep float64

	// HighlightColor is written over selected and hovered lines.
	HighlightColor Color

	// OverlayDrawOrder is the draw order of cursor and marquee overlays.
	OverlayDrawOrder int

	// GridDisabled starts the scene without the background grid.
	GridDisabled bool

	// SelectionMode starts the scene with picking armed.
	SelectionMode bool

	// Debug enables per-frame timing logs.
	Debug bool
}

// DefaultConfig returns the defaults: an 800x600 viewport, a 12 px pick
// box, a 2 px drag threshold, and a 1.1 wheel zoom step.
func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           600,
		PickBoxSize:      12,
		DragThreshold:    2,
		WheelStep:        1.10,
		HighlightColor:   ColorWhite,
		OverlayDrawOrder: 900,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.PickBoxSize <= 0 {
		c.PickBoxSize = d.PickBoxSize
	}
	if c.DragThreshold <= 0 {
		c.DragThreshold = d.DragThreshold
	}
	if c.WheelStep <= 1 {
		c.WheelStep = d.WheelStep
	}
	if c.HighlightColor == (Color{}) {
		c.HighlightColor = d.HighlightColor
	}
	if c.OverlayDrawOrder == 0 {
		c.OverlayDrawOrder = d.OverlayDrawOrder
	}
	return c
}
