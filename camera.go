package vectorview

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// MinZoom and MaxZoom bound Camera zoom.
	MinZoom = 0.02
	MaxZoom = 200.0

	// zoomFloor is the smallest divisor used when dividing by zoom.
	zoomFloor = 1e-4
)

// scrollAnim holds active scroll-to tweens for the camera pan.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera converts between client (device pixel) and world coordinates:
//
//	world  = client / zoom + pan
//	client = (world - pan) * zoom
//
// Pan is stored in world units. Every mutation bumps Revision so owners can
// invalidate zoom-dependent state.
type Camera struct {
	zoom     float64
	pan      Vec2
	viewport Vec2

	revision    uint64
	scrollTween *scrollAnim
}

// NewCamera creates a camera at zoom 1 with zero pan and the given viewport
// size in pixels.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		zoom:     1,
		viewport: Vec2{math.Max(1, width), math.Max(1, height)},
	}
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 { return c.zoom }

// Pan returns the world coordinate shown at client (0, 0).
func (c *Camera) Pan() Vec2 { return c.pan }

// Viewport returns the viewport size in pixels.
func (c *Camera) Viewport() Vec2 { return c.viewport }

// Revision returns the mutation counter.
func (c *Camera) Revision() uint64 { return c.revision }

func (c *Camera) safeZoom() float64 {
	return math.Max(zoomFloor, c.zoom)
}

func (c *Camera) touch() {
	c.revision++
}

// ClientToWorld converts a client pixel position to world coordinates.
func (c *Camera) ClientToWorld(p Vec2) Vec2 {
	z := c.safeZoom()
	return Vec2{p.X/z + c.pan.X, p.Y/z + c.pan.Y}
}

// WorldToClient converts a world position to client pixels.
func (c *Camera) WorldToClient(p Vec2) Vec2 {
	z := c.safeZoom()
	return Vec2{(p.X - c.pan.X) * z, (p.Y - c.pan.Y) * z}
}

// PixelsToWorld converts a length in client pixels to world units.
func (c *Camera) PixelsToWorld(px float64) float64 {
	return px / c.safeZoom()
}

// ZoomAt multiplies the zoom by factor, clamped to [MinZoom, MaxZoom],
// keeping the world point under client fixed on screen.
func (c *Camera) ZoomAt(client Vec2, factor float64) {
	worldUnder := c.ClientToWorld(client)
	c.zoom = clampZoom(c.zoom * factor)
	z := c.safeZoom()
	c.pan = Vec2{worldUnder.X - client.X/z, worldUnder.Y - client.Y/z}
	c.scrollTween = nil
	c.touch()
}

// SetZoom sets the zoom directly, anchored at the viewport center.
func (c *Camera) SetZoom(zoom float64) {
	c.ZoomAt(c.viewport.Scale(0.5), zoom/c.safeZoom())
}

// PanByPixels shifts the pan by a client-pixel delta.
func (c *Camera) PanByPixels(dx, dy float64) {
	z := c.safeZoom()
	c.pan = Vec2{c.pan.X + dx/z, c.pan.Y + dy/z}
	c.touch()
}

// SetPan sets the world coordinate shown at client (0, 0).
func (c *Camera) SetPan(pan Vec2) {
	c.pan = pan
	c.scrollTween = nil
	c.touch()
}

// CenterOn pans so that world point p sits at the viewport center.
func (c *Camera) CenterOn(p Vec2) {
	c.SetPan(c.panCentering(p))
}

func (c *Camera) panCentering(p Vec2) Vec2 {
	z := c.safeZoom()
	return Vec2{p.X - c.viewport.X/(2*z), p.Y - c.viewport.Y/(2*z)}
}

// Resize sets the viewport size. Sizes below one pixel are clamped to one.
func (c *Camera) Resize(width, height float64) {
	c.viewport = Vec2{math.Max(1, width), math.Max(1, height)}
	c.touch()
}

// ScrollTo animates the pan so world point p ends up centered, over
// duration seconds. The animation advances in Scene.Update.
func (c *Camera) ScrollTo(p Vec2, duration float32, easeFn ease.TweenFunc) {
	target := c.panCentering(p)
	if duration <= 0 {
		c.SetPan(target)
		return
	}
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.pan.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(c.pan.Y), float32(target.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// update advances the scroll animation. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	prev := c.pan
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.pan.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.pan.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	if c.pan != prev {
		c.touch()
	}
}

// VisibleBounds returns the world rectangle covered by the viewport.
func (c *Camera) VisibleBounds() Rect {
	return RectFromPoints(c.ClientToWorld(Vec2{}), c.ClientToWorld(c.viewport))
}

// ViewMatrix returns the world → client transform:
// Scale(zoom) * Translate(-pan).
func (c *Camera) ViewMatrix() Affine {
	z := c.safeZoom()
	return Affine{z, 0, 0, z, -c.pan.X * z, -c.pan.Y * z}
}

// OverlayMatrix returns the transform for screen-space entities. Overlay
// coordinates are client pixels with Y flipped (origin bottom-left), so the
// matrix flips them back to the client's Y-down convention.
func (c *Camera) OverlayMatrix() Affine {
	return Affine{1, 0, 0, -1, 0, c.viewport.Y - 1}
}

// FlipY converts between client Y-down and overlay Y-up coordinates.
// The conversion is its own inverse.
func (c *Camera) FlipY(p Vec2) Vec2 {
	return Vec2{p.X, c.viewport.Y - 1 - p.Y}
}

func clampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}
