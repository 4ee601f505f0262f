// Package ebitenview runs a vectorview Scene inside an [Ebitengine] window:
// it polls mouse and keyboard input, forwards it to the scene's handlers,
// and strokes the scene's lines each frame.
//
// [Ebitengine]: https://ebitengine.org
package ebitenview

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/vectorview"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int

	// ClearColor fills the screen before drawing. Zero means near-black.
	ClearColor vectorview.Color
	// Text lays out text entities. Nil skips text.
	Text vectorview.TextLayout
	// ShowFPS prints FPS and TPS in the bottom-left corner.
	ShowFPS bool
	// HideCursor hides the system cursor so only the overlay cursor shows.
	HideCursor bool
	// Antialias enables anti-aliased line strokes.
	Antialias bool
	// ScreenshotDir receives PNG captures. Empty means DefaultScreenshotDir.
	ScreenshotDir string
	// Logger reports screenshot results. Nil discards.
	Logger *slog.Logger
}

// DefaultClearColor is used when RunConfig.ClearColor is zero.
var DefaultClearColor = vectorview.Color{R: 0.08, G: 0.08, B: 0.09, A: 1}

// Game adapts a Scene to ebiten.Game.
type Game struct {
	scene *vectorview.Scene
	cfg   RunConfig
	input inputPoller
}

// NewGame wraps scene.
func NewGame(scene *vectorview.Scene, cfg RunConfig) *Game {
	if cfg.ClearColor == (vectorview.Color{}) {
		cfg.ClearColor = DefaultClearColor
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = DefaultScreenshotDir
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Game{scene: scene, cfg: cfg}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	applyInput(g.scene, g.input.poll())
	g.scene.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.cfg.ClearColor))

	cam := g.scene.Camera()
	view := cam.ViewMatrix()
	overlay := cam.OverlayMatrix()
	vp := cam.Viewport()
	clip := vectorview.Rect{Width: vp.X, Height: vp.Y}

	ents := g.scene.Entities()
	for i := range ents {
		e := &ents[i]
		m := view
		if e.ScreenSpace {
			m = overlay
		}
		switch e.Kind {
		case vectorview.KindLine:
			a, b := m.Apply(e.Line.Start), m.Apply(e.Line.End)
			if !clip.Intersects(vectorview.RectFromPoints(a, b).Expand(e.Line.Thickness)) {
				continue
			}
			g.stroke(screen, a, b, e.Line.Thickness, e.Line.Color)
		case vectorview.KindText:
			if g.cfg.Text == nil {
				continue
			}
			g.drawText(screen, e, m)
		}
	}

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
			4, int(vp.Y)-20)
	}

	g.flushScreenshots(screen)
}

// drawText lays the text out in pixels and maps it to the screen: the anchor
// goes through m and the glyph strokes are scaled by the text scale, times
// the zoom for world-space text.
func (g *Game) drawText(screen *ebiten.Image, e *vectorview.Entity, m vectorview.Affine) {
	origin := m.Apply(e.Text.Anchor)
	s := e.Text.Scale
	if s <= 0 {
		s = 1
	}
	if !e.ScreenSpace {
		s *= m.ScaleFactor()
	}
	for _, l := range g.cfg.Text.Layout(e.Text) {
		a := origin.Add(l.Start.Scale(s))
		b := origin.Add(l.End.Scale(s))
		g.stroke(screen, a, b, l.Thickness, l.Color)
	}
}

func (g *Game) stroke(screen *ebiten.Image, a, b vectorview.Vec2, width float64, c vectorview.Color) {
	if width <= 0 {
		width = 1
	}
	vector.StrokeLine(screen,
		float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		float32(width), toRGBA(c), g.cfg.Antialias)
}

// Layout implements ebiten.Game. The scene viewport follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and runs scene until the window is closed.
func Run(scene *vectorview.Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		vp := scene.Camera().Viewport()
		cfg.Width, cfg.Height = int(vp.X), int(vp.Y)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	if err := ebiten.RunGame(NewGame(scene, cfg)); err != nil {
		return fmt.Errorf("ebitenview: run: %w", err)
	}
	return nil
}

func toRGBA(c vectorview.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
