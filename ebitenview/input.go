package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/vectorview"
)

// arrowPanPixels is the pan distance per arrow key press.
const arrowPanPixels = 40

// screenshotKeyLabel labels captures requested with the P key.
const screenshotKeyLabel = "manual"

// frameInput is one frame of polled input, decoupled from ebiten so the
// mapping onto scene handlers can be tested without a window.
type frameInput struct {
	cursorX, cursorY float64
	moved            bool

	leftDown, leftUp   bool
	rightDown, rightUp bool
	wheel              float64

	toggleSelection bool
	toggleGrid      bool
	frameContent    bool
	clearSelection  bool
	screenshot      bool
	panX, panY      float64
}

type inputPoller struct {
	lastX, lastY int
	seen         bool
}

func (p *inputPoller) poll() frameInput {
	var in frameInput
	x, y := ebiten.CursorPosition()
	if !p.seen || x != p.lastX || y != p.lastY {
		in.moved = true
		p.lastX, p.lastY, p.seen = x, y, true
	}
	in.cursorX, in.cursorY = float64(x), float64(y)

	in.leftDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.leftUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	in.rightDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	in.rightUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)
	_, in.wheel = ebiten.Wheel()

	in.toggleSelection = inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.toggleGrid = inpututil.IsKeyJustPressed(ebiten.KeyG)
	in.frameContent = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.clearSelection = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.screenshot = inpututil.IsKeyJustPressed(ebiten.KeyP)
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		in.panX -= arrowPanPixels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		in.panX += arrowPanPixels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		in.panY -= arrowPanPixels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		in.panY += arrowPanPixels
	}
	return in
}

// applyInput forwards one frame of input to the scene handlers. The pointer
// is updated before buttons so presses act at the current position.
func applyInput(s *vectorview.Scene, in frameInput) {
	if in.moved {
		s.SetPointer(in.cursorX, in.cursorY)
	}
	if in.leftDown {
		s.PointerDown(vectorview.MouseButtonLeft)
	}
	if in.leftUp {
		s.PointerUp(vectorview.MouseButtonLeft)
	}
	if in.rightDown {
		s.PointerDown(vectorview.MouseButtonRight)
	}
	if in.rightUp {
		s.PointerUp(vectorview.MouseButtonRight)
	}
	if in.wheel != 0 {
		s.Wheel(in.wheel)
	}
	if in.toggleSelection {
		s.ToggleSelectionMode()
	}
	if in.toggleGrid {
		s.ToggleGrid()
	}
	if in.panX != 0 || in.panY != 0 {
		s.PanByPixels(in.panX, in.panY)
	}
	if in.clearSelection {
		s.ClearSelection()
	}
	if in.frameContent {
		s.FrameContent(0.4)
	}
	if in.screenshot {
		s.Screenshot(screenshotKeyLabel)
	}
}
