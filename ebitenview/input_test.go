package ebitenview

import (
	"image/color"
	"testing"

	"github.com/phanxgames/vectorview"
)

func newTestScene() *vectorview.Scene {
	return vectorview.NewScene(vectorview.Config{Width: 800, Height: 600, GridDisabled: true})
}

func TestApplyInputKeys(t *testing.T) {
	s := newTestScene()
	s.Update(1.0 / 60)

	applyInput(s, frameInput{toggleSelection: true})
	if !s.SelectionMode() {
		t.Error("S should enable selection mode")
	}
	applyInput(s, frameInput{toggleGrid: true})
	if !s.GridEnabled() {
		t.Error("G should enable the grid")
	}

	before := s.Camera().Pan()
	applyInput(s, frameInput{panX: arrowPanPixels})
	after := s.Camera().Pan()
	if after.X-before.X != arrowPanPixels || after.Y != before.Y {
		t.Errorf("pan moved %v -> %v, want +%d on X at zoom 1", before, after, arrowPanPixels)
	}
}

func TestApplyInputWheelZoomsAtCursor(t *testing.T) {
	s := newTestScene()
	cam := s.Camera()

	applyInput(s, frameInput{cursorX: 200, cursorY: 150, moved: true})
	anchor := cam.ClientToWorld(vectorview.Vec2{X: 200, Y: 150})

	applyInput(s, frameInput{wheel: 1})
	if z := cam.Zoom(); z < 1.0999 || z > 1.1001 {
		t.Errorf("zoom = %v, want 1.1", z)
	}
	got := cam.ClientToWorld(vectorview.Vec2{X: 200, Y: 150})
	if d := got.Sub(anchor); d.X*d.X+d.Y*d.Y > 1e-12 {
		t.Errorf("anchor drifted from %v to %v", anchor, got)
	}
}

func TestApplyInputRightDragPans(t *testing.T) {
	s := newTestScene()
	cam := s.Camera()

	applyInput(s, frameInput{cursorX: 100, cursorY: 100, moved: true, rightDown: true})
	before := cam.Pan()
	applyInput(s, frameInput{cursorX: 130, cursorY: 90, moved: true})
	applyInput(s, frameInput{rightUp: true})
	after := cam.Pan()

	// Content follows the pointer: pan moves opposite to the drag.
	if after.X-before.X != -30 || after.Y-before.Y != 10 {
		t.Errorf("pan delta = (%v, %v), want (-30, 10)", after.X-before.X, after.Y-before.Y)
	}

	applyInput(s, frameInput{cursorX: 200, cursorY: 200, moved: true})
	if cam.Pan() != after {
		t.Error("pan changed after the right button was released")
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   vectorview.Color
		want color.RGBA
	}{
		{"white", vectorview.ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"half alpha premultiplied", vectorview.Color{R: 1, G: 0, B: 0, A: 0.5}, color.RGBA{127, 0, 0, 127}},
		{"clamped", vectorview.Color{R: 2, G: -1, B: 0, A: 1}, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toRGBA(tt.in); got != tt.want {
				t.Errorf("toRGBA(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
