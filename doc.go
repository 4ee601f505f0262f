// Package vectorview is the core of an interactive 2D vector-scene viewer.
//
// It holds a flat, draw-ordered collection of line and text entities, a
// camera mapping client pixels to world coordinates, an R-tree pick index,
// and a small state machine for point picking, hover highlighting, and
// marquee selection. It has no rendering dependency: a backend reads
// [Scene.Entities] and the camera matrices each frame and draws lines. The
// ebiten backend lives in vectorview/ebitenview.
//
// # Quick start
//
//	scene := vectorview.NewScene(vectorview.DefaultConfig())
//	scene.AddBuilder(curve.NewDragonBuilder())
//	ebitenview.Run(scene, ebitenview.RunConfig{
//		Title: "Vector Viewer", Width: 800, Height: 600,
//	})
//
// For full control, feed input yourself and call [Scene.Update] once per
// frame:
//
//	scene.SetPointer(x, y)
//	scene.PointerDown(vectorview.MouseButtonLeft)
//	scene.Update(1.0 / 60)
//	for _, e := range scene.Entities() { ... }
//
// # Coordinates
//
// World content is transformed by [Camera.ViewMatrix]:
//
//	world  = client / zoom + pan
//	client = (world - pan) * zoom
//
// Entities with ScreenSpace set live in overlay coordinates: client pixels
// with the origin at the bottom-left, mapped back by [Camera.OverlayMatrix].
//
// # Positions and generations
//
// Selection, hover, and the pick index refer to entities by position in the
// store. Every structural store mutation bumps [EntityStore.Generation];
// consumers compare the generation they recorded and re-derive positions by
// entity ID, then by builder-assigned Key, before using them.
//
// # Selection
//
// In selection mode a primary press picks the topmost Scene line under a
// 12 px box around the cursor. A miss starts a marquee: dragging right
// selects lines fully inside (window), dragging left selects lines touching
// it (crossing). Selection always replaces; selected and hovered lines are
// recolored with [Config.HighlightColor] and restored when released.
package vectorview
