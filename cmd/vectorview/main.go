// Command vectorview opens a window showing a dragon curve over a world
// grid. Press S to toggle selection, G to toggle the grid, F to frame the
// curve, Escape to clear the selection, and the arrow keys or a right drag
// to pan. P saves a screenshot. The mouse wheel zooms at the cursor.
package main

import (
	"log/slog"
	"os"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/vectorview"
	"github.com/phanxgames/vectorview/curve"
	"github.com/phanxgames/vectorview/ecs"
	"github.com/phanxgames/vectorview/ebitenview"
	"github.com/phanxgames/vectorview/internal/config"
	"github.com/phanxgames/vectorview/strokefont"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	font, err := strokefont.GoRegular(cfg.FontSize)
	if err != nil {
		slog.Error("load font", "error", err)
		os.Exit(1)
	}

	scene := vectorview.NewScene(cfg.Scene())
	scene.SetLogger(logger)
	scene.SetDebugMode(cfg.Debug)

	dragon := curve.NewDragonBuilder()
	dragon.Iterations = cfg.Iterations
	scene.AddBuilder(dragon)

	world := donburi.NewWorld()
	scene.SetEventSink(ecs.NewDonburiSink(world))
	ecs.SelectionEventType.Subscribe(world, func(_ donburi.World, ev vectorview.SelectionEvent) {
		if ev.Type == vectorview.EventSelectionChanged {
			slog.Info("selection changed", "count", len(ev.IDs))
		}
	})
	ecs.ProcessOnSceneEvents(scene, world)

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			slog.Error("read test script", "path", cfg.Script, "error", err)
			os.Exit(1)
		}
		runner, err := vectorview.LoadTestScript(data)
		if err != nil {
			slog.Error("load test script", "path", cfg.Script, "error", err)
			os.Exit(1)
		}
		scene.SetTestRunner(runner)
	}

	slog.Info("starting viewer", "width", cfg.Width, "height", cfg.Height, "iterations", cfg.Iterations)
	if err := ebitenview.Run(scene, cfg.Window(font, logger)); err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}
