package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/phanxgames/vectorview"
	"github.com/phanxgames/vectorview/ebitenview"
)

// Prefix is prepended to every environment variable name.
const Prefix = "VECTORVIEW"

// Config holds the viewer settings read from VECTORVIEW_* environment variables.
type Config struct {
	Title         string  `envconfig:"TITLE" default:"Vector Viewer"`
	Width         int     `envconfig:"WIDTH" default:"1280"`
	Height        int     `envconfig:"HEIGHT" default:"720"`
	Grid          bool    `envconfig:"GRID" default:"true"`
	SelectionMode bool    `envconfig:"SELECTION" default:"false"`
	PickBoxSize   float64 `envconfig:"PICK_BOX" default:"12"`
	Iterations    int     `envconfig:"DRAGON_ITERATIONS" default:"12"`
	FontSize      float64 `envconfig:"FONT_SIZE" default:"16"`
	ShowFPS       bool    `envconfig:"SHOW_FPS" default:"false"`
	Antialias     bool    `envconfig:"ANTIALIAS" default:"true"`
	Debug         bool    `envconfig:"DEBUG" default:"false"`
	LogLevel      string  `envconfig:"LOG_LEVEL" default:"info"`
	Script        string  `envconfig:"SCRIPT"`
	ScreenshotDir string  `envconfig:"SCREENSHOT_DIR" default:"screenshots"`
}

// Load reads VECTORVIEW_* variables from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("load config: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Scene maps the configuration onto the core scene settings.
func (c *Config) Scene() vectorview.Config {
	sc := vectorview.DefaultConfig()
	sc.Width = float64(c.Width)
	sc.Height = float64(c.Height)
	sc.PickBoxSize = c.PickBoxSize
	sc.GridDisabled = !c.Grid
	sc.SelectionMode = c.SelectionMode
	sc.Debug = c.Debug
	return sc
}

// Window maps the configuration onto the window settings. The text layout
// and logger are supplied by the caller.
func (c *Config) Window(text vectorview.TextLayout, logger *slog.Logger) ebitenview.RunConfig {
	return ebitenview.RunConfig{
		Title:         c.Title,
		Width:         c.Width,
		Height:        c.Height,
		Text:          text,
		ShowFPS:       c.ShowFPS,
		HideCursor:    true,
		Antialias:     c.Antialias,
		ScreenshotDir: c.ScreenshotDir,
		Logger:        logger,
	}
}

// Level returns the slog level named by LogLevel. Debug mode forces debug
// level so frame stats are visible.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
