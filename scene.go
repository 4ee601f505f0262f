package vectorview

import (
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"
)

const defaultStoreCap = 8192

// Scene is the top-level object that owns the entity store, the camera, the
// interaction controller, and the overlay set, and coordinates them once per
// frame.
type Scene struct {
	cfg      Config
	store    *EntityStore
	camera   *Camera
	ctrl     *InteractionController
	overlays overlaySet
	builders []Builder

	gridEnabled bool
	sceneDirty  bool
	camRevision uint64

	// Secondary-button drag panning.
	panning bool
	panLast Vec2

	handlers handlerRegistry
	sink     EventSink
	log      *slog.Logger
	debug    bool
	stats    frameStats

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates a scene with the given configuration. The camera starts
// at zoom 1 with the world origin at the viewport center, and the grid and
// status builders are installed.
func NewScene(cfg Config) *Scene {
	cfg = cfg.withDefaults()
	s := &Scene{
		cfg:         cfg,
		store:       NewEntityStore(defaultStoreCap),
		camera:      NewCamera(cfg.Width, cfg.Height),
		gridEnabled: !cfg.GridDisabled,
		sceneDirty:  true,
		log:         slog.New(slog.DiscardHandler),
		debug:       cfg.Debug,
		builders:    []Builder{GridBuilder{}, StatusBuilder{}},
	}
	s.camera.CenterOn(Vec2{})
	s.camRevision = s.camera.Revision()
	s.ctrl = NewInteractionController(s.store, s.camera, cfg)
	s.ctrl.emit = s.dispatch
	s.ctrl.SetSelectionMode(cfg.SelectionMode)
	return s
}

// Config returns the effective configuration.
func (s *Scene) Config() Config { return s.cfg }

// Store returns the entity store.
func (s *Scene) Store() *EntityStore { return s.store }

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.camera }

// Interaction returns the interaction controller.
func (s *Scene) Interaction() *InteractionController { return s.ctrl }

// Entities returns the sorted entity sequence for drawing. The returned
// slice MUST NOT be mutated or retained past the next Update.
func (s *Scene) Entities() []Entity { return s.store.Entities() }

// Snapshot copies the entity sequence into buf.
func (s *Scene) Snapshot(buf []Entity) []Entity { return s.store.Snapshot(buf) }

// SelectionMode reports whether picking is armed.
func (s *Scene) SelectionMode() bool { return s.ctrl.SelectionMode() }

// GridEnabled reports whether the background grid is shown.
func (s *Scene) GridEnabled() bool { return s.gridEnabled }

// SetLogger sets the logger used for warnings and debug output. A nil
// logger discards everything.
func (s *Scene) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.log = l
}

// SetDebugMode enables or disables per-frame timing logs at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// AddBuilder appends a content builder and schedules a rebuild.
func (s *Scene) AddBuilder(b Builder) {
	s.builders = append(s.builders, b)
	s.sceneDirty = true
}

// SetBuilders replaces every content builder, including the default grid
// and status builders, and schedules a rebuild.
func (s *Scene) SetBuilders(bs ...Builder) {
	s.builders = append(s.builders[:0], bs...)
	s.sceneDirty = true
}

// MarkDirty schedules a rebuild on the next Update.
func (s *Scene) MarkDirty() {
	s.sceneDirty = true
}

// Dirty reports whether a rebuild is pending.
func (s *Scene) Dirty() bool { return s.sceneDirty }

// OverlayLines returns the current overlay-space geometry of one overlay
// shape.
func (s *Scene) OverlayLines(kind OverlayKind) []LineData {
	if kind >= overlayKindCount {
		return nil
	}
	return s.overlays.shape(s.store, kind)
}

// FrameContent animates the camera so the bounds of all Scene entities are
// centered, over duration seconds. Returns false when there is no content.
func (s *Scene) FrameContent(duration float32) bool {
	var bounds Rect
	found := false
	ents := s.store.Entities()
	for i := range ents {
		e := &ents[i]
		if e.Category != CategoryScene || e.ScreenSpace {
			continue
		}
		if !found {
			bounds = e.Bounds()
			found = true
			continue
		}
		bounds = bounds.Union(e.Bounds())
	}
	if !found {
		return false
	}
	s.camera.ScrollTo(bounds.Center(), duration, ease.InOutQuad)
	return true
}

// Update advances one frame. dt is the frame time in seconds.
func (s *Scene) Update(dt float32) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput()

	s.camera.update(dt)
	if rev := s.camera.Revision(); rev != s.camRevision {
		s.camRevision = rev
		s.sceneDirty = true
		s.ctrl.InvalidateIndex()
	}

	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.ctrl.RefreshPointer()

	if s.sceneDirty {
		s.rebuild(&stats)
	}

	if s.debug {
		stats.rebuildTime = time.Since(t0)
		t0 = time.Now()
	}

	if s.overlays.ensure(s.store, s.cfg.OverlayDrawOrder) {
		s.ctrl.InvalidateIndex()
	}
	s.overlays.refresh(s.store, s.camera, s.ctrl, s.cfg.PickBoxSize)

	if s.ctrl.State() == StatePickArmed {
		stats.indexRebuilt = s.ctrl.EnsureIndex()
		if s.debug {
			stats.indexTime = time.Since(t0)
			t0 = time.Now()
		}
		s.ctrl.UpdateHover()
	} else {
		s.ctrl.ClearHover()
	}

	if s.debug {
		stats.hoverTime = time.Since(t0)
		stats.entityCount = s.store.Len()
		stats.indexCount = s.ctrl.IndexLen()
		s.debugLog(stats)
	}
	s.stats = stats
}

// rebuild replaces every non-cursor entity with fresh builder output.
func (s *Scene) rebuild(stats *frameStats) {
	s.store.RemoveWhere(func(e *Entity) bool { return e.Category != CategoryCursor })

	ctx := BuildContext{
		Bounds:        s.camera.VisibleBounds(),
		Zoom:          s.camera.Zoom(),
		Viewport:      s.camera.Viewport(),
		SelectionMode: s.ctrl.SelectionMode(),
		GridEnabled:   s.gridEnabled,
	}
	dropped := 0
	for _, b := range s.builders {
		for _, e := range b.Build(ctx) {
			if e.Category == CategoryCursor {
				dropped++
				continue
			}
			s.store.Add(e)
			stats.built++
		}
	}
	if dropped > 0 {
		s.log.Warn("builder emitted cursor entities; dropped", "count", dropped)
	}

	s.store.SortByDrawOrder()
	s.sceneDirty = false
	stats.rebuilt = true
	s.ctrl.InvalidateIndex()
	// Re-resolve selection now so highlights are back before the next draw,
	// even when hover updates are not running.
	s.ctrl.Sync()
}
