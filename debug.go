package vectorview

import "time"

// frameStats holds per-frame timing and count metrics.
// Timings are only populated when Scene.debug is true.
type frameStats struct {
	rebuildTime time.Duration
	indexTime   time.Duration
	hoverTime   time.Duration

	rebuilt      bool
	indexRebuilt bool
	built        int
	entityCount  int
	indexCount   int
}

// debugLog writes timing and count stats at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	total := stats.rebuildTime + stats.indexTime + stats.hoverTime
	s.log.Debug("frame",
		"rebuild", stats.rebuildTime,
		"index", stats.indexTime,
		"hover", stats.hoverTime,
		"total", total)
	if stats.rebuilt || stats.indexRebuilt {
		s.log.Debug("frame counts",
			"entities", stats.entityCount,
			"built", stats.built,
			"indexed", stats.indexCount,
			"rebuilt", stats.rebuilt,
			"indexRebuilt", stats.indexRebuilt)
	}
}

// FrameStats reports what the last Update did: whether the scene was
// rebuilt, whether the pick index was rebuilt, and how many entities the
// builders produced.
func (s *Scene) FrameStats() (rebuilt, indexRebuilt bool, built int) {
	return s.stats.rebuilt, s.stats.indexRebuilt, s.stats.built
}
