package vectorview

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one entry of a JSON interaction script. Which fields are
// read depends on Action.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Notches float64 `json:"notches,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// scriptActions maps each action name to what it does to the scene. Input
// actions only queue synthetic events; they take effect as the scene drains
// its inject queue.
var scriptActions = map[string]func(s *Scene, r *TestRunner, st scriptStep){
	"move":  func(s *Scene, _ *TestRunner, st scriptStep) { s.InjectMove(st.X, st.Y) },
	"click": func(s *Scene, _ *TestRunner, st scriptStep) { s.InjectClick(st.X, st.Y) },
	"drag": func(s *Scene, _ *TestRunner, st scriptStep) {
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	},
	"wheel":           func(s *Scene, _ *TestRunner, st scriptStep) { s.InjectWheel(st.X, st.Y, st.Notches) },
	"pan":             func(s *Scene, _ *TestRunner, st scriptStep) { s.PanByPixels(st.X, st.Y) },
	"toggleSelection": func(s *Scene, _ *TestRunner, _ scriptStep) { s.ToggleSelectionMode() },
	"toggleGrid":      func(s *Scene, _ *TestRunner, _ scriptStep) { s.ToggleGrid() },
	"clearSelection":  func(s *Scene, _ *TestRunner, _ scriptStep) { s.ClearSelection() },
	"screenshot":      func(s *Scene, _ *TestRunner, st scriptStep) { s.Screenshot(st.Label) },
	"wait": func(_ *Scene, r *TestRunner, st scriptStep) {
		// The frame that reads the step counts as the first waited frame.
		r.waitCount = max(st.Frames-1, 0)
	},
}

// TestRunner plays an interaction script one step per frame. Attach it with
// Scene.SetTestRunner.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON script of the form
//
//	{"steps": [{"action": "click", "x": 400, "y": 300}, ...]}
//
// Unknown actions are rejected up front.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script struct {
		Steps []scriptStep `json:"steps"`
	}
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if _, ok := scriptActions[st.Action]; !ok {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the scene. It is stepped at the start of
// every Update, before queued input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has run and its input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// step runs at most one script step. It holds while injected input is
// pending or a wait is counting down.
func (r *TestRunner) step(s *Scene) {
	switch {
	case r.done, len(s.injectQueue) > 0:
		return
	case r.waitCount > 0:
		r.waitCount--
		return
	case r.cursor >= len(r.steps):
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	scriptActions[st.Action](s, r, st)

	r.done = r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0
}

// Screenshot queues a labeled capture of the next rendered frame. The scene
// does not draw; a renderer drains the queue with TakeScreenshots after it
// has finished drawing.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshots returns the queued screenshot labels and empties the
// queue.
func (s *Scene) TakeScreenshots() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	out := s.screenshotQueue
	s.screenshotQueue = nil
	return out
}
