package panzoom

import (
	"encoding/json"
	"fmt"
)

// gestureStep represents a single action in a gesture script.
type gestureStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	FromX    float64 `json:"fromX,omitempty"`
	FromY    float64 `json:"fromY,omitempty"`
	ToX      float64 `json:"toX,omitempty"`
	ToY      float64 `json:"toY,omitempty"`
	Delta    float64 `json:"delta,omitempty"`
	FromDist float64 `json:"fromDist,omitempty"`
	ToDist   float64 `json:"toDist,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true,
	"press":      true,
	"move":       true,
	"release":    true,
	"click":      true,
	"drag":       true,
	"wheel":      true,
	"pinch":      true,
	"wait":       true,
}

// GestureRunner plays back a scripted sequence of injected gestures and
// screenshots, one step per tick. Attach to a surface via SetGestureRunner.
type GestureRunner struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
}

// LoadGestureScript parses a JSON gesture script and returns a GestureRunner
// ready to be attached to an EbitenSurface.
//
//	{"steps": [
//		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 90, "toY": 40, "frames": 5},
//		{"action": "wheel", "x": 100, "y": 100, "delta": -1},
//		{"action": "pinch", "x": 150, "y": 150, "fromDist": 100, "toDist": 200, "frames": 6},
//		{"action": "screenshot", "label": "zoomed"}
//	]}
func LoadGestureScript(jsonData []byte) (*GestureRunner, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureRunner{steps: script.Steps}, nil
}

// SetGestureRunner attaches a GestureRunner to the surface. The runner's step
// method is called from Update before input is processed each tick.
func (s *EbitenSurface) SetGestureRunner(runner *GestureRunner) {
	s.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *GestureRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Called from EbitenSurface.Update.
func (r *GestureRunner) step(s *EbitenSurface) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		// A capture queued by the last step is written by the next Draw.
		if len(s.screenshotQueue) == 0 {
			r.done = true
		}
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		s.InjectWheel(st.X, st.Y, st.Delta)
	case "pinch":
		s.InjectPinch(st.X, st.Y, st.FromDist, st.ToDist, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 && len(s.screenshotQueue) == 0 {
		r.done = true
	}
}
