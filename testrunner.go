package geng

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyScript is returned by LoadTestScript for a script with no steps.
var ErrEmptyScript = errors.New("no steps")

// testStep represents a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual checks. Attach to a Window via SetTestRunner.
//
// Supported actions: "key" (key), "click" and "rightclick" (x, y),
// "screenshot" (label), "wait" (frames), and "close".
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script. Unknown actions and key names
// are rejected up front rather than mid-run.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "key":
			if _, err := ParseKey(st.Key); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		case "click", "rightclick", "screenshot", "wait", "close":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the window. The runner advances at
// the start of every Update.
func (w *Window) SetTestRunner(runner *TestRunner) {
	w.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Window.Update.
func (r *TestRunner) step(w *Window) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "key":
		k, _ := ParseKey(st.Key)
		w.InjectKey(k)
	case "click":
		w.InjectClick(st.X, st.Y, MouseButtonLeft)
	case "rightclick":
		w.InjectClick(st.X, st.Y, MouseButtonRight)
	case "screenshot":
		w.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "close":
		w.Close()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}
