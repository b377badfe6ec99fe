package pluribus

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// pointerScript is the top-level JSON structure for a pointer script.
type pointerScript struct {
	Steps []scriptStep `json:"steps"`
}

// PointerScript replays a JSON-scripted pointer, one sample per tick, for
// automated runs. Coordinates are screen pixels and are converted to particle
// space through the camera given to LoadPointerScript, like real input.
//
// Supported actions:
//
//	{"action": "move", "x": 400, "y": 300}                       pointer active at (x, y)
//	{"action": "sweep", "fromX": 0, "fromY": 0, "toX": 800, "toY": 600, "frames": 60}
//	{"action": "leave"}                                          pointer inactive
//	{"action": "wait", "frames": 30}                             hold the last sample
//	{"action": "screenshot", "label": "after-sweep"}             call OnScreenshot
//
// PointerScript implements PointerSource.
type PointerScript struct {
	steps  []scriptStep
	cursor int
	cam    *Camera

	pending []Pointer // queued samples from a sweep
	wait    int
	last    Pointer
	done    bool

	// OnScreenshot is called for "screenshot" steps.
	OnScreenshot func(label string)
}

// LoadPointerScript parses a JSON pointer script. cam may be nil, in which
// case script coordinates are used as particle-space coordinates directly.
func LoadPointerScript(jsonData []byte, cam *Camera) (*PointerScript, error) {
	var script pointerScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("pluribus: parse pointer script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("pluribus: parse pointer script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "sweep", "leave", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("pluribus: parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &PointerScript{steps: script.Steps, cam: cam}, nil
}

// Done reports whether every step has been replayed.
func (s *PointerScript) Done() bool {
	return s.done
}

// Pointer returns the sample for this tick and advances the script. Once the
// script is exhausted the last sample is held.
func (s *PointerScript) Pointer() Pointer {
	for {
		if len(s.pending) > 0 {
			s.last = s.pending[0]
			s.pending = s.pending[1:]
			return s.last
		}
		if s.wait > 0 {
			s.wait--
			return s.last
		}
		if s.cursor >= len(s.steps) {
			s.done = true
			return s.last
		}

		st := s.steps[s.cursor]
		s.cursor++

		switch st.Action {
		case "move":
			s.last = s.toWorld(st.X, st.Y, true)
			return s.last
		case "leave":
			s.last = Pointer{Active: false}
			return s.last
		case "sweep":
			frames := max(st.Frames, 2)
			for i := 0; i < frames; i++ {
				t := float64(i) / float64(frames-1)
				x := st.FromX + (st.ToX-st.FromX)*t
				y := st.FromY + (st.ToY-st.FromY)*t
				s.pending = append(s.pending, s.toWorld(x, y, true))
			}
		case "wait":
			s.wait = st.Frames
		case "screenshot":
			if s.OnScreenshot != nil {
				s.OnScreenshot(st.Label)
			}
		}
	}
}

func (s *PointerScript) toWorld(sx, sy float64, active bool) Pointer {
	wx, wy := screenToWorld(s.cam, sx, sy)
	return Pointer{X: wx, Y: wy, Active: active}
}
