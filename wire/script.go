package wire

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/phanxgames/router"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("no steps")

// Script is a sequence of input steps played against a router:
//
//	{"steps": [
//		{"action": "click", "x": 100, "y": 200},
//		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 90, "toY": 40, "steps": 5},
//		{"action": "touch", "points": [{"id": 1, "x": 5, "y": 5}]},
//		{"action": "lift"},
//		{"action": "key", "keycode": 65},
//		{"action": "event", "event": {"type": "window.size", "width": 640, "height": 480}}
//	]}
//
// press, move and release take x and y. key presses and releases keycode.
type Script struct {
	steps []gjson.Result
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*Script, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse script: %w", ErrInvalidJSON)
	}
	steps := gjson.GetBytes(data, "steps").Array()
	if len(steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range steps {
		if st.Get("action").String() == "" {
			return nil, fmt.Errorf("parse script: step %d: missing action", i)
		}
	}
	return &Script{steps: steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run plays every step against r. It stops at the first step it cannot
// interpret and returns the number of steps completed.
func (s *Script) Run(r *router.Router) (int, error) {
	for i, st := range s.steps {
		if err := runStep(r, st); err != nil {
			return i, fmt.Errorf("run script: step %d: %w", i, err)
		}
	}
	return len(s.steps), nil
}

func runStep(r *router.Router, st gjson.Result) error {
	x, y := st.Get("x").Float(), st.Get("y").Float()

	switch action := st.Get("action").String(); action {
	case "click":
		r.InjectClick(x, y)
	case "press":
		r.InjectPress(x, y)
	case "move":
		r.InjectMove(x, y)
	case "release":
		r.InjectRelease(x, y)
	case "drag":
		r.InjectDrag(st.Get("fromX").Float(), st.Get("fromY").Float(),
			st.Get("toX").Float(), st.Get("toY").Float(), int(st.Get("steps").Int()))
	case "touch":
		t := decodeTouch(st)
		t.Pressed = len(t.Points) > 0
		r.ProcessEvent(t)
	case "lift":
		r.InjectTouch()
	case "key":
		k := decodeKey(st)
		r.ProcessEvent(router.KeyPress{KeyEvent: k})
		r.ProcessEvent(router.KeyRelease{KeyEvent: k})
	case "event":
		ev, err := decodeResult(st.Get("event"))
		if err != nil {
			return err
		}
		r.ProcessEvent(ev)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
	return nil
}

// Replay reads raw events from r, one JSON object per line, and feeds them
// to p. Blank lines and lines starting with '#' are skipped. It returns the
// number of events processed.
func Replay(r io.Reader, p router.Processor) (int, error) {
	sc := bufio.NewScanner(r)
	n := 0
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 || b[0] == '#' {
			continue
		}
		ev, err := Decode(b)
		if err != nil {
			return n, fmt.Errorf("replay line %d: %w", line, err)
		}
		p.ProcessEvent(ev)
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("replay: %w", err)
	}
	return n, nil
}
