package wire

import (
	"fmt"
	"io"

	"github.com/tidwall/sjson"

	"github.com/phanxgames/router"
)

// Encode renders a semantic event as a JSON object. The target is written
// as its ID; only the fields meaningful for the event type are included.
func Encode(ev router.Event) ([]byte, error) {
	out := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, v)
	}

	set("type", ev.Type)
	if ev.Target != nil {
		set("target", ev.Target.ID())
	}

	switch ev.Type {
	case router.EventPress, router.EventRelease, router.EventClick, router.EventDrag:
		set("button", ev.Button)
		if ev.Touch {
			set("touch", true)
		}
		set("point.x", ev.Point.X)
		set("point.y", ev.Point.Y)
		if ev.Type == router.EventDrag {
			set("delta.x", ev.Delta.X)
			set("delta.y", ev.Delta.Y)
		}
	case router.EventScroll:
		set("position", ev.Position)
		set("delta.x", ev.Delta.X)
		set("delta.y", ev.Delta.Y)
	case router.EventKeyPress, router.EventKeyRelease:
		set("keycode", ev.Key.Keycode)
		set("key", ev.Key.Key)
		set("char", ev.Key.Char)
		set("printable", ev.Key.Printable)
		set("modifiers", int(ev.Key.Modifiers))
	case router.EventTouch:
		set("action", ev.Action.String())
		set("pressed", ev.Pressed)
		set("points", []any{})
		for _, p := range ev.Points {
			set("points.-1", map[string]any{
				"id":    p.ID,
				"count": p.Count,
				"x":     p.Pt.X,
				"y":     p.Pt.Y,
				"time":  p.Time,
			})
		}
	case router.EventWindowSize:
		set("width", ev.Width)
		set("height", ev.Height)
	}

	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", ev.Type, err)
	}
	return out, nil
}

// Tracer is a router.EventStore that writes every fired event to w as one
// JSON object per line. The first write or encode error stops tracing and
// is reported by Err.
type Tracer struct {
	w   io.Writer
	err error
}

// NewTracer creates a tracer writing to w.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

// EmitEvent implements router.EventStore.
func (t *Tracer) EmitEvent(ev router.Event) {
	if t.err != nil {
		return
	}
	line, err := Encode(ev)
	if err != nil {
		t.err = err
		return
	}
	line = append(line, '\n')
	if _, err := t.w.Write(line); err != nil {
		t.err = fmt.Errorf("write trace: %w", err)
	}
}

// Err returns the first error encountered, if any.
func (t *Tracer) Err() error {
	return t.err
}
