package wire

import (
	"errors"
	"strings"
	"testing"

	"github.com/phanxgames/router"
	"github.com/phanxgames/router/scene"
)

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"invalid json", `{"steps": [`, "invalid json"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"missing steps", `{}`, "no steps"},
		{"missing action", `{"steps": [{"action":"click"},{"x":1}]}`, "step 1: missing action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.in))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
	if _, err := LoadScript([]byte(`{}`)); !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

func newScene(t *testing.T) (*router.Router, *scene.Node) {
	t.Helper()
	g := scene.New()
	box := scene.NewRect("box", 200, 250)
	box.Mouse = router.Yes
	box.Touch = router.Yes
	g.Root().AddChild(box)
	return router.New(g), box
}

func record(r *router.Router, target router.Node, names ...string) *[]string {
	var got []string
	for _, name := range names {
		r.On(name, target, func(e router.Event) { got = append(got, e.Type) })
	}
	return &got
}

func TestScriptRun(t *testing.T) {
	r, box := newScene(t)
	got := record(r, box, router.EventPress, router.EventDrag, router.EventClick, router.EventTouch)
	var size router.Event
	r.On(router.EventWindowSize, nil, func(e router.Event) { size = e })

	s, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 20, "y": 30},
		{"action": "drag", "fromX": 10, "fromY": 10, "toX": 50, "toY": 50, "steps": 3},
		{"action": "touch", "points": [{"id": 1, "x": 5, "y": 5}]},
		{"action": "lift"},
		{"action": "event", "event": {"type": "window.size", "width": 640, "height": 480}}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}

	n, err := s.Run(r)
	if err != nil || n != 5 {
		t.Fatalf("Run = %d, %v", n, err)
	}
	want := "press,click,press,drag,drag,click,touch,click,touch"
	if joined := strings.Join(*got, ","); joined != want {
		t.Errorf("events = %s, want %s", joined, want)
	}
	if size.Width != 640 || size.Height != 480 {
		t.Errorf("window.size = %dx%d", size.Width, size.Height)
	}
}

func TestScriptRunStopsAtUnknownAction(t *testing.T) {
	r, box := newScene(t)
	got := record(r, box, router.EventClick)

	s, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 1, "y": 1},
		{"action": "teleport"},
		{"action": "click", "x": 1, "y": 1}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	n, err := s.Run(r)
	if n != 1 || err == nil || !strings.Contains(err.Error(), `step 1: unknown action "teleport"`) {
		t.Errorf("Run = %d, %v", n, err)
	}
	if len(*got) != 1 {
		t.Errorf("clicks = %d, want 1", len(*got))
	}
}

func TestScriptRunBadEvent(t *testing.T) {
	r, _ := newScene(t)
	s, err := LoadScript([]byte(`{"steps": [{"action": "event", "event": {"x": 1}}]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if _, err := s.Run(r); !errors.Is(err, ErrMissingType) {
		t.Errorf("err = %v, want ErrMissingType", err)
	}
}

type recorder struct {
	events []router.RawEvent
}

func (p *recorder) ProcessEvent(ev router.RawEvent) {
	p.events = append(p.events, ev)
}

func TestReplay(t *testing.T) {
	in := `# captured session
{"type":"mouse.position","x":20,"y":30}

{"type":"mouse.button","button":0,"state":1}
   # indented comment
{"type":"mouse.button","button":0,"state":0}
`
	p := &recorder{}
	n, err := Replay(strings.NewReader(in), p)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if n != 3 || len(p.events) != 3 {
		t.Fatalf("replayed %d, recorded %d, want 3", n, len(p.events))
	}
	if p.events[1] != (router.MouseButton{Button: 0, State: router.ButtonPressed}) {
		t.Errorf("events[1] = %#v", p.events[1])
	}
}

func TestReplayReportsLine(t *testing.T) {
	in := "{\"type\":\"window.close\"}\n\n{\"x\":1}\n{\"type\":\"window.close\"}\n"
	p := &recorder{}
	n, err := Replay(strings.NewReader(in), p)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if err == nil || !strings.Contains(err.Error(), "line 3") || !errors.Is(err, ErrMissingType) {
		t.Errorf("err = %v", err)
	}
}

func TestReplayIntoRouter(t *testing.T) {
	r, box := newScene(t)
	got := record(r, box, router.EventClick)

	in := `{"type":"mouse.position","x":20,"y":30}
{"type":"mouse.button","button":0,"state":1}
{"type":"mouse.button","button":0,"state":0}`
	if _, err := Replay(strings.NewReader(in), r); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(*got) != 1 {
		t.Errorf("clicks = %d, want 1", len(*got))
	}
}
