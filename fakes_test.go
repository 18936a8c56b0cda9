package router

import "testing"

// fakeNode is an axis-aligned rect placed at (x, y) in global space with a
// per-node scale. Its local space is (global - origin) / scale.
type fakeNode struct {
	id       string
	x, y     float64
	w, h     float64
	sx, sy   float64
	flags    Flags
	children bool
	parent   *fakeNode
}

func newFake(id string, x, y, w, h float64, flags Flags) *fakeNode {
	return &fakeNode{id: id, x: x, y: y, w: w, h: h, sx: 1, sy: 1, flags: flags}
}

func (n *fakeNode) ID() string        { return n.id }
func (n *fakeNode) HasChildren() bool { return n.children }
func (n *fakeNode) Flags() Flags      { return n.flags }

func (n *fakeNode) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= n.w && p.Y <= n.h
}

func (n *fakeNode) toLocal(p Point) Point {
	return p.SubXY(n.x, n.y).Div(n.sx, n.sy)
}

// fakeGraph holds nodes in painter order (last drawn is topmost).
type fakeGraph struct {
	nodes   []*fakeNode
	queries int
}

func (g *fakeGraph) add(nodes ...*fakeNode) {
	g.nodes = append(g.nodes, nodes...)
}

func (g *fakeGraph) rejected(n *fakeNode, filter func(Node) bool) bool {
	for p := n; p != nil; p = p.parent {
		if !filter(p) {
			return true
		}
	}
	return false
}

func (g *fakeGraph) FindNodesAtXY(pt Point, filter func(Node) bool) []Node {
	g.queries++
	var out []Node
	for i := len(g.nodes) - 1; i >= 0; i-- {
		n := g.nodes[i]
		if filter != nil && g.rejected(n, filter) {
			continue
		}
		if n.Contains(n.toLocal(pt)) {
			out = append(out, n)
		}
	}
	return out
}

func (g *fakeGraph) GlobalToLocal(pt Point, n Node) Point {
	if fn, ok := n.(*fakeNode); ok {
		return fn.toLocal(pt)
	}
	return pt
}

// recorded is one delivered event.
type recorded struct {
	typ    string
	target string
	ev     Event
}

// eventLog subscribes to every routed event name at the given nodes and the
// global target, recording deliveries in order.
type eventLog struct {
	events []recorded
}

var allEventNames = []string{
	EventPress, EventRelease, EventClick, EventDrag, EventScroll,
	EventKeyPress, EventKeyRelease, EventFocusGain, EventFocusLose,
	EventTouch, EventWindowSize, EventWindowClose,
}

func watch(t *testing.T, r *Router, nodes ...Node) *eventLog {
	t.Helper()
	log := &eventLog{}
	targets := append([]Node{nil}, nodes...)
	for _, n := range targets {
		for _, name := range allEventNames {
			if _, err := r.On(name, n, func(e Event) {
				log.events = append(log.events, recorded{typ: e.Type, target: nodeID(e.Target), ev: e})
			}); err != nil {
				t.Fatalf("On(%q): %v", name, err)
			}
		}
	}
	return log
}

// seq renders the log as "type@target" strings.
func (l *eventLog) seq() []string {
	out := make([]string, len(l.events))
	for i, e := range l.events {
		out[i] = e.typ + "@" + e.target
	}
	return out
}

func (l *eventLog) reset() {
	l.events = nil
}

func (l *eventLog) ofType(typ string) []Event {
	var out []Event
	for _, e := range l.events {
		if e.typ == typ {
			out = append(out, e.ev)
		}
	}
	return out
}

func assertSeq(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func nearPt(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

var mouseOnly = Flags{Mouse: Yes}
