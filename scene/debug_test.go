package scene

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDisposedNodePanics(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for disposed child")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "disposed") || !strings.Contains(msg, "child") {
			t.Errorf("panic = %v", r)
		}
	}()
	parent.AddChild(child)
}

func TestDisposedParentPanics(t *testing.T) {
	parent := NewContainer("parent")
	parent.Dispose()
	expectPanic(t, "disposed parent", func() { parent.AddChild(NewContainer("child")) })
}

func newLoggedGraph(t *testing.T) (*Graph, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	g := New()
	g.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	g.SetDebugMode(true)
	return g, &buf
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	g, buf := newLoggedGraph(t)
	parent := g.Root()
	for range debugMaxTreeDepth + 2 {
		child := NewContainer("")
		parent.AddChild(child)
		parent = child
	}

	g.Refresh()
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("log = %q, want depth warning", buf.String())
	}
	if n := strings.Count(buf.String(), "tree depth"); n != 1 {
		t.Errorf("depth warnings = %d, want 1", n)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	g, buf := newLoggedGraph(t)
	for range debugMaxChildCount + 1 {
		g.Root().AddChild(NewContainer(""))
	}

	g.Refresh()
	if !strings.Contains(buf.String(), "node has too many children") {
		t.Errorf("log = %q, want child count warning", buf.String())
	}
}

func TestReleaseMode_NoWarnings(t *testing.T) {
	g, buf := newLoggedGraph(t)
	g.SetDebugMode(false)
	for range debugMaxChildCount + 1 {
		g.Root().AddChild(NewContainer(""))
	}

	g.Refresh()
	if buf.Len() != 0 {
		t.Errorf("log = %q, want nothing", buf.String())
	}
}
