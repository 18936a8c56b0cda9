package scene

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	n := NewRect("n", 10, 10)
	n.SetPosition(0, 0)
	tw := TweenPosition(n, 100, 50, 1, ease.Linear)

	for i := 0; i < 5 && !tw.Done; i++ {
		tw.Update(0.3)
	}
	if !tw.Done {
		t.Fatal("tween should be done after its duration")
	}
	assertNear(t, "X", n.X, 100)
	assertNear(t, "Y", n.Y, 50)
}

func TestTweenMidway(t *testing.T) {
	n := NewContainer("n")
	tw := TweenScale(n, 3, 3, 1, ease.Linear)

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("tween done too early")
	}
	assertNear(t, "ScaleX", n.ScaleX, 2)
}

func TestTweenMarksDirty(t *testing.T) {
	n := NewContainer("n")
	n.transformDirty = false
	tw := TweenAlpha(n, 0, 1, ease.Linear)

	tw.Update(0.25)
	if !n.transformDirty {
		t.Error("Update should mark the node dirty")
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	n := NewContainer("n")
	tw := TweenPosition(n, 100, 100, 1, ease.Linear)
	n.Dispose()

	tw.Update(0.5)
	if !tw.Done {
		t.Error("tween on a disposed node should be done")
	}
	if n.X != 0 {
		t.Errorf("X = %v, want untouched 0", n.X)
	}
}
