package router

import "testing"

func TestInjectClick(t *testing.T) {
	g := &fakeGraph{}
	n := newFake("n", 0, 0, 100, 100, mouseOnly)
	g.add(n)
	r := New(g)
	log := watch(t, r, n)

	r.InjectClick(50, 50)

	// Injection is synchronous: the click is delivered before returning.
	assertSeq(t, log.seq(), "press@n", "release@n", "click@n")
}

func TestInjectDrag(t *testing.T) {
	g := &fakeGraph{}
	n := newFake("n", 0, 0, 400, 400, mouseOnly)
	g.add(n)
	r := New(g)
	log := watch(t, r, n)

	// press at (10,10), three interpolated moves, release at (210,210)
	r.InjectDrag(10, 10, 210, 210, 5)

	drags := log.ofType(EventDrag)
	// three moves plus the final move to the release point
	if len(drags) != 4 {
		t.Fatalf("drags = %d, want 4", len(drags))
	}
	for i, d := range drags {
		if !nearPt(d.Delta, Pt(50, 50)) {
			t.Errorf("drag %d delta = %v, want (50,50)", i, d.Delta)
		}
	}
	rel := log.ofType(EventRelease)
	if len(rel) != 1 || rel[0].Point != Pt(210, 210) {
		t.Errorf("release = %+v", rel)
	}
}

func TestInjectDragMinimumSteps(t *testing.T) {
	g := &fakeGraph{}
	n := newFake("n", 0, 0, 400, 400, mouseOnly)
	g.add(n)
	r := New(g)
	log := watch(t, r, n)

	r.InjectDrag(10, 10, 30, 30, 0)
	assertSeq(t, log.seq(), "press@n", "drag@n", "release@n", "click@n")
}

func TestInjectTouch(t *testing.T) {
	g := &fakeGraph{}
	n := newFake("n", 0, 0, 100, 100, mouseOnly)
	g.add(n)
	r := New(g)
	log := watch(t, r, n)

	r.InjectTouch(RawTouchPoint{ID: 1, X: 10, Y: 10})
	if len(r.Contacts()) != 1 {
		t.Fatalf("contacts = %d", len(r.Contacts()))
	}
	r.InjectTouch()
	assertSeq(t, log.seq(), "press@n", "release@n", "click@n")
}
