package scene

import (
	"testing"

	"github.com/phanxgames/router"
)

func TestHitShapes(t *testing.T) {
	diamond := []router.Point{{X: 0, Y: -10}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: -10, Y: 0}}
	clockwise := HitPolygon{Points: diamond}
	counter := HitPolygon{Points: []router.Point{diamond[3], diamond[2], diamond[1], diamond[0]}}

	cases := []struct {
		shape HitShape
		pt    router.Point
		in    bool
	}{
		{HitRect{X: -5, Y: -5, Width: 10, Height: 20}, router.Pt(0, 14), true},
		{HitRect{X: -5, Y: -5, Width: 10, Height: 20}, router.Pt(5, 15), true},
		{HitRect{X: -5, Y: -5, Width: 10, Height: 20}, router.Pt(5.01, 0), false},
		{HitRect{X: -5, Y: -5, Width: 10, Height: 20}, router.Pt(0, -6), false},
		{HitCircle{CenterX: -3, CenterY: 4, Radius: 5}, router.Pt(0, 0), true},
		{HitCircle{CenterX: -3, CenterY: 4, Radius: 5}, router.Pt(2, 4), true},
		{HitCircle{CenterX: -3, CenterY: 4, Radius: 5}, router.Pt(1, 0), false},
		{clockwise, router.Pt(0, 0), true},
		{clockwise, router.Pt(5, 5), true},
		{clockwise, router.Pt(6, 5), false},
		{counter, router.Pt(-4, 4), true},
		{counter, router.Pt(-6, 6), false},
		{HitPolygon{Points: diamond[:2]}, router.Pt(5, -5), false},
	}
	for _, c := range cases {
		if got := c.shape.Contains(c.pt.X, c.pt.Y); got != c.in {
			t.Errorf("%T%v.Contains(%v) = %v, want %v", c.shape, c.shape, c.pt, got, c.in)
		}
	}
}
