package scene

import "github.com/phanxgames/router"

// HitShape replaces a node's Width×Height rectangle as its hit region.
// Coordinates are in the node's local space.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangle. Edges count as inside.
type HitRect struct {
	X, Y, Width, Height float64
}

func (r HitRect) Contains(x, y float64) bool {
	return r.X <= x && x <= r.X+r.Width && r.Y <= y && y <= r.Y+r.Height
}

// HitCircle is a disc; the circumference counts as inside.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

func (c HitCircle) Contains(x, y float64) bool {
	return router.Pt(c.CenterX, c.CenterY).DistanceTo(router.Pt(x, y)) <= c.Radius
}

// HitPolygon is a convex polygon listed in either winding order. Fewer
// than three points never hit.
type HitPolygon struct {
	Points []router.Point
}

// Contains reports whether (x, y) lies on the same side of every edge.
func (p HitPolygon) Contains(x, y float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	pt := router.Pt(x, y)
	sign := 0
	for i, a := range p.Points {
		b := p.Points[(i+1)%len(p.Points)]
		edge, rel := b.Sub(a), pt.Sub(a)
		switch cross := edge.X*rel.Y - edge.Y*rel.X; {
		case cross > 0 && sign < 0, cross < 0 && sign > 0:
			return false
		case cross > 0:
			sign = 1
		case cross < 0:
			sign = -1
		}
	}
	return true
}
