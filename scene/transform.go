package scene

import (
	"math"

	"github.com/phanxgames/router"
)

// affine is a 2D affine matrix stored column-wise as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
type affine [6]float64

var identityTransform = affine{1, 0, 0, 1, 0, 0}

// computeLocalTransform builds the node's local matrix by composing, right
// to left:
//
//	Translate(X, Y) * Rotate * Skew * Scale * Translate(-PivotX, -PivotY)
func computeLocalTransform(n *Node) affine {
	sin, cos := math.Sincos(n.Rotation)
	m := affine{n.ScaleX, 0, 0, n.ScaleY, -n.PivotX * n.ScaleX, -n.PivotY * n.ScaleY}
	if n.SkewX != 0 || n.SkewY != 0 {
		m = affine{1, math.Tan(n.SkewY), math.Tan(n.SkewX), 1, 0, 0}.mul(m)
	}
	m = affine{cos, sin, -sin, cos, 0, 0}.mul(m)
	m[4] += n.X
	m[5] += n.Y
	return m
}

// mul returns m * o: o is applied first.
func (m affine) mul(o affine) affine {
	return affine{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// inverse inverts m. Singular matrices invert to the identity.
func (m affine) inverse() affine {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	a, b, c, d := m[3]/det, -m[1]/det, -m[2]/det, m[0]/det
	return affine{a, b, c, d, -a*m[4] - c*m[5], -b*m[4] - d*m[5]}
}

// apply maps p through m.
func (m affine) apply(p router.Point) router.Point {
	return router.Pt(m[0]*p.X+m[2]*p.Y+m[4], m[1]*p.X+m[3]*p.Y+m[5])
}

// updateWorldTransform walks the subtree rooted at n. A node is recomputed
// when it is dirty or its parent was recomputed in the same walk.
func updateWorldTransform(n *Node, parent affine, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = parent.mul(computeLocalTransform(n))
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Setters ---
//
// Each setter marks the node dirty. Code that writes the fields directly
// calls MarkDirty afterwards.

func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.MarkDirty()
}

func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.MarkDirty()
}

// SetRotation takes radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.MarkDirty()
}

func (n *Node) SetSkew(sx, sy float64) {
	n.SkewX, n.SkewY = sx, sy
	n.MarkDirty()
}

func (n *Node) SetPivot(px, py float64) {
	n.PivotX, n.PivotY = px, py
	n.MarkDirty()
}

// MarkDirty schedules the node's world transform, and its subtree's, for
// recomputation on the next refresh.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local space,
// using the world transform from the last refresh.
func (n *Node) WorldToLocal(p router.Point) router.Point {
	return n.worldTransform.inverse().apply(p)
}

// LocalToWorld converts a local-space point to world space, using the
// world transform from the last refresh.
func (n *Node) LocalToWorld(p router.Point) router.Point {
	return n.worldTransform.apply(p)
}
