package scene

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/phanxgames/router"
)

// Scene graphs are driven from one goroutine, so the serial needs no
// atomics.
var lastSerial uint32

// Node is a scene-graph element: a transform, an optional hit region, and
// the capability flags the router consults. It implements router.Node.
type Node struct {
	Name   string
	Parent *Node

	// Local transform, applied as pivot, scale, skew, rotation, translation.
	X, Y            float64
	ScaleX, ScaleY  float64
	Rotation        float64
	SkewX, SkewY    float64
	PivotX, PivotY  float64
	Width, Height   float64 // default hit region when HitShape is nil
	HitShape        HitShape
	Alpha           float64
	Visible         bool
	ZIndex          int
	UserData        any
	Mouse, Keyboard router.Tri
	Scroll, Touch   router.Tri

	serial   uint32
	children []*Node
	disposed bool

	worldTransform affine
	transformDirty bool

	// byZ caches children in ZIndex order; zStale marks it for rebuild.
	byZ    []*Node
	zStale bool
}

func newNode(name string, w, h float64) *Node {
	lastSerial++
	return &Node{
		Name:           name,
		Width:          w,
		Height:         h,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Visible:        true,
		serial:         lastSerial,
		worldTransform: identityTransform,
		transformDirty: true,
	}
}

// NewContainer creates a node with no size. Containers are traversed by hit
// tests but only hit themselves when given a HitShape.
func NewContainer(name string) *Node {
	return newNode(name, 0, 0)
}

// NewRect creates a node with a w×h hit region anchored at its local origin.
func NewRect(name string, w, h float64) *Node {
	return newNode(name, w, h)
}

// ID returns the node's name, or a generated "node-N" for unnamed nodes.
func (n *Node) ID() string {
	if n.Name == "" {
		return "node-" + strconv.FormatUint(uint64(n.serial), 10)
	}
	return n.Name
}

// Contains reports whether a local-space point lies inside the node's hit
// region: HitShape if set, otherwise the Width×Height rectangle. A node
// with neither is never hit.
func (n *Node) Contains(local router.Point) bool {
	switch {
	case n.HitShape != nil:
		return n.HitShape.Contains(local.X, local.Y)
	case !n.hitTestable():
		return false
	}
	return HitRect{Width: n.Width, Height: n.Height}.Contains(local.X, local.Y)
}

func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

func (n *Node) Flags() router.Flags {
	return router.Flags{Mouse: n.Mouse, Keyboard: n.Keyboard, Scroll: n.Scroll, Touch: n.Touch}
}

// hitTestable reports whether the node can appear in hit-test results.
func (n *Node) hitTestable() bool {
	return n.HitShape != nil || n.Width != 0 || n.Height != 0
}

// --- Tree ---

// AddChild appends child, detaching it from any previous parent.
// Panics if child is nil, disposed, or an ancestor of n.
func (n *Node) AddChild(child *Node) {
	n.insert(child, -1)
}

// AddChildAt inserts child before position index. Panics like AddChild,
// and when index is outside [0, NumChildren()].
func (n *Node) AddChildAt(child *Node, index int) {
	if index < 0 {
		panic("scene: child index out of range")
	}
	n.insert(child, index)
}

// insert places child at index, or last when index is negative.
func (n *Node) insert(child *Node, index int) {
	if child == nil {
		panic("scene: cannot add nil child")
	}
	checkDisposed(n, "AddChild (parent)")
	checkDisposed(child, "AddChild (child)")
	if child.isAncestorOf(n) {
		panic("scene: adding child would create a cycle")
	}

	if p := child.Parent; p != nil {
		p.unlink(child)
	}
	if index < 0 {
		index = len(n.children)
	}
	if index > len(n.children) {
		panic("scene: child index out of range")
	}
	n.children = slices.Insert(n.children, index, child)
	child.Parent = n
	n.zStale = true
	child.markTreeDirty()
}

// RemoveChild detaches child. Panics if n is not child's parent.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("scene: child's parent is not this node")
	}
	n.unlink(child)
	child.Parent = nil
	child.markTreeDirty()
}

// RemoveFromParent detaches n from its parent, if it has one.
func (n *Node) RemoveFromParent() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// unlink drops child from the child list, leaving child.Parent alone.
func (n *Node) unlink(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
		n.zStale = true
	}
}

// Children returns the child list in insertion order. Callers must not
// modify it.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetZIndex changes the node's stacking order among its siblings. Higher
// values are drawn later and so are hit first.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex != z {
		n.ZIndex = z
		if n.Parent != nil {
			n.Parent.zStale = true
		}
	}
}

// Dispose detaches the node and tears down its whole subtree. Disposed
// nodes cannot rejoin a tree.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.teardown()
}

func (n *Node) teardown() {
	for _, child := range n.children {
		child.Parent = nil
		child.teardown()
	}
	*n = Node{Name: n.Name, serial: n.serial, disposed: true}
}

func (n *Node) IsDisposed() bool {
	return n.disposed
}

func (n *Node) isAncestorOf(node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) markTreeDirty() {
	n.transformDirty = true
	for _, child := range n.children {
		child.markTreeDirty()
	}
}

// sortedChildrenOf returns n's children stably ordered by ZIndex. The
// order is cached until the child list or a child's ZIndex changes.
func sortedChildrenOf(n *Node) []*Node {
	if !n.zStale && len(n.byZ) == len(n.children) {
		return n.byZ
	}
	n.byZ = append(n.byZ[:0], n.children...)
	slices.SortStableFunc(n.byZ, func(a, b *Node) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	n.zStale = false
	return n.byZ
}
