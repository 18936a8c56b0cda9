package scene

import (
	"log/slog"

	"github.com/phanxgames/router"
)

// Graph owns a node tree rooted at a container and answers the router's
// hit-test and coordinate-conversion queries. It implements
// router.SceneGraph.
type Graph struct {
	root   *Node
	camera *Camera
	view   affine
	hitBuf []*Node
	log    *slog.Logger
	debug  bool
}

// New creates a graph with a pre-created root container.
func New() *Graph {
	return &Graph{
		root: NewContainer("root"),
		view: identityTransform,
		log:  slog.New(slog.DiscardHandler),
	}
}

// Root returns the graph's root container node.
func (g *Graph) Root() *Node {
	return g.root
}

// SetLogger sets the sink for debug warnings.
func (g *Graph) SetLogger(l *slog.Logger) {
	g.log = l
}

// SetDebugMode enables tree-shape warnings (excessive depth or child
// counts) on every refresh.
func (g *Graph) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// SetCamera attaches a view between the router's surface coordinates and
// the world. A nil camera restores the identity view.
func (g *Graph) SetCamera(c *Camera) {
	g.camera = c
}

// Camera returns the attached camera, or nil.
func (g *Graph) Camera() *Camera {
	return g.camera
}

// Refresh recomputes world transforms for dirty subtrees. Queries call it
// first, so callers only need it before using Node.WorldToLocal directly.
// With a camera attached, world transforms are in surface space.
func (g *Graph) Refresh() {
	view := identityTransform
	if c := g.camera; c != nil {
		c.computeViewMatrix()
		view = c.viewMatrix
	}
	moved := view != g.view
	g.view = view
	updateWorldTransform(g.root, view, moved)
	if g.debug {
		g.checkTree(g.root, 1)
	}
}

// collect walks the tree in painter order (DFS, ZIndex-sorted), appending
// hit-testable nodes to buf. Invisible subtrees and subtrees rejected by
// filter are skipped.
func collect(n *Node, filter func(router.Node) bool, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if filter != nil && !filter(n) {
		return buf
	}
	if n.hitTestable() {
		buf = append(buf, n)
	}
	for _, child := range sortedChildrenOf(n) {
		buf = collect(child, filter, buf)
	}
	return buf
}

// FindNodesAtXY returns every node whose hit region contains pt, front to
// back (reverse painter order).
func (g *Graph) FindNodesAtXY(pt router.Point, filter func(router.Node) bool) []router.Node {
	g.Refresh()
	g.hitBuf = collect(g.root, filter, g.hitBuf[:0])

	var hits []router.Node
	for i := len(g.hitBuf) - 1; i >= 0; i-- {
		n := g.hitBuf[i]
		if n.Contains(n.WorldToLocal(pt)) {
			hits = append(hits, n)
		}
	}
	return hits
}

// GlobalToLocal converts pt into n's local space. Nodes that do not belong
// to this package are returned pt unchanged.
func (g *Graph) GlobalToLocal(pt router.Point, n router.Node) router.Point {
	node, ok := n.(*Node)
	if !ok || node == nil {
		return pt
	}
	g.Refresh()
	return node.WorldToLocal(pt)
}

// LocalToGlobal converts a point in n's local space to the global frame.
func (g *Graph) LocalToGlobal(pt router.Point, n *Node) router.Point {
	g.Refresh()
	return n.LocalToWorld(pt)
}
