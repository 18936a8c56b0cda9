package scene

import "fmt"

// checkDisposed panics with a descriptive message when a disposed node is
// used in a tree operation.
func checkDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scene: %s on disposed node %q", op, n.ID()))
	}
}

const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// checkTree warns when the tree is deeper than debugMaxTreeDepth or a node
// has more than debugMaxChildCount children.
func (g *Graph) checkTree(n *Node, depth int) {
	if depth == debugMaxTreeDepth+1 {
		g.log.Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.ID())
	}
	if len(n.children) > debugMaxChildCount {
		g.log.Warn("node has too many children",
			"node", n.ID(), "children", len(n.children), "threshold", debugMaxChildCount)
	}
	for _, child := range n.children {
		g.checkTree(child, depth+1)
	}
}
