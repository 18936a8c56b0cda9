package router

// Tri is a tri-state capability flag. The zero value is Unset.
type Tri uint8

const (
	Unset Tri = iota // no opinion; does not accept, does not block traversal
	Yes              // explicitly accepts
	No               // explicitly refuses; blocks traversal of a subtree
)

// String returns "unset", "yes" or "no".
func (t Tri) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unset"
	}
}

// Flags holds the per-node capability flags consulted during hit-testing.
type Flags struct {
	Mouse    Tri
	Keyboard Tri
	Scroll   Tri
	Touch    Tri
}

// Node is the router's view of a scene-graph node. Nodes are used as opaque
// equality keys for targeting, so implementations must be comparable
// (pointer types in practice).
type Node interface {
	// ID identifies the node in log output.
	ID() string
	// Contains reports whether a point in the node's local space lies
	// inside the node's bounds.
	Contains(local Point) bool
	// HasChildren reports whether the node has child nodes.
	HasChildren() bool
	// Flags returns the node's capability flags.
	Flags() Flags
}

// SceneGraph is the hit-test and coordinate-conversion collaborator.
type SceneGraph interface {
	// FindNodesAtXY returns the nodes under pt, front to back. When filter
	// is non-nil, a node for which it returns false is skipped together
	// with its subtree.
	FindNodesAtXY(pt Point, filter func(Node) bool) []Node
	// GlobalToLocal converts pt from the surface's global frame into n's
	// local frame.
	GlobalToLocal(pt Point, n Node) Point
}

// nodeID returns n.ID(), or "" for a nil node.
func nodeID(n Node) string {
	if n == nil {
		return ""
	}
	return n.ID()
}
