package router

// --- Hit-test filters ---

// mouseFilter skips subtrees that explicitly opt out of mouse events.
func mouseFilter(n Node) bool {
	return !(n.HasChildren() && n.Flags().Mouse == No)
}

// firstWith returns the first node for which accept is true.
func firstWith(nodes []Node, accept func(Flags) bool) Node {
	for _, n := range nodes {
		if accept(n.Flags()) {
			return n
		}
	}
	return nil
}

func acceptsMouse(f Flags) bool    { return f.Mouse == Yes }
func acceptsKeyboard(f Flags) bool { return f.Keyboard == Yes }
func acceptsScroll(f Flags) bool   { return f.Scroll == Yes }

// --- Raw handlers ---

func (r *Router) handleMousePosition(e MousePosition) {
	r.pointer.prevPt = r.pointer.pt
	r.pointer.pt = Pt(e.X, e.Y)

	if r.pointerTarget != nil && r.pointer.state == ButtonPressed {
		r.sendDrag()
	}
}

func (r *Router) handleMouseButton(e MouseButton) {
	if e.Button != r.cfg.PrimaryButton {
		return
	}
	r.pointer.state = e.State

	switch e.State {
	case ButtonPressed:
		r.pointer.button = e.Button
		r.setupPointerFocus(r.pointer.pt)
		r.sendPress()
	case ButtonReleased:
		r.sendRelease()
		r.pointerTarget = nil
	}
}

// setupPointerFocus hit-tests at pt, picks the pointer target and moves
// keyboard focus to the first keyboard-capable node under the pointer.
func (r *Router) setupPointerFocus(pt Point) {
	nodes := r.graph.FindNodesAtXY(pt, mouseFilter)

	r.pointerTarget = firstWith(nodes, acceptsMouse)
	r.setKeyboardFocus(firstWith(nodes, acceptsKeyboard))
}

// setKeyboardFocus moves keyboard focus to n, firing focus.lose at the old
// target before focus.gain at the new one. No events fire when n already
// has focus.
func (r *Router) setKeyboardFocus(n Node) {
	prev := r.keyboardTarget
	if n == prev {
		return
	}
	if prev != nil {
		r.Fire(prev, Event{Type: EventFocusLose, Target: prev})
	}
	r.keyboardTarget = n
	if n != nil {
		r.Fire(n, Event{Type: EventFocusGain, Target: n})
	}
}

// SetKeyboardFocus moves keyboard focus programmatically with the same
// lose/gain pairing as a pointer press. A nil node clears focus.
func (r *Router) SetKeyboardFocus(n Node) {
	r.setKeyboardFocus(n)
}

// --- Event emission ---

func (r *Router) sendPress() {
	node := r.pointerTarget
	if node == nil {
		return
	}
	local := r.graph.GlobalToLocal(r.pointer.pt, node)
	r.Fire(node, Event{Type: EventPress, Button: r.pointer.button, Point: local, Target: node})
}

func (r *Router) sendRelease() {
	node := r.pointerTarget
	if node == nil {
		return
	}
	r.fireRelease(node, r.pointer.button, false, r.pointer.pt)
}

func (r *Router) sendDrag() {
	node := r.pointerTarget
	r.fireDrag(node, r.pointer.button, false, r.pointer.pt, r.pointer.prevPt)
}

// fireRelease emits release at node and, when the local release point is
// inside the node, click.
func (r *Router) fireRelease(node Node, button int, touch bool, pt Point) {
	local := r.graph.GlobalToLocal(pt, node)
	ev := Event{Type: EventRelease, Button: button, Touch: touch, Point: local, Target: node}
	r.Fire(node, ev)

	if node.Contains(local) {
		ev.Type = EventClick
		r.Fire(node, ev)
	}
}

// fireDrag converts both raw points into node space before subtracting, so
// the delta stays correct under non-uniform transforms.
func (r *Router) fireDrag(node Node, button int, touch bool, pt, prev Point) {
	local := r.graph.GlobalToLocal(pt, node)
	localPrev := r.graph.GlobalToLocal(prev, node)
	r.Fire(node, Event{
		Type:   EventDrag,
		Button: button,
		Touch:  touch,
		Point:  local,
		Delta:  local.Sub(localPrev),
		Target: node,
	})
}
