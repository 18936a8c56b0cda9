package router

// TouchContact is one active touch identifier tracked across frames.
// Pt is the global position reported in the most recent frame; Target is
// the node resolved when the contact first appeared (nil if none).
type TouchContact struct {
	ID     int
	X, Y   float64
	Pt     Point
	Target Node
	Time   int64
	Count  int
}

// touchFilter skips subtrees that refuse both mouse and touch events.
func touchFilter(n Node) bool {
	f := n.Flags()
	return !(n.HasChildren() && f.Mouse == No && f.Touch == No)
}

func acceptsMouseOrTouch(f Flags) bool {
	return f.Mouse == Yes || f.Touch == Yes
}

// touchNodeAt returns the topmost node under pt that takes mouse or touch
// input, or nil.
func (r *Router) touchNodeAt(pt Point) Node {
	nodes := r.graph.FindNodesAtXY(pt, touchFilter)
	return firstWith(nodes, acceptsMouseOrTouch)
}

// handleTouch runs the multi-touch state machine for one raw frame.
//
//	Idle -> Tracking   first contact resolves to a mouse-emulated node
//	Idle -> Captured   first contact resolves to a touch-capable node
//	any  -> Idle       frame reports nothing pressed
func (r *Router) handleTouch(e Touch) {
	prevContacts := r.contacts
	prevByID := r.contactByID

	if !e.Pressed {
		r.releaseAllTouches(prevContacts, e)
		return
	}

	// Captured sessions get every frame verbatim; no per-contact routing.
	if r.touchNode != nil {
		r.fireTouchProtocol(r.touchNode, TouchUpdate, e)
		return
	}

	contacts := make([]TouchContact, 0, len(e.Points))
	byID := make(map[int]int, len(e.Points))
	pos := 0

	for _, p := range e.Points {
		c := TouchContact{ID: p.ID, X: p.X, Y: p.Y, Pt: Pt(p.X, p.Y), Time: p.Time, Count: p.Count}
		prevIdx, seen := prevByID[p.ID]

		if seen {
			prev := prevContacts[prevIdx]
			c.Target = prev.Target
			byID[c.ID] = len(contacts)
			contacts = append(contacts, c)
			if c.Target != nil {
				r.fireDrag(c.Target, c.ID, true, c.Pt, prev.Pt)
			}
			pos++
			continue
		}

		// New contact. It is recorded even without a target so it is never
		// resolved again while it stays down.
		c.Target = r.touchNodeAt(c.Pt)
		byID[c.ID] = len(contacts)
		contacts = append(contacts, c)
		if c.Target == nil {
			continue
		}

		if pos == 0 && r.cfg.TouchCapture && c.Target.Flags().Touch == Yes {
			r.touchNode = c.Target
			r.log.Debug("touch start", "target", nodeID(c.Target))
			r.fireTouchProtocol(c.Target, TouchStart, e)
			// Later contacts are not recorded; carried-forward ones are
			// released below.
			break
		}

		local := r.graph.GlobalToLocal(c.Pt, c.Target)
		r.Fire(c.Target, Event{Type: EventPress, Button: c.ID, Touch: true, Point: local, Target: c.Target})
		pos++
	}

	// Contacts missing from this frame were lifted individually.
	for _, prev := range prevContacts {
		if _, ok := byID[prev.ID]; ok || prev.Target == nil {
			continue
		}
		r.log.Debug("touch release", "id", prev.ID, "target", nodeID(prev.Target))
		r.fireRelease(prev.Target, prev.ID, true, prev.Pt)
	}

	r.contacts = contacts
	r.contactByID = byID
}

// releaseAllTouches ends every contact: each targeted contact gets release
// (and click), the captured one included, then the captured node gets done.
// State returns to idle.
func (r *Router) releaseAllTouches(prev []TouchContact, e Touch) {
	for _, c := range prev {
		if c.Target == nil {
			continue
		}
		r.log.Debug("touch release", "id", c.ID, "target", nodeID(c.Target))
		r.fireRelease(c.Target, c.ID, true, c.Pt)
	}

	r.contacts = nil
	r.contactByID = make(map[int]int)

	if node := r.touchNode; node != nil {
		r.touchNode = nil
		r.log.Debug("touch done", "target", nodeID(node))
		r.fireTouchProtocol(node, TouchDone, e)
	}
}

// fireTouchProtocol delivers a touch event carrying every contact of the
// frame in node's local space.
func (r *Router) fireTouchProtocol(node Node, action TouchAction, e Touch) {
	points := make([]TouchPoint, 0, len(e.Points))
	for _, p := range e.Points {
		points = append(points, TouchPoint{
			ID:    p.ID,
			Count: p.Count,
			Pt:    r.graph.GlobalToLocal(Pt(p.X, p.Y), node),
			Time:  p.Time,
		})
	}
	r.Fire(node, Event{
		Type:    EventTouch,
		Action:  action,
		Points:  points,
		Pressed: e.Pressed,
		Target:  node,
	})
}

// Contacts returns a copy of the contacts tracked from the last frame, in
// reported order.
func (r *Router) Contacts() []TouchContact {
	if len(r.contacts) == 0 {
		return nil
	}
	out := make([]TouchContact, len(r.contacts))
	copy(out, r.contacts)
	return out
}

// TouchCaptured returns the node holding the exclusive touch session, or
// nil.
func (r *Router) TouchCaptured() Node {
	return r.touchNode
}
