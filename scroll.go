package router

// handleMouseWheel re-resolves scroll focus under the pointer on every
// wheel notification and delivers the offsets there.
func (r *Router) handleMouseWheel(e MouseWheel) {
	nodes := r.graph.FindNodesAtXY(r.pointer.pt, nil)
	r.scrollTarget = firstWith(nodes, acceptsScroll)

	target := r.scrollTarget
	if target == nil {
		return
	}
	r.Fire(target, Event{
		Type:     EventScroll,
		Position: e.YOff,
		Delta:    Pt(e.XOff, e.YOff),
		Target:   target,
	})
}
