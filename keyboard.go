package router

func (r *Router) handleKeyPress(e KeyPress) {
	r.keyState[e.Keycode] = true
	info := r.keys.Normalize(e.KeyEvent, r.keyState)
	r.sendKey(EventKeyPress, info)
}

func (r *Router) handleKeyRelease(e KeyRelease) {
	r.keyState[e.Keycode] = false
	info := r.keys.Normalize(e.KeyEvent, r.keyState)
	r.sendKey(EventKeyRelease, info)
}

func (r *Router) sendKey(typ string, info KeyInfo) {
	target := r.keyboardTarget
	if target == nil {
		return
	}
	r.Fire(target, Event{Type: typ, Key: info, Target: target})
}

// KeyPressed reports whether keycode is currently held. Keys never seen
// are not pressed.
func (r *Router) KeyPressed(keycode int) bool {
	return r.keyState[keycode]
}
