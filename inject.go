package router

// Synthetic input. Each helper builds raw events in global coordinates and
// runs them through ProcessEvent immediately, exactly as if a platform
// layer had reported them. Useful for automation and tests.

// InjectPress moves the pointer to (x, y) and presses the primary button.
func (r *Router) InjectPress(x, y float64) {
	r.ProcessEvent(MousePosition{X: x, Y: y})
	r.ProcessEvent(MouseButton{Button: r.cfg.PrimaryButton, State: ButtonPressed})
}

// InjectMove moves the pointer to (x, y). Between InjectPress and
// InjectRelease this produces drag events.
func (r *Router) InjectMove(x, y float64) {
	r.ProcessEvent(MousePosition{X: x, Y: y})
}

// InjectRelease moves the pointer to (x, y) and releases the primary
// button.
func (r *Router) InjectRelease(x, y float64) {
	r.ProcessEvent(MousePosition{X: x, Y: y})
	r.ProcessEvent(MouseButton{Button: r.cfg.PrimaryButton, State: ButtonReleased})
}

// InjectClick presses and releases at the same position.
func (r *Router) InjectClick(x, y float64) {
	r.InjectPress(x, y)
	r.InjectRelease(x, y)
}

// InjectDrag presses at (fromX, fromY), moves through steps-2 linearly
// interpolated points and releases at (toX, toY). Minimum steps is 2
// (press + release).
func (r *Router) InjectDrag(fromX, fromY, toX, toY float64, steps int) {
	if steps < 2 {
		steps = 2
	}
	r.InjectPress(fromX, fromY)
	moves := steps - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves+1)
		r.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.InjectRelease(toX, toY)
}

// InjectTouch reports one touch frame with the given contacts. An empty
// call reports that every contact was lifted.
func (r *Router) InjectTouch(points ...RawTouchPoint) {
	r.ProcessEvent(Touch{Pressed: len(points) > 0, Points: points})
}
