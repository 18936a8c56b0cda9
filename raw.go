package router

// RawEvent is a low-level platform input notification. The set of raw
// event kinds is closed; Unknown stands in for anything a platform layer
// reports that the router does not understand.
type RawEvent interface {
	// Kind returns the wire type tag, e.g. "mouse.position".
	Kind() string
	rawEvent()
}

// Raw event type tags.
const (
	KindMousePosition = "mouse.position"
	KindMouseButton   = "mouse.button"
	KindMouseWheel    = "mousewheel.v"
	KindTouch         = "touch"
	KindKeyPress      = "key.press"
	KindKeyRelease    = "key.release"
	KindWindowSize    = "window.size"
	KindWindowClose   = "window.close"
)

// ButtonState is the state reported by a mouse.button raw event.
type ButtonState int

const (
	ButtonReleased ButtonState = 0
	ButtonPressed  ButtonState = 1
	ButtonRepeat   ButtonState = 2 // reported by some platforms; produces no events
)

// MousePosition reports the pointer position in global coordinates.
type MousePosition struct {
	X, Y float64
}

// MouseButton reports a button state change. Button 0 is the primary button.
type MouseButton struct {
	Button int
	State  ButtonState
}

// MouseWheel reports wheel offsets for one notification.
type MouseWheel struct {
	XOff, YOff float64
}

// RawTouchPoint is one contact as reported by the platform, in global
// coordinates.
type RawTouchPoint struct {
	ID    int
	X, Y  float64
	Count int
	Time  int64
}

// Touch is one multi-touch frame. Pressed is false when no contact is down;
// Points lists the active contacts in the order the platform reported them.
type Touch struct {
	Pressed bool
	Points  []RawTouchPoint
}

// KeyEvent is the payload shared by KeyPress and KeyRelease. Rune is set by
// platforms that deliver composed text along with the key (terminals);
// zero otherwise.
type KeyEvent struct {
	Keycode  int
	Scancode int
	Rune     rune
}

// KeyPress reports a key going down.
type KeyPress struct{ KeyEvent }

// KeyRelease reports a key going up.
type KeyRelease struct{ KeyEvent }

// WindowSize reports a new surface size.
type WindowSize struct {
	Width, Height int
}

// WindowClose reports that the surface is being closed.
type WindowClose struct{}

// Unknown carries a raw event type the router does not handle. It is
// accepted by ProcessEvent and dropped.
type Unknown struct {
	Type string
}

func (MousePosition) Kind() string { return KindMousePosition }
func (MouseButton) Kind() string   { return KindMouseButton }
func (MouseWheel) Kind() string    { return KindMouseWheel }
func (Touch) Kind() string         { return KindTouch }
func (KeyPress) Kind() string      { return KindKeyPress }
func (KeyRelease) Kind() string    { return KindKeyRelease }
func (WindowSize) Kind() string    { return KindWindowSize }
func (WindowClose) Kind() string   { return KindWindowClose }
func (u Unknown) Kind() string     { return u.Type }

func (MousePosition) rawEvent() {}
func (MouseButton) rawEvent()   {}
func (MouseWheel) rawEvent()    {}
func (Touch) rawEvent()         {}
func (KeyPress) rawEvent()      {}
func (KeyRelease) rawEvent()    {}
func (WindowSize) rawEvent()    {}
func (WindowClose) rawEvent()   {}
func (Unknown) rawEvent()       {}

// ProcessEvent routes one raw event to completion, including every listener
// it triggers. Unknown kinds and nil are ignored.
func (r *Router) ProcessEvent(ev RawEvent) {
	if ev == nil {
		return
	}
	r.log.Debug("process event", "kind", ev.Kind())

	switch e := ev.(type) {
	case MousePosition:
		r.handleMousePosition(e)
	case MouseButton:
		r.handleMouseButton(e)
	case MouseWheel:
		r.handleMouseWheel(e)
	case Touch:
		r.handleTouch(e)
	case KeyPress:
		r.handleKeyPress(e)
	case KeyRelease:
		r.handleKeyRelease(e)
	case WindowSize:
		r.Fire(nil, Event{Type: EventWindowSize, Width: e.Width, Height: e.Height})
	case WindowClose:
		r.Fire(nil, Event{Type: EventWindowClose})
	default:
		r.log.Debug("unhandled event", "kind", ev.Kind())
	}
}

// Processor accepts raw events. *Router implements it; platform sources
// and replay tools feed one.
type Processor interface {
	ProcessEvent(ev RawEvent)
}
