package router

// Semantic event names. Listener registration lower-cases names, so these
// are the canonical spellings.
const (
	EventPress       = "press"
	EventRelease     = "release"
	EventClick       = "click"
	EventDrag        = "drag"
	EventScroll      = "scroll"
	EventKeyPress    = "key.press"
	EventKeyRelease  = "key.release"
	EventFocusGain   = "focus.gain"
	EventFocusLose   = "focus.lose"
	EventTouch       = "touch"
	EventWindowSize  = "window.size"
	EventWindowClose = "window.close"
)

// TouchAction identifies the phase of a captured touch session.
type TouchAction uint8

const (
	TouchStart  TouchAction = iota + 1 // first frame of a captured session
	TouchUpdate                        // every later frame with contacts pressed
	TouchDone                          // all contacts released
)

// String returns "start", "update" or "done".
func (a TouchAction) String() string {
	switch a {
	case TouchStart:
		return "start"
	case TouchUpdate:
		return "update"
	case TouchDone:
		return "done"
	default:
		return ""
	}
}

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Super key
)

// Has reports whether all bits of mod are set.
func (m KeyModifiers) Has(mod KeyModifiers) bool {
	return m&mod == mod
}

// KeyInfo is a normalized keyboard event produced by a KeyNormalizer.
type KeyInfo struct {
	Keycode   int
	Key       string // symbolic name, e.g. "A", "Enter", "F5"
	Char      string // text produced by the key, "" if none
	Printable bool
	Modifiers KeyModifiers
}

// TouchPoint is one contact as delivered in a touch protocol event.
// Pt is in the receiving node's local space.
type TouchPoint struct {
	ID    int
	Count int
	Pt    Point
	Time  int64
}

// Event is a semantic event delivered to listeners. Which fields are
// meaningful depends on Type:
//
//	press, release, click  Button, Point, Touch
//	drag                   Button, Point, Delta, Touch
//	scroll                 Position, Delta
//	key.press, key.release Key
//	focus.gain, focus.lose (target only)
//	touch                  Action, Points, Pressed
//	window.size            Width, Height
//	window.close           (none)
//
// Point and Delta are in the target's local space.
type Event struct {
	Type   string
	Target Node

	Button int
	Touch  bool // mouse event emulated from a touch contact; Button is the contact ID
	Point  Point
	Delta  Point

	Position float64

	Key KeyInfo

	Action  TouchAction
	Points  []TouchPoint
	Pressed bool

	Width, Height int
}
