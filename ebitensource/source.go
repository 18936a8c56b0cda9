// Package ebitensource polls Ebitengine input once per tick and reports it
// to a router as raw events. Call [Source.Update] from the game's Update.
package ebitensource

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/router"
)

// mouseButtons lists the polled buttons in router numbering: 0 left,
// 1 right, 2 middle.
var mouseButtons = [...]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// frame is one tick's snapshot of the input devices.
type frame struct {
	cursorX, cursorY int
	buttons          [len(mouseButtons)]bool
	wheelX, wheelY   float64
	touches          []router.RawTouchPoint
	keysDown         []ebiten.Key
	keysUp           []ebiten.Key
	width, height    int
	closing          bool
}

// Source turns successive input snapshots into raw events. It remembers
// the previous tick so that only changes are reported.
type Source struct {
	started  bool
	cursorX  int
	cursorY  int
	buttons  [len(mouseButtons)]bool
	touching bool
	width    int
	height   int
	closed   bool
	tick     int64

	touchIDs []ebiten.TouchID
	keyBuf   []ebiten.Key
}

// New creates a source. To receive window.close, the game must call
// ebiten.SetWindowClosingHandled(true).
func New() *Source {
	return &Source{}
}

// Update polls ebiten and feeds the changes since the last call to proc.
// It must be called from the game's Update method.
func (s *Source) Update(proc router.Processor) {
	s.tick++
	f := frame{closing: ebiten.IsWindowBeingClosed()}
	f.cursorX, f.cursorY = ebiten.CursorPosition()
	for i, b := range mouseButtons {
		f.buttons[i] = ebiten.IsMouseButtonPressed(b)
	}
	f.wheelX, f.wheelY = ebiten.Wheel()
	f.width, f.height = ebiten.WindowSize()

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		f.touches = append(f.touches, router.RawTouchPoint{
			ID:    int(id),
			X:     float64(x),
			Y:     float64(y),
			Count: len(s.touchIDs),
			Time:  s.tick - int64(inpututil.TouchPressDuration(id)),
		})
	}
	sortTouches(f.touches)

	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	f.keysDown = s.keyBuf
	f.keysUp = inpututil.AppendJustReleasedKeys(nil)

	s.apply(f, proc)
}

// sortTouches orders contacts by press time, earliest first, so the first
// finger down stays at position 0. AppendTouchIDs has no defined order.
func sortTouches(pts []router.RawTouchPoint) {
	slices.SortStableFunc(pts, func(a, b router.RawTouchPoint) int {
		if c := cmp.Compare(a.Time, b.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// apply reports the difference between f and the previous frame.
func (s *Source) apply(f frame, proc router.Processor) {
	if f.width != s.width || f.height != s.height {
		s.width, s.height = f.width, f.height
		proc.ProcessEvent(router.WindowSize{Width: f.width, Height: f.height})
	}

	if !s.started || f.cursorX != s.cursorX || f.cursorY != s.cursorY {
		s.cursorX, s.cursorY = f.cursorX, f.cursorY
		proc.ProcessEvent(router.MousePosition{X: float64(f.cursorX), Y: float64(f.cursorY)})
	}
	s.started = true

	for i, down := range f.buttons {
		if down == s.buttons[i] {
			continue
		}
		s.buttons[i] = down
		state := router.ButtonReleased
		if down {
			state = router.ButtonPressed
		}
		proc.ProcessEvent(router.MouseButton{Button: i, State: state})
	}

	if f.wheelX != 0 || f.wheelY != 0 {
		proc.ProcessEvent(router.MouseWheel{XOff: f.wheelX, YOff: f.wheelY})
	}

	switch {
	case len(f.touches) > 0:
		s.touching = true
		proc.ProcessEvent(router.Touch{Pressed: true, Points: f.touches})
	case s.touching:
		s.touching = false
		proc.ProcessEvent(router.Touch{Pressed: false})
	}

	for _, k := range f.keysDown {
		if code, ok := Keycode(k); ok {
			proc.ProcessEvent(router.KeyPress{KeyEvent: router.KeyEvent{Keycode: code, Scancode: int(k)}})
		}
	}
	for _, k := range f.keysUp {
		if code, ok := Keycode(k); ok {
			proc.ProcessEvent(router.KeyRelease{KeyEvent: router.KeyEvent{Keycode: code, Scancode: int(k)}})
		}
	}

	if f.closing && !s.closed {
		s.closed = true
		proc.ProcessEvent(router.WindowClose{})
	}
}
