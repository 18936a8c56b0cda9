// Package tcellsource feeds terminal input from a tcell screen into a
// router. Cells are reported as pixels: a mouse at column 12, row 3 is the
// raw position (12, 3).
package tcellsource

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/router"
)

// Translator converts tcell events into router raw events. Terminals report
// mouse state as a button mask on every motion and keys as single events,
// so the translator keeps the previous mask to derive press and release
// edges and brackets each key with synthetic modifier presses.
type Translator struct {
	x, y    int
	moved   bool
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator with no buttons held.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate returns the raw events for ev, in the order they should be
// processed. Events the router has no use for translate to nothing.
func (t *Translator) Translate(ev tcell.Event) []router.RawEvent {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		return t.mouse(e)
	case *tcell.EventKey:
		return translateKey(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []router.RawEvent{router.WindowSize{Width: w, Height: h}}
	}
	return nil
}

func (t *Translator) mouse(e *tcell.EventMouse) []router.RawEvent {
	var out []router.RawEvent

	x, y := e.Position()
	if !t.moved || x != t.x || y != t.y {
		t.x, t.y, t.moved = x, y, true
		out = append(out, router.MousePosition{X: float64(x), Y: float64(y)})
	}

	btn := e.Buttons()
	for i, mask := range []tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3} {
		was, is := t.buttons&mask != 0, btn&mask != 0
		switch {
		case is && !was:
			out = append(out, router.MouseButton{Button: i, State: router.ButtonPressed})
		case was && !is:
			out = append(out, router.MouseButton{Button: i, State: router.ButtonReleased})
		}
	}
	t.buttons = btn & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case btn&tcell.WheelUp != 0:
		out = append(out, router.MouseWheel{YOff: 1})
	case btn&tcell.WheelDown != 0:
		out = append(out, router.MouseWheel{YOff: -1})
	case btn&tcell.WheelLeft != 0:
		out = append(out, router.MouseWheel{XOff: -1})
	case btn&tcell.WheelRight != 0:
		out = append(out, router.MouseWheel{XOff: 1})
	}
	return out
}

var namedKeys = map[tcell.Key]int{
	tcell.KeyEnter:      router.KeyEnter,
	tcell.KeyTab:        router.KeyTab,
	tcell.KeyBacktab:    router.KeyTab,
	tcell.KeyBackspace:  router.KeyBackspace,
	tcell.KeyBackspace2: router.KeyBackspace,
	tcell.KeyEscape:     router.KeyEscape,
	tcell.KeyInsert:     router.KeyInsert,
	tcell.KeyDelete:     router.KeyDelete,
	tcell.KeyRight:      router.KeyRight,
	tcell.KeyLeft:       router.KeyLeft,
	tcell.KeyDown:       router.KeyDown,
	tcell.KeyUp:         router.KeyUp,
	tcell.KeyPgUp:       router.KeyPageUp,
	tcell.KeyPgDn:       router.KeyPageDown,
	tcell.KeyHome:       router.KeyHome,
	tcell.KeyEnd:        router.KeyEnd,
	tcell.KeyPause:      router.KeyPause,
	tcell.KeyPrint:      router.KeyPrintScreen,
}

// Keycode maps a tcell key to a GLFW keycode. The second result is false
// for keys with no GLFW equivalent.
func Keycode(k tcell.Key, ch rune) (int, bool) {
	if code, ok := namedKeys[k]; ok {
		return code, true
	}
	switch {
	case k == tcell.KeyRune:
		if ch == ' ' {
			return router.KeySpace, true
		}
		if ch < 128 && unicode.IsPrint(ch) {
			return int(unicode.ToUpper(ch)), true
		}
		// Non-ASCII text has no key; the rune still carries it.
		return 0, true
	case k >= tcell.KeyF1 && k <= tcell.KeyF25:
		return router.KeyF1 + int(k-tcell.KeyF1), true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return 'A' + int(k-tcell.KeyCtrlA), true
	case k == tcell.KeyCtrlSpace:
		return router.KeySpace, true
	}
	return 0, false
}

var modifierKeys = []struct {
	mod  tcell.ModMask
	code int
}{
	{tcell.ModShift, router.KeyLeftShift},
	{tcell.ModCtrl, router.KeyLeftControl},
	{tcell.ModAlt, router.KeyLeftAlt},
	{tcell.ModMeta, router.KeyLeftSuper},
}

// translateKey emits modifier presses, the key press and release, then the
// modifier releases in reverse order.
func translateKey(e *tcell.EventKey) []router.RawEvent {
	code, ok := Keycode(e.Key(), e.Rune())
	if !ok {
		return nil
	}
	mods := e.Modifiers()
	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ && namedKeys[e.Key()] == 0 {
		mods |= tcell.ModCtrl
	}

	var held []int
	for _, m := range modifierKeys {
		if mods&m.mod != 0 {
			held = append(held, m.code)
		}
	}

	ke := router.KeyEvent{Keycode: code}
	if e.Key() == tcell.KeyRune {
		ke.Rune = e.Rune()
	}

	out := make([]router.RawEvent, 0, 2*len(held)+2)
	for _, c := range held {
		out = append(out, router.KeyPress{KeyEvent: router.KeyEvent{Keycode: c}})
	}
	out = append(out, router.KeyPress{KeyEvent: ke}, router.KeyRelease{KeyEvent: ke})
	for i := len(held) - 1; i >= 0; i-- {
		out = append(out, router.KeyRelease{KeyEvent: router.KeyEvent{Keycode: held[i]}})
	}
	return out
}
