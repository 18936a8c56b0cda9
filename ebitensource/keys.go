package ebitensource

import (
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/router"
)

var keyNames = map[string]int{
	"Space":          router.KeySpace,
	"Enter":          router.KeyEnter,
	"Tab":            router.KeyTab,
	"Backspace":      router.KeyBackspace,
	"Escape":         router.KeyEscape,
	"Insert":         router.KeyInsert,
	"Delete":         router.KeyDelete,
	"ArrowRight":     router.KeyRight,
	"ArrowLeft":      router.KeyLeft,
	"ArrowDown":      router.KeyDown,
	"ArrowUp":        router.KeyUp,
	"PageUp":         router.KeyPageUp,
	"PageDown":       router.KeyPageDown,
	"Home":           router.KeyHome,
	"End":            router.KeyEnd,
	"CapsLock":       router.KeyCapsLock,
	"ScrollLock":     router.KeyScrollLock,
	"NumLock":        router.KeyNumLock,
	"PrintScreen":    router.KeyPrintScreen,
	"Pause":          router.KeyPause,
	"ShiftLeft":      router.KeyLeftShift,
	"ShiftRight":     router.KeyRightShift,
	"ControlLeft":    router.KeyLeftControl,
	"ControlRight":   router.KeyRightControl,
	"AltLeft":        router.KeyLeftAlt,
	"AltRight":       router.KeyRightAlt,
	"MetaLeft":       router.KeyLeftSuper,
	"MetaRight":      router.KeyRightSuper,
	"ContextMenu":    router.KeyMenu,
	"NumpadDecimal":  router.KeyKPDecimal,
	"NumpadDivide":   router.KeyKPDivide,
	"NumpadMultiply": router.KeyKPMultiply,
	"NumpadSubtract": router.KeyKPSubtract,
	"NumpadAdd":      router.KeyKPAdd,
	"NumpadEnter":    router.KeyKPEnter,
	"NumpadEqual":    router.KeyKPEqual,
	"Minus":          '-',
	"Equal":          '=',
	"BracketLeft":    '[',
	"BracketRight":   ']',
	"Backslash":      '\\',
	"Semicolon":      ';',
	"Quote":          '\'',
	"Backquote":      '`',
	"Comma":          ',',
	"Period":         '.',
	"Slash":          '/',
}

// Keycode maps an ebiten key to the GLFW keycode the router's default
// normalizer understands. Virtual keys such as ebiten.KeyShift have no
// code.
func Keycode(k ebiten.Key) (int, bool) {
	name := k.String()
	if code, ok := keyNames[name]; ok {
		return code, true
	}
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return int(name[0]), true
	}
	if n, ok := numbered(name, "Digit"); ok && n <= 9 {
		return '0' + n, true
	}
	if n, ok := numbered(name, "Numpad"); ok && n <= 9 {
		return router.KeyKP0 + n, true
	}
	if n, ok := numbered(name, "F"); ok && n >= 1 && n <= 25 {
		return router.KeyF1 + n - 1, true
	}
	return 0, false
}

func numbered(name, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
