package router

import (
	"strconv"
	"unicode"
)

// GLFW keycodes, as emitted by the GLFW and evdev native layers.
const (
	KeySpace        = 32
	KeyEscape       = 256
	KeyEnter        = 257
	KeyTab          = 258
	KeyBackspace    = 259
	KeyInsert       = 260
	KeyDelete       = 261
	KeyRight        = 262
	KeyLeft         = 263
	KeyDown         = 264
	KeyUp           = 265
	KeyPageUp       = 266
	KeyPageDown     = 267
	KeyHome         = 268
	KeyEnd          = 269
	KeyCapsLock     = 280
	KeyScrollLock   = 281
	KeyNumLock      = 282
	KeyPrintScreen  = 283
	KeyPause        = 284
	KeyF1           = 290
	KeyF25          = 314
	KeyKP0          = 320
	KeyKP9          = 329
	KeyKPDecimal    = 330
	KeyKPDivide     = 331
	KeyKPMultiply   = 332
	KeyKPSubtract   = 333
	KeyKPAdd        = 334
	KeyKPEnter      = 335
	KeyKPEqual      = 336
	KeyLeftShift    = 340
	KeyLeftControl  = 341
	KeyLeftAlt      = 342
	KeyLeftSuper    = 343
	KeyRightShift   = 344
	KeyRightControl = 345
	KeyRightAlt     = 346
	KeyRightSuper   = 347
	KeyMenu         = 348
)

var glfwNames = map[int]string{
	KeySpace:        "Space",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyKPDecimal:    "KPDecimal",
	KeyKPDivide:     "KPDivide",
	KeyKPMultiply:   "KPMultiply",
	KeyKPSubtract:   "KPSubtract",
	KeyKPAdd:        "KPAdd",
	KeyKPEnter:      "KPEnter",
	KeyKPEqual:      "KPEqual",
	KeyLeftShift:    "LeftShift",
	KeyLeftControl:  "LeftControl",
	KeyLeftAlt:      "LeftAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightShift:   "RightShift",
	KeyRightControl: "RightControl",
	KeyRightAlt:     "RightAlt",
	KeyRightSuper:   "RightSuper",
	KeyMenu:         "Menu",
}

// US layout: unshifted character -> shifted character.
var shiftedPunct = map[rune]rune{
	'\'': '"', ',': '<', '-': '_', '.': '>', '/': '?',
	'0': ')', '1': '!', '2': '@', '3': '#', '4': '$',
	'5': '%', '6': '^', '7': '&', '8': '*', '9': '(',
	';': ':', '=': '+', '[': '{', '\\': '|', ']': '}', '`': '~',
}

var keypadChars = map[int]string{
	KeyKPDecimal: ".", KeyKPDivide: "/", KeyKPMultiply: "*",
	KeyKPSubtract: "-", KeyKPAdd: "+", KeyKPEqual: "=",
}

// GLFWKeys normalizes GLFW keycodes assuming a US layout. Modifiers are
// derived from the held modifier keys in the accumulated state.
type GLFWKeys struct{}

// Normalize implements KeyNormalizer.
func (GLFWKeys) Normalize(raw KeyEvent, state map[int]bool) KeyInfo {
	info := KeyInfo{
		Keycode:   raw.Keycode,
		Modifiers: glfwModifiers(state),
	}
	shift := info.Modifiers.Has(ModShift)
	code := raw.Keycode

	switch {
	case code >= 'A' && code <= 'Z':
		info.Key = string(rune(code))
		if shift {
			info.Char = string(rune(code))
		} else {
			info.Char = string(unicode.ToLower(rune(code)))
		}
	case code == KeySpace:
		info.Key = "Space"
		info.Char = " "
	case code > KeySpace && code < 128:
		c := rune(code)
		info.Key = string(c)
		if s, ok := shiftedPunct[c]; ok && shift {
			c = s
		}
		info.Char = string(c)
	case code >= KeyF1 && code <= KeyF25:
		info.Key = "F" + strconv.Itoa(code-KeyF1+1)
	case code >= KeyKP0 && code <= KeyKP9:
		info.Key = "KP" + strconv.Itoa(code-KeyKP0)
		info.Char = strconv.Itoa(code - KeyKP0)
	default:
		info.Key = glfwNames[code]
		info.Char = keypadChars[code]
	}

	// Platforms that deliver composed text win over the keycode mapping.
	if raw.Rune != 0 {
		info.Char = string(raw.Rune)
	}
	info.Printable = isPrintable(info.Char)
	return info
}

func glfwModifiers(state map[int]bool) KeyModifiers {
	var mods KeyModifiers
	if state[KeyLeftShift] || state[KeyRightShift] {
		mods |= ModShift
	}
	if state[KeyLeftControl] || state[KeyRightControl] {
		mods |= ModCtrl
	}
	if state[KeyLeftAlt] || state[KeyRightAlt] {
		mods |= ModAlt
	}
	if state[KeyLeftSuper] || state[KeyRightSuper] {
		mods |= ModMeta
	}
	return mods
}

func isPrintable(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !unicode.IsPrint(c) {
			return false
		}
	}
	return true
}
