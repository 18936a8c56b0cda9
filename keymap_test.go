package router

import "testing"

func TestGLFWKeysNormalize(t *testing.T) {
	shift := map[int]bool{KeyRightShift: true}
	ctrl := map[int]bool{KeyLeftControl: true}

	tests := []struct {
		name      string
		raw       KeyEvent
		state     map[int]bool
		key, char string
		printable bool
		mods      KeyModifiers
	}{
		{"letter", KeyEvent{Keycode: 'Q'}, nil, "Q", "q", true, 0},
		{"shifted letter", KeyEvent{Keycode: 'Q'}, shift, "Q", "Q", true, ModShift},
		{"ctrl letter", KeyEvent{Keycode: 'C'}, ctrl, "C", "c", true, ModCtrl},
		{"digit", KeyEvent{Keycode: '5'}, nil, "5", "5", true, 0},
		{"shifted digit", KeyEvent{Keycode: '5'}, shift, "5", "%", true, ModShift},
		{"punct", KeyEvent{Keycode: '/'}, nil, "/", "/", true, 0},
		{"shifted punct", KeyEvent{Keycode: '/'}, shift, "/", "?", true, ModShift},
		{"space", KeyEvent{Keycode: KeySpace}, nil, "Space", " ", true, 0},
		{"enter", KeyEvent{Keycode: KeyEnter}, nil, "Enter", "", false, 0},
		{"escape", KeyEvent{Keycode: KeyEscape}, nil, "Escape", "", false, 0},
		{"f5", KeyEvent{Keycode: KeyF1 + 4}, nil, "F5", "", false, 0},
		{"keypad 3", KeyEvent{Keycode: KeyKP0 + 3}, nil, "KP3", "3", true, 0},
		{"keypad plus", KeyEvent{Keycode: KeyKPAdd}, nil, glfwNames[KeyKPAdd], "+", true, 0},
		{"left shift", KeyEvent{Keycode: KeyLeftShift}, shift, glfwNames[KeyLeftShift], "", false, ModShift},
		{"rune wins", KeyEvent{Keycode: 'E', Rune: 'é'}, nil, "E", "é", true, 0},
		{"unknown", KeyEvent{Keycode: 9999}, nil, "", "", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GLFWKeys{}.Normalize(tt.raw, tt.state)
			if got.Key != tt.key || got.Char != tt.char || got.Printable != tt.printable || got.Modifiers != tt.mods {
				t.Errorf("Normalize = %+v, want key=%q char=%q printable=%v mods=%v",
					got, tt.key, tt.char, tt.printable, tt.mods)
			}
			if got.Keycode != tt.raw.Keycode {
				t.Errorf("keycode = %d, want %d", got.Keycode, tt.raw.Keycode)
			}
		})
	}
}

func TestKeyModifiersHas(t *testing.T) {
	m := ModShift | ModAlt
	if !m.Has(ModShift) || !m.Has(ModAlt) || !m.Has(ModShift|ModAlt) {
		t.Error("missing set bits")
	}
	if m.Has(ModCtrl) || m.Has(ModShift|ModCtrl) {
		t.Error("reported unset bits")
	}
}
