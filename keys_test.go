package actions

import (
	"errors"
	"sort"
	"testing"

	"github.com/chromedp/cdproto/input"
)

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		exp  string
		mod  input.Modifier
		err  error
	}{
		{"Shift", "Shift", input.ModifierShift, nil},
		{"ctrl", "Control", input.ModifierCtrl, nil},
		{"CONTROL", "Control", input.ModifierCtrl, nil},
		{"alt", "Alt", input.ModifierAlt, nil},
		{"cmd", "Meta", input.ModifierMeta, nil},
		{"enter", "Enter", 0, nil},
		{"Esc", "Escape", 0, nil},
		{"ArrowDown", "ArrowDown", 0, nil},
		{"a", "a", 0, nil},
		{"7", "7", 0, nil},
		{"你", "Unidentified", 0, nil},
		{"shiftt", "", 0, ErrUnknownKey},
		{"", "", 0, ErrUnknownKey},
	}

	for i, test := range tests {
		k, err := ParseKey(test.name)
		if !errors.Is(err, test.err) {
			t.Fatalf("test %d expected error %v, got: %v", i, test.err, err)
		}
		if k.Name != test.exp {
			t.Errorf("test %d expected key %q, got: %q", i, test.exp, k.Name)
		}
		if k.Modifier != test.mod {
			t.Errorf("test %d expected modifier %d, got: %d", i, test.mod, k.Modifier)
		}
	}
}

func TestRune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r       rune
		name    string
		text    string
		shifted bool
	}{
		{'a', "a", "a", false},
		{'A', "A", "A", true},
		{'\n', "Enter", "\r", false},
		{'\r', "Enter", "\r", false},
		{'你', "Unidentified", "你", false},
	}

	for i, test := range tests {
		k := Rune(test.r)
		if k.Name != test.name || k.Text != test.text || k.Shifted != test.shifted {
			t.Errorf("test %d expected %q/%q/%t, got: %q/%q/%t", i, test.name, test.text, test.shifted, k.Name, k.Text, k.Shifted)
		}
		if k.IsModifier() {
			t.Errorf("test %d expected %q not to be a modifier", i, k.Name)
		}
	}
}

func TestKeyEvents(t *testing.T) {
	t.Parallel()

	down := Shift.down(input.ModifierShift)
	if down.Type != input.KeyRawDown || down.Key != "Shift" || down.Code != "ShiftLeft" || down.WindowsVirtualKeyCode != 0x10 {
		t.Errorf("unexpected shift down event: %+v", down)
	}

	down = Rune('x').down(input.ModifierCtrl)
	if down.Type != input.KeyDown || down.Text != "x" || down.Modifiers != input.ModifierCtrl {
		t.Errorf("unexpected x down event: %+v", down)
	}

	up := Rune('x').up(0)
	if up.Type != input.KeyUp || up.Text != "" {
		t.Errorf("unexpected x up event: %+v", up)
	}
}

func TestKeyNames(t *testing.T) {
	t.Parallel()

	names := KeyNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected sorted names, got: %v", names)
	}
	for _, name := range names {
		if _, err := ParseKey(name); err != nil {
			t.Errorf("name %q does not parse: %v", name, err)
		}
	}
}
