package actions

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp/kb"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Key describes a single keyboard key.
type Key struct {
	// Name is the DOM key value ("Shift", "Enter", "a", "A").
	Name string
	// Code is the DOM physical key code ("ShiftLeft", "Enter", "KeyA").
	Code string
	// Text is the text produced by the key, empty for non-printable keys.
	Text string
	// Unmodified is the text produced without modifiers.
	Unmodified string
	// Windows is the windows virtual key code.
	Windows int64
	// Native is the native virtual key code.
	Native int64
	// Shifted is set for printable keys that need Shift (ie, 'A', '<').
	Shifted bool
	// Modifier is the modifier bit held while the key is down, zero for
	// keys that are not modifiers.
	Modifier input.Modifier
}

// IsModifier reports whether holding k changes the modifiers of other input
// events.
func (k Key) IsModifier() bool {
	return k.Modifier != input.ModifierNone
}

func (k Key) String() string {
	return k.Name
}

// event returns the key event of type typ for k, with mods held.
func (k Key) event(typ input.KeyType, mods input.Modifier) *input.DispatchKeyEventParams {
	p := &input.DispatchKeyEventParams{
		Type:                  typ,
		Modifiers:             mods,
		Key:                   k.Name,
		Code:                  k.Code,
		WindowsVirtualKeyCode: k.Windows,
		NativeVirtualKeyCode:  k.Native,
	}
	if runtime.GOOS == "darwin" {
		p.NativeVirtualKeyCode = 0
	}
	if k.Shifted {
		p.Modifiers |= input.ModifierShift
	}
	return p
}

// down returns the key down event for k. Keys producing text are sent as a
// keyDown carrying the text, others as a rawKeyDown.
func (k Key) down(mods input.Modifier) *input.DispatchKeyEventParams {
	if k.Text == "" {
		return k.event(input.KeyRawDown, mods)
	}
	p := k.event(input.KeyDown, mods)
	p.Text, p.UnmodifiedText = k.Text, k.Unmodified
	return p
}

func (k Key) up(mods input.Modifier) *input.DispatchKeyEventParams {
	return k.event(input.KeyUp, mods)
}

// Rune returns the key producing r on a US keyboard layout. Runes not on the
// layout produce an unidentified key carrying the rune as text.
func Rune(r rune) Key {
	if r == '\n' {
		r = '\r'
	}
	v, ok := kb.Keys[r]
	if !ok {
		k := Key{Name: "Unidentified"}
		if unicode.IsPrint(r) {
			k.Text, k.Unmodified = string(r), string(r)
		}
		return k
	}
	k := Key{
		Name:    v.Key,
		Code:    v.Code,
		Windows: v.Windows,
		Native:  v.Native,
		Shifted: v.Shift,
	}
	if v.Print {
		k.Text, k.Unmodified = v.Text, v.Unmodified
	}
	return k
}

func namedKey(name, code string, vk int64, mod input.Modifier) Key {
	return Key{Name: name, Code: code, Windows: vk, Native: vk, Modifier: mod}
}

// Modifier keys.
var (
	Shift   = namedKey("Shift", "ShiftLeft", 0x10, input.ModifierShift)
	Control = namedKey("Control", "ControlLeft", 0x11, input.ModifierCtrl)
	Alt     = namedKey("Alt", "AltLeft", 0x12, input.ModifierAlt)
	Meta    = namedKey("Meta", "MetaLeft", 0x5b, input.ModifierMeta)
)

// Named keys.
var (
	Enter      = Rune('\r')
	Tab        = Rune('\t')
	Backspace  = Rune('\b')
	Space      = Rune(' ')
	Escape     = namedKey("Escape", "Escape", 0x1b, 0)
	Delete     = namedKey("Delete", "Delete", 0x2e, 0)
	PageUp     = namedKey("PageUp", "PageUp", 0x21, 0)
	PageDown   = namedKey("PageDown", "PageDown", 0x22, 0)
	End        = namedKey("End", "End", 0x23, 0)
	Home       = namedKey("Home", "Home", 0x24, 0)
	ArrowLeft  = namedKey("ArrowLeft", "ArrowLeft", 0x25, 0)
	ArrowUp    = namedKey("ArrowUp", "ArrowUp", 0x26, 0)
	ArrowRight = namedKey("ArrowRight", "ArrowRight", 0x27, 0)
	ArrowDown  = namedKey("ArrowDown", "ArrowDown", 0x28, 0)
)

var namedKeys = map[string]Key{
	"shift":      Shift,
	"control":    Control,
	"ctrl":       Control,
	"alt":        Alt,
	"meta":       Meta,
	"cmd":        Meta,
	"enter":      Enter,
	"return":     Enter,
	"tab":        Tab,
	"backspace":  Backspace,
	"space":      Space,
	"escape":     Escape,
	"esc":        Escape,
	"delete":     Delete,
	"pageup":     PageUp,
	"pagedown":   PageDown,
	"end":        End,
	"home":       Home,
	"arrowleft":  ArrowLeft,
	"arrowup":    ArrowUp,
	"arrowright": ArrowRight,
	"arrowdown":  ArrowDown,
}

// ParseKey returns the key with the given name (case-insensitive, see
// KeyNames), or the key for name when it is a single character.
func ParseKey(name string) (Key, error) {
	if k, ok := namedKeys[strings.ToLower(name)]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return Rune(r), nil
	}
	return Key{}, fmt.Errorf("%q: %w", name, ErrUnknownKey)
}

// KeyNames returns the sorted names accepted by ParseKey, besides single
// characters.
func KeyNames() []string {
	names := maps.Keys(namedKeys)
	slices.Sort(names)
	return names
}
