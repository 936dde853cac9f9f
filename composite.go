package actions

import (
	"github.com/chromedp/chromedp"
)

// ModifierClick clicks every target in order while holding mod.
func ModifierClick(mod Key, targets []Target, opts ...Option) chromedp.Action {
	b := New(opts...)
	modifierClick(b, mod, targets)
	return b.Build()
}

func modifierClick(b *Builder, mod Key, targets []Target) *Builder {
	b.KeyDown(mod)
	for _, t := range targets {
		b.ClickOn(t)
	}
	return b.KeyUp(mod)
}

// ShiftClick clicks first, then shift-clicks second, selecting the range
// between them in lists and tables.
func ShiftClick(first, second Target, opts ...Option) chromedp.Action {
	b := New(opts...).ClickOn(first)
	return modifierClick(b, Shift, []Target{second}).Build()
}

// ControlClick clicks first, then control-clicks each of more, adding them
// to the selection.
func ControlClick(first Target, more []Target, opts ...Option) chromedp.Action {
	b := New(opts...).ClickOn(first)
	return modifierClick(b, Control, more).Build()
}

// ControlClickAll control-clicks every target.
func ControlClickAll(targets []Target, opts ...Option) chromedp.Action {
	return ModifierClick(Control, targets, opts...)
}
