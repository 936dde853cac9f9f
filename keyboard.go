package actions

import (
	"github.com/chromedp/chromedp"
)

// Insert moves to t and presses k. The key goes to the focused element.
func Insert(t Target, k Key, opts ...Option) chromedp.Action {
	return New(opts...).MoveTo(t).KeyDown(k).KeyUp(k).Build()
}

// Type focuses t and types v.
func Type(t Target, v string, opts ...Option) chromedp.Action {
	return New(opts...).Focus(t).SendKeys(v).Build()
}
