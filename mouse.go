package actions

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// Click moves to t and clicks it with the left button.
func Click(t Target, opts ...Option) chromedp.Action {
	return New(opts...).ClickOn(t).Build()
}

// DoubleClick moves to t and double clicks it.
func DoubleClick(t Target, opts ...Option) chromedp.Action {
	return New(opts...).MoveTo(t).DoubleClick().Build()
}

// ClickAndHold moves to t and presses the left button without releasing it.
// Finish with ReleaseOn in a later sequence, or use DragAndDrop.
func ClickAndHold(t Target, opts ...Option) chromedp.Action {
	return New(opts...).MoveTo(t).ClickAndHold().Build()
}

// ContextClick moves to t and clicks it with the right button.
func ContextClick(t Target, opts ...Option) chromedp.Action {
	return New(opts...).MoveTo(t).ContextClick().Build()
}

// Hover moves the pointer over t.
func Hover(t Target, opts ...Option) chromedp.Action {
	return New(opts...).MoveTo(t).Build()
}

// ClickAndWait clicks t, then waits until sel exists and is visible. The
// wait is bounded by WithTimeout, and sel is queried with WithQueryOptions.
func ClickAndWait(t Target, sel interface{}, opts ...Option) chromedp.Action {
	b := New(opts...).ClickOn(t)
	return chromedp.Tasks{
		b.Build(),
		WaitVisible(sel, b.o.timeout, b.o.queryOpts...),
	}
}

// ClickAndWaitTitle clicks t, then waits until the page title equals title,
// ignoring case. The wait is bounded by WithTimeout.
func ClickAndWaitTitle(t Target, title string, opts ...Option) chromedp.Action {
	b := New(opts...).ClickOn(t)
	return chromedp.Tasks{
		b.Build(),
		WaitTitle(title, b.o.timeout, b.o.pollInterval),
	}
}

// HoverAndWait hovers t, then waits until sel exists and is visible.
func HoverAndWait(t Target, sel interface{}, opts ...Option) chromedp.Action {
	b := New(opts...).MoveTo(t)
	return chromedp.Tasks{
		b.Build(),
		WaitVisible(sel, b.o.timeout, b.o.queryOpts...),
	}
}

// DragAndDrop drags src onto dst with the left button, moving in
// WithDragSteps increments.
//
// Pages handling mousedown/mousemove/mouseup work as is. For HTML5 drag and
// drop (draggable elements with drop handlers) pass WithNativeDrag.
//
// A drag step count below 1 fails without dispatching anything.
func DragAndDrop(src, dst Target, opts ...Option) chromedp.Action {
	b := New(opts...)
	if n := b.o.dragSteps; n < 1 {
		return chromedp.ActionFunc(func(context.Context) error {
			return fmt.Errorf("%d: %w", n, ErrInvalidDragSteps)
		})
	}
	return b.MoveTo(src).
		ClickAndHold().
		moveToSteps(dst, b.o.dragSteps).
		Release().
		Build()
}
