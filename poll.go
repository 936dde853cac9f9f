package actions

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// titleEqualFunction compares the page title to its argument, ignoring case.
const titleEqualFunction = `(want) => document.title.toLocaleLowerCase() === want.toLocaleLowerCase()`

// WaitVisible waits until sel is present in the DOM and visible, for at
// most timeout. A timeout of zero waits until the context is done.
//
// When the time runs out the error is context.DeadlineExceeded.
func WaitVisible(sel interface{}, timeout time.Duration, opts ...chromedp.QueryOption) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return chromedp.Tasks{
			chromedp.WaitReady(sel, opts...),
			chromedp.WaitVisible(sel, opts...),
		}.Do(ctx)
	})
}

// WaitTitle polls every interval until the page title equals title, ignoring
// case, for at most timeout. A timeout of zero disables the bound.
//
// When the time runs out the error is chromedp.ErrPollingTimeout.
func WaitTitle(title string, timeout, interval time.Duration) chromedp.Action {
	opts := []chromedp.PollOption{
		chromedp.WithPollingArgs(title),
		chromedp.WithPollingTimeout(timeout),
	}
	if interval > 0 {
		opts = append(opts, chromedp.WithPollingInterval(interval))
	}
	return chromedp.PollFunction(titleEqualFunction, nil, opts...)
}
