// Package actions provides composite input actions (clicks, hovers, drag and
// drop, key presses, modifier multi-select, and click-and-wait helpers) for
// chromedp.
//
// Every helper returns a chromedp.Action built from a Sequence of primitive
// input steps, so it can be combined with any other chromedp task:
//
//	err := chromedp.Run(ctx,
//		chromedp.Navigate(url),
//		actions.ShiftClick(actions.Query("#row1"), actions.Query("#row4")),
//	)
//
// Sequences keep the pointer position, the held mouse buttons and the held
// modifier keys between steps, so a click queued after KeyDown(Shift) is
// delivered as a shift-click.
package actions
