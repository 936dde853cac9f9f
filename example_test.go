package actions_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/chromedp/actions"
)

func ExampleShiftClick() {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var selected []string
	err := chromedp.Run(ctx,
		chromedp.Navigate("https://example.com/list"),
		actions.ShiftClick(
			actions.Query("#row1", chromedp.ByQuery),
			actions.Query("#row4", chromedp.ByQuery),
		),
		chromedp.Evaluate(`[...document.querySelectorAll(".selected")].map(e => e.id)`, &selected),
	)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(selected)
}

func ExampleClickAndWait() {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	err := chromedp.Run(ctx,
		chromedp.Navigate("https://example.com/"),
		actions.ClickAndWait(
			actions.Query("#open", chromedp.ByQuery),
			"#dialog",
			actions.WithQueryOptions(chromedp.ByQuery),
			actions.WithTimeout(10*time.Second),
		),
	)
	if err != nil {
		log.Fatal(err)
	}
}

func ExampleBuilder() {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	if err := chromedp.Run(ctx, chromedp.Navigate("https://example.com/board")); err != nil {
		log.Fatal(err)
	}

	// drag a card while holding alt, which copies it on most boards
	err := actions.New(actions.WithDebugf(log.Printf)).
		KeyDown(actions.Alt).
		MoveTo(actions.Query("#card1", chromedp.ByQuery)).
		ClickAndHold().
		MoveToOffset(actions.Query("#done", chromedp.ByQuery), 0, 20).
		Release().
		KeyUp(actions.Alt).
		Perform(ctx)
	if err != nil {
		log.Fatal(err)
	}
}
