// chromedp-actions runs an input action script (see package script) against
// a local Chrome instance, printing the result of every step.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/fatih/color"

	"github.com/chromedp/actions"
	"github.com/chromedp/actions/script"
)

var (
	flagExec     = flag.String("exec", "", "path to the Chrome executable (default: search PATH)")
	flagHeadless = flag.Bool("headless", true, "run Chrome headless")
	flagVerbose  = flag.Bool("v", false, "log every dispatched input event")
	flagTimeout  = flag.Duration("timeout", time.Minute, "overall run timeout")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(context.Background(), os.Stdout, flag.Arg(0)); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, path string) error {
	s, err := script.ParseFile(path)
	if err != nil {
		return err
	}

	var opts []actions.Option
	if *flagVerbose {
		opts = append(opts, actions.WithLogf(log.Printf), actions.WithDebugf(log.Printf))
	}
	tasks, err := s.Tasks(opts...)
	if err != nil {
		return err
	}

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !*flagHeadless {
		allocOpts = append(allocOpts, chromedp.Flag("headless", false))
	}
	if *flagExec != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(*flagExec))
	}

	ctx, cancel := context.WithTimeout(ctx, *flagTimeout)
	defer cancel()
	ctx, cancel = chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()
	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	return runTasks(ctx, w, tasks, chromedp.Run)
}

// runTasks runs tasks in order with run, stopping at the first failure.
func runTasks(ctx context.Context, w io.Writer, tasks []script.Task, run func(context.Context, ...chromedp.Action) error) error {
	ok := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for i, task := range tasks {
		start := time.Now()
		err := run(ctx, task.Action)
		elapsed := dim(time.Since(start).Round(time.Millisecond))
		if err != nil {
			fmt.Fprintf(w, "%s %2d %s %s\n", fail("FAIL"), i+1, task.Name, elapsed)
			return fmt.Errorf("%s: %w", task.Name, err)
		}
		fmt.Fprintf(w, "%s   %2d %s %s\n", ok("ok"), i+1, task.Name, elapsed)
	}
	return nil
}
