package actions

import (
	"time"

	"github.com/chromedp/chromedp"
)

// Default option values.
const (
	DefaultTimeout      = 5 * time.Second
	DefaultPollInterval = 100 * time.Millisecond
	DefaultDragSteps    = 5
)

// options holds the settings shared by the builder and the helpers.
type options struct {
	timeout      time.Duration
	pollInterval time.Duration
	dragSteps    int
	nativeDrag   bool
	stepDelay    time.Duration
	queryOpts    []chromedp.QueryOption

	logf func(string, ...interface{})
	dbgf func(string, ...interface{})

	// d overrides the dispatcher used by sequences; nil uses the browser.
	d dispatcher
}

// Option is an action option.
type Option = func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		timeout:      DefaultTimeout,
		pollInterval: DefaultPollInterval,
		dragSteps:    DefaultDragSteps,
		logf:         func(string, ...interface{}) {},
		dbgf:         func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTimeout sets how long the wait helpers (ClickAndWait, HoverAndWait,
// ClickAndWaitTitle) wait for their condition. Defaults to 5 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithPollInterval sets the interval at which the page title is checked by
// ClickAndWaitTitle.
func WithPollInterval(interval time.Duration) Option {
	return func(o *options) {
		o.pollInterval = interval
	}
}

// WithDragSteps sets the number of intermediate mouse moves dispatched
// between the drag source and the drop target.
func WithDragSteps(n int) Option {
	return func(o *options) {
		o.dragSteps = n
	}
}

// WithNativeDrag enables drag interception, so that HTML5 drag and drop
// (draggable="true" with dragstart/drop handlers) receives real drag events.
func WithNativeDrag() Option {
	return func(o *options) {
		o.nativeDrag = true
	}
}

// WithStepDelay adds a delay after every dispatched step.
func WithStepDelay(d time.Duration) Option {
	return func(o *options) {
		o.stepDelay = d
	}
}

// WithQueryOptions sets the chromedp query options used for the selector
// waited on by ClickAndWait and HoverAndWait.
func WithQueryOptions(opts ...chromedp.QueryOption) Option {
	return func(o *options) {
		o.queryOpts = opts
	}
}

// WithLogf is an option to specify a func to receive general logging.
func WithLogf(f func(string, ...interface{})) Option {
	return func(o *options) {
		o.logf = f
	}
}

// WithDebugf is an option to specify a func to receive debug logging (ie,
// every dispatched protocol command).
func WithDebugf(f func(string, ...interface{})) Option {
	return func(o *options) {
		o.dbgf = f
	}
}

func withDispatcher(d dispatcher) Option {
	return func(o *options) {
		o.d = d
	}
}
