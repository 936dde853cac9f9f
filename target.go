package actions

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// Target is the element an input step is aimed at.
//
// Node is called when the step is performed, with a context carrying the
// chromedp executor of the current tab.
type Target interface {
	Node(ctx context.Context) (*cdp.Node, error)
}

// Node returns a Target for a node that has already been resolved, for
// example with chromedp.Nodes.
func Node(n *cdp.Node) Target {
	return nodeTarget{n}
}

type nodeTarget struct {
	n *cdp.Node
}

func (t nodeTarget) Node(context.Context) (*cdp.Node, error) {
	if t.n == nil {
		return nil, ErrNoTarget
	}
	return t.n, nil
}

func (t nodeTarget) String() string {
	if t.n == nil {
		return "<nil>"
	}
	return t.n.FullXPath()
}

// Query returns a Target that resolves the first node matching sel when the
// step is performed. The selector and options are those of chromedp.Nodes,
// which waits until the selector matches.
func Query(sel interface{}, opts ...chromedp.QueryOption) Target {
	return &queryTarget{sel: sel, opts: opts}
}

type queryTarget struct {
	sel  interface{}
	opts []chromedp.QueryOption
}

func (t *queryTarget) Node(ctx context.Context) (*cdp.Node, error) {
	var nodes []*cdp.Node
	if err := chromedp.Nodes(t.sel, &nodes, t.opts...).Do(ctx); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%v: %w", t.sel, ErrNoResults)
	}
	return nodes[0], nil
}

func (t *queryTarget) String() string {
	return fmt.Sprint(t.sel)
}

// targetName is used in log messages.
func targetName(t Target) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", t)
}

// quadCenter returns the centroid of a content quad.
func quadCenter(q []float64) (x, y float64, err error) {
	if len(q) != 8 {
		return 0, 0, ErrInvalidBoxModel
	}
	for i := 0; i < 8; i += 2 {
		x += q[i]
		y += q[i+1]
	}
	return x / 4, y / 4, nil
}
