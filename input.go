package actions

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"github.com/mailru/easyjson"
)

// dragWait is how long a move with a held button waits for Chrome to report
// an intercepted drag.
const dragWait = 50 * time.Millisecond

// dispatcher sends primitive input to a tab.
type dispatcher interface {
	mouse(context.Context, *input.DispatchMouseEventParams) error
	key(context.Context, *input.DispatchKeyEventParams) error
	drag(context.Context, *input.DispatchDragEventParams) error
	center(context.Context, *cdp.Node) (x, y float64, err error)
	focus(context.Context, *cdp.Node) error
	// interceptDrags turns on drag interception until stop is called. The
	// channel receives the data of intercepted drags.
	interceptDrags(context.Context) (data <-chan *input.DragData, stop func(), err error)
}

// cdpDispatcher dispatches input through the chromedp executor in the
// context.
type cdpDispatcher struct {
	dbgf func(string, ...interface{})
}

func (d *cdpDispatcher) debug(method string, v easyjson.Marshaler) {
	buf, err := easyjson.Marshal(v)
	if err != nil {
		d.dbgf("-> %s: could not marshal: %v", method, err)
		return
	}
	d.dbgf("-> %s %s", method, buf)
}

func (d *cdpDispatcher) mouse(ctx context.Context, p *input.DispatchMouseEventParams) error {
	d.debug(input.CommandDispatchMouseEvent, p)
	return p.Do(ctx)
}

func (d *cdpDispatcher) key(ctx context.Context, p *input.DispatchKeyEventParams) error {
	d.debug(input.CommandDispatchKeyEvent, p)
	return p.Do(ctx)
}

func (d *cdpDispatcher) drag(ctx context.Context, p *input.DispatchDragEventParams) error {
	d.debug(input.CommandDispatchDragEvent, p)
	return p.Do(ctx)
}

func (d *cdpDispatcher) center(ctx context.Context, n *cdp.Node) (float64, float64, error) {
	if err := dom.ScrollIntoViewIfNeeded().WithNodeID(n.NodeID).Do(ctx); err != nil {
		return 0, 0, err
	}
	quads, err := dom.GetContentQuads().WithNodeID(n.NodeID).Do(ctx)
	if err != nil {
		return 0, 0, err
	}
	if len(quads) == 0 {
		return 0, 0, ErrInvalidBoxModel
	}
	return quadCenter(quads[0])
}

func (d *cdpDispatcher) focus(ctx context.Context, n *cdp.Node) error {
	return dom.Focus().WithNodeID(n.NodeID).Do(ctx)
}

func (d *cdpDispatcher) interceptDrags(ctx context.Context) (<-chan *input.DragData, func(), error) {
	if err := input.SetInterceptDrags(true).Do(ctx); err != nil {
		return nil, nil, err
	}
	ch := make(chan *input.DragData, 1)
	lctx, cancel := context.WithCancel(ctx)
	chromedp.ListenTarget(lctx, func(ev interface{}) {
		if e, ok := ev.(*input.EventDragIntercepted); ok {
			select {
			case ch <- e.Data:
			default:
			}
		}
	})
	stop := func() {
		cancel()
		if err := input.SetInterceptDrags(false).Do(ctx); err != nil {
			d.dbgf("could not disable drag interception: %v", err)
		}
	}
	return ch, stop, nil
}

// buttonBits maps a mouse button to its bit in the buttons mask.
var buttonBits = map[input.MouseButton]int64{
	input.Left:    1,
	input.Right:   2,
	input.Middle:  4,
	input.Back:    8,
	input.Forward: 16,
}

// state is the input device state while a sequence runs.
type state struct {
	d dispatcher

	x, y    float64
	buttons int64
	button  input.MouseButton
	mods    input.Modifier

	// held are the keys pressed and not yet released, in press order.
	held []Key

	dragCh <-chan *input.DragData
	drag   *input.DragData
}

func (s *state) mouse(ctx context.Context, typ input.MouseType, button input.MouseButton, clicks int64) error {
	p := input.DispatchMouseEvent(typ, s.x, s.y).
		WithModifiers(s.mods).
		WithButton(button).
		WithButtons(s.buttons)
	if clicks > 0 {
		p = p.WithClickCount(clicks)
	}
	return s.d.mouse(ctx, p)
}

func (s *state) dragEvent(ctx context.Context, typ input.DispatchDragEventType) error {
	p := input.DispatchDragEvent(typ, s.x, s.y, s.drag).WithModifiers(s.mods)
	return s.d.drag(ctx, p)
}

func (s *state) move(ctx context.Context, x, y float64) error {
	s.x, s.y = x, y
	if err := s.mouse(ctx, input.MouseMoved, s.button, 0); err != nil {
		return err
	}
	if s.dragCh == nil || s.buttons == 0 {
		return nil
	}
	if s.drag == nil {
		select {
		case data := <-s.dragCh:
			s.drag = data
		case <-time.After(dragWait):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
		if err := s.dragEvent(ctx, input.DragEnter); err != nil {
			return err
		}
	}
	return s.dragEvent(ctx, input.DragOver)
}

func (s *state) moveTo(ctx context.Context, t Target, dx, dy float64) error {
	if t == nil {
		return ErrNoTarget
	}
	n, err := t.Node(ctx)
	if err != nil {
		return err
	}
	x, y, err := s.d.center(ctx, n)
	if err != nil {
		return err
	}
	return s.move(ctx, x+dx, y+dy)
}

func (s *state) press(ctx context.Context, button input.MouseButton, clicks int64) error {
	s.buttons |= buttonBits[button]
	s.button = button
	return s.mouse(ctx, input.MousePressed, button, clicks)
}

func (s *state) release(ctx context.Context, button input.MouseButton, clicks int64) error {
	if s.drag != nil {
		err := s.dragEvent(ctx, input.Drop)
		s.drag = nil
		if err != nil {
			return err
		}
	}
	s.buttons &^= buttonBits[button]
	if s.buttons == 0 {
		s.button = input.None
	}
	return s.mouse(ctx, input.MouseReleased, button, clicks)
}

func (s *state) keyDown(ctx context.Context, k Key) error {
	s.mods |= k.Modifier
	if !s.isHeld(k) {
		s.held = append(s.held, k)
	}
	return s.d.key(ctx, k.down(s.mods))
}

func (s *state) keyUp(ctx context.Context, k Key) error {
	s.mods &^= k.Modifier
	for i, h := range s.held {
		if h.Name == k.Name {
			s.held = append(s.held[:i], s.held[i+1:]...)
			break
		}
	}
	return s.d.key(ctx, k.up(s.mods))
}

func (s *state) isHeld(k Key) bool {
	for _, h := range s.held {
		if h.Name == k.Name {
			return true
		}
	}
	return false
}

// releaseAll cancels a pending drag, then releases every held button and
// key, most recently pressed key first. It returns the first dispatch error
// but keeps going.
func (s *state) releaseAll(ctx context.Context) error {
	var first error
	keep := func(err error) {
		if first == nil {
			first = err
		}
	}
	if s.drag != nil {
		if err := s.dragEvent(ctx, input.DragCancel); err != nil {
			keep(err)
		}
		s.drag = nil
	}
	for _, b := range []input.MouseButton{input.Left, input.Right, input.Middle, input.Back, input.Forward} {
		if s.buttons&buttonBits[b] == 0 {
			continue
		}
		if err := s.release(ctx, b, 1); err != nil {
			keep(err)
		}
	}
	for len(s.held) != 0 {
		if err := s.keyUp(ctx, s.held[len(s.held)-1]); err != nil {
			keep(err)
		}
	}
	return first
}

// step is a single queued input step.
type step struct {
	name string
	fn   func(context.Context, *state) error
}

// Sequence is a built list of input steps. It satisfies chromedp.Action, so
// it can be run with chromedp.Run or combined in chromedp.Tasks.
type Sequence struct {
	steps []step
	o     *options
}

// Len returns the number of steps in the sequence.
func (seq *Sequence) Len() int {
	return len(seq.steps)
}

// String returns the step names, space separated.
func (seq *Sequence) String() string {
	names := make([]string, len(seq.steps))
	for i, st := range seq.steps {
		names[i] = st.name
	}
	return strings.Join(names, " ")
}

// Do dispatches the steps in order, stopping at the first error, which is
// returned unchanged. Buttons and keys still held when a step fails are
// released before returning.
func (seq *Sequence) Do(ctx context.Context) error {
	if len(seq.steps) == 0 {
		return ErrNoSteps
	}
	d := seq.o.d
	if d == nil {
		d = &cdpDispatcher{dbgf: seq.o.dbgf}
	}
	s := &state{d: d, button: input.None}
	if seq.o.nativeDrag {
		ch, stop, err := d.interceptDrags(ctx)
		if err != nil {
			return err
		}
		defer stop()
		s.dragCh = ch
	}
	for i, st := range seq.steps {
		if err := st.fn(ctx, s); err != nil {
			seq.o.logf("step %d (%s) failed: %v", i, st.name, err)
			if rerr := s.releaseAll(ctx); rerr != nil {
				seq.o.logf("could not release input: %v", rerr)
			}
			return err
		}
		if seq.o.stepDelay > 0 {
			if err := sleep(ctx, seq.o.stepDelay); err != nil {
				return err
			}
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
