package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
)

// Builder queues input steps and builds them into a Sequence.
//
// Nothing is sent to the browser until the built sequence is run:
//
//	err := actions.New().
//		MoveTo(actions.Query("#item")).
//		ClickAndHold().
//		MoveTo(actions.Query("#bin")).
//		Release().
//		Perform(ctx)
type Builder struct {
	o     *options
	steps []step
}

// New creates a builder.
func New(opts ...Option) *Builder {
	return &Builder{o: newOptions(opts...)}
}

func (b *Builder) add(name string, fn func(context.Context, *state) error) *Builder {
	b.steps = append(b.steps, step{name: name, fn: fn})
	return b
}

// MoveTo moves the pointer to the centre of t, scrolling it into view.
func (b *Builder) MoveTo(t Target) *Builder {
	return b.add("move("+targetName(t)+")", func(ctx context.Context, s *state) error {
		return s.moveTo(ctx, t, 0, 0)
	})
}

// MoveToOffset moves the pointer to the centre of t shifted by dx, dy.
func (b *Builder) MoveToOffset(t Target, dx, dy float64) *Builder {
	name := fmt.Sprintf("move(%s%+g%+g)", targetName(t), dx, dy)
	return b.add(name, func(ctx context.Context, s *state) error {
		return s.moveTo(ctx, t, dx, dy)
	})
}

// moveToSteps moves the pointer to the centre of t in n equal increments.
func (b *Builder) moveToSteps(t Target, n int) *Builder {
	return b.add(fmt.Sprintf("move(%s,%d)", targetName(t), n), func(ctx context.Context, s *state) error {
		if n < 1 {
			return fmt.Errorf("%d: %w", n, ErrInvalidDragSteps)
		}
		if t == nil {
			return ErrNoTarget
		}
		node, err := t.Node(ctx)
		if err != nil {
			return err
		}
		x, y, err := s.d.center(ctx, node)
		if err != nil {
			return err
		}
		x0, y0 := s.x, s.y
		for i := 1; i <= n; i++ {
			f := float64(i) / float64(n)
			if err := s.move(ctx, x0+(x-x0)*f, y0+(y-y0)*f); err != nil {
				return err
			}
		}
		return nil
	})
}

// MoveBy moves the pointer relative to its current position.
func (b *Builder) MoveBy(dx, dy float64) *Builder {
	return b.add(fmt.Sprintf("moveBy(%g,%g)", dx, dy), func(ctx context.Context, s *state) error {
		return s.move(ctx, s.x+dx, s.y+dy)
	})
}

// Click clicks the left button at the current pointer position.
func (b *Builder) Click() *Builder {
	return b.add("click", func(ctx context.Context, s *state) error {
		if err := s.press(ctx, input.Left, 1); err != nil {
			return err
		}
		return s.release(ctx, input.Left, 1)
	})
}

// ClickOn moves to t and clicks it.
func (b *Builder) ClickOn(t Target) *Builder {
	return b.MoveTo(t).Click()
}

// DoubleClick double clicks the left button at the current pointer
// position.
func (b *Builder) DoubleClick() *Builder {
	return b.add("doubleClick", func(ctx context.Context, s *state) error {
		for clicks := int64(1); clicks <= 2; clicks++ {
			if err := s.press(ctx, input.Left, clicks); err != nil {
				return err
			}
			if err := s.release(ctx, input.Left, clicks); err != nil {
				return err
			}
		}
		return nil
	})
}

// ClickAndHold presses the left button at the current pointer position
// without releasing it.
func (b *Builder) ClickAndHold() *Builder {
	return b.add("press", func(ctx context.Context, s *state) error {
		return s.press(ctx, input.Left, 1)
	})
}

// ContextClick clicks the right button at the current pointer position.
func (b *Builder) ContextClick() *Builder {
	return b.add("contextClick", func(ctx context.Context, s *state) error {
		if err := s.press(ctx, input.Right, 1); err != nil {
			return err
		}
		return s.release(ctx, input.Right, 1)
	})
}

// Release releases the held mouse button at the current pointer position.
// When no button is held, the left button is released.
func (b *Builder) Release() *Builder {
	return b.add("release", func(ctx context.Context, s *state) error {
		button := s.button
		if button == input.None {
			button = input.Left
		}
		return s.release(ctx, button, 1)
	})
}

// ReleaseOn moves to t and releases the held mouse button there.
func (b *Builder) ReleaseOn(t Target) *Builder {
	return b.MoveTo(t).Release()
}

// KeyDown presses k without releasing it. While a modifier key is down it
// applies to every following mouse and key event of the sequence.
func (b *Builder) KeyDown(k Key) *Builder {
	return b.add("keyDown("+k.Name+")", func(ctx context.Context, s *state) error {
		return s.keyDown(ctx, k)
	})
}

// KeyUp releases k.
func (b *Builder) KeyUp(k Key) *Builder {
	return b.add("keyUp("+k.Name+")", func(ctx context.Context, s *state) error {
		return s.keyUp(ctx, k)
	})
}

// SendKeys presses and releases the key of every rune in v, with the
// modifiers currently held.
func (b *Builder) SendKeys(v string) *Builder {
	return b.add(fmt.Sprintf("sendKeys(%q)", v), func(ctx context.Context, s *state) error {
		for _, r := range v {
			k := Rune(r)
			if err := s.keyDown(ctx, k); err != nil {
				return err
			}
			if err := s.keyUp(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Focus focuses t.
func (b *Builder) Focus(t Target) *Builder {
	return b.add("focus("+targetName(t)+")", func(ctx context.Context, s *state) error {
		if t == nil {
			return ErrNoTarget
		}
		n, err := t.Node(ctx)
		if err != nil {
			return err
		}
		return s.d.focus(ctx, n)
	})
}

// Pause waits for d.
func (b *Builder) Pause(d time.Duration) *Builder {
	return b.add("pause("+d.String()+")", func(ctx context.Context, _ *state) error {
		return sleep(ctx, d)
	})
}

// Build returns a Sequence of the steps queued so far. The builder can keep
// being used afterwards without changing the returned sequence.
func (b *Builder) Build() *Sequence {
	steps := make([]step, len(b.steps))
	copy(steps, b.steps)
	return &Sequence{steps: steps, o: b.o}
}

// Perform builds the sequence and runs it on the tab in ctx.
func (b *Builder) Perform(ctx context.Context) error {
	return chromedp.Run(ctx, b.Build())
}
