package seqkit

import "context"

// Apply runs the action on every element as it passes through, before the element is exposed by Value.
func Apply[T any](src Sequence[T], action func(T)) Sequence[T] {
	if action == nil {
		return Error[T](errNilArg("action"))
	}
	return ApplyE(src, func(_ context.Context, v T) error {
		action(v)
		return nil
	})
}

// ApplyE is the failable and context aware variant of Apply.
// An error from the action becomes the fault of Next.
func ApplyE[T any](src Sequence[T], action func(context.Context, T) error) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if action == nil {
		return Error[T](errNilArg("action"))
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &applyCursor[T]{cursor: src.Iterate(), action: action}
	})
}

type applyCursor[T any] struct {
	cursor Cursor[T]
	action func(context.Context, T) error
	value  T
	closed bool
}

func (c *applyCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := c.cursor.Next(ctx)
	if err != nil || !ok {
		return false, err
	}
	v := c.cursor.Value()
	if err := c.action(ctx, v); err != nil {
		return false, err
	}
	c.value = v
	return true, nil
}

func (c *applyCursor[T]) Value() T { return c.value }

func (c *applyCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}
