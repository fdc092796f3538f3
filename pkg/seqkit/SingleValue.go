package seqkit

import "context"

// SingleValue creates a Sequence that has exactly one element.
func SingleValue[T any](v T) Sequence[T] {
	return SequenceFunc[T](func() Cursor[T] { return &SingleValueCursor[T]{V: v} })
}

type SingleValueCursor[T any] struct {
	V T

	index  int
	closed bool
}

func (c *SingleValueCursor[T]) Close() error {
	c.closed = true
	return nil
}

func (c *SingleValueCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.index == 0 {
		c.index++
		return true, nil
	}
	return false, nil
}

func (c *SingleValueCursor[T]) Value() T {
	return c.V
}
