package seqkit

import (
	"context"
	"slices"
)

// FromSlice returns a re-iterable Sequence over a copy of the given values.
func FromSlice[T any](vs ...T) Sequence[T] {
	vs = slices.Clone(vs)
	return SequenceFunc[T](func() Cursor[T] {
		return &SliceCursor[T]{Slice: vs}
	})
}

type SliceCursor[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (c *SliceCursor[T]) Close() error {
	c.closed = true
	return nil
}

func (c *SliceCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if len(c.Slice) <= c.index {
		return false, nil
	}
	c.value = c.Slice[c.index]
	c.index++
	return true, nil
}

func (c *SliceCursor[T]) Value() T {
	return c.value
}
