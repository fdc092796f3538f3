package seqkit

import (
	"context"
	"fmt"
)

// Error returns a Sequence whose cursors fault with err on Next.
// This can be used when an external resource encounters an unexpected non recoverable error.
func Error[T any](err error) Sequence[T] {
	return SequenceFunc[T](func() Cursor[T] { return &ErrorCursor[T]{Err: err} })
}

// Errorf behaves exactly like fmt.Errorf but returns the error wrapped as a Sequence.
func Errorf[T any](format string, a ...any) Sequence[T] {
	return Error[T](fmt.Errorf(format, a...))
}

type ErrorCursor[T any] struct {
	Err error

	closed bool
}

func (c *ErrorCursor[T]) Close() error {
	c.closed = true
	return nil
}

func (c *ErrorCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return false, c.Err
}

func (c *ErrorCursor[T]) Value() T {
	var v T
	return v
}
