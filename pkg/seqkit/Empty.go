package seqkit

import "context"

// Empty sequence is used to represent nil result with Null object pattern
func Empty[T any]() Sequence[T] {
	return SequenceFunc[T](func() Cursor[T] { return &EmptyCursor[T]{} })
}

// EmptyCursor can help achieve Null Object Pattern when no value is logically expected and a cursor should be returned
type EmptyCursor[T any] struct{}

func (c *EmptyCursor[T]) Close() error {
	return nil
}

func (c *EmptyCursor[T]) Next(ctx context.Context) (bool, error) {
	return false, ctx.Err()
}

func (c *EmptyCursor[T]) Value() T {
	var v T
	return v
}
