package seqkit

import "context"

// Take yields at most n elements from the source.
// It never pulls more elements from the source than it yields,
// so Take with zero never advances the source.
// A negative n is an ErrInvalidArgument.
func Take[T any](src Sequence[T], n int) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if n < 0 {
		return Error[T](errNegativeCount("take count", n))
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &takeCursor[T]{cursor: src.Iterate(), limit: n}
	})
}

type takeCursor[T any] struct {
	cursor Cursor[T]
	limit  int
	taken  int
	closed bool
}

func (c *takeCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.limit <= c.taken {
		return false, nil
	}
	ok, err := c.cursor.Next(ctx)
	if err != nil || !ok {
		return false, err
	}
	c.taken++
	return true, nil
}

func (c *takeCursor[T]) Value() T { return c.cursor.Value() }

func (c *takeCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}

// TakeWhile yields elements as long as the predicate holds.
// The first element that fails the predicate ends the sequence.
func TakeWhile[T any](src Sequence[T], predicate func(T) bool) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if predicate == nil {
		return Error[T](errNilArg("predicate"))
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &takeWhileCursor[T]{cursor: src.Iterate(), predicate: predicate}
	})
}

type takeWhileCursor[T any] struct {
	cursor    Cursor[T]
	predicate func(T) bool
	done      bool
	closed    bool
}

func (c *takeWhileCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed || c.done {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := c.cursor.Next(ctx)
	if err != nil || !ok {
		return false, err
	}
	if !c.predicate(c.cursor.Value()) {
		c.done = true
		return false, nil
	}
	return true, nil
}

func (c *takeWhileCursor[T]) Value() T { return c.cursor.Value() }

func (c *takeWhileCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}
