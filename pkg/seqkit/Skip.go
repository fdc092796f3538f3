package seqkit

import "context"

// Skip discards the first n elements of the source, then yields the rest.
// Skip with zero yields the source unchanged, and a negative n is an ErrInvalidArgument.
func Skip[T any](src Sequence[T], n int) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if n < 0 {
		return Error[T](errNegativeCount("skip count", n))
	}
	if n == 0 {
		return src
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &skipCursor[T]{cursor: src.Iterate(), remaining: n}
	})
}

type skipCursor[T any] struct {
	cursor    Cursor[T]
	remaining int
	closed    bool
}

func (c *skipCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for ; 0 < c.remaining; c.remaining-- {
		ok, err := c.cursor.Next(ctx)
		if err != nil || !ok {
			return false, err
		}
	}
	return c.cursor.Next(ctx)
}

func (c *skipCursor[T]) Value() T { return c.cursor.Value() }

func (c *skipCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}

// SkipWhile discards elements as long as the predicate holds, then yields the rest,
// without evaluating the predicate again.
func SkipWhile[T any](src Sequence[T], predicate func(T) bool) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if predicate == nil {
		return Error[T](errNilArg("predicate"))
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &skipWhileCursor[T]{cursor: src.Iterate(), predicate: predicate}
	})
}

type skipWhileCursor[T any] struct {
	cursor    Cursor[T]
	predicate func(T) bool
	yielding  bool
	closed    bool
}

func (c *skipWhileCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.yielding {
		return c.cursor.Next(ctx)
	}
	for {
		ok, err := c.cursor.Next(ctx)
		if err != nil || !ok {
			return false, err
		}
		if !c.predicate(c.cursor.Value()) {
			c.yielding = true
			return true, nil
		}
	}
}

func (c *skipWhileCursor[T]) Value() T { return c.cursor.Value() }

func (c *skipWhileCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}
