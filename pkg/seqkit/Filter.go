package seqkit

import "context"

// Filter returns a Sequence that yields only the elements which satisfy the predicate,
// in the same order as the source.
// The predicate is invoked exactly once for every source element.
func Filter[T any](src Sequence[T], predicate func(T) bool) Sequence[T] {
	if predicate == nil {
		return Error[T](errNilArg("predicate"))
	}
	return FilterE(src, func(_ context.Context, v T) (bool, error) {
		return predicate(v), nil
	})
}

// FilterE is the failable and context aware variant of Filter.
// An error from the predicate becomes the fault of Next.
func FilterE[T any](src Sequence[T], predicate func(context.Context, T) (bool, error)) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if predicate == nil {
		return Error[T](errNilArg("predicate"))
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &FilterCursor[T]{Cursor: src.Iterate(), Match: predicate}
	})
}

type FilterCursor[T any] struct {
	Cursor Cursor[T]
	Match  func(context.Context, T) (bool, error)

	value  T
	closed bool
}

func (c *FilterCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.Cursor.Close()
}

func (c *FilterCursor[T]) Value() T {
	return c.value
}

func (c *FilterCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		ok, err := c.Cursor.Next(ctx)
		if err != nil || !ok {
			return false, err
		}
		v := c.Cursor.Value()
		match, err := c.Match(ctx, v)
		if err != nil {
			return false, err
		}
		if match {
			c.value = v
			return true, nil
		}
	}
}
