package seqkit

import "context"

// Batch groups the elements of the source into slices of at most size elements.
// Only the last batch may be smaller than size.
// If the source faults mid-batch, the partial batch is dropped and the fault is returned.
func Batch[T any](src Sequence[T], size int) Sequence[[]T] {
	if IsNil(src) {
		return Error[[]T](errNilArg("source"))
	}
	if size < 1 {
		return Error[[]T](ErrInvalidArgument.F("batch size must be positive: %d", size))
	}
	return SequenceFunc[[]T](func() Cursor[[]T] {
		return &batchCursor[T]{cursor: src.Iterate(), size: size}
	})
}

type batchCursor[T any] struct {
	cursor Cursor[T]
	size   int
	value  []T
	done   bool
	closed bool
}

func (c *batchCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed || c.done {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var vs = make([]T, 0, min(c.size, 64))
	for len(vs) < c.size {
		ok, err := c.cursor.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			c.done = true
			break
		}
		vs = append(vs, c.cursor.Value())
	}
	if len(vs) == 0 {
		return false, nil
	}
	c.value = vs
	return true, nil
}

func (c *batchCursor[T]) Value() []T { return c.value }

func (c *batchCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}
