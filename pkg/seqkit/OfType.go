package seqkit

import "context"

// OfType yields the elements whose dynamic type is R, already converted to R.
//
//	var names seqkit.Sequence[string] = seqkit.OfType[string](values)
func OfType[R, T any](src Sequence[T]) Sequence[R] {
	if IsNil(src) {
		return Error[R](errNilArg("source"))
	}
	return SequenceFunc[R](func() Cursor[R] {
		return &ofTypeCursor[R, T]{cursor: src.Iterate()}
	})
}

type ofTypeCursor[R, T any] struct {
	cursor Cursor[T]
	value  R
	closed bool
}

func (c *ofTypeCursor[R, T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		ok, err := c.cursor.Next(ctx)
		if err != nil || !ok {
			return false, err
		}
		if v, ok := any(c.cursor.Value()).(R); ok {
			c.value = v
			return true, nil
		}
	}
}

func (c *ofTypeCursor[R, T]) Value() R { return c.value }

func (c *ofTypeCursor[R, T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}
