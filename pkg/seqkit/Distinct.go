package seqkit

import "context"

// Distinct yields each element of the source at most once, in first seen order.
// Memory grows with the number of distinct elements seen by a cursor.
func Distinct[T comparable](src Sequence[T]) Sequence[T] {
	return DistinctWith(src, DefaultComparer[T]())
}

// DistinctWith is Distinct with a custom Comparer.
func DistinctWith[T any](src Sequence[T], cmp Comparer[T]) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if !isValidComparer(cmp) {
		return Error[T](errNilArg("comparer"))
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &distinctCursor[T]{cursor: src.Iterate(), seen: newHashSet(cmp)}
	})
}

type distinctCursor[T any] struct {
	cursor Cursor[T]
	seen   *hashSet[T]
	value  T
	closed bool
}

func (c *distinctCursor[T]) Next(ctx context.Context) (bool, error) {
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
		v := c.cursor.Value()
		if c.seen.Has(v) {
			continue
		}
		c.seen.Add(v)
		c.value = v
		return true, nil
	}
}

func (c *distinctCursor[T]) Value() T { return c.value }

func (c *distinctCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.cursor.Close()
}
