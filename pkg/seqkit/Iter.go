package seqkit

import (
	"context"
	"iter"
)

// FromIter wraps a synchronous iter.Seq into a Sequence.
// The returned Sequence is as re-iterable as the wrapped iterator.
func FromIter[T any](i iter.Seq[T]) Sequence[T] {
	if i == nil {
		return Error[T](errNilArg("iterator"))
	}
	return FromIterE(func(yield func(T, error) bool) {
		for v := range i {
			if !yield(v, nil) {
				return
			}
		}
	})
}

// FromIterE wraps a failable synchronous iterator into a Sequence.
// A non-nil error yielded by the iterator becomes the fault of Next.
func FromIterE[T any](i iter.Seq2[T, error]) Sequence[T] {
	if i == nil {
		return Error[T](errNilArg("iterator"))
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &iterCursor[T]{seq: i}
	})
}

type iterCursor[T any] struct {
	seq  iter.Seq2[T, error]
	next func() (T, error, bool)
	stop func()

	value  T
	closed bool
}

func (c *iterCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.next == nil {
		c.next, c.stop = iter.Pull2(c.seq)
	}
	v, err, ok := c.next()
	if !ok {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	c.value = v
	return true, nil
}

func (c *iterCursor[T]) Value() T { return c.value }

func (c *iterCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.stop != nil {
		c.stop()
	}
	return nil
}

// ToIter adapts a Sequence to a synchronous iter.Seq2, blocking the caller on each element.
// Faults are yielded as the error half of the pair, after which the iteration stops.
// The cursor is closed when the range loop finishes, including when it breaks early.
func ToIter[T any](ctx context.Context, src Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		if IsNil(src) {
			yield(zero, errNilArg("source"))
			return
		}
		c := src.Iterate()
		defer c.Close()
		for {
			ok, err := c.Next(ctx)
			if err != nil {
				yield(zero, err)
				return
			}
			if !ok {
				break
			}
			if !yield(c.Value(), nil) {
				return
			}
		}
		if err := c.Close(); err != nil {
			yield(zero, err)
		}
	}
}
