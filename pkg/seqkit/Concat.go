package seqkit

import (
	"context"
	"slices"
)

// Concat yields all the elements of a, then all the elements of b.
// The cursor of b is only acquired once a is exhausted.
func Concat[T any](a, b Sequence[T]) Sequence[T] {
	if IsNil(a) {
		return Error[T](errNilArg("first sequence"))
	}
	if IsNil(b) {
		return Error[T](errNilArg("second sequence"))
	}
	return ConcatAll(a, b)
}

// ConcatAll chains the given sequences one after the other.
func ConcatAll[T any](seqs ...Sequence[T]) Sequence[T] {
	for _, s := range seqs {
		if IsNil(s) {
			return Error[T](errNilArg("sequence"))
		}
	}
	if len(seqs) == 0 {
		return Empty[T]()
	}
	seqs = slices.Clone(seqs)
	return SequenceFunc[T](func() Cursor[T] {
		return &concatCursor[T]{seqs: seqs}
	})
}

type concatCursor[T any] struct {
	seqs    []Sequence[T]
	index   int
	current Cursor[T]
	closed  bool
}

func (c *concatCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if c.current == nil {
			if len(c.seqs) <= c.index {
				return false, nil
			}
			c.current = c.seqs[c.index].Iterate()
			c.index++
		}
		ok, err := c.current.Next(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		err = c.current.Close()
		c.current = nil
		if err != nil {
			return false, err
		}
	}
}

func (c *concatCursor[T]) Value() T {
	if c.current == nil {
		var zero T
		return zero
	}
	return c.current.Value()
}

func (c *concatCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.current == nil {
		return nil
	}
	err := c.current.Close()
	c.current = nil
	return err
}
