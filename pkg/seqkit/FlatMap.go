package seqkit

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
)

// FlatMap projects every element into a Sequence and flattens the results in order:
// all elements of the first projection, then all of the second, and so on.
// A nil projection counts as an empty sequence.
func FlatMap[To, From any](src Sequence[From], project func(From) Sequence[To]) Sequence[To] {
	if project == nil {
		return Error[To](errNilArg("projection"))
	}
	return FlatMapE(src, func(_ context.Context, v From) (Sequence[To], error) {
		return project(v), nil
	})
}

// FlatMapE is the asynchronous variant of FlatMap.
// An error from project becomes the fault of Next.
func FlatMapE[To, From any](src Sequence[From], project func(context.Context, From) (Sequence[To], error)) Sequence[To] {
	if IsNil(src) {
		return Error[To](errNilArg("source"))
	}
	if project == nil {
		return Error[To](errNilArg("projection"))
	}
	return SequenceFunc[To](func() Cursor[To] {
		return &flatMapCursor[To, From]{outer: src.Iterate(), project: project}
	})
}

type flatMapCursor[To, From any] struct {
	outer   Cursor[From]
	inner   Cursor[To]
	project func(context.Context, From) (Sequence[To], error)
	closed  bool
}

func (c *flatMapCursor[To, From]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if c.inner != nil {
			ok, err := c.inner.Next(ctx)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
			err = c.inner.Close()
			c.inner = nil
			if err != nil {
				return false, err
			}
		}
		ok, err := c.outer.Next(ctx)
		if err != nil || !ok {
			return false, err
		}
		seq, err := c.project(ctx, c.outer.Value())
		if err != nil {
			return false, err
		}
		if IsNil(seq) {
			continue
		}
		c.inner = seq.Iterate()
	}
}

func (c *flatMapCursor[To, From]) Value() To {
	if c.inner == nil {
		var zero To
		return zero
	}
	return c.inner.Value()
}

func (c *flatMapCursor[To, From]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	var errs []error
	if c.inner != nil {
		errs = append(errs, c.inner.Close())
		c.inner = nil
	}
	errs = append(errs, c.outer.Close())
	return errorkit.Merge(errs...)
}
