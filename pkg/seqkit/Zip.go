package seqkit

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Zip combines the corresponding elements of a and b.
// The result is as long as the shorter of the two.
// Both cursors are acquired together, advanced a first then b, and closed together.
func Zip[A, B, R any](a Sequence[A], b Sequence[B], combine func(A, B) R) Sequence[R] {
	if combine == nil {
		return Error[R](errNilArg("combine"))
	}
	return ZipE(a, b, func(_ context.Context, va A, vb B) (R, error) {
		return combine(va, vb), nil
	})
}

// ZipE is the asynchronous variant of Zip.
// The combined value is awaited before Next reports success, so an error from combine is the fault of Next.
func ZipE[A, B, R any](a Sequence[A], b Sequence[B], combine func(context.Context, A, B) (R, error)) Sequence[R] {
	if IsNil(a) {
		return Error[R](errNilArg("first sequence"))
	}
	if IsNil(b) {
		return Error[R](errNilArg("second sequence"))
	}
	if combine == nil {
		return Error[R](errNilArg("combine"))
	}
	return SequenceFunc[R](func() Cursor[R] {
		return &zipCursor[A, B, R]{a: a.Iterate(), b: b.Iterate(), combine: combine}
	})
}

type zipCursor[A, B, R any] struct {
	a       Cursor[A]
	b       Cursor[B]
	combine func(context.Context, A, B) (R, error)

	value  R
	done   bool
	closed bool
}

func (c *zipCursor[A, B, R]) Next(ctx context.Context) (bool, error) {
	if c.closed || c.done {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	okA, err := c.a.Next(ctx)
	if err != nil {
		return false, err
	}
	if !okA {
		c.done = true
		return false, nil
	}
	okB, err := c.b.Next(ctx)
	if err != nil {
		return false, err
	}
	if !okB {
		c.done = true
		return false, nil
	}
	v, err := c.combine(ctx, c.a.Value(), c.b.Value())
	if err != nil {
		return false, err
	}
	c.value = v
	return true, nil
}

func (c *zipCursor[A, B, R]) Value() R { return c.value }

func (c *zipCursor[A, B, R]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return errorkit.Merge(c.a.Close(), c.b.Close())
}
