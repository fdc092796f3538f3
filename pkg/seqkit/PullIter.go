package seqkit

import (
	"context"
	"sync/atomic"

	"go.llib.dev/frameless/pkg/iterkit"
)

// FromPullIter turns a frameless pull iterator into a single use Sequence.
// The pull iterator is closed together with the cursor.
func FromPullIter[T any](pi iterkit.PullIter[T]) Sequence[T] {
	if pi == nil {
		return Error[T](errNilArg("pull iterator"))
	}
	var done int32
	return SequenceFunc[T](func() Cursor[T] {
		if !atomic.CompareAndSwapInt32(&done, 0, 1) {
			return &ErrorCursor[T]{Err: ErrAlreadyIterated}
		}
		return &pullIterCursor[T]{pi: pi}
	})
}

type pullIterCursor[T any] struct {
	pi     iterkit.PullIter[T]
	closed bool
}

func (c *pullIterCursor[T]) Next(ctx context.Context) (bool, error) {
	if c.closed {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if c.pi.Next() {
		return true, nil
	}
	return false, c.pi.Err()
}

func (c *pullIterCursor[T]) Value() T { return c.pi.Value() }

func (c *pullIterCursor[T]) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.pi.Close()
}

// ToPullIter adapts a Sequence to the frameless pull iterator interface.
// Every Next call on the returned iterator advances the underlying cursor with ctx.
func ToPullIter[T any](ctx context.Context, src Sequence[T]) iterkit.PullIter[T] {
	if IsNil(src) {
		return &pullIter[T]{err: errNilArg("source")}
	}
	return &pullIter[T]{ctx: ctx, cursor: src.Iterate()}
}

type pullIter[T any] struct {
	ctx    context.Context
	cursor Cursor[T]
	err    error
}

func (i *pullIter[T]) Next() bool {
	if i.cursor == nil || i.err != nil {
		return false
	}
	ok, err := i.cursor.Next(i.ctx)
	if err != nil {
		i.err = err
		return false
	}
	return ok
}

func (i *pullIter[T]) Value() T {
	if i.cursor == nil {
		var zero T
		return zero
	}
	return i.cursor.Value()
}

func (i *pullIter[T]) Err() error { return i.err }

func (i *pullIter[T]) Close() error {
	if i.cursor == nil {
		return nil
	}
	return i.cursor.Close()
}
