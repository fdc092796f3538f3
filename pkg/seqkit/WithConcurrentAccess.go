package seqkit

import (
	"context"
	"sync"
)

// WithConcurrentAccess allows you to convert any Sequence into one whose cursors are safe to use from concurrent access.
// The caveat with this, that Next and Value are still two separate calls,
// so goroutines sharing a cursor should use NextValue to receive the element they advanced to.
func WithConcurrentAccess[T any](src Sequence[T]) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	return SequenceFunc[T](func() Cursor[T] {
		return &ConcurrentAccessCursor[T]{Cursor: src.Iterate()}
	})
}

type ConcurrentAccessCursor[T any] struct {
	Cursor Cursor[T]
	mutex  sync.Mutex
}

func (c *ConcurrentAccessCursor[T]) Next(ctx context.Context) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.Cursor.Next(ctx)
}

func (c *ConcurrentAccessCursor[T]) Value() T {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.Cursor.Value()
}

// NextValue advances the cursor and returns the element it moved to, as one atomic step.
func (c *ConcurrentAccessCursor[T]) NextValue(ctx context.Context) (T, bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	var zero T
	ok, err := c.Cursor.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	return c.Cursor.Value(), true, nil
}

func (c *ConcurrentAccessCursor[T]) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.Cursor.Close()
}
