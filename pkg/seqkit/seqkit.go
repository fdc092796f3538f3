// Package seqkit provides asynchronous, cancellable sequences and the operators to compose them.
//
// # Summary
//
// A Sequence decouples the origin of the data from the consumer who uses it,
// just like an iterator does, but retrieving the next element is allowed to suspend,
// and every retrieval observes a context.Context for cancellation.
//
// Combinators such as Filter, Map, Take or Zip build new Sequence values without consuming anything.
// Work only happens when a Cursor is obtained with Iterate and advanced with Next.
// Terminal operations such as First, Count or ToSlice drive a Cursor to the point they need,
// and they always close it, regardless of how they exit.
//
// Every Iterate call allocates fresh cursor state,
// so a Sequence built from re-iterable sources can be iterated many times.
// Sequences over live streams (FromPullIter, Pipe) are single use.
//
// Invalid arguments passed to a combinator surface as ErrInvalidArgument on the first Next call of its cursors.
// Terminal operations return ErrInvalidArgument immediately, without touching the source.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package seqkit

import (
	"context"
	"io"
)

// Sequence is a lazy producer of T elements.
type Sequence[T any] interface {
	// Iterate returns a new Cursor positioned before the first element.
	// Iterate itself must not consume the underlying source.
	Iterate() Cursor[T]
}

// SequenceFunc enables anonymous functions to be a valid Sequence.
type SequenceFunc[T any] func() Cursor[T]

// Iterate proxies the call to the wrapped function.
func (fn SequenceFunc[T]) Iterate() Cursor[T] { return fn() }

// Cursor is the stateful position within a Sequence.
// A Cursor is not safe for concurrent use, see WithConcurrentAccess for that.
type Cursor[T any] interface {
	// Next moves the cursor to the next element.
	// It reports true when an element became available through Value,
	// false with a nil error when the sequence is exhausted,
	// and false with an error when the sequence faulted or ctx got cancelled.
	Next(ctx context.Context) (bool, error)
	// Value returns the element at the current position.
	// It is only defined after Next returned true.
	Value() T
	// Close releases the cursor and everything it wraps.
	// Close is idempotent, and after Close, Next reports exhaustion.
	io.Closer
}

// IsNil reports whether src is absent: a nil interface or a nil SequenceFunc.
func IsNil[T any](src Sequence[T]) bool {
	if src == nil {
		return true
	}
	if fn, ok := src.(SequenceFunc[T]); ok {
		return fn == nil
	}
	return false
}
