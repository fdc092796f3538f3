package seqkit

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
)

// All reports whether every element satisfies the predicate.
// It stops at the first element that does not.
// An empty sequence satisfies All.
func All[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (_ bool, rErr error) {
	if IsNil(src) {
		return false, errNilArg("source")
	}
	if predicate == nil {
		return false, errNilArg("predicate")
	}
	c := src.Iterate()
	defer errorkit.Finish(&rErr, c.Close)
	for {
		ok, err := c.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !predicate(c.Value()) {
			return false, nil
		}
	}
}

// Any reports whether the sequence has at least one element.
// It advances the cursor at most once.
func Any[T any](ctx context.Context, src Sequence[T]) (_ bool, rErr error) {
	if IsNil(src) {
		return false, errNilArg("source")
	}
	c := src.Iterate()
	defer errorkit.Finish(&rErr, c.Close)
	return c.Next(ctx)
}

// AnyFunc reports whether any element satisfies the predicate.
func AnyFunc[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (bool, error) {
	if IsNil(src) {
		return false, errNilArg("source")
	}
	if predicate == nil {
		return false, errNilArg("predicate")
	}
	return Any(ctx, Filter(src, predicate))
}
