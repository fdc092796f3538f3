package seqkit

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
)

// SequenceEqual reports whether the two sequences have the same length
// and their elements are pairwise equal in order.
func SequenceEqual[T comparable](ctx context.Context, a, b Sequence[T]) (bool, error) {
	return SequenceEqualWith(ctx, a, b, DefaultComparer[T]())
}

// SequenceEqualWith is SequenceEqual with a custom Comparer.
// The two cursors are advanced in turns, a first, then b.
func SequenceEqualWith[T any](ctx context.Context, a, b Sequence[T], cmp Comparer[T]) (_ bool, rErr error) {
	if IsNil(a) {
		return false, errNilArg("first sequence")
	}
	if IsNil(b) {
		return false, errNilArg("second sequence")
	}
	if !isValidComparer(cmp) {
		return false, errNilArg("comparer")
	}
	ca := a.Iterate()
	defer errorkit.Finish(&rErr, ca.Close)
	cb := b.Iterate()
	defer errorkit.Finish(&rErr, cb.Close)
	for {
		okA, err := ca.Next(ctx)
		if err != nil {
			return false, err
		}
		okB, err := cb.Next(ctx)
		if err != nil {
			return false, err
		}
		if okA != okB {
			return false, nil
		}
		if !okA {
			return true, nil
		}
		if !cmp.Equal(ca.Value(), cb.Value()) {
			return false, nil
		}
	}
}
