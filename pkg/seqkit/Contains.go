package seqkit

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Contains reports whether v is present in the sequence, using the == operator.
func Contains[T comparable](ctx context.Context, src Sequence[T], v T) (bool, error) {
	return ContainsWith(ctx, src, v, DefaultComparer[T]())
}

// ContainsWith reports whether v is present in the sequence according to the comparer.
// Only the comparer's Equal is used.
func ContainsWith[T any](ctx context.Context, src Sequence[T], v T, cmp Comparer[T]) (_ bool, rErr error) {
	if IsNil(src) {
		return false, errNilArg("source")
	}
	if !isValidComparer(cmp) {
		return false, errNilArg("comparer")
	}
	c := src.Iterate()
	defer errorkit.Finish(&rErr, c.Close)
	for {
		ok, err := c.Next(ctx)
		if err != nil || !ok {
			return false, err
		}
		if cmp.Equal(v, c.Value()) {
			return true, nil
		}
	}
}
