package seqkit

import (
	"context"
	"errors"
)

// ElementAt returns the element at the zero based index.
// It returns ErrIndexOutOfRange when the sequence is shorter.
func ElementAt[T any](ctx context.Context, src Sequence[T], index int) (T, error) {
	return elementAt(ctx, src, index, false)
}

// ElementAtOrDefault returns the zero value instead of ErrIndexOutOfRange.
func ElementAtOrDefault[T any](ctx context.Context, src Sequence[T], index int) (T, error) {
	return elementAt(ctx, src, index, true)
}

func elementAt[T any](ctx context.Context, src Sequence[T], index int, orDefault bool) (T, error) {
	var zero T
	if IsNil(src) {
		return zero, errNilArg("source")
	}
	if index < 0 {
		return zero, errNegativeCount("index", index)
	}
	v, err := First(ctx, Skip(src, index))
	if errors.Is(err, ErrEmptySequence) {
		if orDefault {
			return zero, nil
		}
		return zero, ErrIndexOutOfRange.F("index %d", index)
	}
	return v, err
}
