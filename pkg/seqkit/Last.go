package seqkit

import "context"

// Last drains the sequence and returns its last element.
// It returns ErrEmptySequence when the sequence has no elements.
func Last[T any](ctx context.Context, src Sequence[T]) (T, error) {
	return last(ctx, src, nil, false)
}

// LastFunc drains the sequence and returns the last element which satisfies the predicate.
func LastFunc[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (T, error) {
	if predicate == nil {
		var zero T
		return zero, errNilArg("predicate")
	}
	return last(ctx, src, predicate, false)
}

// LastOrDefault is like Last, but returns the zero value instead of ErrEmptySequence.
func LastOrDefault[T any](ctx context.Context, src Sequence[T]) (T, error) {
	return last(ctx, src, nil, true)
}

// LastOrDefaultFunc is like LastFunc, but returns the zero value when nothing matched.
func LastOrDefaultFunc[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (T, error) {
	if predicate == nil {
		var zero T
		return zero, errNilArg("predicate")
	}
	return last(ctx, src, predicate, true)
}

func last[T any](ctx context.Context, src Sequence[T], predicate func(T) bool, orDefault bool) (T, error) {
	var zero T
	if IsNil(src) {
		return zero, errNilArg("source")
	}
	r, err := scan(ctx, src, predicate, 0, true)
	if err != nil {
		return zero, err
	}
	if r.matches == 0 {
		if orDefault {
			return zero, nil
		}
		return zero, r.notFound()
	}
	return r.value, nil
}
