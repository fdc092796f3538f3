package seqkit

import "context"

// First returns the first element of the sequence and closes the cursor.
// It returns ErrEmptySequence when the sequence has no elements.
func First[T any](ctx context.Context, src Sequence[T]) (T, error) {
	return first(ctx, src, nil, false)
}

// FirstFunc returns the first element which satisfies the predicate.
// It returns ErrEmptySequence for an empty sequence, and ErrNoMatch when no element matched.
func FirstFunc[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (T, error) {
	if predicate == nil {
		var zero T
		return zero, errNilArg("predicate")
	}
	return first(ctx, src, predicate, false)
}

// FirstOrDefault is like First, but returns the zero value instead of ErrEmptySequence.
func FirstOrDefault[T any](ctx context.Context, src Sequence[T]) (T, error) {
	return first(ctx, src, nil, true)
}

// FirstOrDefaultFunc is like FirstFunc, but returns the zero value when nothing matched.
func FirstOrDefaultFunc[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (T, error) {
	if predicate == nil {
		var zero T
		return zero, errNilArg("predicate")
	}
	return first(ctx, src, predicate, true)
}

func first[T any](ctx context.Context, src Sequence[T], predicate func(T) bool, orDefault bool) (T, error) {
	var zero T
	if IsNil(src) {
		return zero, errNilArg("source")
	}
	r, err := scan(ctx, src, predicate, 1, false)
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
