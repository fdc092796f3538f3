package seqkit

import "context"

// Single returns the only element of the sequence.
// It returns ErrEmptySequence for an empty sequence,
// and ErrMultipleMatches as soon as a second element is found.
func Single[T any](ctx context.Context, src Sequence[T]) (T, error) {
	return single(ctx, src, nil, false)
}

// SingleFunc returns the only element which satisfies the predicate.
func SingleFunc[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (T, error) {
	if predicate == nil {
		var zero T
		return zero, errNilArg("predicate")
	}
	return single(ctx, src, predicate, false)
}

// SingleOrDefault returns the zero value for an empty sequence,
// but it still returns ErrMultipleMatches when there is more than one element.
func SingleOrDefault[T any](ctx context.Context, src Sequence[T]) (T, error) {
	return single(ctx, src, nil, true)
}

// SingleOrDefaultFunc is like SingleFunc, but returns the zero value when nothing matched.
func SingleOrDefaultFunc[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (T, error) {
	if predicate == nil {
		var zero T
		return zero, errNilArg("predicate")
	}
	return single(ctx, src, predicate, true)
}

func single[T any](ctx context.Context, src Sequence[T], predicate func(T) bool, orDefault bool) (T, error) {
	var zero T
	if IsNil(src) {
		return zero, errNilArg("source")
	}
	r, err := scan(ctx, src, predicate, 2, false)
	if err != nil {
		return zero, err
	}
	switch {
	case 1 < r.matches:
		return zero, ErrMultipleMatches
	case r.matches == 0 && orDefault:
		return zero, nil
	case r.matches == 0:
		return zero, r.notFound()
	default:
		return r.value, nil
	}
}
