package seqkit

import "context"

// Count will iterate over and count the total number of elements.
//
// Good when all you want is count all the elements in a sequence but don't want to do anything else.
func Count[T any](ctx context.Context, src Sequence[T]) (int, error) {
	if IsNil(src) {
		return 0, errNilArg("source")
	}
	var total int
	err := each(ctx, src, func(T) error {
		total++
		return nil
	})
	return total, err
}

// CountFunc counts the elements that satisfy the predicate.
func CountFunc[T any](ctx context.Context, src Sequence[T], predicate func(T) bool) (int, error) {
	if IsNil(src) {
		return 0, errNilArg("source")
	}
	if predicate == nil {
		return 0, errNilArg("predicate")
	}
	return Count(ctx, Filter(src, predicate))
}
