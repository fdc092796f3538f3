package seqkit

import "context"

// Reduce folds the sequence into a single value, starting from initial.
// The reducer may either be infallible or return an error, which stops the reduction.
func Reduce[
	T, R any,
	BLK func(R, T) R |
		func(R, T) (R, error),
](ctx context.Context, src Sequence[T], initial R, blk BLK) (R, error) {
	var do func(R, T) (R, error)
	switch blk := any(blk).(type) {
	case func(R, T) R:
		if blk != nil {
			do = func(result R, v T) (R, error) {
				return blk(result, v), nil
			}
		}
	case func(R, T) (R, error):
		do = blk
	}
	if IsNil(src) {
		return initial, errNilArg("source")
	}
	if do == nil {
		return initial, errNilArg("reducer")
	}
	var result = initial
	err := each(ctx, src, func(v T) error {
		var err error
		result, err = do(result, v)
		return err
	})
	return result, err
}
