package seqkit

import (
	"context"
	"errors"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ForEach calls fn with every element of the sequence, and closes the cursor at the end.
// Returning Break from fn stops the iteration without an error.
func ForEach[T any](ctx context.Context, src Sequence[T], fn func(T) error) (rErr error) {
	if IsNil(src) {
		return errNilArg("source")
	}
	if fn == nil {
		return errNilArg("function")
	}
	c := src.Iterate()
	defer errorkit.Finish(&rErr, c.Close)
	for {
		ok, err := c.Next(ctx)
		if err != nil || !ok {
			return err
		}
		if err := fn(c.Value()); err != nil {
			if errors.Is(err, Break) {
				return nil
			}
			return err
		}
	}
}
