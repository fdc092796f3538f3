package seqkit

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
)

type scanResult[T any] struct {
	value   T
	matches int
	seen    bool
}

// notFound tells apart the empty source from the one where nothing matched.
func (r scanResult[T]) notFound() error {
	if !r.seen {
		return ErrEmptySequence
	}
	return ErrNoMatch
}

// scan iterates src and counts the elements that satisfy the predicate.
// A nil predicate matches every element.
// Scanning stops when stopAt matches are found, or never when stopAt is zero.
func scan[T any](ctx context.Context, src Sequence[T], predicate func(T) bool, stopAt int, keepLast bool) (r scanResult[T], rErr error) {
	c := src.Iterate()
	defer errorkit.Finish(&rErr, c.Close)
	for {
		ok, err := c.Next(ctx)
		if err != nil {
			return r, err
		}
		if !ok {
			return r, nil
		}
		r.seen = true
		v := c.Value()
		if predicate != nil && !predicate(v) {
			continue
		}
		r.matches++
		if r.matches == 1 || keepLast {
			r.value = v
		}
		if 0 < stopAt && stopAt <= r.matches {
			return r, nil
		}
	}
}

// each calls fn with every element of src until fn returns an error.
func each[T any](ctx context.Context, src Sequence[T], fn func(T) error) (rErr error) {
	c := src.Iterate()
	defer errorkit.Finish(&rErr, c.Close)
	for {
		ok, err := c.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(c.Value()); err != nil {
			return err
		}
	}
}
