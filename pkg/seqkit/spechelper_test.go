package seqkit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/asyncseq/pkg/seqkit"
)

var bg = context.Background()

// spy returns a MockSequence over vs, which records every cursor it hands out.
func spy[T any](vs ...T) *seqkit.MockSequence[T] {
	return &seqkit.MockSequence[T]{Sequence: seqkit.FromSlice(vs...)}
}

// failing returns a MockSequence whose cursors fault with err after yielding vs.
func failing[T any](err error, vs ...T) *seqkit.MockSequence[T] {
	return &seqkit.MockSequence[T]{
		Sequence: seqkit.FromSlice(vs...),
		Configure: func(m *seqkit.Mock[T]) {
			next := m.StubNext
			m.StubNext = func(ctx context.Context) (bool, error) {
				ok, nerr := next(ctx)
				if nerr != nil {
					return false, nerr
				}
				if !ok {
					return false, err
				}
				return true, nil
			}
		},
	}
}

func collect[T any](tb testing.TB, src seqkit.Sequence[T]) []T {
	tb.Helper()
	vs, err := seqkit.ToSlice(bg, src)
	require.NoError(tb, err)
	return vs
}

func nextCalls[T any](ms *seqkit.MockSequence[T]) int {
	var total int
	for _, m := range ms.Mocks {
		total += m.NextCalls
	}
	return total
}

func requireClosedOnce[T any](tb testing.TB, ms *seqkit.MockSequence[T]) {
	tb.Helper()
	require.NotEmpty(tb, ms.Mocks, "no cursor was acquired")
	for _, m := range ms.Mocks {
		require.Equal(tb, 1, m.CloseCalls, "expected the cursor to be closed exactly once")
	}
}

func digits() seqkit.Sequence[int] {
	return seqkit.Range(0, 10)
}
