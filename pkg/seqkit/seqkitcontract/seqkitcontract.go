package seqkitcontract

import (
	"context"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/asyncseq/pkg/seqkit"
)

// Sequence is the contract every seqkit.Sequence implementation must fulfil.
// The sequence made by mk must be finite.
func Sequence[T any](mk func(testing.TB) seqkit.Sequence[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) seqkit.Sequence[T] {
		return mk(t)
	})

	drain := func(t *testcase.T, c seqkit.Cursor[T]) int {
		var n int
		for {
			ok, err := c.Next(context.Background())
			assert.NoError(t, err)
			if !ok {
				return n
			}
			n++
		}
	}

	s.Test("Iterate does not fail and the cursor can be drained", func(t *testcase.T) {
		c := subject.Get(t).Iterate()
		defer c.Close()
		drain(t, c)
		assert.NoError(t, c.Close())
	})

	s.Test("Close is safe to call before the first Next", func(t *testcase.T) {
		c := subject.Get(t).Iterate()
		assert.NoError(t, c.Close())
	})

	s.Test("Close is idempotent", func(t *testcase.T) {
		c := subject.Get(t).Iterate()
		assert.NoError(t, c.Close())
		assert.NoError(t, c.Close())
	})

	s.Test("after Close, Next reports exhaustion", func(t *testcase.T) {
		c := subject.Get(t).Iterate()
		assert.NoError(t, c.Close())
		ok, err := c.Next(context.Background())
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	s.Test("exhaustion is stable", func(t *testcase.T) {
		c := subject.Get(t).Iterate()
		defer c.Close()
		drain(t, c)
		ok, err := c.Next(context.Background())
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	s.Test("a cancelled context is reported as a fault and not as exhaustion", func(t *testcase.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := subject.Get(t).Iterate()
		defer c.Close()
		ok, err := c.Next(ctx)
		assert.False(t, ok)
		assert.ErrorIs(t, context.Canceled, err)
	})

	return s.AsSuite("Sequence")
}

// Reusable is the contract of a Sequence that can be iterated more than once,
// and yields the same number of elements on each iteration.
func Reusable[T any](mk func(testing.TB) seqkit.Sequence[T]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) seqkit.Sequence[T] {
		return mk(t)
	})

	s.Test("sequential iterations yield the same number of elements", func(t *testcase.T) {
		ctx := context.Background()
		n1, err := seqkit.Count(ctx, subject.Get(t))
		assert.NoError(t, err)
		n2, err := seqkit.Count(ctx, subject.Get(t))
		assert.NoError(t, err)
		assert.Equal(t, n1, n2)
	})

	s.Test("interleaved cursors do not share state", func(t *testcase.T) {
		ctx := context.Background()
		expected, err := seqkit.Count(ctx, subject.Get(t))
		assert.NoError(t, err)

		c1 := subject.Get(t).Iterate()
		defer c1.Close()
		c2 := subject.Get(t).Iterate()
		defer c2.Close()

		var n1, n2 int
		for {
			ok1, err := c1.Next(ctx)
			assert.NoError(t, err)
			ok2, err := c2.Next(ctx)
			assert.NoError(t, err)
			if ok1 {
				n1++
			}
			if ok2 {
				n2++
			}
			if !ok1 && !ok2 {
				break
			}
		}
		assert.Equal(t, expected, n1)
		assert.Equal(t, expected, n2)
	})

	return s.AsSuite("Reusable")
}
