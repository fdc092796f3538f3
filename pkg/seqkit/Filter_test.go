package seqkit_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/asyncseq/pkg/seqkit"
)

func ExampleFilter() {
	seq := seqkit.Filter(seqkit.FromSlice(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), func(n int) bool { return n > 2 })

	c := seq.Iterate()
	defer c.Close()
	for {
		ok, err := c.Next(context.Background())
		if err != nil || !ok {
			break
		}
		fmt.Println(c.Value())
	}
	// Output:
	// 3
	// 4
	// 5
	// 6
	// 7
	// 8
	// 9
}

func TestFilter(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		source    = testcase.Let(s, func(t *testcase.T) seqkit.Sequence[int] { return digits() })
		predicate = testcase.Let[func(int) bool](s, nil)
		subject   = func(t *testcase.T) seqkit.Sequence[int] {
			return seqkit.Filter(source.Get(t), predicate.Get(t))
		}
	)

	s.When("the predicate allows everything", func(s *testcase.Spec) {
		predicate.Let(s, func(t *testcase.T) func(int) bool {
			return func(int) bool { return true }
		})

		s.Then("every element is yielded in source order", func(t *testcase.T) {
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, collect[int](t, subject(t)))
		})
	})

	s.When("the predicate disallows part of the sequence", func(s *testcase.Spec) {
		predicate.Let(s, func(t *testcase.T) func(int) bool {
			return func(n int) bool { return 5 < n }
		})

		s.Then("only the matching elements are yielded, in order", func(t *testcase.T) {
			assert.Equal(t, []int{6, 7, 8, 9}, collect[int](t, subject(t)))
		})
	})

	s.When("the predicate is nil", func(s *testcase.Spec) {
		predicate.Let(s, func(t *testcase.T) func(int) bool { return nil })

		s.Then("the first Next faults with invalid argument", func(t *testcase.T) {
			_, err := seqkit.ToSlice(bg, subject(t))
			assert.ErrorIs(t, seqkit.ErrInvalidArgument, err)
		})
	})

	s.When("the source faults", func(s *testcase.Spec) {
		expErr := testcase.Let(s, func(t *testcase.T) error {
			return t.Random.Error()
		})
		source.Let(s, func(t *testcase.T) seqkit.Sequence[int] {
			return failing(expErr.Get(t), 1, 2, 3)
		})
		predicate.Let(s, func(t *testcase.T) func(int) bool {
			return func(int) bool { return true }
		})

		s.Then("the fault is propagated unchanged", func(t *testcase.T) {
			_, err := seqkit.ToSlice(bg, subject(t))
			assert.Equal(t, expErr.Get(t), err)
		})
	})
}

func TestFilter_predicateInvokedOncePerElementInOrder(t *testing.T) {
	var seen []int
	seq := seqkit.Filter(digits(), func(n int) bool {
		seen = append(seen, n)
		return n%3 == 0
	})
	require.Empty(t, seen, "constructing a Filter must not consume the source")

	vs := collect(t, seq)
	require.Equal(t, []int{0, 3, 6, 9}, vs)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)
}

func TestFilterE(t *testing.T) {
	t.Run("context is passed to the predicate", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(bg, key{}, "v")
		seq := seqkit.FilterE(digits(), func(ctx context.Context, n int) (bool, error) {
			require.Equal(t, "v", ctx.Value(key{}))
			return n < 2, nil
		})
		vs, err := seqkit.ToSlice(ctx, seq)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1}, vs)
	})

	t.Run("predicate error faults Next and the source is closed", func(t *testing.T) {
		expErr := errors.New("boom")
		src := spy(1, 2, 3)
		seq := seqkit.FilterE[int](src, func(context.Context, int) (bool, error) { return false, expErr })
		_, err := seqkit.ToSlice(bg, seq)
		require.ErrorIs(t, err, expErr)
		requireClosedOnce(t, src)
	})
}
