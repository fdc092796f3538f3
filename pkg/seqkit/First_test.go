package seqkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/asyncseq/pkg/seqkit"
)

func TestFirst(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		source = testcase.Let(s, func(t *testcase.T) *seqkit.MockSequence[int] {
			return spy(4, 2, 42)
		})
		act = func(t *testcase.T) (int, error) {
			return seqkit.First[int](bg, source.Get(t))
		}
	)

	s.Then("the first element is returned", func(t *testcase.T) {
		v, err := act(t)
		assert.NoError(t, err)
		assert.Equal(t, 4, v)
	})

	s.Then("only one element is pulled and the cursor is closed", func(t *testcase.T) {
		_, _ = act(t)
		assert.Equal(t, 1, nextCalls(source.Get(t)))
		requireClosedOnce(t, source.Get(t))
	})

	s.When("the sequence is empty", func(s *testcase.Spec) {
		source.Let(s, func(t *testcase.T) *seqkit.MockSequence[int] { return spy[int]() })

		s.Then("it fails with empty sequence", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, seqkit.ErrEmptySequence, err)
		})
	})

	s.When("the sequence faults", func(s *testcase.Spec) {
		expErr := testcase.Let(s, func(t *testcase.T) error { return t.Random.Error() })
		source.Let(s, func(t *testcase.T) *seqkit.MockSequence[int] { return failing[int](expErr.Get(t)) })

		s.Then("the fault is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.ErrorIs(t, expErr.Get(t), err)
			requireClosedOnce(t, source.Get(t))
		})
	})
}

func TestFirstFunc(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	v, err := seqkit.FirstFunc(bg, seqkit.FromSlice(1, 3, 4, 6), even)
	require.NoError(t, err)
	require.Equal(t, 4, v)

	_, err = seqkit.FirstFunc(bg, seqkit.FromSlice(1, 3), even)
	require.ErrorIs(t, err, seqkit.ErrNoMatch)
	require.False(t, errors.Is(err, seqkit.ErrEmptySequence))

	_, err = seqkit.FirstFunc(bg, seqkit.Empty[int](), even)
	require.ErrorIs(t, err, seqkit.ErrEmptySequence)

	_, err = seqkit.FirstFunc(bg, digits(), nil)
	require.ErrorIs(t, err, seqkit.ErrInvalidArgument)
}

func TestFirstOrDefault(t *testing.T) {
	v, err := seqkit.FirstOrDefault(bg, seqkit.Empty[string]())
	require.NoError(t, err)
	require.Equal(t, "", v)

	v, err = seqkit.FirstOrDefault(bg, seqkit.FromSlice("a", "b"))
	require.NoError(t, err)
	require.Equal(t, "a", v)

	n, err := seqkit.FirstOrDefaultFunc(bg, digits(), func(n int) bool { return 100 < n })
	require.NoError(t, err)
	require.Equal(t, 0, n)

	expErr := errors.New("boom")
	_, err = seqkit.FirstOrDefault[int](bg, failing[int](expErr))
	require.ErrorIs(t, err, expErr, "faults are not swallowed by the default")
}

func TestLast(t *testing.T) {
	v, err := seqkit.Last(bg, digits())
	require.NoError(t, err)
	require.Equal(t, 9, v)

	_, err = seqkit.Last(bg, seqkit.Empty[int]())
	require.ErrorIs(t, err, seqkit.ErrEmptySequence)

	v, err = seqkit.LastFunc(bg, digits(), func(n int) bool { return n < 5 })
	require.NoError(t, err)
	require.Equal(t, 4, v)

	_, err = seqkit.LastFunc(bg, digits(), func(n int) bool { return n < 0 })
	require.ErrorIs(t, err, seqkit.ErrNoMatch)

	v, err = seqkit.LastOrDefault(bg, seqkit.Empty[int]())
	require.NoError(t, err)
	require.Equal(t, 0, v)

	v, err = seqkit.LastOrDefaultFunc(bg, digits(), func(n int) bool { return 42 < n })
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestSingle(t *testing.T) {
	v, err := seqkit.Single(bg, seqkit.FromSlice(42))
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = seqkit.Single(bg, seqkit.FromSlice(0, 1))
	require.ErrorIs(t, err, seqkit.ErrMultipleMatches)

	_, err = seqkit.Single(bg, seqkit.Empty[int]())
	require.ErrorIs(t, err, seqkit.ErrEmptySequence)

	src := spy(1, 2, 3, 4, 5)
	_, err = seqkit.Single[int](bg, src)
	require.ErrorIs(t, err, seqkit.ErrMultipleMatches)
	require.Equal(t, 2, nextCalls(src), "the scan stops at the second element")
	requireClosedOnce(t, src)

	v, err = seqkit.SingleFunc(bg, digits(), func(n int) bool { return n == 7 })
	require.NoError(t, err)
	require.Equal(t, 7, v)

	_, err = seqkit.SingleFunc(bg, digits(), func(n int) bool { return n == 70 })
	require.ErrorIs(t, err, seqkit.ErrNoMatch)
}

func TestSingleOrDefault(t *testing.T) {
	v, err := seqkit.SingleOrDefault(bg, seqkit.Empty[int]())
	require.NoError(t, err)
	require.Equal(t, 0, v)

	_, err = seqkit.SingleOrDefault(bg, seqkit.FromSlice(0, 1))
	require.ErrorIs(t, err, seqkit.ErrMultipleMatches)

	v, err = seqkit.SingleOrDefaultFunc(bg, digits(), func(n int) bool { return n == 70 })
	require.NoError(t, err)
	require.Equal(t, 0, v)
}
