package seqkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/asyncseq/pkg/seqkit"
)

func TestConcat(t *testing.T) {
	s := testcase.NewSpec(t)

	randomInts := func(t *testcase.T) []int {
		var vs []int
		for i, n := 0, t.Random.IntBetween(0, 7); i < n; i++ {
			vs = append(vs, t.Random.Int())
		}
		return vs
	}

	var (
		a       = testcase.Let(s, randomInts)
		b       = testcase.Let(s, randomInts)
		subject = func(t *testcase.T) seqkit.Sequence[int] {
			return seqkit.Concat(seqkit.FromSlice(a.Get(t)...), seqkit.FromSlice(b.Get(t)...))
		}
	)

	s.Then("the elements of the first are followed by the elements of the second", func(t *testcase.T) {
		exp := append(append([]int{}, a.Get(t)...), b.Get(t)...)
		assert.Equal(t, exp, collect[int](t, subject(t)))
	})

	s.Then("the length is the sum of the lengths", func(t *testcase.T) {
		n, err := seqkit.Count(bg, subject(t))
		assert.NoError(t, err)
		assert.Equal(t, len(a.Get(t))+len(b.Get(t)), n)
	})
}

func TestConcat_secondIsAcquiredLazily(t *testing.T) {
	a, b := spy(1, 2), spy(3)
	c := seqkit.Concat[int](a, b).Iterate()
	defer c.Close()

	ok, err := c.Next(bg)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, b.Mocks)

	vs := []int{c.Value()}
	for {
		ok, err := c.Next(bg)
		require.NoError(t, err)
		if !ok {
			break
		}
		vs = append(vs, c.Value())
	}
	require.Equal(t, []int{1, 2, 3}, vs)
	require.Len(t, b.Mocks, 1)
	require.Equal(t, 1, a.Mocks[0].CloseCalls, "the first cursor is closed when exhausted")
}

func TestConcat_disposal(t *testing.T) {
	t.Run("a fault in the second sequence closes both cursors exactly once", func(t *testing.T) {
		expErr := errors.New("boom")
		a, b := spy(1, 2), failing(expErr, 3)
		_, err := seqkit.ToSlice(bg, seqkit.Concat[int](a, b))
		require.ErrorIs(t, err, expErr)
		requireClosedOnce(t, a)
		requireClosedOnce(t, b)
	})

	t.Run("early termination closes the first cursor without touching the second", func(t *testing.T) {
		a, b := spy(1, 2), spy(3)
		v, err := seqkit.First[int](bg, seqkit.Concat[int](a, b))
		require.NoError(t, err)
		require.Equal(t, 1, v)
		requireClosedOnce(t, a)
		require.Empty(t, b.Mocks)
	})
}

func TestConcatAll(t *testing.T) {
	seq := seqkit.ConcatAll(seqkit.FromSlice(1), seqkit.Empty[int](), seqkit.FromSlice(2, 3), seqkit.SingleValue(4))
	require.Equal(t, []int{1, 2, 3, 4}, collect(t, seq))
	require.Empty(t, collect(t, seqkit.ConcatAll[int]()))

	_, err := seqkit.ToSlice(bg, seqkit.Concat(seqkit.FromSlice(1), nil))
	require.ErrorIs(t, err, seqkit.ErrInvalidArgument)
}

func TestConcatAll_copiesTheSequences(t *testing.T) {
	seqs := []seqkit.Sequence[int]{seqkit.FromSlice(1), seqkit.FromSlice(2)}
	seq := seqkit.ConcatAll(seqs...)
	seqs[1] = seqkit.FromSlice(3)
	require.Equal(t, []int{1, 2}, collect(t, seq))
}
