package seqkit_test

import (
	"testing"

	"go.llib.dev/asyncseq/pkg/seqkit"
	"go.llib.dev/asyncseq/pkg/seqkit/seqkitcontract"
)

func TestSequence_contract(t *testing.T) {
	reusable := map[string]func(testing.TB) seqkit.Sequence[int]{
		"FromSlice":   func(testing.TB) seqkit.Sequence[int] { return digits() },
		"Empty":       func(testing.TB) seqkit.Sequence[int] { return seqkit.Empty[int]() },
		"SingleValue": func(testing.TB) seqkit.Sequence[int] { return seqkit.SingleValue(1) },
		"Filter": func(testing.TB) seqkit.Sequence[int] {
			return seqkit.Filter(digits(), func(n int) bool { return n%2 == 0 })
		},
		"Map": func(testing.TB) seqkit.Sequence[int] {
			return seqkit.Map(digits(), func(n int) int { return n * n })
		},
		"Skip":       func(testing.TB) seqkit.Sequence[int] { return seqkit.Skip(digits(), 3) },
		"Take":       func(testing.TB) seqkit.Sequence[int] { return seqkit.Take(digits(), 3) },
		"Distinct":   func(testing.TB) seqkit.Sequence[int] { return seqkit.Distinct(seqkit.FromSlice(1, 1, 2)) },
		"Concat":     func(testing.TB) seqkit.Sequence[int] { return seqkit.Concat(digits(), digits()) },
		"Prepend":    func(testing.TB) seqkit.Sequence[int] { return seqkit.Prepend(digits(), -2, -1) },
		"Append":     func(testing.TB) seqkit.Sequence[int] { return seqkit.Append(digits(), 10) },
		"Trace":      func(testing.TB) seqkit.Sequence[int] { return seqkit.Trace(digits(), "digits") },
		"Concurrent": func(testing.TB) seqkit.Sequence[int] { return seqkit.WithConcurrentAccess(digits()) },
		"Zip": func(testing.TB) seqkit.Sequence[int] {
			return seqkit.Zip(digits(), seqkit.Range(0, 5), func(a, b int) int { return a + b })
		},
		"FlatMap": func(testing.TB) seqkit.Sequence[int] {
			return seqkit.FlatMap(seqkit.Range(1, 3), func(n int) seqkit.Sequence[int] { return seqkit.Range(0, n) })
		},
		"SkipWhile": func(testing.TB) seqkit.Sequence[int] {
			return seqkit.SkipWhile(digits(), func(n int) bool { return n < 4 })
		},
		"TakeWhile": func(testing.TB) seqkit.Sequence[int] {
			return seqkit.TakeWhile(digits(), func(n int) bool { return n < 4 })
		},
		"Apply": func(testing.TB) seqkit.Sequence[int] {
			return seqkit.Apply(digits(), func(int) {})
		},
		"OfType": func(testing.TB) seqkit.Sequence[int] {
			return seqkit.OfType[int](seqkit.FromSlice[any](1, "2", 3))
		},
	}
	for name, mk := range reusable {
		t.Run(name, func(t *testing.T) {
			seqkitcontract.Sequence(mk).Test(t)
			seqkitcontract.Reusable(mk).Test(t)
		})
	}

	t.Run("Batch", func(t *testing.T) {
		mk := func(testing.TB) seqkit.Sequence[[]int] { return seqkit.Batch(digits(), 3) }
		seqkitcontract.Sequence(mk).Test(t)
		seqkitcontract.Reusable(mk).Test(t)
	})

	t.Run("Pipe", func(t *testing.T) {
		seqkitcontract.Sequence(func(tb testing.TB) seqkit.Sequence[int] {
			in, out := seqkit.Pipe[int]()
			go func() {
				defer in.Close()
				for i := 0; i < 3; i++ {
					if !in.Value(bg, i) {
						return
					}
				}
			}()
			return out
		}).Test(t)
	})
}
