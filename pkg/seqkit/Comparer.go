package seqkit

import "hash/maphash"

// Comparer defines equality between elements.
// Values that are Equal must have the same Hash.
type Comparer[T any] interface {
	Equal(a, b T) bool
	Hash(v T) uint64
}

// DefaultComparer returns a Comparer which uses the == operator of the type.
func DefaultComparer[T comparable]() Comparer[T] {
	return defaultComparer[T]{seed: maphash.MakeSeed()}
}

type defaultComparer[T comparable] struct{ seed maphash.Seed }

func (c defaultComparer[T]) Equal(a, b T) bool { return a == b }

func (c defaultComparer[T]) Hash(v T) uint64 { return maphash.Comparable(c.seed, v) }

// ComparerFunc creates a Comparer from an equality and a hash function.
func ComparerFunc[T any](equal func(a, b T) bool, hash func(T) uint64) Comparer[T] {
	return comparerFunc[T]{equal: equal, hash: hash}
}

type comparerFunc[T any] struct {
	equal func(a, b T) bool
	hash  func(T) uint64
}

func (c comparerFunc[T]) Equal(a, b T) bool { return c.equal(a, b) }

func (c comparerFunc[T]) Hash(v T) uint64 { return c.hash(v) }

func isValidComparer[T any](cmp Comparer[T]) bool {
	if cmp == nil {
		return false
	}
	if fc, ok := cmp.(comparerFunc[T]); ok {
		return fc.equal != nil && fc.hash != nil
	}
	return true
}

// hashSet is the seen-set of Distinct, bucketed by the comparer's hash.
type hashSet[T any] struct {
	cmp     Comparer[T]
	buckets map[uint64][]T
}

func newHashSet[T any](cmp Comparer[T]) *hashSet[T] {
	return &hashSet[T]{cmp: cmp, buckets: make(map[uint64][]T)}
}

func (s *hashSet[T]) Has(v T) bool {
	for _, oth := range s.buckets[s.cmp.Hash(v)] {
		if s.cmp.Equal(v, oth) {
			return true
		}
	}
	return false
}

func (s *hashSet[T]) Add(v T) {
	h := s.cmp.Hash(v)
	s.buckets[h] = append(s.buckets[h], v)
}
