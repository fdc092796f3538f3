package seqkit

import (
	"container/list"
	"context"
)

// ToSlice collects all the elements of the sequence into a slice.
// An empty sequence results in an empty, non-nil slice.
func ToSlice[T any](ctx context.Context, src Sequence[T]) ([]T, error) {
	if IsNil(src) {
		return nil, errNilArg("source")
	}
	var vs = make([]T, 0)
	err := each(ctx, src, func(v T) error {
		vs = append(vs, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// ToList collects all the elements of the sequence into a doubly linked list.
func ToList[T any](ctx context.Context, src Sequence[T]) (*list.List, error) {
	if IsNil(src) {
		return nil, errNilArg("source")
	}
	var l = list.New()
	err := each(ctx, src, func(v T) error {
		l.PushBack(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// ToSet collects the distinct elements of the sequence into a set.
func ToSet[T comparable](ctx context.Context, src Sequence[T]) (map[T]struct{}, error) {
	if IsNil(src) {
		return nil, errNilArg("source")
	}
	var set = make(map[T]struct{})
	err := each(ctx, src, func(v T) error {
		set[v] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// ToMap collects the sequence into a map, using the key and value functions on each element.
// Two elements with the same key result in ErrDuplicateKey.
func ToMap[T any, K comparable, V any](ctx context.Context, src Sequence[T], key func(T) K, value func(T) V) (map[K]V, error) {
	if IsNil(src) {
		return nil, errNilArg("source")
	}
	if key == nil {
		return nil, errNilArg("key selector")
	}
	if value == nil {
		return nil, errNilArg("value selector")
	}
	var m = make(map[K]V)
	err := each(ctx, src, func(v T) error {
		k := key(v)
		if _, ok := m[k]; ok {
			return ErrDuplicateKey.F("%v", k)
		}
		m[k] = value(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
