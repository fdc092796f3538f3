package seqkit

import "iter"

// Prepend yields the given values before the elements of the source.
// The source is not touched until the prepended values are consumed.
func Prepend[T any](src Sequence[T], vs ...T) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	return ConcatAll(FromSlice(vs...), src)
}

// PrependIter yields the values of a synchronous iterator before the elements of the source.
func PrependIter[T any](src Sequence[T], i iter.Seq[T]) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if i == nil {
		return Error[T](errNilArg("iterator"))
	}
	return ConcatAll(FromIter(i), src)
}

// Append yields the given values after the elements of the source.
func Append[T any](src Sequence[T], vs ...T) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	return ConcatAll(src, FromSlice(vs...))
}

// AppendIter yields the values of a synchronous iterator after the elements of the source.
func AppendIter[T any](src Sequence[T], i iter.Seq[T]) Sequence[T] {
	if IsNil(src) {
		return Error[T](errNilArg("source"))
	}
	if i == nil {
		return Error[T](errNilArg("iterator"))
	}
	return ConcatAll(src, FromIter(i))
}
