package ranges

import (
	"reflect"

	"go.llib.dev/refit"
)

// Slice returns a range over the elements of the given slice.
// Its iterators yield writable references back into the slice,
// and declare every piece of their type metadata up front.
func Slice[T any](vs []T) SliceRange[T] {
	return SliceRange[T]{vs: vs}
}

// SliceRange is a random access range over a slice's elements.
type SliceRange[T any] struct {
	vs []T
}

// Begin returns the iterator standing on the first element.
func (r SliceRange[T]) Begin() SliceIter[T] {
	return SliceIter[T]{vs: r.vs, at: 0}
}

// End returns the iterator standing past the last element.
func (r SliceRange[T]) End() SliceIter[T] {
	return SliceIter[T]{vs: r.vs, at: len(r.vs)}
}

// SliceIter is a position inside a slice.
type SliceIter[T any] struct {
	vs []T
	at int
}

// Deref returns a writable reference to the element at the current position.
func (it SliceIter[T]) Deref() refit.Ref[T] { return refit.RefOf(&it.vs[it.at]) }

// Ptr returns the address of the element at the current position.
func (it SliceIter[T]) Ptr() *T { return &it.vs[it.at] }

// Advance steps the position to the next element.
func (it *SliceIter[T]) Advance() { it.at++ }

// Equal reports whether both positions index the same place.
func (it SliceIter[T]) Equal(oth SliceIter[T]) bool { return it.at == oth.at }

// ElemType declares the element type of the iteration.
func (it SliceIter[T]) ElemType() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

// DistanceType declares the type distances are expressed in.
func (it SliceIter[T]) DistanceType() reflect.Type { return reflect.TypeOf(int(0)) }

// Category declares the random access nature of slice indexing.
func (it SliceIter[T]) Category() refit.Category { return refit.RandomAccess }
