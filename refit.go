// Package refit fixes the published type metadata of iterator like values.
//
// # Summary
//
// Generic range and algorithm code often needs to know more about an iterator
// than what the iterator's author declared: the element type, the type
// distances are counted in, the result types of its access operations,
// and how the iterator may be traversed.
// Hand written iterators regularly declare only a part of this, or none of it.
// refit takes such a value and wraps it into one whose metadata is complete:
// the access result types are forced to what the iterator actually does,
// the rest is taken from the iterator's own declarations when present,
// or replaced by safe defaults when absent.
// The wrapped value keeps behaving exactly like the original:
// refit adds metadata, never behavior.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package refit

import (
	"fmt"
	"reflect"
)

// Iterator is the structural contract refit requires from a wrapped value.
//
// Deref returns the value at the current position,
// and Ptr returns the member access handle of the current position.
// Advancing and position comparison are assumed capabilities:
// they are delegated to the wrapped value without being part of the contract,
// the same way range code assumes them without checking.
type Iterator[R, P any] interface {
	Deref() R
	Ptr() P
}

// Fixed is an iterator wrapper that behaves exactly as the wrapped iterator,
// while publishing the corrected type metadata as its own.
//
// Fixed itself satisfies Iterator and every metadata capability,
// so wrapping an already fixed iterator again changes nothing.
//
// The zero value of Fixed is not usable; use Fix to make one.
type Fixed[I Iterator[R, P], R, P any] struct {
	it     I
	traits Traits
}

// Fix wraps an iterator value and corrects its published type metadata.
//
// The wrapped type and the result types of its access operations
// are named explicitly at the call site:
//
//	fixed := refit.Fix[MyIter, int, *int](it)
//
// This keeps the construction strict about what type it wraps;
// a value of a different type, convertible or not, doesn't get in.
// A type argument that doesn't match the iterator's own method results
// fails to compile; the result types are observed, never trusted.
//
// The returned Fixed holds its own copy of the iterator value.
// Whether two copies traverse independently is up to the wrapped type,
// value semantics give independent copies, pointer semantics give a shared position.
func Fix[I Iterator[R, P], R, P any](it I) Fixed[I, R, P] {
	return Fixed[I, R, P]{it: it, traits: traitsFor[I, R, P](it)}
}

// traitsFor resolves the metadata bundle with the access result types
// already known from the instantiation.
func traitsFor[I Iterator[R, P], R, P any](it I) Traits {
	var (
		deref = reflect.TypeOf((*R)(nil)).Elem()
		ptr   = reflect.TypeOf((*P)(nil)).Elem()
	)
	return Traits{
		Deref:    deref,
		Ptr:      ptr,
		Elem:     elemTypeOf(it, deref),
		Distance: distanceTypeOf(it),
		Category: categoryOf(it),
	}
}

// Unwrap returns the wrapped iterator value.
func (f Fixed[I, R, P]) Unwrap() I { return f.it }

// Deref returns the value at the wrapped iterator's current position.
func (f Fixed[I, R, P]) Deref() R { return f.it.Deref() }

// Ptr returns the member access handle of the wrapped iterator's current position.
func (f Fixed[I, R, P]) Ptr() P { return f.it.Ptr() }

type advancer interface{ Advance() }

// Advance steps the wrapped iterator to its next position.
//
// Advancing is an assumed capability;
// calling Advance on a wrapped type that has no Advance method panics.
func (f *Fixed[I, R, P]) Advance() {
	if a, ok := any(&f.it).(advancer); ok {
		a.Advance()
		return
	}
	if a, ok := any(f.it).(advancer); ok {
		a.Advance()
		return
	}
	panic(fmt.Sprintf("refit: %T has no Advance method", f.it))
}

// Equal reports whether the wrapped iterator stands on the same position as the other's.
//
// Position comparison is an assumed capability;
// calling Equal on a wrapped type that has no Equal method panics.
func (f Fixed[I, R, P]) Equal(oth Fixed[I, R, P]) bool {
	if e, ok := any(f.it).(interface{ Equal(I) bool }); ok {
		return e.Equal(oth.it)
	}
	if e, ok := any(&f.it).(interface{ Equal(I) bool }); ok {
		return e.Equal(oth.it)
	}
	panic(fmt.Sprintf("refit: %T has no Equal method", f.it))
}

// ElemType returns the element type of the iteration.
func (f Fixed[I, R, P]) ElemType() reflect.Type { return f.traits.Elem }

// DistanceType returns the type the distance between two positions is expressed in.
func (f Fixed[I, R, P]) DistanceType() reflect.Type { return f.traits.Distance }

// Category returns the traversal capability of the iterator.
func (f Fixed[I, R, P]) Category() Category { return f.traits.Category }

// DerefType returns the observed result type of the wrapped iterator's Deref method.
func (f Fixed[I, R, P]) DerefType() reflect.Type { return f.traits.Deref }

// PtrType returns the observed result type of the wrapped iterator's Ptr method.
func (f Fixed[I, R, P]) PtrType() reflect.Type { return f.traits.Ptr }

// Traits returns the whole canonical metadata bundle of the fixed iterator.
func (f Fixed[I, R, P]) Traits() Traits { return f.traits }
