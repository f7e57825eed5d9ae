package refit

import "reflect"

// Ref is a reference handle to a value of type T.
//
// Go has no reference qualified types,
// so iterators whose dereference yields a position that can be read and written in place
// express that by returning a Ref instead of a plain value.
// The element type inference recognises Ref and strips exactly this one layer;
// pointer types are left alone.
//
// The zero value of Ref refers to nothing; use RefOf to make one.
type Ref[T any] struct {
	ptr *T
}

// RefOf returns a reference handle to the value that p points at.
func RefOf[T any](p *T) Ref[T] {
	return Ref[T]{ptr: p}
}

// Get reads the referred value.
func (r Ref[T]) Get() T { return *r.ptr }

// Set writes the referred value.
func (r Ref[T]) Set(v T) { *r.ptr = v }

// Addr returns the address of the referred value.
func (r Ref[T]) Addr() *T { return r.ptr }

// referent seals Ref against outside implementations;
// only Ref counts as a reference during element type inference.
func (Ref[T]) referent() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

type refMarker interface {
	referent() reflect.Type
}

var refMarkerType = reflect.TypeOf((*refMarker)(nil)).Elem()

// stripRef removes a single reference layer from the given type.
// Anything that is not a Ref, pointers included, is returned unchanged.
func stripRef(rt reflect.Type) reflect.Type {
	if rt == nil {
		return nil
	}
	if rt.Implements(refMarkerType) {
		return reflect.Zero(rt).Interface().(refMarker).referent()
	}
	return rt
}
