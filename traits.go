package refit

import (
	"reflect"

	"go.llib.dev/refit/internal/errorkit"
)

const (
	// ErrNoDeref is returned when the inspected value has no Deref method in its method set.
	ErrNoDeref errorkit.Error = `refit: no Deref method`
	// ErrNoPtr is returned when the inspected value has no Ptr method in its method set.
	ErrNoPtr errorkit.Error = `refit: no Ptr method`
	// ErrBadDeref is returned when the Deref method takes arguments or doesn't return a single value.
	ErrBadDeref errorkit.Error = `refit: malformed Deref method`
	// ErrBadPtr is returned when the Ptr method takes arguments or doesn't return a single value.
	ErrBadPtr errorkit.Error = `refit: malformed Ptr method`
)

// Category identifies the traversal capability of an iterator.
//
// The zero Category means the iterator doesn't tell its capability,
// in which case inference falls back to Input, the weakest guarantee.
type Category uint8

const (
	// Input marks single pass traversal; values can be visited only once.
	Input Category = iota + 1
	// Forward marks multi pass traversal, independent copies revisit the same values.
	Forward
	// Bidirectional marks traversal that can also step backwards.
	Bidirectional
	// RandomAccess marks traversal with constant time jumps between positions.
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case Input:
		return "input"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "unspecified"
	}
}

// AtLeast tells whether the category carries the guarantees of the given category.
func (c Category) AtLeast(oth Category) bool { return oth <= c }

// ElemTyper is the capability of iterators that declare their element type.
// A nil result counts as not declared.
type ElemTyper interface {
	ElemType() reflect.Type
}

// DistanceTyper is the capability of iterators that declare
// the type they express the distance between two positions in.
// A nil result counts as not declared.
type DistanceTyper interface {
	DistanceType() reflect.Type
}

// Categorized is the capability of iterators that declare their traversal category.
// A zero result counts as not declared.
type Categorized interface {
	Category() Category
}

// Traits is the canonical type metadata bundle of an iterator.
//
// Deref and Ptr always hold the observed result types of the iterator's
// Deref and Ptr methods; declarations can not override them.
// Elem, Distance and Category hold what the iterator declared about itself,
// or the inferred fallback when it declared nothing.
type Traits struct {
	// Elem is the element type of the iteration.
	Elem reflect.Type
	// Distance is the type the distance between two positions is expressed in.
	Distance reflect.Type
	// Deref is the observed result type of the Deref method.
	Deref reflect.Type
	// Ptr is the observed result type of the Ptr method.
	Ptr reflect.Type
	// Category is the traversal capability of the iterator.
	Category Category
}

var intType = reflect.TypeOf(int(0))

// TraitsOf resolves the canonical type metadata of an iterator like value.
//
// The result types of the value's Deref and Ptr methods are taken as observed;
// missing or malformed methods are reported as errors.
// The remaining three fields resolve from the value's own declarations when present:
//
//   - Elem from ElemType, else the Deref result type with its reference layer stripped
//   - Distance from DistanceType, else int
//   - Category from Category, else Input
//
// Inference itself can not fail, every inferable field has a default.
func TraitsOf(v any) (Traits, error) {
	var tr Traits
	rt := reflect.TypeOf(v)
	if rt == nil {
		return tr, ErrNoDeref.F("untyped nil")
	}
	deref, err := methodResult(rt, "Deref", ErrNoDeref, ErrBadDeref)
	if err != nil {
		return tr, err
	}
	ptr, err := methodResult(rt, "Ptr", ErrNoPtr, ErrBadPtr)
	if err != nil {
		return tr, err
	}
	tr.Deref = deref
	tr.Ptr = ptr
	tr.Elem = elemTypeOf(v, deref)
	tr.Distance = distanceTypeOf(v)
	tr.Category = categoryOf(v)
	return tr, nil
}

// methodResult looks up a niladic single result method and returns its result type.
// The method must be part of the type's own method set,
// mirroring what the compile time Iterator contract requires.
func methodResult(rt reflect.Type, name string, missing, malformed errorkit.Error) (reflect.Type, error) {
	m, ok := rt.MethodByName(name)
	if !ok {
		return nil, missing.F("%s", rt)
	}
	// the method of a concrete type takes the receiver as its first input
	if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return nil, malformed.F("%s.%s must take no argument and return a single value", rt, name)
	}
	return m.Type.Out(0), nil
}

func elemTypeOf(v any, deref reflect.Type) reflect.Type {
	if dec, ok := v.(ElemTyper); ok {
		if rt := dec.ElemType(); rt != nil {
			return rt
		}
	}
	return stripRef(deref)
}

func distanceTypeOf(v any) reflect.Type {
	if dec, ok := v.(DistanceTyper); ok {
		if rt := dec.DistanceType(); rt != nil {
			return rt
		}
	}
	return intType
}

func categoryOf(v any) Category {
	if dec, ok := v.(Categorized); ok {
		if c := dec.Category(); c != 0 {
			return c
		}
	}
	return Input
}
