package refit_test

import (
	"reflect"

	"go.llib.dev/refit"
)

// counterIter yields consecutive integers by value.
// It declares no type metadata at all.
type counterIter struct{ at int }

func (it counterIter) Deref() int { return it.at }

func (it counterIter) Ptr() *int { v := it.at; return &v }

func (it *counterIter) Advance() { it.at++ }

func (it counterIter) Equal(oth counterIter) bool { return it.at == oth.at }

// counterRange is the [from, until) interval of consecutive integers.
type counterRange struct{ from, until int }

func (r counterRange) Begin() counterIter { return counterIter{at: r.from} }

func (r counterRange) End() counterIter { return counterIter{at: r.until} }

// ptrIter yields the addresses of a slice's elements, the pointers themselves by value.
// It declares no type metadata at all.
type ptrIter struct {
	vs []int
	at int
}

func (it ptrIter) Deref() *int { return &it.vs[it.at] }

func (it ptrIter) Ptr() **int { p := &it.vs[it.at]; return &p }

func (it *ptrIter) Advance() { it.at++ }

func (it ptrIter) Equal(oth ptrIter) bool { return it.at == oth.at }

// refIter yields writable references into a slice.
// It declares no type metadata at all.
type refIter struct {
	vs []string
	at int
}

func (it refIter) Deref() refit.Ref[string] { return refit.RefOf(&it.vs[it.at]) }

func (it refIter) Ptr() *string { return &it.vs[it.at] }

func (it *refIter) Advance() { it.at++ }

func (it refIter) Equal(oth refIter) bool { return it.at == oth.at }

// declaredIter declares every piece of its metadata,
// element and distance types deliberately differ from what inference would say.
type declaredIter struct{ at int }

func (it declaredIter) Deref() int { return it.at }

func (it declaredIter) Ptr() *int { v := it.at; return &v }

func (it *declaredIter) Advance() { it.at++ }

func (it declaredIter) Equal(oth declaredIter) bool { return it.at == oth.at }

func (it declaredIter) ElemType() reflect.Type { return reflect.TypeOf(int64(0)) }

func (it declaredIter) DistanceType() reflect.Type { return reflect.TypeOf(int32(0)) }

func (it declaredIter) Category() refit.Category { return refit.Bidirectional }

// undeclaredIter has the declaration capabilities but answers nothing through them.
type undeclaredIter struct{ at int }

func (it undeclaredIter) Deref() int { return it.at }

func (it undeclaredIter) Ptr() *int { v := it.at; return &v }

func (it undeclaredIter) ElemType() reflect.Type { return nil }

func (it undeclaredIter) DistanceType() reflect.Type { return nil }

func (it undeclaredIter) Category() refit.Category { return 0 }

// inertIter supports only the enforced part of the iterator contract.
type inertIter struct{ v int }

func (it inertIter) Deref() int { return it.v }

func (it inertIter) Ptr() *int { return &it.v }

// ptrRecvIter has its access methods on its pointer type only.
type ptrRecvIter struct{ v int }

func (it *ptrRecvIter) Deref() int { return it.v }

func (it *ptrRecvIter) Ptr() *int { return &it.v }

// derefOnlyIter misses the Ptr method.
type derefOnlyIter struct{}

func (derefOnlyIter) Deref() int { return 0 }

// badDerefIter has a Deref method in the wrong shape.
type badDerefIter struct{}

func (badDerefIter) Deref(n int) int { return n }

func (badDerefIter) Ptr() *int { return nil }

// badPtrIter has a Ptr method in the wrong shape.
type badPtrIter struct{}

func (badPtrIter) Deref() int { return 0 }

func (badPtrIter) Ptr() (*int, error) { return nil, nil }
