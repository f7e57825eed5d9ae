package refit

// Ranger is the structural contract of range like values,
// anything that can yield a begin and an end position.
type Ranger[I any] interface {
	Begin() I
	End() I
}

// FixedRange is a begin and end pair of fixed iterators.
//
// A FixedRange is immutable once constructed; its accessors hand out copies.
// FixedRange itself satisfies Ranger, so range consuming code
// doesn't have to tell fixed and plain ranges apart.
type FixedRange[I Iterator[R, P], R, P any] struct {
	begin, end Fixed[I, R, P]
}

// Begin returns the fixed iterator standing on the first position of the range.
func (r FixedRange[I, R, P]) Begin() Fixed[I, R, P] { return r.begin }

// End returns the fixed iterator standing past the last position of the range.
func (r FixedRange[I, R, P]) End() Fixed[I, R, P] { return r.end }

// FixRange wraps both endpoints of a range like value through Fix.
//
//	rng := refit.FixRange[MyIter, int, *int](src)
//
// The range value is taken by value, so both endpoints are extracted
// from the same materialised copy even when the argument was a temporary.
func FixRange[I Iterator[R, P], R, P any, G Ranger[I]](r G) FixedRange[I, R, P] {
	return FixedRange[I, R, P]{
		begin: Fix[I, R, P](r.Begin()),
		end:   Fix[I, R, P](r.End()),
	}
}

// RangeOf pairs two already fixed endpoints into a range.
func RangeOf[I Iterator[R, P], R, P any](begin, end Fixed[I, R, P]) FixedRange[I, R, P] {
	return FixedRange[I, R, P]{begin: begin, end: end}
}
