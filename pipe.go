package refit

// Fixup is the marker value of the metadata fix up step in a range pipeline.
type Fixup struct{}

// Pipe applies a pipeline step on a range like value.
//
// With the Fixup marker it wraps both endpoints the same way FixRange does,
// which lets the fix up step line up with other range shaped transformations:
//
//	rng := refit.Pipe[MyIter, int, *int](src, refit.Fixup{})
//
// Pipe carries no semantics of its own beyond the delegation.
func Pipe[I Iterator[R, P], R, P any, G Ranger[I]](r G, _ Fixup) FixedRange[I, R, P] {
	return FixRange[I, R, P](r)
}
