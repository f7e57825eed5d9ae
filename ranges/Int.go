// Package ranges provides ready made range values to use with refit.
package ranges

// Int returns the inclusive range of integers between begin and end.
func Int(begin, end int) IntRange {
	return IntRange{begin: begin, end: end}
}

// IntRange is an inclusive interval of consecutive integers.
type IntRange struct {
	begin, end int
}

// Begin returns the iterator standing on the first integer of the interval.
func (r IntRange) Begin() IntIter {
	return IntIter{at: r.begin}
}

// End returns the iterator standing past the last integer of the interval.
func (r IntRange) End() IntIter {
	return IntIter{at: r.end + 1}
}

// IntIter is a position inside an integer interval.
// It declares no type metadata on its own.
type IntIter struct {
	at int
}

// Deref returns the integer at the current position.
func (it IntIter) Deref() int { return it.at }

// Ptr returns a pointer to a copy of the integer at the current position.
func (it IntIter) Ptr() *int { v := it.at; return &v }

// Advance steps the position to the next integer.
func (it *IntIter) Advance() { it.at++ }

// Equal reports whether both positions stand on the same integer.
func (it IntIter) Equal(oth IntIter) bool { return it.at == oth.at }
