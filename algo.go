package refit

import "go.llib.dev/refit/internal/errorkit"

// Break can end the iteration of ForEach early without returning an error.
const Break errorkit.Error = `refit:break`

// Collect gathers the remaining values of the range into a slice.
func Collect[I Iterator[R, P], R, P any](r FixedRange[I, R, P]) []R {
	var vs []R
	cur, end := r.Begin(), r.End()
	for !cur.Equal(end) {
		vs = append(vs, cur.Deref())
		cur.Advance()
	}
	return vs
}

// ForEach calls blk with each remaining value of the range.
// Returning Break from blk stops the iteration early without an error.
func ForEach[I Iterator[R, P], R, P any](r FixedRange[I, R, P], blk func(R) error) error {
	cur, end := r.Begin(), r.End()
	for !cur.Equal(end) {
		err := blk(cur.Deref())
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
		cur.Advance()
	}
	return nil
}

// Count reports the number of remaining values in the range.
func Count[I Iterator[R, P], R, P any](r FixedRange[I, R, P]) int {
	var n int
	cur, end := r.Begin(), r.End()
	for !cur.Equal(end) {
		n++
		cur.Advance()
	}
	return n
}

// Distance reports how many times begin has to advance to reach end.
func Distance[I Iterator[R, P], R, P any](begin, end Fixed[I, R, P]) int {
	var n int
	for !begin.Equal(end) {
		n++
		begin.Advance()
	}
	return n
}

// Find returns the first remaining value of the range that the predicate accepts.
func Find[I Iterator[R, P], R, P any](r FixedRange[I, R, P], by func(R) bool) (R, bool) {
	cur, end := r.Begin(), r.End()
	for !cur.Equal(end) {
		if v := cur.Deref(); by(v) {
			return v, true
		}
		cur.Advance()
	}
	var zero R
	return zero, false
}
