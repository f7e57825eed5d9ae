// Package sqliter exposes the mapped rows of an sql query result as a fixable range.
package sqliter

import (
	"reflect"

	"go.llib.dev/refit/internal/errorkit"
)

// Rows is the surface sqliter needs from sql.Rows.
// It keeps the package testable with anything that walks and scans rows.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Scanner is the scan surface a RowMapper receives for the current row.
type Scanner interface {
	Scan(dest ...any) error
}

// RowMapper maps the current row into a T value.
type RowMapper[T any] func(Scanner) (T, error)

// Query returns a range over the mapped rows of a query result.
//
// The range is single pass; its iterators share the underlying rows.
// Iteration stops at the first scan or mapping failure.
// The rows are released once iteration ended either way,
// and Err tells what ended it early.
func Query[T any](rows Rows, m RowMapper[T]) RowRange[T] {
	return RowRange[T]{st: &rowState[T]{rows: rows, m: m}}
}

// RowRange is a single pass range over mapped sql rows.
type RowRange[T any] struct {
	st *rowState[T]
}

// Begin returns the iterator standing on the first mapped row.
func (r RowRange[T]) Begin() *RowIter[T] {
	it := &RowIter[T]{st: r.st}
	it.fetch()
	return it
}

// End returns the iterator standing past the last row.
func (r RowRange[T]) End() *RowIter[T] {
	return &RowIter[T]{st: r.st, done: true}
}

// Err returns the error that ended the iteration, if any.
func (r RowRange[T]) Err() error {
	return r.st.err
}

// Close releases the underlying rows before they are exhausted.
func (r RowRange[T]) Close() error {
	return r.st.close()
}

type rowState[T any] struct {
	rows   Rows
	m      RowMapper[T]
	err    error
	closed bool
}

func (st *rowState[T]) close() error {
	if st.closed {
		return nil
	}
	st.closed = true
	return st.rows.Close()
}

// RowIter is a position in the mapped rows of a query result.
// It declares its element type; the rest is left for inference.
type RowIter[T any] struct {
	st   *rowState[T]
	cur  T
	done bool
}

func (it *RowIter[T]) fetch() {
	if it.st.err != nil || !it.st.rows.Next() {
		it.done = true
		it.st.err = errorkit.Merge(it.st.err, it.st.rows.Err(), it.st.close())
		return
	}
	v, err := it.st.m(it.st.rows)
	if err != nil {
		it.st.err = errorkit.Merge(err, it.st.close())
		it.done = true
		return
	}
	it.cur = v
}

// Deref returns a pointer to the row value at the current position.
// The pointee is overwritten by the next Advance.
func (it *RowIter[T]) Deref() *T { return &it.cur }

// Ptr returns the member access handle of the current row value.
func (it *RowIter[T]) Ptr() *T { return &it.cur }

// Advance steps to the next mapped row.
func (it *RowIter[T]) Advance() {
	if it.done {
		return
	}
	it.fetch()
}

// Equal reports whether both positions are the same.
// Exhausted iterators compare equal regardless of how they were made.
func (it *RowIter[T]) Equal(oth *RowIter[T]) bool {
	if it.done || oth.done {
		return it.done == oth.done
	}
	return it == oth
}

// ElemType declares the element type as the mapped row type;
// the pointer yielding access operations say nothing about it.
func (it *RowIter[T]) ElemType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
