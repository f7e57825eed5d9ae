package ranges_test

import (
	"reflect"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/refit"
	"go.llib.dev/refit/ranges"
	"go.llib.dev/refit/refitcontract"
)

func TestInt(t *testing.T) {
	s := testcase.NewSpec(t)

	begin := testcase.Let(s, func(t *testcase.T) int {
		return t.Random.IntB(1, 10)
	})
	end := testcase.Let(s, func(t *testcase.T) int {
		return begin.Get(t) + t.Random.IntB(1, 10)
	})
	subject := testcase.Let(s, func(t *testcase.T) ranges.IntRange {
		return ranges.Int(begin.Get(t), end.Get(t))
	})

	s.Test("the range spans the interval inclusively", func(t *testcase.T) {
		r := refit.FixRange[ranges.IntIter, int, *int](subject.Get(t))
		vs := refit.Collect(r)
		t.Must.Equal(end.Get(t)-begin.Get(t)+1, len(vs))
		assert.Equal(t, begin.Get(t), vs[0])
		assert.Equal(t, end.Get(t), vs[len(vs)-1])
	})

	s.Test("its iterator declares nothing, every metadata field gets inferred", func(t *testcase.T) {
		f := refit.Fix[ranges.IntIter, int, *int](subject.Get(t).Begin())
		assert.Equal(t, reflect.TypeOf(int(0)), f.ElemType())
		assert.Equal(t, reflect.TypeOf(int(0)), f.DistanceType())
		assert.Equal(t, reflect.TypeOf(int(0)), f.DerefType())
		assert.Equal(t, reflect.TypeOf((*int)(nil)), f.PtrType())
		assert.Equal(t, refit.Input, f.Category())
	})

	s.Test("the member access handle points at a copy of the integer", func(t *testcase.T) {
		it := subject.Get(t).Begin()
		p := it.Ptr()
		*p++
		assert.Equal(t, begin.Get(t), it.Deref())
	})

	s.Context("contract", func(s *testcase.Spec) {
		refitcontract.FixedRange[ranges.IntIter, int, *int](func(tb testing.TB) refit.FixedRange[ranges.IntIter, int, *int] {
			return refit.FixRange[ranges.IntIter, int, *int](ranges.Int(1, 5))
		}).Spec(s)
	})
}
