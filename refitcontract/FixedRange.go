package refitcontract

import (
	"reflect"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/refit"
)

// FixedRange is the behavioral contract of suppliers that yield fixed ranges.
// The supplied range is expected to be finite and to hold at least one value.
type FixedRange[I refit.Iterator[R, P], R, P any] func(tb testing.TB) refit.FixedRange[I, R, P]

func (c FixedRange[I, R, P]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like a fixed range", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) refit.FixedRange[I, R, P] {
			return c(t)
		})

		s.Then("every piece of the published metadata is populated", func(t *testcase.T) {
			tr := subject.Get(t).Begin().Traits()
			t.Must.NotNil(tr.Elem)
			t.Must.NotNil(tr.Distance)
			t.Must.NotNil(tr.Deref)
			t.Must.NotNil(tr.Ptr)
			t.Must.True(tr.Category.AtLeast(refit.Input))
		})

		s.Then("both endpoints publish the same metadata", func(t *testcase.T) {
			r := subject.Get(t)
			assert.Equal(t, r.Begin().Traits(), r.End().Traits())
		})

		s.Then("the access result types are the observed ones", func(t *testcase.T) {
			b := subject.Get(t).Begin()
			assert.Equal(t, reflect.TypeOf((*R)(nil)).Elem(), b.DerefType())
			assert.Equal(t, reflect.TypeOf((*P)(nil)).Elem(), b.PtrType())
		})

		s.Then("wrapping a fixed endpoint again changes no metadata", func(t *testcase.T) {
			b := subject.Get(t).Begin()
			re := refit.Fix[refit.Fixed[I, R, P], R, P](b)
			assert.Equal(t, b.Traits(), re.Traits())
		})

		s.Then("the begin endpoint reaches the end endpoint", func(t *testcase.T) {
			r := subject.Get(t)
			cur, end := r.Begin(), r.End()
			var steps int
			for !cur.Equal(end) {
				cur.Advance()
				steps++
				t.Must.True(steps < 1<<20, "expected the range to be finite")
			}
		})

		s.Then("the values of the range can be collected", func(t *testcase.T) {
			t.Must.NotEmpty(refit.Collect(subject.Get(t)))
		})

		s.Then("independent passes visit the same values when the category promises multi pass", func(t *testcase.T) {
			r := subject.Get(t)
			if !r.Begin().Category().AtLeast(refit.Forward) {
				t.Skip("input ranges are single pass")
			}
			assert.Equal(t, refit.Collect(r), refit.Collect(r))
		})
	})
}

func (c FixedRange[I, R, P]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c FixedRange[I, R, P]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
