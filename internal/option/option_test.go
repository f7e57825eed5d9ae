package option_test

import (
	"testing"

	"go.llib.dev/refit/internal/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

type ExampleConfig struct {
	Foo string
	Bar int
}

type InitConfig struct {
	Value string
}

func (c *InitConfig) Init() { c.Value = "initialised" }

func TestToConfig(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		opts = testcase.Let[[]option.Option[ExampleConfig]](s, nil)
	)
	act := func(t *testcase.T) ExampleConfig {
		return option.ToConfig(opts.Get(t))
	}

	s.When("no option is supplied", func(s *testcase.Spec) {
		opts.Let(s, func(t *testcase.T) []option.Option[ExampleConfig] {
			return nil
		})

		s.Then("the zero config is returned", func(t *testcase.T) {
			t.Must.Equal(ExampleConfig{}, act(t))
		})
	})

	s.When("options are supplied", func(s *testcase.Spec) {
		foo := testcase.Let(s, func(t *testcase.T) string {
			return t.Random.String()
		})
		bar := testcase.Let(s, func(t *testcase.T) int {
			return t.Random.Int()
		})

		opts.Let(s, func(t *testcase.T) []option.Option[ExampleConfig] {
			return []option.Option[ExampleConfig]{
				option.Func[ExampleConfig](func(c *ExampleConfig) { c.Foo = foo.Get(t) }),
				option.Func[ExampleConfig](func(c *ExampleConfig) { c.Bar = bar.Get(t) }),
			}
		})

		s.Then("each option configures the returned config", func(t *testcase.T) {
			c := act(t)
			t.Must.Equal(foo.Get(t), c.Foo)
			t.Must.Equal(bar.Get(t), c.Bar)
		})

		s.And("one of the options is nil", func(s *testcase.Spec) {
			opts.Let(s, func(t *testcase.T) []option.Option[ExampleConfig] {
				return []option.Option[ExampleConfig]{
					nil,
					option.Func[ExampleConfig](func(c *ExampleConfig) { c.Foo = foo.Get(t) }),
				}
			})

			s.Then("the nil option is ignored", func(t *testcase.T) {
				t.Must.Equal(foo.Get(t), act(t).Foo)
			})
		})

		s.And("the options conflict", func(s *testcase.Spec) {
			opts.Let(s, func(t *testcase.T) []option.Option[ExampleConfig] {
				return []option.Option[ExampleConfig]{
					option.Func[ExampleConfig](func(c *ExampleConfig) { c.Foo = "first" }),
					option.Func[ExampleConfig](func(c *ExampleConfig) { c.Foo = foo.Get(t) }),
				}
			})

			s.Then("the last option wins", func(t *testcase.T) {
				t.Must.Equal(foo.Get(t), act(t).Foo)
			})
		})
	})
}

func TestToConfig_initer(t *testing.T) {
	t.Run("the config initialises itself before the options run", func(t *testing.T) {
		c := option.ToConfig[InitConfig](nil)
		assert.Equal(t, "initialised", c.Value)
	})

	t.Run("options can override the initialised values", func(t *testing.T) {
		c := option.ToConfig([]option.Option[InitConfig]{
			option.Func[InitConfig](func(c *InitConfig) { c.Value = "override" }),
		})
		assert.Equal(t, "override", c.Value)
	})
}
