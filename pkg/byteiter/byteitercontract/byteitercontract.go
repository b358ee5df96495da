package byteitercontract

import (
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/bytekit/pkg/byteiter"
)

// Subject is a freshly made iterator together with the values it must yield.
type Subject struct {
	Iterator byteiter.Iterator
	// Values are the expected elements of Iterator, in iteration order.
	Values []byte
}

type Config struct {
	// SupportRemove marks that the Iterator can remove the element it returned last.
	SupportRemove bool
}

func (c Config) Configure(t *Config) {
	if c.SupportRemove {
		t.SupportRemove = true
	}
}

type Option option.Option[Config]

func Iterator(mk contract.Make[Subject], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config](opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		return mk(t)
	})

	drain := func(t *testcase.T, it byteiter.Iterator) {
		for range subject.Get(t).Values {
			_, err := it.NextByte()
			assert.NoError(t, err)
		}
	}

	s.Describe("#NextByte", func(s *testcase.Spec) {
		s.Then("it yields the expected values in order", func(t *testcase.T) {
			it := subject.Get(t).Iterator
			for _, exp := range subject.Get(t).Values {
				assert.True(t, it.HasNext(), "expected more elements")
				got, err := it.NextByte()
				assert.NoError(t, err)
				assert.Equal(t, exp, got)
			}
			assert.False(t, it.HasNext())
		})

		s.Then("HasNext has no side effect between reads", func(t *testcase.T) {
			it := subject.Get(t).Iterator
			for _, exp := range subject.Get(t).Values {
				t.Random.Repeat(2, 5, func() {
					assert.True(t, it.HasNext())
				})
				got, err := it.NextByte()
				assert.NoError(t, err)
				assert.Equal(t, exp, got)
			}
			t.Random.Repeat(2, 5, func() {
				assert.False(t, it.HasNext())
			})
		})

		s.When("the iterator is exhausted", func(s *testcase.Spec) {
			s.Then("reads fail with exhaustion every time", func(t *testcase.T) {
				it := subject.Get(t).Iterator
				drain(t, it)

				t.Random.Repeat(3, 7, func() {
					assert.False(t, it.HasNext())
					_, err := it.NextByte()
					assert.ErrorIs(t, byteiter.ErrExhausted, err)
				})
				assert.NoError(t, it.Err())
			})
		})
	})

	s.Describe("#Next", func(s *testcase.Spec) {
		s.Then("it yields the boxed form of the expected values", func(t *testcase.T) {
			it := subject.Get(t).Iterator
			for _, exp := range subject.Get(t).Values {
				got, err := it.Next()
				assert.NoError(t, err)
				assert.NotNil(t, got)
				assert.Equal(t, exp, *got)
			}
			got, err := it.Next()
			assert.ErrorIs(t, byteiter.ErrExhausted, err)
			assert.Nil(t, got)
		})

		s.Then("boxed and unboxed reads advance the same cursor", func(t *testcase.T) {
			it := subject.Get(t).Iterator
			for _, exp := range subject.Get(t).Values {
				if t.Random.Bool() {
					got, err := it.Next()
					assert.NoError(t, err)
					assert.Equal(t, exp, *got)
					continue
				}
				got, err := it.NextByte()
				assert.NoError(t, err)
				assert.Equal(t, exp, got)
			}
			assert.False(t, it.HasNext())
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		if c.SupportRemove {
			s.Then("the last read element can be removed", func(t *testcase.T) {
				it := subject.Get(t).Iterator
				if len(subject.Get(t).Values) == 0 {
					t.Skip("remove needs at least one element")
				}
				_, err := it.NextByte()
				assert.NoError(t, err)
				assert.NoError(t, it.Remove())
			})
			return
		}

		s.Then("removal is unsupported", func(t *testcase.T) {
			it := subject.Get(t).Iterator
			assert.ErrorIs(t, byteiter.ErrUnsupported, it.Remove())
			if it.HasNext() {
				_, err := it.NextByte()
				assert.NoError(t, err)
				assert.ErrorIs(t, byteiter.ErrUnsupported, it.Remove())
			}
		})
	})

	s.Describe("#Close", func(s *testcase.Spec) {
		s.Then("it can be called multiple times", func(t *testcase.T) {
			it := subject.Get(t).Iterator
			t.Random.Repeat(1, 3, func() {
				assert.NoError(t, it.Close())
			})
		})
	})

	s.Test("Collect returns the expected values", func(t *testcase.T) {
		got, err := byteiter.Collect(subject.Get(t).Iterator)
		assert.NoError(t, err)
		if exp := subject.Get(t).Values; len(exp) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, exp, got)
		}
	})

	s.Test("Seq iterates over the expected values", func(t *testcase.T) {
		var got []byte
		for v, err := range byteiter.Seq(subject.Get(t).Iterator) {
			assert.NoError(t, err)
			got = append(got, v)
		}
		if exp := subject.Get(t).Values; len(exp) == 0 {
			assert.Empty(t, got)
		} else {
			assert.Equal(t, exp, got)
		}
	})

	s.Test("Count tells the number of expected values", func(t *testcase.T) {
		n, err := byteiter.Count(subject.Get(t).Iterator)
		assert.NoError(t, err)
		assert.Equal(t, len(subject.Get(t).Values), n)
	})

	return s.AsSuite("byteiter.Iterator")
}

// MakeValues is a helper for Subject makers that need random content.
func MakeValues(tb testing.TB, minLen, maxLen int) []byte {
	t := testcase.ToT(&tb)
	vs := make([]byte, t.Random.IntBetween(minLen, maxLen))
	for i := range vs {
		vs[i] = byte(t.Random.IntBetween(0, 255))
	}
	return vs
}
