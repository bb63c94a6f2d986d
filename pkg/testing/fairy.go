package testing

import (
	"testing"
	"time"

	"github.com/getfairy/fairy/pkg/fairy"
	"github.com/getfairy/fairy/pkg/producer/person"
)

// Now is the clock value generators built by New run at. Date and age
// fields derive from it instead of the wall clock.
var Now = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// New builds a deterministic generator for a test. Construction
// failures, e.g. an unknown locale, fail the test immediately.
func New(tb testing.TB, opts ...fairy.Option) *fairy.Fairy {
	tb.Helper()
	base := []fairy.Option{
		fairy.WithSeed(1),
		fairy.WithClock(func() time.Time { return Now }),
	}
	f, err := fairy.New(append(base, opts...)...)
	if err != nil {
		tb.Fatalf("failed to build generator: %v", err)
	}
	return f
}

// Seeded builds a deterministic generator with an explicit seed.
func Seeded(tb testing.TB, seed uint64, opts ...fairy.Option) *fairy.Fairy {
	tb.Helper()
	return New(tb, append([]fairy.Option{fairy.WithSeed(seed)}, opts...)...)
}

// At returns an option pinning the generator clock to the given time.
func At(at time.Time) fairy.Option {
	return fairy.WithClock(func() time.Time { return at })
}

// Sample draws count values from produce, failing the test on the
// first error.
func Sample[T any](tb testing.TB, count int, produce func() (T, error)) []T {
	tb.Helper()
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		v, err := produce()
		if err != nil {
			tb.Fatalf("sample %d of %d failed: %v", i+1, count, err)
		}
		out = append(out, v)
	}
	return out
}

// People draws count people from f, failing the test on the first
// error. Options apply to every draw.
func People(tb testing.TB, f *fairy.Fairy, count int, opts ...person.Option) []person.Person {
	tb.Helper()
	return Sample(tb, count, func() (person.Person, error) {
		return f.Person(opts...)
	})
}
