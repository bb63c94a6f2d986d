// Package testing provides a testing SDK for using fairy in Go tests.
//
// Generators built here are deterministic: the seed defaults to 1 and the
// clock is pinned to Now, so generated values are stable across runs and
// machines. Both can be overridden with regular fairy options.
//
// # Basic Usage
//
// Build a generator and draw test fixtures from it:
//
//	func TestSignup(t *testing.T) {
//	    f := fairytest.New(t)
//
//	    p, err := f.Person()
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if err := signup(p.Email, p.FullName()); err != nil {
//	        t.Fatalf("signup rejected %s: %v", p.Email, err)
//	    }
//	}
//
// # Bulk Fixtures
//
// People and Sample draw batches and fail the test on the first error:
//
//	people := fairytest.People(t, f, 100, person.WithAgeBetween(21, 65))
//	for _, p := range people {
//	    store.Insert(p)
//	}
//
//	words := fairytest.Sample(t, 50, f.Text().Word)
//
// # Varying the Data
//
// Use a different seed per case to cover more ground while staying
// reproducible:
//
//	for seed := uint64(1); seed <= 10; seed++ {
//	    f := fairytest.Seeded(t, seed)
//	    // ...
//	}
//
// Because the package is named testing, import it under an alias:
//
//	import fairytest "github.com/getfairy/fairy/pkg/testing"
package testing
