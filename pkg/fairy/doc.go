// Package fairy generates realistic fake data: people, companies,
// addresses, credit cards, text and network identifiers, backed by
// per-locale YAML data files.
//
// # Usage
//
// Build a generator and draw from it:
//
//	f, err := fairy.New(fairy.WithLocale("de"))
//	if err != nil {
//	    return err
//	}
//	p, err := f.Person()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.FullName(), p.Email, p.TelephoneNumber)
//
// # Locales and data files
//
// Data lives in YAML files: a base file fairy.yml with locale-neutral
// values and one fairy_<lang>.yml per locale. Loading a locale merges
// its file over the base: scalars replace, lists extend, maps merge
// key by key. A missing locale file falls back to the base data; a
// missing base file fails construction. WithDataDir and WithDataFS
// point the generator at custom data sets, WithFilePrefix renames the
// file family.
//
// # Determinism
//
// All draws flow through one random source. Two generators built with
// the same seed, data and clock return identical streams when called
// in the same order:
//
//	a, _ := fairy.New(fairy.WithSeed(42))
//	b, _ := fairy.New(fairy.WithSeed(42))
//	// a.Person() and b.Person() are identical
//
// Birth dates and card expiries are relative to the wall clock; pin it
// with WithClock when reproducibility must span time.
package fairy
