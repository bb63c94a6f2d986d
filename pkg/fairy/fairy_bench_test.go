package fairy

import "testing"

func benchGenerator(b *testing.B) *Fairy {
	b.Helper()
	f, err := New(WithSeed(1))
	if err != nil {
		b.Fatalf("failed to build generator: %v", err)
	}
	return f
}

// BenchmarkNew covers construction cost: parsing and merging the
// bundled YAML data files.
func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := New(WithSeed(1)); err != nil {
			b.Fatalf("New returned error: %v", err)
		}
	}
}

func BenchmarkPerson(b *testing.B) {
	f := benchGenerator(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := f.Person(); err != nil {
			b.Fatalf("Person returned error: %v", err)
		}
	}
}

func BenchmarkCompany(b *testing.B) {
	f := benchGenerator(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := f.Company(); err != nil {
			b.Fatalf("Company returned error: %v", err)
		}
	}
}

func BenchmarkCreditCard(b *testing.B) {
	f := benchGenerator(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := f.CreditCard(); err != nil {
			b.Fatalf("CreditCard returned error: %v", err)
		}
	}
}

func BenchmarkText(b *testing.B) {
	f := benchGenerator(b)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := f.Text().Text(); err != nil {
			b.Fatalf("Text returned error: %v", err)
		}
	}
}
