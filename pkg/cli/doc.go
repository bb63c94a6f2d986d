// Package cli provides the command-line interface for fairy.
//
// The cli package implements all commands for generating fake data:
//   - person: Generate people with names, addresses and documents
//   - company: Generate companies with VAT and registration numbers
//   - creditcard: Generate Luhn-valid credit card numbers
//   - text: Generate filler text from the locale's word corpus
//   - date: Generate random instants between bounds
//   - network: Generate IPs, MACs, UUIDs, domains, URLs and slugs
//   - schema: Generate fake JSON documents from a JSON Schema
//   - locale: List available locales and scaffold new data files
//   - version: Show fairy version
//
// Persistent flags select the locale (--locale), the data source
// (--data-dir, --file-prefix), the seed (--seed) and the output shape
// (--json). Generator commands accept --count for batches, and person
// and company rows can be filtered with a --where expression evaluated
// against the row's JSON fields.
//
// Usage:
//
//	fairy person -l de -n 5 --sex female --json
//	fairy person --seed 42 --where 'age > 30'
//	fairy company -l pl -n 10
//	fairy creditcard --vendor visa -n 3
//	fairy text --sentences 3
//	fairy date --from 2020-01-01 --to 2020-12-31
//	fairy network uuid -n 10
//	fairy schema user.schema.json -n 20
//	fairy locale new es -o ./data
package cli
