// Package output formats command results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// JSON writes indented JSON to stdout.
func JSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Collection writes generated records as JSON. A single record is
// written bare and a batch as an array, so `fairy person` yields one
// object rather than a one-element list.
func Collection[T any](items []T) error {
	if len(items) == 1 {
		return JSON(items[0])
	}
	return JSON(items)
}

// Table creates an aligned table writer for stdout.
// Remember to call Flush() when done writing.
func Table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// Lines prints one value per line to stdout.
func Lines(values ...string) {
	for _, v := range values {
		fmt.Println(v)
	}
}
