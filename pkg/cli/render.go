package cli

import (
	"fmt"
	"os"
	"text/template"
)

// renderRows writes one line per record through a Go text/template, so
// output can be shaped for shells and fixtures:
//
//	fairy person -n 3 --format "{{.FirstName}};{{.Email}}"
func renderRows[T any](format string, rows []T) error {
	tmpl, err := template.New("format").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	for _, row := range rows {
		if err := tmpl.Execute(os.Stdout, row); err != nil {
			return fmt.Errorf("rendering format template: %w", err)
		}
		fmt.Println()
	}
	return nil
}
