// Package templates provides embedded scaffolding for new locale data files.
package templates

import (
	"bytes"
	"text/template"

	_ "embed"
)

//go:embed locale.yml.tmpl
var localeTemplate string

// LocaleData parameterizes the locale skeleton.
type LocaleData struct {
	// Code is the language code the file is for, e.g. "es".
	Code string
	// Prefix is the data file prefix, e.g. "fairy".
	Prefix string
}

// Locale renders the starter data file for a new locale.
func Locale(data LocaleData) ([]byte, error) {
	tmpl, err := template.New("locale").Parse(localeTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
