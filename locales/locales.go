// Package locales carries the YAML data files bundled with the library.
//
// The base file fairy.yml holds locale-neutral data. Each fairy_<lang>.yml
// file layers a locale on top of it: scalars replace base values, lists
// extend them, and nested maps merge key by key.
package locales

import (
	"embed"
)

//go:embed *.yml
var dataFS embed.FS

// DefaultPrefix is the file prefix of the bundled data set.
const DefaultPrefix = "fairy"

// FS returns the embedded data files.
func FS() embed.FS {
	return dataFS
}
