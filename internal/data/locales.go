package data

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ListLocales returns the sorted locale codes for which a
// <prefix>_<locale>.yml file exists anywhere under the filesystem.
func ListLocales(fsys fs.FS, prefix string) ([]string, error) {
	pattern := "**/" + prefix + "_*.yml"
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("scanning for locale files: %w", err)
	}

	seen := make(map[string]bool, len(matches))
	locales := make([]string, 0, len(matches))
	for _, m := range matches {
		name := path.Base(m)
		code := strings.TrimSuffix(strings.TrimPrefix(name, prefix+"_"), ".yml")
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		locales = append(locales, code)
	}
	sort.Strings(locales)
	return locales, nil
}
