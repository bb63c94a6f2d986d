// Package textutil folds accented and special Latin characters to
// plain ASCII. Emails, usernames and domains are built from locale
// name data, so "Müller" has to become "muller" before it can appear
// left of an @.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// specials transliterates Latin letters that do not decompose into a
// base letter plus combining marks.
var specials = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"ł", "l", "Ł", "L",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"þ", "th", "Þ", "TH",
	"ð", "d", "Ð", "D",
)

// FoldASCII converts s to its closest ASCII form: special letters are
// transliterated, combining marks stripped, and anything left outside
// ASCII dropped.
func FoldASCII(s string) string {
	s = specials.Replace(s)
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	var sb strings.Builder
	sb.Grow(len(stripped))
	for _, r := range stripped {
		if r < 128 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Slugify lowercases s, folds it to ASCII and strips everything but
// letters and digits.
func Slugify(s string) string {
	folded := strings.ToLower(FoldASCII(s))
	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
