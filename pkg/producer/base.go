package producer

import (
	"fmt"
	mathrand "math/rand/v2"
	"sort"
	"strings"
)

const (
	digitChars = "0123456789"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
)

// Base is the primitive sampler shared by all producers. Every random
// draw in the library goes through one *Base, so seeding its source
// fixes the whole output stream.
type Base struct {
	rng *mathrand.Rand
}

// NewBase returns a sampler drawing from rng. A nil rng gets a fresh
// PCG source seeded from global entropy.
func NewBase(rng *mathrand.Rand) *Base {
	if rng == nil {
		rng = mathrand.New(mathrand.NewPCG(mathrand.Uint64(), mathrand.Uint64()))
	}
	return &Base{rng: rng}
}

// Rand exposes the underlying source for callers that need raw draws.
func (b *Base) Rand() *mathrand.Rand { return b.rng }

// IntBetween returns a uniform int in [min, max], both ends inclusive.
func (b *Base) IntBetween(min, max int) (int, error) {
	if min > max {
		return 0, &ValidationError{Field: "range", Message: fmt.Sprintf("min %d is greater than max %d", min, max)}
	}
	return min + b.rng.IntN(max-min+1), nil
}

// Float64Between returns a uniform float64 in [min, max).
func (b *Base) Float64Between(min, max float64) (float64, error) {
	if min > max {
		return 0, &ValidationError{Field: "range", Message: fmt.Sprintf("min %g is greater than max %g", min, max)}
	}
	if min == max {
		return min, nil
	}
	return min + b.rng.Float64()*(max-min), nil
}

// Chance returns true with probability p, where p is in [0, 1].
func (b *Base) Chance(p float64) (bool, error) {
	if p < 0 || p > 1 {
		return false, &ValidationError{Field: "chance", Message: fmt.Sprintf("probability %g is outside [0, 1]", p)}
	}
	return b.rng.Float64() < p, nil
}

// Element returns a uniformly chosen element of list.
func (b *Base) Element(list []string) (string, error) {
	if len(list) == 0 {
		return "", &ValidationError{Field: "list", Message: "cannot pick from an empty list"}
	}
	return list[b.rng.IntN(len(list))], nil
}

// WeightedKey picks a key from weights with probability proportional to
// its weight. Keys are visited in sorted order so equal seeds give
// equal picks regardless of map iteration order. Weights must be
// non-negative and sum to a positive total.
func (b *Base) WeightedKey(weights map[string]float64) (string, error) {
	if len(weights) == 0 {
		return "", &ValidationError{Field: "weights", Message: "cannot pick from an empty weight table"}
	}
	keys := make([]string, 0, len(weights))
	total := 0.0
	for key, w := range weights {
		if w < 0 {
			return "", &ValidationError{Field: "weights", Message: fmt.Sprintf("weight for %q is negative", key)}
		}
		total += w
		keys = append(keys, key)
	}
	if total <= 0 {
		return "", &ValidationError{Field: "weights", Message: "weights sum to zero"}
	}
	sort.Strings(keys)

	roll := b.rng.Float64() * total
	for _, key := range keys {
		roll -= weights[key]
		if roll < 0 {
			return key, nil
		}
	}
	// Float rounding can leave a sliver past the last bucket.
	return keys[len(keys)-1], nil
}

// Digits returns a string of n random decimal digits.
func (b *Base) Digits(n int) (string, error) {
	if n <= 0 {
		return "", &ValidationError{Field: "length", Message: fmt.Sprintf("length %d must be positive", n)}
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(digitChars[b.rng.IntN(10)])
	}
	return sb.String(), nil
}

// RandomString returns n random lowercase letters.
func (b *Base) RandomString(n int) (string, error) {
	if n <= 0 {
		return "", &ValidationError{Field: "length", Message: fmt.Sprintf("length %d must be positive", n)}
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(lowerChars[b.rng.IntN(26)])
	}
	return sb.String(), nil
}

// Numerify replaces every '#' in the mask with a random digit.
func (b *Base) Numerify(mask string) string {
	var sb strings.Builder
	sb.Grow(len(mask))
	for _, r := range mask {
		if r == '#' {
			sb.WriteByte(digitChars[b.rng.IntN(10)])
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Letterify replaces every '?' in the mask with a random uppercase letter.
func (b *Base) Letterify(mask string) string {
	var sb strings.Builder
	sb.Grow(len(mask))
	for _, r := range mask {
		if r == '?' {
			sb.WriteByte(upperChars[b.rng.IntN(26)])
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Bothify fills a mask with both digit ('#') and letter ('?')
// placeholders, e.g. "??-####" becomes "XK-5190".
func (b *Base) Bothify(mask string) string {
	var sb strings.Builder
	sb.Grow(len(mask))
	for _, r := range mask {
		switch r {
		case '#':
			sb.WriteByte(digitChars[b.rng.IntN(10)])
		case '?':
			sb.WriteByte(upperChars[b.rng.IntN(26)])
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Templatify replaces each {token} in the pattern with its value from
// subs. A token without a substitution is a validation error, so a typo
// in a data file pattern fails instead of leaking braces into output.
func (b *Base) Templatify(pattern string, subs map[string]string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(pattern))
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			sb.WriteString(rest)
			return sb.String(), nil
		}
		end += open
		token := rest[open+1 : end]
		value, ok := subs[token]
		if !ok {
			return "", &ValidationError{Field: "pattern", Message: fmt.Sprintf("unknown template token {%s}", token)}
		}
		sb.WriteString(rest[:open])
		sb.WriteString(value)
		rest = rest[end+1:]
	}
}
