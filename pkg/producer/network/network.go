// Package network generates network identifiers: IP and MAC addresses,
// UUIDs, domains, URLs and slugs.
package network

import (
	"fmt"
	mathrand "math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/getfairy/fairy/internal/data"
	"github.com/getfairy/fairy/internal/textutil"
	"github.com/getfairy/fairy/pkg/producer"
)

// randReader adapts the sampler's source to io.Reader for the uuid
// package. It never fails and, like the source, is not safe for
// concurrent use.
type randReader struct {
	rng *mathrand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.rng.IntN(256))
	}
	return len(p), nil
}

// Producer generates network identifiers.
type Producer struct {
	base   *producer.Base
	store  *data.Store
	reader randReader
}

// New returns a network producer over the given sampler and data.
func New(base *producer.Base, store *data.Store) *Producer {
	return &Producer{base: base, store: store, reader: randReader{rng: base.Rand()}}
}

// IPv4 generates a random IPv4 address.
func (p *Producer) IPv4() string {
	r := p.base.Rand()
	return fmt.Sprintf("%d.%d.%d.%d", r.IntN(256), r.IntN(256), r.IntN(256), r.IntN(256))
}

// PrivateIPv4 generates an address inside one of the RFC 1918 blocks.
func (p *Producer) PrivateIPv4() string {
	r := p.base.Rand()
	switch r.IntN(3) {
	case 0:
		return fmt.Sprintf("10.%d.%d.%d", r.IntN(256), r.IntN(256), r.IntN(256))
	case 1:
		return fmt.Sprintf("172.%d.%d.%d", 16+r.IntN(16), r.IntN(256), r.IntN(256))
	default:
		return fmt.Sprintf("192.168.%d.%d", r.IntN(256), r.IntN(256))
	}
}

// IPv6 generates a random IPv6 address in full expanded notation.
func (p *Producer) IPv6() string {
	r := p.base.Rand()
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", r.IntN(65536))
	}
	return strings.Join(groups, ":")
}

// MACAddress generates a random MAC address in uppercase hex notation.
func (p *Producer) MACAddress() string {
	r := p.base.Rand()
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		r.IntN(256), r.IntN(256), r.IntN(256),
		r.IntN(256), r.IntN(256), r.IntN(256))
}

// UUID generates a version 4 UUID from the producer's source, so
// seeded producers emit reproducible UUIDs.
func (p *Producer) UUID() string {
	u, err := uuid.NewRandomFromReader(p.reader)
	if err != nil {
		// The reader cannot fail.
		return uuid.Nil.String()
	}
	return u.String()
}

// Domain generates a domain from a latin word and one of the data
// set's domain suffixes.
func (p *Producer) Domain() (string, error) {
	words, err := p.store.StringList("text.latinWords")
	if err != nil {
		return "", err
	}
	word, err := p.base.Element(words)
	if err != nil {
		return "", err
	}
	tlds, err := p.store.StringList("net.domainSuffixes")
	if err != nil {
		return "", err
	}
	tld, err := p.base.Element(tlds)
	if err != nil {
		return "", err
	}
	return textutil.Slugify(word) + "." + tld, nil
}

// URL generates a URL with a scheme drawn from the net.schemes weight
// table, sometimes carrying a short slug path.
func (p *Producer) URL() (string, error) {
	schemes, err := p.store.WeightMap("net.schemes")
	if err != nil {
		return "", err
	}
	scheme, err := p.base.WeightedKey(schemes)
	if err != nil {
		return "", err
	}
	domain, err := p.Domain()
	if err != nil {
		return "", err
	}
	u := scheme + "://" + domain
	withPath, err := p.base.Chance(0.3)
	if err != nil {
		return "", err
	}
	if withPath {
		slug, err := p.Slug(2)
		if err != nil {
			return "", err
		}
		u += "/" + slug
	}
	return u, nil
}

// Slug generates wordCount latin words joined by hyphens.
func (p *Producer) Slug(wordCount int) (string, error) {
	if wordCount <= 0 {
		return "", &producer.ValidationError{Field: "wordCount", Message: fmt.Sprintf("%d must be positive", wordCount)}
	}
	words := make([]string, 0, wordCount)
	all, err := p.store.StringList("text.latinWords")
	if err != nil {
		return "", err
	}
	for i := 0; i < wordCount; i++ {
		w, err := p.base.Element(all)
		if err != nil {
			return "", err
		}
		words = append(words, textutil.Slugify(w))
	}
	return strings.Join(words, "-"), nil
}
