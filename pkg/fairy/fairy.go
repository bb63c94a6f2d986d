package fairy

import (
	"errors"
	"fmt"
	"io/fs"
	mathrand "math/rand/v2"
	"strings"

	"golang.org/x/text/language"

	"github.com/getfairy/fairy/internal/data"
	"github.com/getfairy/fairy/locales"
	"github.com/getfairy/fairy/pkg/producer"
	"github.com/getfairy/fairy/pkg/producer/company"
	"github.com/getfairy/fairy/pkg/producer/network"
	"github.com/getfairy/fairy/pkg/producer/payment"
	"github.com/getfairy/fairy/pkg/producer/person"
	"github.com/getfairy/fairy/pkg/producer/text"
)

// Defaults applied when no option says otherwise.
const (
	DefaultLocale = "en"
	DefaultPrefix = locales.DefaultPrefix
)

// Fairy is the entry point. It owns one data store and one random
// source shared by all its producers.
//
// A Fairy is not safe for concurrent use; create one per goroutine.
type Fairy struct {
	store     *data.Store
	base      *producer.Base
	dates     *producer.Dates
	people    *person.Producer
	companies *company.Producer
	texts     *text.Producer
	payments  *payment.Producer
	networks  *network.Producer
	locale    string
}

// New builds a generator. Without options it serves the bundled English
// data with an entropy-seeded source.
func New(opts ...Option) (*Fairy, error) {
	s := settings{
		locale: DefaultLocale,
		prefix: DefaultPrefix,
		fsys:   locales.FS(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	lang, err := normalizeLocale(s.locale)
	if err != nil {
		return nil, err
	}

	store, err := data.Load(data.Config{
		FS:     s.fsys,
		Prefix: s.prefix,
		Locale: lang,
		Logger: s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("loading data: %w", err)
	}

	rng := s.rng
	if rng == nil {
		if s.hasSeed {
			rng = mathrand.New(mathrand.NewPCG(s.seed, 0))
		} else {
			rng = mathrand.New(mathrand.NewPCG(mathrand.Uint64(), mathrand.Uint64()))
		}
	}

	base := producer.NewBase(rng)
	dates := producer.NewDates(base, s.clock)
	companies := company.New(base, store)

	return &Fairy{
		store:     store,
		base:      base,
		dates:     dates,
		companies: companies,
		people:    person.New(base, dates, store, companies),
		texts:     text.New(base, store, lang),
		payments:  payment.New(base, dates, store),
		networks:  network.New(base, store),
		locale:    lang,
	}, nil
}

// normalizeLocale collapses a BCP 47 tag to its base language, so
// "en-US" selects the "en" data file. Well-formed but unregistered
// codes pass through for custom data sets; malformed ones are
// rejected.
func normalizeLocale(code string) (string, error) {
	if code == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		var verr language.ValueError
		if errors.As(err, &verr) {
			return strings.ToLower(code), nil
		}
		return "", fmt.Errorf("invalid locale %q: %v", code, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// Locale returns the language code the generator draws data for.
func (f *Fairy) Locale() string { return f.locale }

// Person generates one identity, honoring options like
// person.WithFemale or person.WithAgeBetween.
func (f *Fairy) Person(opts ...person.Option) (person.Person, error) {
	return f.people.Person(opts...)
}

// Company generates one company identity, honoring options like
// company.WithName.
func (f *Fairy) Company(opts ...company.Option) (company.Company, error) {
	return f.companies.Company(opts...)
}

// CreditCard generates one credit card. The vendor is drawn by weight
// unless pinned with payment.WithVendor.
func (f *Fairy) CreditCard(opts ...payment.Option) (payment.CreditCard, error) {
	return f.payments.CreditCard(opts...)
}

// Text returns the text producer.
func (f *Fairy) Text() *text.Producer { return f.texts }

// Payment returns the payment producer for vendor-specific cards.
func (f *Fairy) Payment() *payment.Producer { return f.payments }

// Network returns the network identifier producer.
func (f *Fairy) Network() *network.Producer { return f.networks }

// Dates returns the date producer.
func (f *Fairy) Dates() *producer.Dates { return f.dates }

// Base returns the primitive sampler, for callers composing their own
// draws on the generator's stream.
func (f *Fairy) Base() *producer.Base { return f.base }

// Locales returns the locale codes bundled with the library.
func Locales() ([]string, error) {
	return data.ListLocales(locales.FS(), locales.DefaultPrefix)
}

// LocalesIn returns the locale codes available for a prefix under an
// arbitrary filesystem, e.g. a custom data directory.
func LocalesIn(fsys fs.FS, prefix string) ([]string, error) {
	return data.ListLocales(fsys, prefix)
}
