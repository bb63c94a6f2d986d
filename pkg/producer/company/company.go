// Package company generates company identities from locale data.
package company

import (
	"github.com/getfairy/fairy/internal/data"
	"github.com/getfairy/fairy/internal/textutil"
	"github.com/getfairy/fairy/pkg/producer"
)

// Company is one generated company identity.
type Company struct {
	// Name is the display name, possibly carrying a legal suffix.
	Name string `json:"name" yaml:"name"`

	// Domain is the company web domain, e.g. "crestline.io".
	Domain string `json:"domain" yaml:"domain"`

	// Email is the office contact address on the company domain.
	Email string `json:"email" yaml:"email"`

	// VATNumber is a VAT identification number shaped like the
	// locale's format.
	VATNumber string `json:"vatNumber" yaml:"vatNumber"`

	// RegistrationNumber is a company register entry shaped like the
	// locale's format.
	RegistrationNumber string `json:"registrationNumber" yaml:"registrationNumber"`
}

// Producer generates companies. Create one via New and share it; each
// Company call draws fresh values.
type Producer struct {
	base  *producer.Base
	store *data.Store
}

// New returns a company producer over the given sampler and data.
func New(base *producer.Base, store *data.Store) *Producer {
	return &Producer{base: base, store: store}
}

// request collects the constraints set by options before a company is
// generated.
type request struct {
	name   string
	domain string
	vat    string
}

// Option constrains a single Company call.
type Option func(*request)

// WithName pins the display name. The domain still derives from it
// unless WithDomain pins that too.
func WithName(name string) Option {
	return func(r *request) { r.name = name }
}

// WithDomain pins the web domain; the contact email follows it.
func WithDomain(domain string) Option {
	return func(r *request) { r.domain = domain }
}

// WithVATNumber pins the VAT identification number.
func WithVATNumber(vat string) Option {
	return func(r *request) { r.vat = vat }
}

// Company generates one company. Draw order is fixed, so equal seeds
// and equal options yield equal companies.
func (p *Producer) Company(opts ...Option) (Company, error) {
	var req request
	for _, opt := range opts {
		opt(&req)
	}

	name := req.name
	bare := req.name
	if name == "" {
		names, err := p.store.StringList("company.names")
		if err != nil {
			return Company{}, err
		}
		if bare, err = p.base.Element(names); err != nil {
			return Company{}, err
		}

		name = bare
		suffixChance, err := p.store.Float("company.suffixChance")
		if err != nil {
			return Company{}, err
		}
		withSuffix, err := p.base.Chance(suffixChance)
		if err != nil {
			return Company{}, err
		}
		if withSuffix {
			suffixes, err := p.store.StringList("company.suffixes")
			if err != nil {
				return Company{}, err
			}
			suffix, err := p.base.Element(suffixes)
			if err != nil {
				return Company{}, err
			}
			name = bare + " " + suffix
		}
	}

	domain := req.domain
	if domain == "" {
		tlds, err := p.store.StringList("net.domainSuffixes")
		if err != nil {
			return Company{}, err
		}
		tld, err := p.base.Element(tlds)
		if err != nil {
			return Company{}, err
		}
		// The domain comes from the bare name so a legal suffix never
		// leaks into it.
		domain = textutil.Slugify(bare) + "." + tld
	}

	prefixes, err := p.store.StringList("company.emailPrefixes")
	if err != nil {
		return Company{}, err
	}
	prefix, err := p.base.Element(prefixes)
	if err != nil {
		return Company{}, err
	}

	vat := req.vat
	if vat == "" {
		vatMask, err := p.store.String("company.vatFormat")
		if err != nil {
			return Company{}, err
		}
		vat = p.base.Bothify(vatMask)
	}
	regMask, err := p.store.String("company.registrationFormat")
	if err != nil {
		return Company{}, err
	}

	return Company{
		Name:               name,
		Domain:             domain,
		Email:              prefix + "@" + domain,
		VATNumber:          vat,
		RegistrationNumber: p.base.Bothify(regMask),
	}, nil
}
