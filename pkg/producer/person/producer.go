package person

import (
	"fmt"
	"strconv"
	"time"

	"github.com/getfairy/fairy/internal/data"
	"github.com/getfairy/fairy/internal/textutil"
	"github.com/getfairy/fairy/pkg/producer"
	"github.com/getfairy/fairy/pkg/producer/company"
)

// Producer generates people. The draw order inside Person is fixed, so
// equal seeds yield equal people.
type Producer struct {
	base      *producer.Base
	dates     *producer.Dates
	store     *data.Store
	companies *company.Producer
}

// New returns a person producer over the given sampler, clock and data.
func New(base *producer.Base, dates *producer.Dates, store *data.Store, companies *company.Producer) *Producer {
	return &Producer{base: base, dates: dates, store: store, companies: companies}
}

// Person generates one identity, honoring any options.
func (p *Producer) Person(opts ...Option) (Person, error) {
	var r request
	for _, opt := range opts {
		opt(&r)
	}

	sex, err := p.pickSex(r)
	if err != nil {
		return Person{}, err
	}

	first := r.firstName
	if first == "" {
		if first, err = p.givenName(sex); err != nil {
			return Person{}, err
		}
	}
	middle := r.middleName
	if middle == "" && !r.noMiddle {
		if middle, err = p.middleName(sex); err != nil {
			return Person{}, err
		}
	}
	last := r.lastName
	if last == "" {
		if last, err = p.lastName(sex); err != nil {
			return Person{}, err
		}
	}

	dob, age, err := p.birth(r)
	if err != nil {
		return Person{}, err
	}

	phone, err := p.telephone(r.telephoneFormat)
	if err != nil {
		return Person{}, err
	}
	nationalID, err := p.document("person.nationalIDFormat")
	if err != nil {
		return Person{}, err
	}
	passport, err := p.document("person.passportFormat")
	if err != nil {
		return Person{}, err
	}

	addr, err := p.address()
	if err != nil {
		return Person{}, err
	}

	employer, err := p.companies.Company()
	if err != nil {
		return Person{}, err
	}

	username, err := p.username(first, last)
	if err != nil {
		return Person{}, err
	}
	email, err := p.email(first, last)
	if err != nil {
		return Person{}, err
	}

	return Person{
		Sex:              sex,
		FirstName:        first,
		MiddleName:       middle,
		LastName:         last,
		Email:            email,
		Username:         username,
		TelephoneNumber:  phone,
		DateOfBirth:      dob,
		Age:              age,
		NationalIDNumber: nationalID,
		PassportNumber:   passport,
		Address:          addr,
		Company:          employer,
		CompanyEmail:     textutil.Slugify(first) + "." + textutil.Slugify(last) + "@" + employer.Domain,
	}, nil
}

func (p *Producer) pickSex(r request) (Sex, error) {
	switch r.sex {
	case Male, Female:
		return r.sex, nil
	case "":
	default:
		return "", &producer.ValidationError{Field: "sex", Message: fmt.Sprintf("unknown sex %q", r.sex)}
	}
	male, err := p.base.Chance(0.5)
	if err != nil {
		return "", err
	}
	if male {
		return Male, nil
	}
	return Female, nil
}

func (p *Producer) givenName(sex Sex) (string, error) {
	names, err := p.store.StringList("person.firstNames." + string(sex))
	if err != nil {
		return "", err
	}
	return p.base.Element(names)
}

func (p *Producer) middleName(sex Sex) (string, error) {
	chance, err := p.store.Float("person.middleNameChance")
	if err != nil {
		return "", err
	}
	hit, err := p.base.Chance(chance)
	if err != nil || !hit {
		return "", err
	}
	return p.givenName(sex)
}

// lastName prefers the gendered surname list when the locale inflects
// surnames, falling back to a flat list.
func (p *Producer) lastName(sex Sex) (string, error) {
	key := "person.lastNames"
	if p.store.Has(key + "." + string(sex)) {
		key += "." + string(sex)
	}
	names, err := p.store.StringList(key)
	if err != nil {
		return "", err
	}
	return p.base.Element(names)
}

func (p *Producer) birth(r request) (time.Time, int, error) {
	minAge, maxAge := r.minAge, r.maxAge
	if !r.hasAge {
		var err error
		if minAge, err = p.store.Int("person.minAge"); err != nil {
			return time.Time{}, 0, err
		}
		if maxAge, err = p.store.Int("person.maxAge"); err != nil {
			return time.Time{}, 0, err
		}
	}
	dob, err := p.dates.Birthday(minAge, maxAge)
	if err != nil {
		return time.Time{}, 0, err
	}
	return dob, ageAt(dob, p.dates.Now()), nil
}

func (p *Producer) telephone(format string) (string, error) {
	if format == "" {
		formats, err := p.store.StringList("person.telephoneFormats")
		if err != nil {
			return "", err
		}
		if format, err = p.base.Element(formats); err != nil {
			return "", err
		}
	}
	return p.base.Numerify(format), nil
}

// document fills the mask at key, or returns empty when the data set
// defines none.
func (p *Producer) document(key string) (string, error) {
	if !p.store.Has(key) {
		return "", nil
	}
	mask, err := p.store.String(key)
	if err != nil {
		return "", err
	}
	return p.base.Bothify(mask), nil
}

// address generates a home address, or a zero Address when the data
// set has no address section.
func (p *Producer) address() (Address, error) {
	if !p.store.Has("address.streets") {
		return Address{}, nil
	}

	streets, err := p.store.StringList("address.streets")
	if err != nil {
		return Address{}, err
	}
	street, err := p.base.Element(streets)
	if err != nil {
		return Address{}, err
	}

	maxNumber, err := p.store.Int("address.maxStreetNumber")
	if err != nil {
		return Address{}, err
	}
	number, err := p.base.IntBetween(1, maxNumber)
	if err != nil {
		return Address{}, err
	}

	apartment := ""
	aptChance, err := p.store.Float("address.apartmentChance")
	if err != nil {
		return Address{}, err
	}
	hasApt, err := p.base.Chance(aptChance)
	if err != nil {
		return Address{}, err
	}
	if hasApt {
		maxApt, err := p.store.Int("address.maxApartmentNumber")
		if err != nil {
			return Address{}, err
		}
		apt, err := p.base.IntBetween(1, maxApt)
		if err != nil {
			return Address{}, err
		}
		apartment = strconv.Itoa(apt)
	}

	mask, err := p.store.String("address.postalCodeFormat")
	if err != nil {
		return Address{}, err
	}
	cities, err := p.store.StringList("address.cities")
	if err != nil {
		return Address{}, err
	}
	city, err := p.base.Element(cities)
	if err != nil {
		return Address{}, err
	}

	return Address{
		Street:          street,
		StreetNumber:    strconv.Itoa(number),
		ApartmentNumber: apartment,
		PostalCode:      p.base.Numerify(mask),
		City:            city,
	}, nil
}

func (p *Producer) username(first, last string) (string, error) {
	formats, err := p.store.StringList("person.usernameFormats")
	if err != nil {
		return "", err
	}
	format, err := p.base.Element(formats)
	if err != nil {
		return "", err
	}
	return p.expandNameFormat(format, first, last)
}

func (p *Producer) email(first, last string) (string, error) {
	formats, err := p.store.StringList("person.usernameFormats")
	if err != nil {
		return "", err
	}
	format, err := p.base.Element(formats)
	if err != nil {
		return "", err
	}
	hosts, err := p.store.StringList("net.emailHosts")
	if err != nil {
		return "", err
	}
	host, err := p.base.Element(hosts)
	if err != nil {
		return "", err
	}
	local, err := p.expandNameFormat(format, first, last)
	if err != nil {
		return "", err
	}
	return local + "@" + host, nil
}

// expandNameFormat fills a username pattern like "{f}{last}" with the
// folded name parts.
func (p *Producer) expandNameFormat(format, first, last string) (string, error) {
	f := textutil.Slugify(first)
	l := textutil.Slugify(last)
	return p.base.Templatify(format, map[string]string{
		"first": f,
		"last":  l,
		"f":     initial(f),
		"l":     initial(l),
	})
}

func initial(s string) string {
	if s == "" {
		return ""
	}
	return s[:1]
}

func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if dob.AddDate(age, 0, 0).After(now) {
		age--
	}
	return age
}
