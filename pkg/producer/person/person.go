// Package person generates personal identities from locale data:
// names, contact details, identity documents, a home address and an
// employer.
package person

import (
	"strings"
	"time"

	"github.com/getfairy/fairy/pkg/producer/company"
)

// Sex is the gender a person was generated with. It also selects the
// gendered name lists in the locale data.
type Sex string

// Sexes.
const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Address is a generated home address.
type Address struct {
	// Street is the street name.
	Street string `json:"street" yaml:"street"`

	// StreetNumber is the house number.
	StreetNumber string `json:"streetNumber" yaml:"streetNumber"`

	// ApartmentNumber is set for roughly half the addresses.
	ApartmentNumber string `json:"apartmentNumber,omitempty" yaml:"apartmentNumber,omitempty"`

	// PostalCode is shaped like the locale's postal code format.
	PostalCode string `json:"postalCode" yaml:"postalCode"`

	// City is the city name.
	City string `json:"city" yaml:"city"`
}

// String renders the address on one line.
func (a Address) String() string {
	line := strings.TrimSpace(a.Street + " " + a.StreetNumber)
	if a.ApartmentNumber != "" {
		line += "/" + a.ApartmentNumber
	}
	if a.PostalCode != "" || a.City != "" {
		line += ", " + strings.TrimSpace(a.PostalCode+" "+a.City)
	}
	return line
}

// Person is one generated identity.
type Person struct {
	// Sex the person was generated with.
	Sex Sex `json:"sex" yaml:"sex"`

	// FirstName from the locale's gendered name list.
	FirstName string `json:"firstName" yaml:"firstName"`

	// MiddleName is present for a configurable share of people.
	MiddleName string `json:"middleName,omitempty" yaml:"middleName,omitempty"`

	// LastName from the locale's surname list, gendered where the
	// locale inflects surnames.
	LastName string `json:"lastName" yaml:"lastName"`

	// Email is a personal address on a public mail host.
	Email string `json:"email" yaml:"email"`

	// Username is an ASCII login name derived from the person's name.
	Username string `json:"username" yaml:"username"`

	// TelephoneNumber is shaped like one of the locale's phone formats.
	TelephoneNumber string `json:"telephoneNumber" yaml:"telephoneNumber"`

	// DateOfBirth at midnight.
	DateOfBirth time.Time `json:"dateOfBirth" yaml:"dateOfBirth"`

	// Age in full years, consistent with DateOfBirth.
	Age int `json:"age" yaml:"age"`

	// NationalIDNumber is shaped like the locale's format, empty when
	// the data set defines none.
	NationalIDNumber string `json:"nationalIdNumber,omitempty" yaml:"nationalIdNumber,omitempty"`

	// PassportNumber is shaped like the locale's format, empty when
	// the data set defines none.
	PassportNumber string `json:"passportNumber,omitempty" yaml:"passportNumber,omitempty"`

	// Address is the home address, zero when the data set defines no
	// address section.
	Address Address `json:"address" yaml:"address"`

	// Company is the employer.
	Company company.Company `json:"company" yaml:"company"`

	// CompanyEmail is the person's address on the employer's domain.
	CompanyEmail string `json:"companyEmail" yaml:"companyEmail"`
}

// FullName returns first, middle and last name separated by spaces.
func (p Person) FullName() string {
	if p.MiddleName == "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName + " " + p.MiddleName + " " + p.LastName
}

// IsMale reports whether the person was generated male.
func (p Person) IsMale() bool { return p.Sex == Male }

// IsFemale reports whether the person was generated female.
func (p Person) IsFemale() bool { return p.Sex == Female }
