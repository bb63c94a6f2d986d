// Package payment generates credit cards. Vendors, their number
// prefixes, lengths and draw weights come from the payment section of
// the data set, and every generated number passes the Luhn check.
package payment

import (
	"fmt"
	"strings"

	"github.com/getfairy/fairy/internal/data"
	"github.com/getfairy/fairy/pkg/producer"
)

// defaultCVVLength applies to vendors whose data does not say otherwise.
const defaultCVVLength = 3

// CreditCard is one generated card.
type CreditCard struct {
	// Vendor is the data set's vendor key, e.g. "visa".
	Vendor string `json:"vendor" yaml:"vendor"`

	// Number is the Luhn-valid card number.
	Number string `json:"number" yaml:"number"`

	// ExpiryDate in MM/YY form, in the future at generation time.
	ExpiryDate string `json:"expiryDate" yaml:"expiryDate"`

	// CVV is the card verification value, vendor-length digits.
	CVV string `json:"cvv" yaml:"cvv"`
}

// Masked returns the number with all but the last four digits hidden.
func (c CreditCard) Masked() string {
	if len(c.Number) <= 4 {
		return c.Number
	}
	return strings.Repeat("*", len(c.Number)-4) + c.Number[len(c.Number)-4:]
}

// Producer generates credit cards.
type Producer struct {
	base  *producer.Base
	dates *producer.Dates
	store *data.Store
}

// New returns a card producer over the given sampler, clock and data.
func New(base *producer.Base, dates *producer.Dates, store *data.Store) *Producer {
	return &Producer{base: base, dates: dates, store: store}
}

// request collects the constraints set by options before a card is
// generated.
type request struct {
	vendor      string
	expiryYears int
}

// Option constrains a single CreditCard call.
type Option func(*request)

// WithVendor pins the card to a data set vendor key, e.g. "visa".
// An unknown vendor is a validation error.
func WithVendor(vendor string) Option {
	return func(r *request) { r.vendor = vendor }
}

// WithExpiryYears caps the expiry draw at the given number of years
// from now instead of the data set's payment.maxExpiryYears.
func WithExpiryYears(years int) Option {
	return func(r *request) { r.expiryYears = years }
}

// Vendors returns the sorted vendor keys the data set defines.
func (p *Producer) Vendors() ([]string, error) {
	if !p.store.Has("payment.vendors") {
		return nil, fmt.Errorf("%w: payment.vendors", data.ErrKeyNotFound)
	}
	return p.store.MapKeys("payment.vendors"), nil
}

// CreditCard generates a card. Without options the vendor is drawn by
// its data set weight.
func (p *Producer) CreditCard(opts ...Option) (CreditCard, error) {
	var req request
	for _, opt := range opts {
		opt(&req)
	}

	vendor := req.vendor
	if vendor == "" {
		var err error
		if vendor, err = p.weightedVendor(); err != nil {
			return CreditCard{}, err
		}
	}

	key := "payment.vendors." + vendor
	if !p.store.Has(key) {
		return CreditCard{}, &producer.ValidationError{Field: "vendor", Message: fmt.Sprintf("unknown vendor %q", vendor)}
	}

	prefixes, err := p.store.StringList(key + ".prefixes")
	if err != nil {
		return CreditCard{}, err
	}
	prefix, err := p.base.Element(prefixes)
	if err != nil {
		return CreditCard{}, err
	}
	length, err := p.store.Int(key + ".length")
	if err != nil {
		return CreditCard{}, err
	}

	number, err := p.luhnNumber(prefix, length)
	if err != nil {
		return CreditCard{}, err
	}

	cvvLen := defaultCVVLength
	if p.store.Has(key + ".cvv") {
		if cvvLen, err = p.store.Int(key + ".cvv"); err != nil {
			return CreditCard{}, err
		}
	}
	cvv, err := p.base.Digits(cvvLen)
	if err != nil {
		return CreditCard{}, err
	}

	maxYears := req.expiryYears
	if maxYears == 0 {
		if maxYears, err = p.store.Int("payment.maxExpiryYears"); err != nil {
			return CreditCard{}, err
		}
	}
	expiry, err := p.dates.InFuture(maxYears)
	if err != nil {
		return CreditCard{}, err
	}

	return CreditCard{
		Vendor:     vendor,
		Number:     number,
		ExpiryDate: expiry.Format("01/06"),
		CVV:        cvv,
	}, nil
}

// weightedVendor draws a vendor key by its configured weight.
func (p *Producer) weightedVendor() (string, error) {
	vendors, err := p.Vendors()
	if err != nil {
		return "", err
	}
	weights := make(map[string]float64, len(vendors))
	for _, v := range vendors {
		w, err := p.store.Float("payment.vendors." + v + ".weight")
		if err != nil {
			return "", err
		}
		weights[v] = w
	}
	return p.base.WeightedKey(weights)
}

// luhnNumber builds a number of the given total length starting with
// prefix, with the final digit chosen to satisfy the Luhn check.
func (p *Producer) luhnNumber(prefix string, length int) (string, error) {
	if length <= len(prefix) {
		return "", &producer.ValidationError{
			Field:   "length",
			Message: fmt.Sprintf("card length %d does not fit prefix %q", length, prefix),
		}
	}

	digits := make([]int, length)
	for i, r := range prefix {
		if r < '0' || r > '9' {
			return "", &producer.ValidationError{Field: "prefix", Message: fmt.Sprintf("prefix %q contains non-digits", prefix)}
		}
		digits[i] = int(r - '0')
	}
	for i := len(prefix); i < length-1; i++ {
		digits[i] = p.base.Rand().IntN(10)
	}

	// Double every second digit counting from the check digit.
	sum := 0
	for i := 0; i < length-1; i++ {
		d := digits[i]
		if (length-i)%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	digits[length-1] = (10 - sum%10) % 10

	var sb strings.Builder
	sb.Grow(length)
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String(), nil
}

// LuhnValid reports whether a digit string passes the Luhn check.
func LuhnValid(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
