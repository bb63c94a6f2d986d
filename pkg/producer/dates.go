package producer

import (
	"fmt"
	"time"
)

// Dates produces random instants between bounds or relative to the
// current clock. The clock is injectable so seeded runs stay
// reproducible.
type Dates struct {
	base *Base
	now  func() time.Time
}

// NewDates returns a date producer drawing from base. A nil now
// function uses time.Now.
func NewDates(base *Base, now func() time.Time) *Dates {
	if now == nil {
		now = time.Now
	}
	return &Dates{base: base, now: now}
}

// Now reports the producer's current clock time.
func (d *Dates) Now() time.Time {
	return d.now()
}

// Between returns a uniform instant in [from, to], truncated to whole
// seconds. Both bounds are inclusive.
func (d *Dates) Between(from, to time.Time) (time.Time, error) {
	if from.After(to) {
		return time.Time{}, &ValidationError{
			Field:   "range",
			Message: fmt.Sprintf("from %s is after to %s", from.Format(time.RFC3339), to.Format(time.RFC3339)),
		}
	}
	span := to.Sub(from)
	offset := time.Duration(d.base.rng.Int64N(int64(span) + 1))
	return from.Add(offset).Truncate(time.Second), nil
}

// InPast returns an instant between maxYears before now and now.
func (d *Dates) InPast(maxYears int) (time.Time, error) {
	if maxYears <= 0 {
		return time.Time{}, &ValidationError{Field: "maxYears", Message: fmt.Sprintf("%d must be positive", maxYears)}
	}
	now := d.now()
	return d.Between(now.AddDate(-maxYears, 0, 0), now)
}

// InFuture returns an instant between now and maxYears ahead.
func (d *Dates) InFuture(maxYears int) (time.Time, error) {
	if maxYears <= 0 {
		return time.Time{}, &ValidationError{Field: "maxYears", Message: fmt.Sprintf("%d must be positive", maxYears)}
	}
	now := d.now()
	return d.Between(now, now.AddDate(maxYears, 0, 0))
}

// Birthday returns a date of birth, at midnight in the clock's
// location, for a person whose age today falls in [minAge, maxAge].
func (d *Dates) Birthday(minAge, maxAge int) (time.Time, error) {
	if minAge < 0 {
		return time.Time{}, &ValidationError{Field: "minAge", Message: fmt.Sprintf("%d must not be negative", minAge)}
	}
	if maxAge < minAge {
		return time.Time{}, &ValidationError{Field: "range", Message: fmt.Sprintf("minAge %d is greater than maxAge %d", minAge, maxAge)}
	}
	now := d.now()
	// Someone aged exactly maxAge was born at the earliest maxAge+1
	// years ago tomorrow; someone aged minAge at the latest minAge
	// years ago today. Midnight stays in now's location so the age
	// arithmetic never crosses a zone boundary.
	earliest := now.AddDate(-(maxAge + 1), 0, 1)
	latest := now.AddDate(-minAge, 0, 0)
	t, err := d.Between(earliest, latest)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), nil
}
