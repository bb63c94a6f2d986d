package person

// request collects the constraints set by options before a person is
// generated.
type request struct {
	sex             Sex
	minAge          int
	maxAge          int
	hasAge          bool
	firstName       string
	lastName        string
	middleName      string
	noMiddle        bool
	telephoneFormat string
}

// Option constrains a single Person call.
type Option func(*request)

// WithMale pins the generated person to male.
func WithMale() Option {
	return func(r *request) { r.sex = Male }
}

// WithFemale pins the generated person to female.
func WithFemale() Option {
	return func(r *request) { r.sex = Female }
}

// WithSex pins the generated person to the given sex.
func WithSex(sex Sex) Option {
	return func(r *request) { r.sex = sex }
}

// WithAgeBetween pins the generated age to [min, max] years instead of
// the data set's default range.
func WithAgeBetween(min, max int) Option {
	return func(r *request) {
		r.minAge, r.maxAge = min, max
		r.hasAge = true
	}
}

// WithAge pins the generated age exactly.
func WithAge(age int) Option {
	return WithAgeBetween(age, age)
}

// WithFirstName pins the given name instead of sampling one. Derived
// fields like the username and email follow it.
func WithFirstName(name string) Option {
	return func(r *request) { r.firstName = name }
}

// WithLastName pins the surname instead of sampling one.
func WithLastName(name string) Option {
	return func(r *request) { r.lastName = name }
}

// WithMiddleName pins the middle name, which is otherwise present only
// by chance.
func WithMiddleName(name string) Option {
	return func(r *request) { r.middleName = name }
}

// WithoutMiddleName suppresses the middle name.
func WithoutMiddleName() Option {
	return func(r *request) { r.noMiddle = true }
}

// WithTelephoneFormat pins the telephone mask ('#' becomes a digit)
// instead of drawing one from the data set.
func WithTelephoneFormat(format string) Option {
	return func(r *request) { r.telephoneFormat = format }
}
