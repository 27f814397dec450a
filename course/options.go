package course

// Option configures optional attributes of a Course or Collection.
type Option func(*attrs)

// attrs collects optional attributes before construction.
type attrs struct {
	id            string
	prefix        string
	num           string
	institution   string
	college       string
	department    string
	canonicalName string
}

// WithID sets an explicit identifier instead of the derived one.
func WithID(id string) Option {
	return func(a *attrs) { a.id = id }
}

// WithPrefix sets the department prefix, e.g. "PSY". Ignored by collections.
func WithPrefix(prefix string) Option {
	return func(a *attrs) { a.prefix = prefix }
}

// WithNum sets the course number, e.g. "101" or "302L". Ignored by collections.
func WithNum(num string) Option {
	return func(a *attrs) { a.num = num }
}

// WithInstitution sets the offering institution.
func WithInstitution(institution string) Option {
	return func(a *attrs) { a.institution = institution }
}

// WithCollege sets the offering college or school.
func WithCollege(college string) Option {
	return func(a *attrs) { a.college = college }
}

// WithDepartment sets the offering department.
func WithDepartment(department string) Option {
	return func(a *attrs) { a.department = department }
}

// WithCanonicalName sets the discipline-standard name.
func WithCanonicalName(name string) Option {
	return func(a *attrs) { a.canonicalName = name }
}

func applyOptions(opts []Option) attrs {
	var a attrs
	for _, opt := range opts {
		opt(&a)
	}

	return a
}
