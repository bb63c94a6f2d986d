// Package schema generates fake JSON documents from JSON Schema.
//
// The generator honors the common structural keywords: type, properties,
// required, items, prefixItems, enum, const, examples, anyOf, oneOf,
// allOf, $ref, numeric bounds, string length bounds and array size
// bounds. String values are picked by format (email, uuid, date-time,
// ipv4, ...) or by property name, so a field called firstName receives a
// plausible first name in the generator's locale.
//
// Exotic keywords (pattern, patternProperties, multipleOf, not,
// if/then/else, uniqueItems) are ignored. Validate the output before
// use if a schema leans on those.
package schema

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/getfairy/fairy/pkg/fairy"
	"github.com/getfairy/fairy/pkg/producer/person"
)

// maxDepth caps recursion so self-referencing schemas terminate.
const maxDepth = 16

// Generator produces fake documents that validate against a compiled
// JSON Schema, drawing values from a fairy generator.
type Generator struct {
	f *fairy.Fairy
}

// New returns a Generator drawing data from f.
func New(f *fairy.Fairy) *Generator {
	return &Generator{f: f}
}

// Compile parses a JSON Schema document.
func Compile(doc string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("schema.json", strings.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return compiler.Compile("schema.json")
}

// CompileFile parses the JSON Schema at path.
func CompileFile(path string) (*jsonschema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Compile(string(data))
}

// FromFile compiles the schema at path and generates one document.
func (g *Generator) FromFile(path string) (interface{}, error) {
	s, err := CompileFile(path)
	if err != nil {
		return nil, err
	}
	return g.Generate(s)
}

// FromString compiles doc and generates one document.
func (g *Generator) FromString(doc string) (interface{}, error) {
	s, err := Compile(doc)
	if err != nil {
		return nil, err
	}
	return g.Generate(s)
}

// Generate produces one fake document satisfying s. Person-flavored
// fields within a document come from a single generated identity, so
// firstName, lastName and email agree with each other.
func (g *Generator) Generate(s *jsonschema.Schema) (interface{}, error) {
	return g.fake(&docState{}, s, "", 0)
}

// docState carries the per-document identity cache.
type docState struct {
	person *person.Person
}

func (g *Generator) personFor(st *docState) (person.Person, error) {
	if st.person == nil {
		p, err := g.f.Person()
		if err != nil {
			return person.Person{}, err
		}
		st.person = &p
	}
	return *st.person, nil
}

func (g *Generator) fake(st *docState, s *jsonschema.Schema, name string, depth int) (interface{}, error) {
	if s == nil || depth > maxDepth {
		return nil, nil
	}
	if s.Ref != nil {
		return g.fake(st, s.Ref, name, depth+1)
	}
	if s.Always != nil {
		if !*s.Always {
			return nil, fmt.Errorf("schema for %q permits no value", name)
		}
		return g.f.Text().LatinWord()
	}

	// A const, enum or example decides the value outright.
	if len(s.Constant) > 0 {
		return s.Constant[0], nil
	}
	if len(s.Enum) > 0 {
		return g.pick(s.Enum)
	}
	if len(s.Examples) > 0 {
		return g.pick(s.Examples)
	}

	if len(s.AnyOf) > 0 {
		member, err := g.pickSchema(s.AnyOf)
		if err != nil {
			return nil, err
		}
		return g.fake(st, member, name, depth+1)
	}
	if len(s.OneOf) > 0 {
		member, err := g.pickSchema(s.OneOf)
		if err != nil {
			return nil, err
		}
		return g.fake(st, member, name, depth+1)
	}
	if len(s.AllOf) > 0 {
		return g.fakeAllOf(st, s.AllOf, name, depth)
	}

	switch g.schemaType(s) {
	case "object":
		return g.fakeObject(st, s, depth)
	case "array":
		return g.fakeArray(st, s, name, depth)
	case "integer":
		return g.fakeInteger(s)
	case "number":
		return g.fakeNumber(s)
	case "boolean":
		return g.f.Base().Chance(0.5)
	case "null":
		return nil, nil
	default:
		return g.fakeString(st, s, name)
	}
}

// schemaType picks the type to generate. Schemas without an explicit
// type are classified by their shape.
func (g *Generator) schemaType(s *jsonschema.Schema) string {
	if len(s.Types) > 0 {
		return s.Types[0]
	}
	if len(s.Properties) > 0 || len(s.Required) > 0 {
		return "object"
	}
	if s.Items != nil || s.Items2020 != nil || len(s.PrefixItems) > 0 {
		return "array"
	}
	return "string"
}

func (g *Generator) fakeObject(st *docState, s *jsonschema.Schema, depth int) (interface{}, error) {
	obj := make(map[string]interface{}, len(s.Properties))

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v, err := g.fake(st, s.Properties[name], name, depth+1)
		if err != nil {
			return nil, err
		}
		obj[name] = v
	}

	// Required properties without a subschema still need a value.
	for _, name := range s.Required {
		if _, ok := obj[name]; ok {
			continue
		}
		w, err := g.f.Text().LatinWord()
		if err != nil {
			return nil, err
		}
		obj[name] = w
	}

	return obj, nil
}

func (g *Generator) fakeArray(st *docState, s *jsonschema.Schema, name string, depth int) (interface{}, error) {
	// Tuple forms have one schema per position.
	tuple := s.PrefixItems
	if list, ok := s.Items.([]*jsonschema.Schema); ok {
		tuple = list
	}
	if len(tuple) > 0 {
		out := make([]interface{}, 0, len(tuple))
		for _, member := range tuple {
			v, err := g.fake(st, member, name, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	item := s.Items2020
	if item == nil {
		if sub, ok := s.Items.(*jsonschema.Schema); ok {
			item = sub
		}
	}

	min, max := 1, 3
	if s.MinItems >= 0 {
		min = s.MinItems
		if max < min {
			max = min + 2
		}
	}
	if s.MaxItems >= 0 && s.MaxItems < max {
		max = s.MaxItems
	}
	if max < min {
		max = min
	}
	count, err := g.f.Base().IntBetween(min, max)
	if err != nil {
		return nil, err
	}

	out := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		v, err := g.fake(st, item, name, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (g *Generator) fakeInteger(s *jsonschema.Schema) (interface{}, error) {
	min, max := 0, 1000
	if s.Minimum != nil {
		f, _ := s.Minimum.Float64()
		min = int(math.Ceil(f))
	}
	if s.ExclusiveMinimum != nil {
		f, _ := s.ExclusiveMinimum.Float64()
		min = int(math.Floor(f)) + 1
	}
	if s.Maximum != nil {
		f, _ := s.Maximum.Float64()
		max = int(math.Floor(f))
	}
	if s.ExclusiveMaximum != nil {
		f, _ := s.ExclusiveMaximum.Float64()
		max = int(math.Ceil(f)) - 1
	}
	if max < min {
		max = min
	}
	return g.f.Base().IntBetween(min, max)
}

func (g *Generator) fakeNumber(s *jsonschema.Schema) (interface{}, error) {
	min, max := 0.0, 1000.0
	if s.Minimum != nil {
		min, _ = s.Minimum.Float64()
	}
	if s.ExclusiveMinimum != nil {
		f, _ := s.ExclusiveMinimum.Float64()
		min = math.Nextafter(f, math.Inf(1))
	}
	if s.Maximum != nil {
		max, _ = s.Maximum.Float64()
	}
	if s.ExclusiveMaximum != nil {
		f, _ := s.ExclusiveMaximum.Float64()
		max = math.Nextafter(f, math.Inf(-1))
	}
	if max < min {
		max = min
	}
	return g.f.Base().Float64Between(min, max)
}

func (g *Generator) fakeString(st *docState, s *jsonschema.Schema, name string) (interface{}, error) {
	if v, ok, err := g.formattedString(st, s.Format); ok || err != nil {
		return v, err
	}
	if v, ok, err := g.namedString(st, name); err != nil {
		return nil, err
	} else if ok && fitsLength(v, s) {
		return v, nil
	}

	if s.MinLength >= 0 || s.MaxLength >= 0 {
		min, max := s.MinLength, s.MaxLength
		if min < 0 {
			min = 1
		}
		if min == 0 {
			min = 1
		}
		if max < 0 {
			max = min + 12
		}
		n, err := g.f.Base().IntBetween(min, max)
		if err != nil {
			return nil, err
		}
		return g.f.Base().RandomString(n)
	}

	words, err := g.f.Text().LatinWords(2)
	if err != nil {
		return nil, err
	}
	return strings.Join(words, " "), nil
}

// formattedString handles the format keyword. ok is false when the
// format is absent or unknown.
func (g *Generator) formattedString(st *docState, format string) (interface{}, bool, error) {
	networks := g.f.Network()
	switch format {
	case "email", "idn-email":
		p, err := g.personFor(st)
		if err != nil {
			return nil, true, err
		}
		return p.Email, true, nil
	case "uuid":
		return networks.UUID(), true, nil
	case "uri", "uri-reference", "iri", "iri-reference":
		v, err := networks.URL()
		return v, true, err
	case "hostname", "idn-hostname":
		v, err := networks.Domain()
		return v, true, err
	case "ipv4":
		return networks.IPv4(), true, nil
	case "ipv6":
		return networks.IPv6(), true, nil
	case "date-time":
		t, err := g.f.Dates().InPast(5)
		if err != nil {
			return nil, true, err
		}
		return t.Format(time.RFC3339), true, nil
	case "date":
		t, err := g.f.Dates().InPast(5)
		if err != nil {
			return nil, true, err
		}
		return t.Format("2006-01-02"), true, nil
	case "time":
		t, err := g.f.Dates().InPast(5)
		if err != nil {
			return nil, true, err
		}
		return t.Format("15:04:05Z07:00"), true, nil
	}
	return nil, false, nil
}

// namedString guesses a value from the property name.
func (g *Generator) namedString(st *docState, name string) (string, bool, error) {
	key := strings.ToLower(strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return r
		}
		return -1
	}, name))

	personField := func(pick func(person.Person) string) (string, bool, error) {
		p, err := g.personFor(st)
		if err != nil {
			return "", true, err
		}
		return pick(p), true, nil
	}

	switch key {
	case "firstname", "givenname":
		return personField(func(p person.Person) string { return p.FirstName })
	case "lastname", "surname", "familyname":
		return personField(func(p person.Person) string { return p.LastName })
	case "name", "fullname":
		return personField(person.Person.FullName)
	case "email", "mail", "emailaddress":
		return personField(func(p person.Person) string { return p.Email })
	case "username", "login", "nickname":
		return personField(func(p person.Person) string { return p.Username })
	case "phone", "telephone", "phonenumber", "mobile":
		return personField(func(p person.Person) string { return p.TelephoneNumber })
	case "sex", "gender":
		return personField(func(p person.Person) string { return string(p.Sex) })
	case "city", "town":
		return personField(func(p person.Person) string { return p.Address.City })
	case "street":
		return personField(func(p person.Person) string { return p.Address.Street })
	case "zip", "zipcode", "postalcode", "postcode":
		return personField(func(p person.Person) string { return p.Address.PostalCode })
	case "address":
		return personField(func(p person.Person) string { return p.Address.String() })
	case "company", "employer", "organization", "organisation":
		return personField(func(p person.Person) string { return p.Company.Name })
	case "id", "uuid", "guid":
		return g.f.Network().UUID(), true, nil
	case "domain", "website", "homepage":
		v, err := g.f.Network().Domain()
		return v, true, err
	case "url", "link":
		v, err := g.f.Network().URL()
		return v, true, err
	case "slug":
		v, err := g.f.Network().Slug(3)
		return v, true, err
	case "title", "subject":
		v, err := g.f.Text().RandomSentence()
		return v, true, err
	case "description", "summary", "bio", "about", "comment":
		v, err := g.f.Text().Text()
		return v, true, err
	}
	return "", false, nil
}

func (g *Generator) pick(values []interface{}) (interface{}, error) {
	i, err := g.f.Base().IntBetween(0, len(values)-1)
	if err != nil {
		return nil, err
	}
	return values[i], nil
}

func (g *Generator) pickSchema(members []*jsonschema.Schema) (*jsonschema.Schema, error) {
	i, err := g.f.Base().IntBetween(0, len(members)-1)
	if err != nil {
		return nil, err
	}
	return members[i], nil
}

// fakeAllOf composes the members. Object members merge key by key;
// anything else resolves to the first member's value.
func (g *Generator) fakeAllOf(st *docState, members []*jsonschema.Schema, name string, depth int) (interface{}, error) {
	merged := map[string]interface{}{}
	var first interface{}
	for i, member := range members {
		v, err := g.fake(st, member, name, depth+1)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			first = v
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return first, nil
		}
		for k, mv := range m {
			merged[k] = mv
		}
	}
	return merged, nil
}

func fitsLength(v string, s *jsonschema.Schema) bool {
	if s.MinLength >= 0 && len(v) < s.MinLength {
		return false
	}
	if s.MaxLength >= 0 && len(v) > s.MaxLength {
		return false
	}
	return true
}
