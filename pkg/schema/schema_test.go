package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fairytest "github.com/getfairy/fairy/pkg/testing"
)

const userSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "firstName", "email", "age", "status", "kind", "tags", "address"],
  "properties": {
    "id": {"type": "string", "format": "uuid"},
    "firstName": {"type": "string"},
    "email": {"type": "string", "format": "email"},
    "age": {"type": "integer", "minimum": 18, "maximum": 99},
    "score": {"type": "number", "minimum": 0, "maximum": 1},
    "active": {"type": "boolean"},
    "status": {"enum": ["new", "active", "blocked"]},
    "kind": {"const": "user"},
    "tags": {"type": "array", "items": {"type": "string"}, "minItems": 2, "maxItems": 4},
    "joined": {"type": "string", "format": "date-time"},
    "address": {"$ref": "#/$defs/address"}
  },
  "$defs": {
    "address": {
      "type": "object",
      "required": ["city", "street"],
      "properties": {
        "city": {"type": "string"},
        "street": {"type": "string"},
        "zip": {"type": "string", "minLength": 4, "maxLength": 8}
      }
    }
  }
}`

// The pinned fairytest clock keeps now-relative draws like date-time
// fields equal across seeded runs.
func newGenerator(t *testing.T, seed uint64) *Generator {
	t.Helper()
	return New(fairytest.Seeded(t, seed))
}

func TestGeneratedDocumentsValidate(t *testing.T) {
	compiled, err := Compile(userSchema)
	require.NoError(t, err)

	for seed := uint64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			gen := newGenerator(t, seed)
			doc, err := gen.Generate(compiled)
			require.NoError(t, err)

			// Round-trip through JSON so the validator sees the same
			// value shapes a consumer would.
			raw, err := json.Marshal(doc)
			require.NoError(t, err)
			var norm interface{}
			require.NoError(t, json.Unmarshal(raw, &norm))

			assert.NoError(t, compiled.Validate(norm))
		})
	}
}

func TestFieldShapes(t *testing.T) {
	gen := newGenerator(t, 42)
	v, err := gen.FromString(userSchema)
	require.NoError(t, err)

	doc, ok := v.(map[string]interface{})
	require.True(t, ok, "expected an object, got %T", v)

	_, err = uuid.Parse(doc["id"].(string))
	assert.NoError(t, err, "id should be a UUID")

	assert.Contains(t, doc["email"].(string), "@")
	assert.NotEmpty(t, doc["firstName"])
	assert.Equal(t, "user", doc["kind"])
	assert.Contains(t, []interface{}{"new", "active", "blocked"}, doc["status"])

	age := doc["age"].(int)
	assert.GreaterOrEqual(t, age, 18)
	assert.LessOrEqual(t, age, 99)

	tags := doc["tags"].([]interface{})
	assert.GreaterOrEqual(t, len(tags), 2)
	assert.LessOrEqual(t, len(tags), 4)

	address := doc["address"].(map[string]interface{})
	assert.NotEmpty(t, address["city"])
	zip := address["zip"].(string)
	assert.GreaterOrEqual(t, len(zip), 4)
	assert.LessOrEqual(t, len(zip), 8)
}

func TestPersonFieldsCohere(t *testing.T) {
	// All person-flavored fields in one document come from a single
	// generated identity.
	doc := `{
	  "type": "object",
	  "properties": {
	    "firstName": {"type": "string"},
	    "lastName": {"type": "string"},
	    "email": {"type": "string"},
	    "city": {"type": "string"}
	  }
	}`

	gen := newGenerator(t, 7)
	v, err := gen.FromString(doc)
	require.NoError(t, err)
	got := v.(map[string]interface{})

	p, err := fairytest.Seeded(t, 7).Person()
	require.NoError(t, err)

	assert.Equal(t, p.FirstName, got["firstName"])
	assert.Equal(t, p.LastName, got["lastName"])
	assert.Equal(t, p.Email, got["email"])
	assert.Equal(t, p.Address.City, got["city"])
}

func TestIntegerBounds(t *testing.T) {
	gen := newGenerator(t, 1)

	v, err := gen.FromString(`{"type": "integer", "minimum": 5, "maximum": 5}`)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = gen.FromString(`{"type": "integer", "exclusiveMinimum": 0, "exclusiveMaximum": 2}`)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestStringLengthBounds(t *testing.T) {
	gen := newGenerator(t, 1)
	v, err := gen.FromString(`{"type": "string", "minLength": 8, "maxLength": 8}`)
	require.NoError(t, err)
	assert.Len(t, v.(string), 8)
}

func TestTupleArrays(t *testing.T) {
	gen := newGenerator(t, 1)
	v, err := gen.FromString(`{
	  "type": "array",
	  "prefixItems": [{"type": "string"}, {"type": "integer"}]
	}`)
	require.NoError(t, err)

	tuple := v.([]interface{})
	require.Len(t, tuple, 2)
	assert.IsType(t, "", tuple[0])
	assert.IsType(t, 0, tuple[1])
}

func TestOneOfPicksAMember(t *testing.T) {
	gen := newGenerator(t, 3)
	v, err := gen.FromString(`{
	  "oneOf": [
	    {"type": "integer", "minimum": 1, "maximum": 1},
	    {"const": "x"}
	  ]
	}`)
	require.NoError(t, err)
	assert.Contains(t, []interface{}{1, "x"}, v)
}

func TestAllOfMergesObjects(t *testing.T) {
	gen := newGenerator(t, 2)
	v, err := gen.FromString(`{
	  "allOf": [
	    {"type": "object", "properties": {"a": {"type": "string"}}},
	    {"type": "object", "properties": {"b": {"type": "integer"}}}
	  ]
	}`)
	require.NoError(t, err)

	doc := v.(map[string]interface{})
	assert.Contains(t, doc, "a")
	assert.Contains(t, doc, "b")
}

func TestNameHeuristics(t *testing.T) {
	gen := newGenerator(t, 4)
	v, err := gen.FromString(`{
	  "type": "object",
	  "properties": {
	    "uuid": {"type": "string"},
	    "url": {"type": "string"},
	    "description": {"type": "string"}
	  }
	}`)
	require.NoError(t, err)
	doc := v.(map[string]interface{})

	_, err = uuid.Parse(doc["uuid"].(string))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc["url"].(string), "http"), "got %q", doc["url"])
	assert.NotEmpty(t, doc["description"])
}

func TestSelfReferenceTerminates(t *testing.T) {
	gen := newGenerator(t, 5)
	v, err := gen.FromString(`{
	  "type": "object",
	  "properties": {
	    "name": {"type": "string"},
	    "friend": {"$ref": "#"}
	  }
	}`)
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestDeterministicAcrossRuns(t *testing.T) {
	first, err := newGenerator(t, 11).FromString(userSchema)
	require.NoError(t, err)
	second, err := newGenerator(t, 11).FromString(userSchema)
	require.NoError(t, err)

	require.True(t, reflect.DeepEqual(first, second), "same seed should give the same document")
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile("{")
	assert.Error(t, err)

	_, err = CompileFile("does-not-exist.json")
	assert.Error(t, err)
}
