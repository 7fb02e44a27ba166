package jsonschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedAll drives p through every character of s, failing the test the
// moment a character isn't in the currently-allowed set — mirroring how a
// constrained sampler is expected to use AllowedCharacters before ever
// calling AddCharacter.
func feedAll(t *testing.T, p *ParserRoot, s string) *ParserRoot {
	t.Helper()
	for _, c := range s {
		allowed := p.AllowedCharacters()
		require.Truef(t, strings.ContainsRune(allowed, c), "character %q not in allowed set %q at %q", c, allowed, s)
		next, err := p.AddCharacter(c)
		require.NoError(t, err)
		p = next
	}
	return p
}

func objectSchema(properties map[string]*SchemaNode) *SchemaNode {
	return &SchemaNode{Type: "object", Properties: properties}
}

func TestScenarioSimpleObjectWithInteger(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"n": {Type: "integer"},
	})

	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"n":42}`)
	assert.True(t, parser.CanEnd())
}

func TestScenarioRejectsWrongType(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"n": {Type: "integer"},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"n":`)
	assert.NotContains(t, parser.AllowedCharacters(), `"`)
}

func TestScenarioEnumNarrowing(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"flag": {Type: "string", Enum: []string{"yes", "no"}},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"flag":"y`)
	assert.Equal(t, "e", parser.AllowedCharacters())

	parser = feedAll(t, parser, `es`)
	assert.Contains(t, parser.AllowedCharacters(), `"`)
	assert.NotContains(t, parser.AllowedCharacters(), "e")

	parser = feedAll(t, parser, `"}`)
	assert.True(t, parser.CanEnd())
}

func TestScenarioNestedObjectValue(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"outer": objectSchema(map[string]*SchemaNode{
			"inner": {Type: "integer"},
		}),
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"outer":{"inner":1}}`)
	assert.True(t, parser.CanEnd())
}

func TestScenarioArrayOfNumbers(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"xs": {Type: "array", Items: &SchemaNode{Type: "number"}},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"xs":[1,2.5,3]}`)
	assert.True(t, parser.CanEnd())
}

func TestScenarioEmptyArrayNotAccepted(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"xs": {Type: "array", Items: &SchemaNode{Type: "integer"}},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	// '[' opens the first element at once, so ']' cannot follow it directly.
	parser = feedAll(t, parser, `{"xs":[`)
	assert.NotContains(t, parser.AllowedCharacters(), "]")
}

func TestScenarioDictionaryAdditionalProperties(t *testing.T) {
	schema := &SchemaNode{Type: "object", AdditionalProperties: &SchemaNode{Type: "integer"}}
	parser, err := NewParser(schema)
	require.NoError(t, err)
	assert.True(t, schema.IsDictionary())

	parser = feedAll(t, parser, `{"anything":1,"else":2}`)
	assert.True(t, parser.CanEnd())
}

func TestScenarioRefResolution(t *testing.T) {
	schema := &SchemaNode{
		Type:       "object",
		Properties: map[string]*SchemaNode{"n": {Ref: "#/$defs/Count"}},
		Defs:       map[string]*SchemaNode{"Count": {Type: "integer"}},
	}
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"n":7}`)
	assert.True(t, parser.CanEnd())
}

func TestRefMissingDefsRoot(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"n": {Ref: "#/$defs/Count"},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	_, err = resolveRef(schema, "#/$defs/Count")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDefinitionsRoot)

	parser = feedAll(t, parser, `{"n"`)
	_, err = parser.AddCharacter(':')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDefinitionsRoot)
}

func TestRefUnknownDefinition(t *testing.T) {
	schema := &SchemaNode{
		Type:       "object",
		Properties: map[string]*SchemaNode{"n": {Ref: "#/$defs/Missing"}},
		Defs:       map[string]*SchemaNode{"Count": {Type: "integer"}},
	}
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"n"`)
	_, err = parser.AddCharacter(':')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReferenceResolution)
}

func TestAddCharacterAfterCanEndIsExhausted(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"n": {Type: "integer"},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"n":5}`)
	require.True(t, parser.CanEnd())

	_, err = parser.AddCharacter('6')
	assert.ErrorIs(t, err, ErrParserExhausted)
}

func TestCloneIsIndependent(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"a": {Type: "integer"},
		"b": {Type: "integer"},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	base := feedAll(t, parser, `{"a":1`)

	forkA, err := base.AddCharacter('}')
	require.NoError(t, err)
	assert.True(t, forkA.CanEnd())

	forkB, err := base.AddCharacter(',')
	require.NoError(t, err)
	assert.False(t, forkB.CanEnd())

	// base itself must be untouched by either fork.
	assert.False(t, base.CanEnd())
	assert.Contains(t, base.AllowedCharacters(), "}")
}

func TestNumberFrameRejectsLeadingZeroIsNotEnforced(t *testing.T) {
	// This parser does not implement full JSON number grammar validation
	// (e.g. leading zeros) — only the character-admission rules spec.md
	// §4.4 describes. Document the boundary rather than leave it implicit.
	schema := objectSchema(map[string]*SchemaNode{
		"n": {Type: "integer"},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"n":007}`)
	assert.True(t, parser.CanEnd())
}

func TestUnsupportedSchemaType(t *testing.T) {
	schema := objectSchema(map[string]*SchemaNode{
		"x": {Type: "boolean"},
	})
	parser, err := NewParser(schema)
	require.NoError(t, err)

	parser = feedAll(t, parser, `{"x"`)
	_, err = parser.AddCharacter(':')
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedSchemaType)
}
