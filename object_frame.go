package jsonschema

import "strings"

// objectStage is the Object frame's five-state machine from spec.md §4.2.
type objectStage int

const (
	stageStartObject objectStage = iota
	stageParsingKeyOrEnd
	stageParsingValue
	stageParsingSeparatorOrEnd
	stageEndObject
)

// objectFrame recognizes `{ "k": v, ... }` against a properties-map or
// dictionary schema (spec.md §4.2).
//
// ParsingValue and ParsingSeparatorOrEnd are behaviorally identical: both
// accept the same allowed-character set and react the same way to ',' and
// '}'. The only difference spec.md draws between them is which one a value
// parse lands in afterward — string values resolve their own closing quote
// without forwarding anything up (spec.md's "handing us nothing to act on
// except separator/closer next"), so this frame chooses
// ParsingSeparatorOrEnd proactively, at the moment it pushes a string value
// frame, rather than reactively waiting for an event that a string never
// sends. See DESIGN.md for the full reasoning.
type objectFrame struct {
	schema       *SchemaNode
	stage        objectStage
	existingKeys []string
	currentKey   string
	isDictionary bool
}

func newObjectFrame(schema *SchemaNode) *objectFrame {
	return &objectFrame{
		schema:       schema,
		stage:        stageStartObject,
		isDictionary: schema.IsDictionary(),
	}
}

func (o *objectFrame) kind() FrameKind { return FrameObject }

func (o *objectFrame) hasExistingKey(key string) bool {
	for _, k := range o.existingKeys {
		if k == key {
			return true
		}
	}
	return false
}

// remainingPropertyKeys returns the properties not yet seen, nil for a
// dictionary schema (every key is legal, there is no fixed set).
func (o *objectFrame) remainingPropertyKeys() []string {
	if o.isDictionary {
		return nil
	}
	var remaining []string
	for name := range o.schema.Properties {
		if !o.hasExistingKey(name) {
			remaining = append(remaining, name)
		}
	}
	return remaining
}

func (o *objectFrame) canParseMoreKeys() bool {
	return o.isDictionary || len(o.remainingPropertyKeys()) > 0
}

func (o *objectFrame) addCharacter(root *ParserRoot, c rune, payload string) (popOutcome, error) {
	if isWhitespace(c) {
		return popOutcome{}, nil
	}

	switch o.stage {
	case stageStartObject:
		if c == '{' {
			o.stage = stageParsingKeyOrEnd
		}
		return popOutcome{}, nil

	case stageParsingKeyOrEnd:
		switch c {
		case '}':
			o.stage = stageEndObject
			return popOutcome{popped: true}, nil
		case '"':
			var allowed []string
			if !o.isDictionary {
				allowed = o.remainingPropertyKeys()
			}
			root.push(newKeyStringFrame(allowed))
			return popOutcome{}, nil
		case ':':
			return popOutcome{}, o.startValue(root, payload)
		}
		return popOutcome{}, nil

	case stageParsingValue, stageParsingSeparatorOrEnd:
		switch c {
		case ',':
			o.stage = stageParsingKeyOrEnd
		case '}':
			o.stage = stageEndObject
			return popOutcome{popped: true}, nil
		}
		return popOutcome{}, nil
	}

	return popOutcome{}, nil
}

// startValue records the just-parsed key, resolves its value schema, and
// pushes the value frame (spec.md §4.2's ParsingKeyOrEnd + ':' row).
func (o *objectFrame) startValue(root *ParserRoot, key string) error {
	o.currentKey = key
	o.existingKeys = append(o.existingKeys, key)

	var valueSchema *SchemaNode
	if o.isDictionary {
		valueSchema = o.schema.AdditionalProperties
	} else {
		valueSchema = o.schema.Properties[o.currentKey]
	}
	if valueSchema == nil {
		return &ParserError{
			Code: "unsupported_schema_type",
			Err:  ErrUnsupportedSchemaType,
			Args: map[string]any{"type": "<no schema for property " + o.currentKey + ">"},
		}
	}

	ending := "}"
	if o.canParseMoreKeys() {
		ending += ","
	}

	child, err := buildFrame(root.schemaRoot, valueSchema, ending)
	if err != nil {
		return err
	}
	root.push(child)

	if _, isString := child.(*stringFrame); isString {
		o.stage = stageParsingSeparatorOrEnd
	} else {
		o.stage = stageParsingValue
	}
	return nil
}

func (o *objectFrame) allowedCharacters() string {
	var b strings.Builder
	switch o.stage {
	case stageStartObject:
		return "{"
	case stageParsingKeyOrEnd:
		b.WriteByte(' ')
		b.WriteByte('}') // required is not consulted, see spec.md §9 open question
		if o.canParseMoreKeys() {
			b.WriteByte('"')
		}
	case stageParsingValue, stageParsingSeparatorOrEnd:
		b.WriteByte(' ')
		b.WriteByte('}')
		if o.canParseMoreKeys() {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func (o *objectFrame) canEnd() bool {
	return o.stage == stageEndObject
}

func (o *objectFrame) clone() frame {
	clone := *o
	clone.existingKeys = append([]string(nil), o.existingKeys...)
	return &clone
}

func isWhitespace(c rune) bool {
	return strings.TrimSpace(string(c)) == ""
}
