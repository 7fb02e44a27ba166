package jsonschema

// buildFrame constructs the frame for a schema node about to start parsing,
// per spec.md §4.7's dispatch table. endingCharacters is whatever the
// caller (an object or list frame) needs forwarded once this value
// completes; it is meaningless for object frames, which always pop on
// their own unambiguous '}'.
func buildFrame(schemaRoot *SchemaNode, schema *SchemaNode, endingCharacters string) (frame, error) {
	if schema == nil {
		return nil, &ParserError{
			Code: "unsupported_schema_type",
			Err:  ErrUnsupportedSchemaType,
			Args: map[string]any{"type": "<nil>"},
		}
	}

	switch {
	case schema.Ref != "":
		resolved, err := resolveRef(schemaRoot, schema.Ref)
		if err != nil {
			return nil, err
		}
		return buildFrame(schemaRoot, resolved, endingCharacters)

	case schema.Type == "string":
		return newStringFrame(endingCharacters, schema.Enum, true), nil

	case schema.Type == "object":
		return newObjectFrame(schema), nil

	case schema.Type == "integer":
		return newNumberFrame(endingCharacters, false), nil

	case schema.Type == "number":
		return newNumberFrame(endingCharacters, true), nil

	case schema.Type == "array":
		return newListFrame(schema.Items, endingCharacters), nil

	default:
		return nil, &ParserError{
			Code: "unsupported_schema_type",
			Err:  ErrUnsupportedSchemaType,
			Args: map[string]any{"type": schema.Type},
		}
	}
}
