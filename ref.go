package jsonschema

import "github.com/kaptinlin/jsonpointer"

// resolveRef resolves a $ref against root's Defs, per spec.md §4.7 and §9:
// this parser only ever needs local "#/$defs/Name" or "#/definitions/Name"
// references, never a remote document or an external compiler, so it
// keeps only the jsonpointer-parsing half of the teacher's resolveRef /
// resolveJSONPointer pair and drops the anchor, $id, and cross-document
// machinery entirely (see DESIGN.md).
func resolveRef(root *SchemaNode, ref string) (*SchemaNode, error) {
	if root.Defs == nil {
		return nil, &ParserError{
			Code: "missing_definitions_root",
			Err:  ErrMissingDefinitionsRoot,
			Args: map[string]any{"ref": ref},
		}
	}

	segments := jsonpointer.Parse(ref)
	if len(segments) == 0 {
		return nil, &ParserError{
			Code: "reference_resolution_failed",
			Err:  ErrReferenceResolution,
			Args: map[string]any{"ref": ref, "name": ref},
		}
	}

	name := segments[len(segments)-1]
	resolved, ok := root.Defs[name]
	if !ok {
		return nil, &ParserError{
			Code: "reference_resolution_failed",
			Err:  ErrReferenceResolution,
			Args: map[string]any{"ref": ref, "name": name},
		}
	}
	return resolved, nil
}
