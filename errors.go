package jsonschema

import "errors"

// === Schema Compilation Related Errors ===
// These correspond to spec.md §7 kinds 1 and 2: fatal at construction of
// the offending frame, surfaced to the caller, never recovered internally.
var (
	// ErrUnsupportedSchemaType is returned when the frame dispatcher (§4.7)
	// encounters a schema type it does not implement.
	ErrUnsupportedSchemaType = errors.New("unsupported schema type")

	// ErrReferenceResolution is returned when a $ref's final path segment
	// cannot be found in the resolved definitions map.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrMissingDefinitionsRoot is returned when a $ref is present but
	// neither "$defs" nor "definitions" exists on the root schema.
	ErrMissingDefinitionsRoot = errors.New("missing definitions root")
)

// === Parser State Related Errors ===
// These correspond to spec.md §7 kinds 3 and 4. The caller contract is that
// neither ever actually happens — get_allowed_characters() is consulted
// before every add_character() — so these exist for debug assertions and
// defensive returns, not for a recovery path.
var (
	// ErrIllegalCharacter names a character outside the frame's allowed set.
	// No code in this package returns it: AddCharacter does not check its
	// argument against AllowedCharacters.
	ErrIllegalCharacter = errors.New("illegal character")

	// ErrParserExhausted is returned when AddCharacter is called after
	// CanEnd() already reported true — there is no frame left to receive it.
	ErrParserExhausted = errors.New("parser exhausted: no value in progress")
)
