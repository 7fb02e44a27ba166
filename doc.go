// Package jsonschema implements a character-level incremental JSON Schema
// validator: given a schema, it reports at every position in a generated
// stream the exact set of characters that could legally appear next, and
// advances one character at a time. It is designed to drive a constrained
// text generator (e.g. a token sampler) rather than to validate a complete,
// already-produced document.
//
// The core type is [ParserRoot], a cheap-to-clone stack of parsing frames.
// Callers query [ParserRoot.AllowedCharacters], commit a character with
// [ParserRoot.AddCharacter] (which returns a new root, leaving the original
// untouched), and check [ParserRoot.CanEnd] to know whether the value parsed
// so far is already a complete JSON instance. Only a top-level object ever
// reaches that state; see [NewParser].
package jsonschema
