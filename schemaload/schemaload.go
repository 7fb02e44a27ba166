// Package schemaload loads a [jsonschema.SchemaNode] tree from JSON or YAML
// bytes, standing in for the "Schema provider" collaborator spec.md
// describes as external to the core parser (§1, §9): something has to turn
// a document on disk into the immutable SchemaNode graph the parser walks,
// and that concern belongs in its own package rather than the core.
package schemaload

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/tokenschema/tokenschema"
)

// wireSchema mirrors jsonschema.SchemaNode's shape for unmarshaling, merging
// "$defs" and "definitions" into a single map the way SchemaNode.Defs
// expects (spec.md's expanded $ref handling, see SPEC_FULL.md).
type wireSchema struct {
	Type                 string                 `json:"type,omitempty" yaml:"type,omitempty"`
	Properties           map[string]*wireSchema `json:"properties,omitempty" yaml:"properties,omitempty"`
	AdditionalProperties *wireSchema            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
	Items                *wireSchema            `json:"items,omitempty" yaml:"items,omitempty"`
	Enum                 []string               `json:"enum,omitempty" yaml:"enum,omitempty"`
	Ref                  string                 `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Defs                 map[string]*wireSchema `json:"$defs,omitempty" yaml:"$defs,omitempty"`
	Definitions          map[string]*wireSchema `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// LoadJSON parses a JSON Schema document into a SchemaNode tree.
func LoadJSON(data []byte) (*jsonschema.SchemaNode, error) {
	var w wireSchema
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("schemaload: parsing JSON: %w", err)
	}
	return build(&w), nil
}

// LoadYAML parses a YAML-encoded JSON Schema document into a SchemaNode
// tree, for schemas authored by hand rather than emitted by tooling.
func LoadYAML(data []byte) (*jsonschema.SchemaNode, error) {
	var w wireSchema
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("schemaload: parsing YAML: %w", err)
	}
	return build(&w), nil
}

func build(w *wireSchema) *jsonschema.SchemaNode {
	if w == nil {
		return nil
	}

	node := &jsonschema.SchemaNode{
		Type:                 w.Type,
		AdditionalProperties: build(w.AdditionalProperties),
		Items:                build(w.Items),
		Enum:                 w.Enum,
		Ref:                  w.Ref,
	}

	if w.Properties != nil {
		node.Properties = make(map[string]*jsonschema.SchemaNode, len(w.Properties))
		for name, prop := range w.Properties {
			node.Properties[name] = build(prop)
		}
	}

	if len(w.Defs) > 0 || len(w.Definitions) > 0 {
		node.Defs = make(map[string]*jsonschema.SchemaNode, len(w.Defs)+len(w.Definitions))
		for name, def := range w.Defs {
			node.Defs[name] = build(def)
		}
		for name, def := range w.Definitions {
			node.Defs[name] = build(def)
		}
	}

	return node
}
