package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tokenschema/tokenschema"
	"github.com/tokenschema/tokenschema/schemaload"
)

// loadSchemaFile reads path and parses it as JSON or YAML, picking the
// format by extension and falling back to JSON for anything else.
func loadSchemaFile(path string) (*jsonschema.SchemaNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return schemaload.LoadYAML(data)
	}
	return schemaload.LoadJSON(data)
}
