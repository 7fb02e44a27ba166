package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokenschema/tokenschema"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <schema-file> <document-file>",
		Short: "Feed a document into the parser one character at a time and report where it first breaks the schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCheck(args[0], args[1])
		},
	}
	return cmd
}

func runCheck(schemaPath, documentPath string) error {
	schema, err := loadSchemaFile(schemaPath)
	if err != nil {
		return err
	}

	document, err := os.ReadFile(documentPath)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	parser, err := jsonschema.NewParser(schema)
	if err != nil {
		return err
	}

	for i, c := range strings.TrimRight(string(document), "\n") {
		allowed := parser.AllowedCharacters()
		if !strings.ContainsRune(allowed, c) {
			fmt.Printf("rejected at byte offset %d: %q is not in the allowed set %q\n", i, c, allowed)
			return nil
		}

		parser, err = parser.AddCharacter(c)
		if err != nil {
			fmt.Printf("rejected at byte offset %d: %v\n", i, err)
			return nil
		}
	}

	if parser.CanEnd() {
		fmt.Println("document is a complete, valid instance of the schema")
	} else {
		fmt.Printf("document ended mid-value; still expecting one of %q\n", parser.AllowedCharacters())
	}
	return nil
}
