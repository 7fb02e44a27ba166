// Command tokenwalk drives a [jsonschema.ParserRoot] against a schema and a
// candidate document, one character at a time — the CLI-shaped stand-in for
// the "driver loop" collaborator spec.md describes as external to the core
// parser: a token sampler that consults AllowedCharacters before emitting
// each character and calls AddCharacter to commit it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "tokenwalk",
		Short:         "Walk a JSON Schema character-by-character, the way a constrained sampler would",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newExploreCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tokenwalk: %v\n", err)
		os.Exit(1)
	}
}
