package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokenschema/tokenschema"
)

func newTraceCmd() *cobra.Command {
	var logFormat string

	cmd := &cobra.Command{
		Use:   "trace <schema-file> <document-file>",
		Short: "Log the allowed-character set at every step of parsing a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTrace(args[0], args[1], logFormat)
		},
	}

	cmd.Flags().StringVar(&logFormat, "log-format", "logfmt", "log output format: logfmt or json")
	return cmd
}

func runTrace(schemaPath, documentPath, logFormat string) error {
	var handler slog.Handler
	switch strings.ToLower(logFormat) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, nil)
	case "logfmt", "":
		handler = slog.NewTextHandler(os.Stdout, nil)
	default:
		return fmt.Errorf("unknown log format %q: want logfmt or json", logFormat)
	}
	logger := slog.New(handler)

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
		logger.Info("step",
			"offset", i,
			"character", string(c),
			"allowed", parser.AllowedCharacters(),
			"stack", fmt.Sprint(parser.Stack()),
		)

		parser, err = parser.AddCharacter(c)
		if err != nil {
			logger.Error("rejected", "offset", i, "character", string(c), "err", err)
			return nil
		}
	}

	logger.Info("done", "can_end", parser.CanEnd(), "stack", fmt.Sprint(parser.Stack()))
	return nil
}
