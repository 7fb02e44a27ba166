package jsonschema

import (
	"embed"
	"fmt"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// GetI18n returns an initialized internationalization bundle with the
// embedded locales, for localizing the handful of fatal errors this
// package can raise (spec.md §7).
func GetI18n() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "zh-Hans"),
	)

	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, fmt.Errorf("loading embedded locales: %w", err)
	}

	return bundle, nil
}

// ParserError wraps one of the sentinel errors above with the keyword and
// schema context that produced it, and can be localized via Localize.
type ParserError struct {
	Code string         // message code, matches a key in locales/*.json
	Err  error          // one of ErrUnsupportedSchemaType, ErrReferenceResolution, ErrMissingDefinitionsRoot
	Args map[string]any // substitution values for the localized message, e.g. {"type": "foo"}
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *ParserError) Unwrap() error {
	return e.Err
}

// Localize renders the error through localizer, falling back to Error()
// when localizer is nil (e.g. no bundle was loaded).
func (e *ParserError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Error()
	}
	return localizer.Get(e.Code, i18n.Vars(e.Args))
}
