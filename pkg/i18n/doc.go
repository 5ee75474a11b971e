// Package i18n loads localized message templates and renders them with
// named placeholders.
//
// Messages are grouped by language and addressed with dot-separated keys
// that walk nested maps, so the YAML file
//
//	en:
//	  paramvalidator:
//	    range: "value %{value} not in range [%{low}, %{high}]"
//
// defines the key "paramvalidator.range" for "en".
//
// # Architecture
//
// A Translator delegates storage to a TranslationAdapter. MapAdapter serves
// an in-memory map and EmbeddedFsAdapter every supported file of a
// directory in an fs.FS such as embed.FS. Parsers for
// YAML (gopkg.in/yaml.v3) and JSON decode the files.
//
// Requested languages that have no messages of their own are matched to
// the closest loaded language with golang.org/x/text/language ("es-MX"
// is served by "es"), falling back to the default language.
//
// # Usage
//
//	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), locales, "locales")
//	translator, err := i18n.NewTranslator(ctx, adapter, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//	msg := translator.T("es", "paramvalidator.null", "func", "Save", "param", "1")
//
// # Error Handling
//
// Load failures are reported with sentinel errors (ErrFailedToParseYAML,
// ErrFailedToReadFile, ErrNoMessageFiles, ...) joined with the underlying
// cause; match them with errors.Is.
package i18n
