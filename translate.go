package paramvalidator

import (
	"context"
	"embed"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/paramvalidator/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// Translator renders a translation key with "name", "value" argument pairs,
// or defaultValue when the key has no message. *i18n.Translator satisfies it.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// NewTranslator returns a translator loaded with the bundled messages for
// every validation error.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), locales, "locales")
	return i18n.NewTranslator(ctx, adapter, opts...)
}

// Localize renders err in lang. Errors that are not validation errors, or
// have no translation, fall back to err.Error().
func Localize(t Translator, lang string, err error) string {
	if err == nil {
		return ""
	}
	verr, ok := ExtractValidationError(err)
	if !ok || t == nil {
		return err.Error()
	}

	values := verr.TranslationValues()
	args := make([]string, 0, len(values)*2)
	for _, k := range slices.Sorted(maps.Keys(values)) {
		args = append(args, k, fmt.Sprint(values[k]))
	}

	msg := t.Td(lang, verr.TranslationKey(), verr.Error(), args...)
	if msg == "" {
		return verr.Error()
	}
	return msg
}

// LocalizeContext is Localize with the language taken from ctx, see
// i18n.SetLocale.
func LocalizeContext(ctx context.Context, t Translator, err error) string {
	return Localize(t, i18n.GetLocale(ctx), err)
}
