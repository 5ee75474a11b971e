package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

// Translator looks up messages by language and dot-separated key.
// Messages are loaded once by NewTranslator and never modified, so a
// Translator is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	languages      []string
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads messages through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if messages == nil {
			return nil, fmt.Errorf("nil messages for language %q", lang)
		}
	}
	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "no translations provided")
	}

	t.translations = translations
	t.languages = make([]string, 0, len(translations))
	for lang := range translations {
		t.languages = append(t.languages, lang)
	}
	slices.Sort(t.languages)

	t.logger.InfoContext(ctx, "translations loaded", "languages", t.languages)
	return t, nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.languages)
}

// HasTranslation reports whether key exists for lang exactly.
func (t *Translator) HasTranslation(lang, key string) bool {
	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from
// args given as name, value pairs. A language without messages of its own
// is served by its closest supported match or the default language.
//
//	// "welcome": "Hello, %{name}!"
//	t.T("en", "welcome", "name", "John") // "Hello, John!"
func (t *Translator) T(lang, key string, args ...string) string {
	msg, ok := t.message(lang, key)
	if !ok {
		if t.fallbackToKey {
			return format(key, args)
		}
		return ""
	}
	return format(msg, args)
}

// Td is T with an explicit default used when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	msg, ok := t.message(lang, key)
	if !ok {
		return format(defaultValue, args)
	}
	return format(msg, args)
}

func (t *Translator) message(lang, key string) (string, bool) {
	messages, ok := t.translations[lang]
	if !ok {
		matched := MatchLanguage(lang, t.languages, t.defaultLang)
		messages, ok = t.translations[matched]
	}
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := lookup(messages, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

// lookup walks nested maps following a dot-separated key, so
// "paramvalidator.range" reads m["paramvalidator"]["range"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// format replaces "%{name}" placeholders. Unknown placeholders are kept; an
// odd trailing argument is ignored.
func format(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
