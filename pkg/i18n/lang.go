package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// MatchLanguage returns the entry of supported that best serves lang, e.g.
// "es" for "es-MX", or fallback when none is a reasonable match.
func MatchLanguage(lang string, supported []string, fallback string) string {
	want, err := language.Parse(lang)
	if err != nil {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := language.NewMatcher(tags).Match(want)
	if confidence == language.No || idx < 0 || idx >= len(names) {
		return fallback
	}
	return names[idx]
}
