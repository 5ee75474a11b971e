package i18n_test

import (
	"testing"

	"github.com/dmitrymomot/paramvalidator/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestMatchLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "es", "pt-BR"}
	tests := []struct {
		name      string
		lang      string
		supported []string
		want      string
	}{
		{"exact", "es", supported, "es"},
		{"regional variant", "es-MX", supported, "es"},
		{"english variant", "en-GB", supported, "en"},
		{"region specific entry", "pt", supported, "pt-BR"},
		{"no match", "ja", supported, "fallback"},
		{"invalid tag", "not a tag!", supported, "fallback"},
		{"nothing supported", "en", nil, "fallback"},
		{"invalid supported entries skipped", "es", []string{"???", "es"}, "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, i18n.MatchLanguage(tt.lang, tt.supported, "fallback"))
		})
	}
}
