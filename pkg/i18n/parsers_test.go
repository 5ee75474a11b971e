package i18n_test

import (
	"context"
	"testing"

	"github.com/dmitrymomot/paramvalidator/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewYAMLParser()

	t.Run("nested messages", func(t *testing.T) {
		t.Parallel()
		content := `
en:
  paramvalidator:
    "null": "nil in %{func}"
es:
  paramvalidator:
    "null": "nulo en %{func}"
`
		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)
		require.Contains(t, result, "en")
		require.Contains(t, result, "es")

		nested, ok := result["en"]["paramvalidator"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "nil in %{func}", nested["null"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "en: [unclosed")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("language is not a map", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "en: hello")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), "")
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, "en: {a: b}")
		require.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("yaml"))
		assert.True(t, parser.SupportsFileExtension(".YML"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewJSONParser()

	t.Run("messages", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), `{"en": {"hello": "Hello"}, "version": 2}`)
		require.NoError(t, err)
		assert.Equal(t, "Hello", result["en"]["hello"])
		assert.NotContains(t, result, "version")
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := parser.Parse(context.Background(), `{"en":`)
		require.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := parser.Parse(ctx, `{}`)
		require.ErrorIs(t, err, i18n.ErrJSONParsingCancelled)
	})

	t.Run("extensions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension(".json"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("locales/en.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.YML"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))
	assert.Nil(t, i18n.NewParserForFile("README"))
}
