package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramvalidator/pkg/config"
)

type validatorSettings struct {
	Disabled    bool   `env:"TEST_VALIDATOR_DISABLED" envDefault:"false"`
	LogFailures bool   `env:"TEST_VALIDATOR_LOG_FAILURES" envDefault:"true"`
	Locale      string `env:"TEST_VALIDATOR_LOCALE" envDefault:"en"`
	MaxArgs     int    `env:"TEST_VALIDATOR_MAX_ARGS" envDefault:"8"`
}

type overriddenSettings struct {
	Disabled bool   `env:"TEST_OVERRIDDEN_DISABLED" envDefault:"false"`
	Locale   string `env:"TEST_OVERRIDDEN_LOCALE" envDefault:"en"`
	MaxArgs  int    `env:"TEST_OVERRIDDEN_MAX_ARGS" envDefault:"8"`
}

type cachedSettings struct {
	Locale string `env:"TEST_CACHED_LOCALE" envDefault:"en"`
}

type translatorSettings struct {
	Locale string `env:"TEST_SHARED_LOCALE" envDefault:"en"`
}

type loggerSettings struct {
	Locale string `env:"TEST_SHARED_LOCALE_LOGGER" envDefault:"en"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TEST_VALIDATOR_DISABLED")
	os.Unsetenv("TEST_VALIDATOR_LOG_FAILURES")
	os.Unsetenv("TEST_VALIDATOR_LOCALE")
	os.Unsetenv("TEST_VALIDATOR_MAX_ARGS")

	var cfg validatorSettings
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, validatorSettings{LogFailures: true, Locale: "en", MaxArgs: 8}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_OVERRIDDEN_DISABLED", "true")
	t.Setenv("TEST_OVERRIDDEN_LOCALE", "es")
	t.Setenv("TEST_OVERRIDDEN_MAX_ARGS", "3")

	var cfg overriddenSettings
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, overriddenSettings{Disabled: true, Locale: "es", MaxArgs: 3}, cfg)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("TEST_CACHED_LOCALE", "es")

	var first cachedSettings
	require.NoError(t, config.Load(&first))

	// later environment changes are not observed until ResetCache
	t.Setenv("TEST_CACHED_LOCALE", "fr")

	var second cachedSettings
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "es", second.Locale)
}

func TestLoad_CachedPerType(t *testing.T) {
	t.Setenv("TEST_SHARED_LOCALE", "es")
	t.Setenv("TEST_SHARED_LOCALE_LOGGER", "de")

	var tr translatorSettings
	require.NoError(t, config.Load(&tr))
	var lg loggerSettings
	require.NoError(t, config.Load(&lg))

	assert.Equal(t, "es", tr.Locale)
	assert.Equal(t, "de", lg.Locale)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *validatorSettings
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_InvalidType(t *testing.T) {
	var s string
	err := config.Load(&s)
	assert.ErrorIs(t, err, config.ErrInvalidConfigType)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})

	assert.NotPanics(t, func() {
		var cfg validatorSettings
		config.MustLoad(&cfg)
	})
}

type EnvFileConfig struct {
	Locale   string `env:"TEST_ENVFILE_LOCALE" envDefault:"en"`
	Disabled bool   `env:"TEST_ENVFILE_DISABLED"`
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("TEST_ENVFILE_LOCALE")
		os.Unsetenv("TEST_ENVFILE_DISABLED")
		config.ResetCache()
	})
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg EnvFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "es", cfg.Locale)
	assert.True(t, cfg.Disabled)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestResetCache(t *testing.T) {
	type ResettableConfig struct {
		Value string `env:"TEST_RESETTABLE_VALUE"`
	}

	t.Setenv("TEST_RESETTABLE_VALUE", "before")
	var first ResettableConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "before", first.Value)

	t.Setenv("TEST_RESETTABLE_VALUE", "after")
	config.ResetCache()

	var second ResettableConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "after", second.Value)
}
