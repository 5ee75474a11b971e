package paramvalidator

import (
	"github.com/dmitrymomot/paramvalidator/pkg/config"
	"github.com/dmitrymomot/paramvalidator/pkg/i18n"
)

// Config holds the environment driven settings of a Validator.
type Config struct {
	// Disabled turns wrapped functions into plain pass-throughs.
	// Validator.Check is not affected.
	Disabled bool `env:"PARAMVALIDATOR_DISABLED" envDefault:"false"`
	// LogFailures reports rejected calls to the Validator's logger.
	LogFailures bool `env:"PARAMVALIDATOR_LOG_FAILURES" envDefault:"true"`
	// Locale is the language used to render validation errors.
	Locale string `env:"PARAMVALIDATOR_LOCALE" envDefault:"en"`
}

// DefaultConfig returns the settings used when no Config is supplied.
func DefaultConfig() Config {
	return Config{
		LogFailures: true,
		Locale:      i18n.DefaultLanguage,
	}
}

// LoadConfig reads Config from the environment and the optional .env file.
// The result is cached for the lifetime of the process, see config.Load.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
