// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file, when present, is loaded once before the first
//     parse; LoadEnv loads additional files explicitly;
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags;
//   - each configuration type is parsed once and cached for the lifetime of
//     the process; ResetCache drops the cache, which tests use after
//     changing the environment.
//
// # Usage
//
//	type Settings struct {
//	    Disabled bool   `env:"PARAMVALIDATOR_DISABLED" envDefault:"false"`
//	    Locale   string `env:"PARAMVALIDATOR_LOCALE" envDefault:"en"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig: the environment does not satisfy the struct tags.
//   - ErrInvalidConfigType: the target is not a struct.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
//   - ErrLoadingEnvFile: LoadEnv could not read a file.
package config
