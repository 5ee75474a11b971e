// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent keys.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on every record so request-scoped values
// (a request id, the caller's locale) are attached without threading them
// through every call.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("paramdemo"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.WarnContext(ctx, "parameter validation failed",
//	    logger.Function("(*Account).Rename"),
//	    logger.Module("example.com/accounts"),
//	    logger.Error(err),
//	)
//
// # Options
//
//   - WithDevelopment / WithProduction / WithEnvironment: presets.
//   - WithFormat: output format.
//   - WithLevel, WithOutput.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes from context.
//
// Error, ErrorCode, Module and Param return an empty Attr for empty input,
// which slog drops, so callers need no nil checks.
package logger
