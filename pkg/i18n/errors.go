package i18n

import "errors"

// Context cancellation errors are kept apart from parse errors so callers
// can tell a timeout from broken message files.
var (
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrFailedToReadFile  = errors.New("failed to read message file")
	ErrFailedToParseFile = errors.New("failed to parse message file")

	ErrLoadingMessagesCancelled = errors.New("loading messages cancelled before starting")
	ErrFailedToReadEmbeddedDir  = errors.New("failed to read embedded directory")
	ErrNoMessageFiles           = errors.New("no valid message files found")

	ErrNilAdapter = errors.New("adapter is nil")
)
