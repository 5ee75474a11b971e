package logger

import "log/slog"

// Error records err under "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorCode records a machine readable error code under "error_code".
// Empty codes produce an empty Attr.
func ErrorCode(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("error_code", code)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Function records a qualified function name under "func".
func Function(name string) slog.Attr {
	return slog.String("func", name)
}

// Module records the package or module path under "module".
// Empty paths produce an empty Attr.
func Module(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("module", path)
}

// Param records a rejected argument, its index or name, under "param".
// Empty values produce an empty Attr.
func Param(p string) slog.Attr {
	if p == "" {
		return slog.Attr{}
	}
	return slog.String("param", p)
}
