package paramvalidator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/paramvalidator/pkg/logger"
)

// Function identifies a validated callable.
type Function struct {
	// Module is the package or module that defines the function.
	Module string
	// Name is the qualified function name, e.g. "(*Account).Rename".
	Name string
	// Arity is the number of declared parameters, excluding the receiver.
	Arity int
	// Method marks the first positional argument as the receiver. The
	// receiver counts towards the declared parameter count but is never
	// validated.
	Method bool
}

// Params returns the declared parameter count, receiver included.
func (f Function) Params() int {
	if f.Method {
		return f.Arity + 1
	}
	return f.Arity
}

func (f Function) String() string {
	if f.Module == "" {
		return f.Name
	}
	return f.Module + "." + f.Name
}

type namedRule struct {
	name string
	rule Rule
}

// Validator holds a validation specification and wraps functions with it.
// It is immutable once New returns and safe for concurrent use.
type Validator struct {
	args   []Rule
	kwargs []namedRule
	logger *slog.Logger
	cfg    Config
}

// Option configures a Validator.
type Option func(*Validator)

// WithArgs appends positional rules. Rule i is checked against the i-th
// argument after the receiver.
func WithArgs(rules ...Rule) Option {
	return func(v *Validator) {
		v.args = append(v.args, rules...)
	}
}

// WithKwarg adds a named rule. Named rules are checked in the order they
// are declared.
// Panics on an empty or duplicate name.
func WithKwarg(name string, rule Rule) Option {
	return func(v *Validator) {
		if name == "" {
			panic("paramvalidator: empty keyword argument name")
		}
		for _, nr := range v.kwargs {
			if nr.name == name {
				panic(fmt.Errorf("paramvalidator: duplicate rule for keyword argument %q", name))
			}
		}
		v.kwargs = append(v.kwargs, namedRule{name: name, rule: rule})
	}
}

// WithLogger sets the logger rejected calls are reported to.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithConfig applies environment driven settings, see LoadConfig.
func WithConfig(cfg Config) Option {
	return func(v *Validator) {
		v.cfg = cfg
	}
}

// New builds a Validator from the given rules and settings.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check validates one call of fn and returns the first violation found.
//
// Positional arguments take precedence: when any remain after the receiver,
// their count must equal fn.Params() and they are paired with the
// positional rules up to the shorter of the two. Otherwise named arguments
// are checked against the named rules. A call with neither is rejected
// with a CountError reporting zero arguments.
func (v *Validator) Check(fn Function, args Args) error {
	positional := args.Positional
	if fn.Method && len(positional) > 0 {
		positional = positional[1:]
	}

	if len(positional) > 0 && len(args.Positional) != fn.Params() {
		return &CountError{Function: fn, Expected: fn.Params(), Received: len(args.Positional)}
	}

	switch {
	case len(positional) > 0:
		return v.checkPositional(fn, positional)
	case len(args.Named) > 0 && len(v.kwargs) > 0:
		return v.checkNamed(fn, args.Named)
	default:
		return &CountError{Function: fn, Expected: fn.Params(), Received: 0}
	}
}

func (v *Validator) checkPositional(fn Function, values []any) error {
	n := min(len(values), len(v.args))
	for i := range n {
		if err := checkArgument(fn, Param{Index: i + 1}, values[i], v.args[i]); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) checkNamed(fn Function, values map[string]any) error {
	for i, nr := range v.kwargs {
		value, ok := values[nr.name]
		if !ok {
			if nr.rule.Nullable {
				continue
			}
			return &MissingKeywordError{Function: fn, Name: nr.name}
		}
		if err := checkArgument(fn, Param{Index: i + 1, Name: nr.name}, value, nr.rule); err != nil {
			return err
		}
	}
	return nil
}

func checkArgument(fn Function, p Param, value any, rule Rule) error {
	if isNull(value) {
		if rule.Nullable {
			return nil
		}
		return &NullError{Function: fn, Param: p}
	}

	actual := TypeOf(value)
	if !Compatible(actual, rule.Type) {
		return &TypeError{Function: fn, Param: p, Actual: actual, Expected: rule.Type}
	}

	if rule.Range != nil && actual.Numeric() {
		if in, ok := rule.Range.containsValue(value); ok && !in {
			return &RangeError{Function: fn, Param: p, Range: *rule.Range, Value: value}
		}
	}
	return nil
}

// guard runs Check for a wrapped call, honouring the configuration and
// reporting rejections to the logger.
func (v *Validator) guard(ctx context.Context, fn Function, args Args) error {
	if v.cfg.Disabled {
		return nil
	}
	err := v.Check(fn, args)
	if err != nil && v.cfg.LogFailures {
		v.logger.WarnContext(ctx, "parameter validation failed",
			logger.Component("paramvalidator"),
			logger.Function(fn.Name),
			logger.Module(fn.Module),
			logger.Param(paramOf(err)),
			logger.ErrorCode(errorCode(err)),
			logger.Error(err),
		)
	}
	return err
}

// paramOf names the rejected argument, empty for count errors.
func paramOf(err error) string {
	var (
		nerr *NullError
		terr *TypeError
		rerr *RangeError
		merr *MissingKeywordError
	)
	switch {
	case errors.As(err, &nerr):
		return nerr.Param.String()
	case errors.As(err, &terr):
		return terr.Param.String()
	case errors.As(err, &rerr):
		return rerr.Param.String()
	case errors.As(err, &merr):
		return merr.Name
	}
	return ""
}

func errorCode(err error) string {
	if verr, ok := ExtractValidationError(err); ok {
		return verr.TranslationKey()
	}
	return ""
}
