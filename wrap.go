package paramvalidator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"runtime"
	"strings"
)

// Args is the argument list of one dynamic call.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Positional returns call arguments passed by position.
func Positional(values ...any) Args {
	return Args{Positional: values}
}

// Named returns call arguments passed by name.
func Named(values map[string]any) Args {
	return Args{Named: values}
}

// With returns a copy of a with the named argument set.
func (a Args) With(name string, value any) Args {
	named := make(map[string]any, len(a.Named)+1)
	maps.Copy(named, a.Named)
	named[name] = value
	a.Named = named
	return a
}

// Arg returns the i-th positional argument, or nil when out of bounds.
func (a Args) Arg(i int) any {
	if i < 0 || i >= len(a.Positional) {
		return nil
	}
	return a.Positional[i]
}

// Kwarg returns the named argument and whether it was supplied.
func (a Args) Kwarg(name string) (any, bool) {
	v, ok := a.Named[name]
	return v, ok
}

// Func is a dynamically invoked function: positional and named arguments in,
// one result out.
type Func func(ctx context.Context, args Args) (any, error)

// Wrap returns a Func with the same calling convention as call that
// validates each invocation before delegating. call runs exactly once per
// valid invocation with the arguments it was given and never runs for an
// invalid one; its result is returned unchanged.
// Panics if call is nil.
func (v *Validator) Wrap(fn Function, call Func) Func {
	if call == nil {
		panic("paramvalidator: Wrap called with nil Func")
	}
	return func(ctx context.Context, args Args) (any, error) {
		if err := v.guard(ctx, fn, args); err != nil {
			return nil, err
		}
		return call(ctx, args)
	}
}

// WrapOption configures WrapFunc.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	method bool
	module string
	name   string
}

// AsMethod declares the first parameter of the wrapped function as the
// receiver, as with method expressions like (*Account).Rename.
func AsMethod() WrapOption {
	return func(c *wrapConfig) { c.method = true }
}

// WithName overrides the function identity reported in errors. By default
// it is derived from the runtime symbol of the wrapped function.
func WithName(module, name string) WrapOption {
	return func(c *wrapConfig) {
		c.module = module
		c.name = name
	}
}

// WrapFunc returns a function of the same type as fn that validates its
// arguments against v before calling fn.
//
// fn must be a non-variadic function whose last result is an error; a
// rejected call returns the validation error through that result with every
// other result zeroed. The first context.Context argument, if any, is used
// for logging.
func WrapFunc[F any](v *Validator, fn F, opts ...WrapOption) (F, error) {
	var zero F

	rv := reflect.ValueOf(fn)
	if !rv.IsValid() || rv.Kind() != reflect.Func || rv.IsNil() {
		return zero, errors.Join(ErrNotAFunction, fmt.Errorf("got %T", fn))
	}
	rt := rv.Type()
	if rt.IsVariadic() {
		return zero, errors.Join(ErrVariadicFunction, fmt.Errorf("got %s", rt))
	}
	if rt.NumOut() == 0 || rt.Out(rt.NumOut()-1) != errorType {
		return zero, errors.Join(ErrNoErrorResult, fmt.Errorf("got %s", rt))
	}

	var cfg wrapConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	arity := rt.NumIn()
	if cfg.method {
		arity--
	}
	if arity <= 0 {
		return zero, errors.Join(ErrNoParameters, fmt.Errorf("got %s", rt))
	}

	meta := Function{Module: cfg.module, Name: cfg.name, Arity: arity, Method: cfg.method}
	if meta.Name == "" {
		meta.Module, meta.Name = symbolName(rv)
	}

	wrapped := reflect.MakeFunc(rt, func(in []reflect.Value) []reflect.Value {
		args := Args{Positional: make([]any, len(in))}
		for i, arg := range in {
			args.Positional[i] = arg.Interface()
		}
		if err := v.guard(contextOf(args.Positional), meta, args); err != nil {
			return rejected(rt, err)
		}
		return rv.Call(in)
	})
	return wrapped.Interface().(F), nil
}

func rejected(rt reflect.Type, err error) []reflect.Value {
	out := make([]reflect.Value, rt.NumOut())
	for i := range len(out) - 1 {
		out[i] = reflect.Zero(rt.Out(i))
	}
	out[len(out)-1] = reflect.ValueOf(&err).Elem()
	return out
}

func contextOf(values []any) context.Context {
	for _, v := range values {
		if ctx, ok := v.(context.Context); ok && ctx != nil {
			return ctx
		}
	}
	return context.Background()
}

// symbolName splits the runtime symbol of a function into its package path
// and qualified name, e.g. "example.com/app/billing" and "(*Invoice).Pay".
func symbolName(rv reflect.Value) (module, name string) {
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return "", "func"
	}
	full := strings.TrimSuffix(f.Name(), "-fm")

	slash := strings.LastIndex(full, "/")
	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return "", full
	}
	dot += slash + 1
	return full[:dot], full[dot+1:]
}
