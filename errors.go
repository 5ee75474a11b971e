package paramvalidator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParams matches every parameter validation failure.
	ErrInvalidParams = errors.New("invalid parameters")

	ErrParamCount     = errors.New("unexpected number of arguments")
	ErrMissingKeyword = errors.New("missing required keyword argument")
	ErrNullNotAllowed = errors.New("nil value not allowed")
	ErrTypeMismatch   = errors.New("argument type mismatch")
	ErrOutOfRange     = errors.New("argument out of range")
)

// Wrapping errors returned by WrapFunc.
var (
	ErrNotAFunction     = errors.New("value is not a function")
	ErrVariadicFunction = errors.New("variadic functions are not supported")
	ErrNoErrorResult    = errors.New("function must return error as its last result")
	ErrNoParameters     = errors.New("function has no parameters to validate")
)

// Translation keys of the validation errors.
const (
	KeyCount          = "paramvalidator.count"
	KeyMissingKeyword = "paramvalidator.missing_keyword"
	KeyNull           = "paramvalidator.null"
	KeyType           = "paramvalidator.type"
	KeyRange          = "paramvalidator.range"
)

// ValidationError is implemented by every error the engine returns.
type ValidationError interface {
	error
	// Func identifies the function whose call was rejected.
	Func() Function
	TranslationKey() string
	TranslationValues() map[string]any
}

// Param identifies a validated argument: its 1-based index and, for named
// arguments, its name.
type Param struct {
	Index int
	Name  string
}

func (p Param) String() string {
	if p.Name == "" {
		return fmt.Sprint(p.Index)
	}
	return fmt.Sprintf("%d (%s)", p.Index, p.Name)
}

func baseValues(fn Function) map[string]any {
	return map[string]any{
		"func":   fn.Name,
		"module": fn.Module,
	}
}

func paramValues(fn Function, p Param) map[string]any {
	values := baseValues(fn)
	values["param"] = p.String()
	values["index"] = p.Index
	if p.Name != "" {
		values["name"] = p.Name
	}
	return values
}

// CountError reports a positional call whose argument count differs from
// the declared parameter count, or a call with nothing to validate.
type CountError struct {
	Function Function
	Expected int
	Received int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("expected %d args in func %s in module %s but %d were given",
		e.Expected, e.Function.Name, e.Function.Module, e.Received)
}

func (e *CountError) Is(target error) bool {
	return target == ErrParamCount || target == ErrInvalidParams
}

func (e *CountError) Func() Function         { return e.Function }
func (e *CountError) TranslationKey() string { return KeyCount }

func (e *CountError) TranslationValues() map[string]any {
	values := baseValues(e.Function)
	values["expected"] = e.Expected
	values["received"] = e.Received
	return values
}

// MissingKeywordError reports a required named argument that was not supplied.
type MissingKeywordError struct {
	Function Function
	Name     string
}

func (e *MissingKeywordError) Error() string {
	return fmt.Sprintf("missing required kwarg %q in func %s in module %s",
		e.Name, e.Function.Name, e.Function.Module)
}

func (e *MissingKeywordError) Is(target error) bool {
	return target == ErrMissingKeyword || target == ErrInvalidParams
}

func (e *MissingKeywordError) Func() Function         { return e.Function }
func (e *MissingKeywordError) TranslationKey() string { return KeyMissingKeyword }

func (e *MissingKeywordError) TranslationValues() map[string]any {
	values := baseValues(e.Function)
	values["name"] = e.Name
	return values
}

// NullError reports a nil value for a parameter that does not allow it.
type NullError struct {
	Function Function
	Param    Param
}

func (e *NullError) Error() string {
	return fmt.Sprintf("unexpected nil value in func %s in module %s, parameter %s",
		e.Function.Name, e.Function.Module, e.Param)
}

func (e *NullError) Is(target error) bool {
	return target == ErrNullNotAllowed || target == ErrInvalidParams
}

func (e *NullError) Func() Function         { return e.Function }
func (e *NullError) TranslationKey() string { return KeyNull }

func (e *NullError) TranslationValues() map[string]any {
	return paramValues(e.Function, e.Param)
}

// TypeError reports a value whose runtime type is not compatible with the
// declared one.
type TypeError struct {
	Function Function
	Param    Param
	Actual   Type
	Expected Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("arg type mismatch in func %s in module %s, parameter %s type does not match expected %s != %s",
		e.Function.Name, e.Function.Module, e.Param, e.Actual, e.Expected)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch || target == ErrInvalidParams
}

func (e *TypeError) Func() Function         { return e.Function }
func (e *TypeError) TranslationKey() string { return KeyType }

func (e *TypeError) TranslationValues() map[string]any {
	values := paramValues(e.Function, e.Param)
	values["actual"] = e.Actual.String()
	values["expected"] = e.Expected.String()
	return values
}

// RangeError reports a numeric value outside the declared bounds.
type RangeError struct {
	Function Function
	Param    Param
	Range    Range
	Value    any
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("out of range parameter %s in func %s in module %s, value %v not in range %s",
		e.Param, e.Function.Name, e.Function.Module, e.Value, e.Range)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange || target == ErrInvalidParams
}

func (e *RangeError) Func() Function         { return e.Function }
func (e *RangeError) TranslationKey() string { return KeyRange }

func (e *RangeError) TranslationValues() map[string]any {
	values := paramValues(e.Function, e.Param)
	values["value"] = e.Value
	values["low"] = e.Range.Low
	values["high"] = e.Range.High
	return values
}

// ExtractValidationError returns the ValidationError wrapped in err, if any.
func ExtractValidationError(err error) (ValidationError, bool) {
	if err == nil {
		return nil, false
	}
	var verr ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidParams)
}
