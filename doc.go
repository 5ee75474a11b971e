// Package paramvalidator checks the arguments of a function call against a
// declared set of rules before the function runs.
//
// A Validator holds positional rules (matched by position, after the
// receiver of a method) and named rules (matched by name, in declaration
// order). Each Rule names a declared Type, whether nil is allowed and an
// optional inclusive numeric Range. Wrapping a function with a Validator
// yields a function with the same calling convention that rejects invalid
// calls with a typed error and otherwise delegates unchanged.
//
// Basic Usage:
//
//	v := paramvalidator.New(paramvalidator.WithArgs(
//		paramvalidator.Require(paramvalidator.Int).Between(3, 5),
//		paramvalidator.Require(paramvalidator.String),
//		paramvalidator.Optional(paramvalidator.List),
//	))
//
//	resize, err := paramvalidator.WrapFunc(v, resize)
//	if err != nil {
//		return err
//	}
//	_, err = resize(1, "hey", nil) // *RangeError, resize never runs
//
// Dynamic calls with named arguments go through Wrap:
//
//	v := paramvalidator.New(
//		paramvalidator.WithKwarg("age", paramvalidator.Require(paramvalidator.Int).Between(25, 50)),
//		paramvalidator.WithKwarg("name", paramvalidator.Require(paramvalidator.String)),
//	)
//	call := v.Wrap(paramvalidator.Function{Module: "people", Name: "register"}, register)
//	_, err := call(ctx, paramvalidator.Named(map[string]any{"age": 25})) // *MissingKeywordError
//
// Declared Types:
//
// The predefined types (Int, Float, String, List, Map, Time, UUID, ...)
// accept every value of their kind. TypeFor binds a declared type to a Go
// type; it accepts the type itself, pointers to it, implementations when it
// is an interface and structs embedding it. OneOf builds unions.
//
// Error Handling:
//
// Every validation failure matches ErrInvalidParams and the sentinel of its
// kind with errors.Is, and implements ValidationError:
//
//	switch {
//	case errors.Is(err, paramvalidator.ErrOutOfRange):
//		// ...
//	case paramvalidator.IsValidationError(err):
//		msg := paramvalidator.Localize(translator, "es", err)
//	}
//
// Only the first violation of a call is reported.
package paramvalidator
