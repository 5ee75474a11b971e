package paramvalidator

import (
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the variant of a declared Type.
type Kind uint8

const (
	KindAny Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindList
	KindMap
	KindTime
	KindDuration
	KindUUID
	KindGo
	KindUnion
)

var kindNames = [...]string{
	KindAny:      "any",
	KindNull:     "nil",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindBytes:    "bytes",
	KindList:     "list",
	KindMap:      "map",
	KindTime:     "time",
	KindDuration: "duration",
	KindUUID:     "uuid",
	KindGo:       "go",
	KindUnion:    "union",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Type is a declared parameter type.
//
// A Type without a Go type (the predefined values below) matches every
// runtime value of its kind. A Type built with TypeFor matches its Go type
// exactly, plus the subtypes Compatible recognises.
type Type struct {
	kind    Kind
	rtype   reflect.Type
	members []Type
}

// Predefined declared types.
var (
	Any      = Type{kind: KindAny}
	Bool     = Type{kind: KindBool}
	Int      = Type{kind: KindInt}
	Float    = Type{kind: KindFloat}
	String   = Type{kind: KindString}
	Bytes    = Type{kind: KindBytes}
	List     = Type{kind: KindList}
	Map      = Type{kind: KindMap}
	Time     = Type{kind: KindTime}
	Duration = Type{kind: KindDuration}
	UUID     = Type{kind: KindUUID}

	// Number accepts integers and floating-point values.
	Number = OneOf(Int, Float)
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
	uuidType     = reflect.TypeFor[uuid.UUID]()
	errorType    = reflect.TypeFor[error]()
)

// TypeFor returns the declared type of the Go type T.
// Interface types accept every value implementing them; the empty interface
// is equivalent to Any.
func TypeFor[T any]() Type {
	rt := reflect.TypeFor[T]()
	k := kindOf(rt)
	if k == KindAny {
		return Any
	}
	return Type{kind: k, rtype: rt}
}

// OneOf returns a union accepting any value compatible with one of types.
// Nested unions are flattened.
func OneOf(types ...Type) Type {
	members := make([]Type, 0, len(types))
	for _, t := range types {
		if t.kind == KindUnion {
			members = append(members, t.members...)
			continue
		}
		members = append(members, t)
	}
	return Type{kind: KindUnion, members: members}
}

// TypeOf classifies a runtime value.
func TypeOf(v any) Type {
	if v == nil {
		return Type{kind: KindNull}
	}
	rt := reflect.TypeOf(v)
	return Type{kind: kindOf(rt), rtype: rt}
}

func (t Type) Kind() Kind { return t.kind }

// GoType returns the Go type the declared type is bound to, or nil for the
// predefined kind-wide types and unions.
func (t Type) GoType() reflect.Type { return t.rtype }

// Numeric reports whether values of the type take part in range checks.
func (t Type) Numeric() bool {
	return t.kind == KindInt || t.kind == KindFloat
}

func (t Type) String() string {
	switch {
	case t.kind == KindUnion:
		names := make([]string, len(t.members))
		for i, m := range t.members {
			names[i] = m.String()
		}
		return strings.Join(names, " | ")
	case t.rtype != nil:
		return t.rtype.String()
	default:
		return t.kind.String()
	}
}

// Compatible reports whether a value of type actual satisfies expected.
//
// Kind-wide types match on kind alone. Go-bound types match identical
// types, interface implementations, pointers to the expected type and
// structs embedding the expected type at any depth.
func Compatible(actual, expected Type) bool {
	if expected.kind == KindAny {
		return true
	}

	if actual.kind == KindUnion {
		for _, m := range actual.members {
			if !Compatible(m, expected) {
				return false
			}
		}
		return len(actual.members) > 0
	}

	if expected.kind == KindUnion {
		for _, m := range expected.members {
			if Compatible(actual, m) {
				return true
			}
		}
		return false
	}

	if expected.rtype == nil {
		return actual.kind == expected.kind
	}
	if actual.rtype == nil {
		return false
	}
	return subtypeOf(actual.rtype, expected.rtype, map[reflect.Type]bool{})
}

func kindOf(rt reflect.Type) Kind {
	switch rt {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	case uuidType:
		return KindUUID
	}

	switch rt.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindString
	case reflect.Slice:
		if rt.Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}
		return KindList
	case reflect.Array:
		return KindList
	case reflect.Map:
		return KindMap
	case reflect.Interface:
		if rt.NumMethod() == 0 {
			return KindAny
		}
	}
	return KindGo
}

func subtypeOf(actual, expected reflect.Type, seen map[reflect.Type]bool) bool {
	if actual == expected {
		return true
	}
	if expected.Kind() == reflect.Interface {
		return actual.Implements(expected)
	}
	if actual.Kind() == reflect.Pointer && actual.Elem() == expected {
		return true
	}
	return embeds(actual, expected, seen)
}

// embeds reports whether actual, or the struct it points to, promotes
// expected through an embedded field.
func embeds(actual, expected reflect.Type, seen map[reflect.Type]bool) bool {
	if actual.Kind() == reflect.Pointer {
		actual = actual.Elem()
	}
	if actual.Kind() != reflect.Struct || seen[actual] {
		return false
	}
	seen[actual] = true

	for i := range actual.NumField() {
		f := actual.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		switch {
		case ft == expected:
			return true
		case ft.Kind() == reflect.Pointer && ft.Elem() == expected:
			return true
		case expected.Kind() == reflect.Pointer && ft == expected.Elem():
			return true
		}
		if embeds(ft, expected, seen) {
			return true
		}
	}
	return false
}

// isNull reports whether v is the null sentinel: untyped nil or a nil
// pointer, func or chan. Nil slices and maps are empty values, not null.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
