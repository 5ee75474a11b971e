package paramvalidator

import (
	"fmt"
	"math"
	"reflect"
)

// Range holds inclusive numeric bounds.
type Range struct {
	Low  float64
	High float64
}

// Contains reports whether n lies within [Low, High]. Only values strictly
// outside the bounds fail, so NaN is contained.
func (r Range) Contains(n float64) bool {
	return !(n < r.Low || n > r.High)
}

const (
	twoTo63 = float64(1 << 63)
	twoTo64 = float64(1<<63) * 2
)

// containsValue checks an integer or floating-point value. Integers are
// compared exactly against the integral part of the bounds.
func (r Range) containsValue(v any) (in, numeric bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.containsInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return r.containsUint(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return r.Contains(rv.Float()), true
	}
	return true, false
}

func (r Range) containsInt(v int64) bool {
	lo, hi := math.Ceil(r.Low), math.Floor(r.High)
	if lo > hi || lo >= twoTo63 || hi < -twoTo63 {
		return false
	}
	if lo > -twoTo63 && v < int64(lo) {
		return false
	}
	if hi < twoTo63 && v > int64(hi) {
		return false
	}
	return true
}

func (r Range) containsUint(v uint64) bool {
	lo, hi := math.Ceil(r.Low), math.Floor(r.High)
	if lo > hi || lo >= twoTo64 || hi < 0 {
		return false
	}
	if lo > 0 && v < uint64(lo) {
		return false
	}
	if hi < twoTo64 && v > uint64(hi) {
		return false
	}
	return true
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r.Low, r.High)
}

// Rule declares the expected shape of one parameter.
type Rule struct {
	Type     Type
	Nullable bool
	// Range is consulted only when the supplied value is an integer or a
	// floating-point number.
	Range *Range
}

// Require returns a rule for a parameter of type t that must not be nil.
func Require(t Type) Rule {
	return Rule{Type: t}
}

// Optional returns a rule for a parameter of type t that may be nil or,
// when passed by name, absent.
func Optional(t Type) Rule {
	return Rule{Type: t, Nullable: true}
}

// Between returns a copy of the rule restricted to [low, high].
// Panics when the bounds are NaN or low > high; a broken rule set is a
// programming error and should stop initialization.
func (r Rule) Between(low, high float64) Rule {
	if math.IsNaN(low) || math.IsNaN(high) || low > high {
		panic(fmt.Errorf("paramvalidator: invalid range [%v, %v]", low, high))
	}
	r.Range = &Range{Low: low, High: high}
	return r
}

func (r Rule) String() string {
	s := r.Type.String()
	if r.Nullable {
		s = "?" + s
	}
	if r.Range != nil {
		s += " " + r.Range.String()
	}
	return s
}
