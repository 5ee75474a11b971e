package paramvalidator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pv "github.com/dmitrymomot/paramvalidator"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()
	fn := pv.Function{Module: "tests", Name: "f", Arity: 1}
	p := pv.Param{Index: 1}

	tests := []struct {
		name     string
		err      error
		sentinel error
		key      string
	}{
		{"count", &pv.CountError{Function: fn, Expected: 1, Received: 2}, pv.ErrParamCount, pv.KeyCount},
		{"missing keyword", &pv.MissingKeywordError{Function: fn, Name: "age"}, pv.ErrMissingKeyword, pv.KeyMissingKeyword},
		{"null", &pv.NullError{Function: fn, Param: p}, pv.ErrNullNotAllowed, pv.KeyNull},
		{"type", &pv.TypeError{Function: fn, Param: p, Actual: pv.String, Expected: pv.Int}, pv.ErrTypeMismatch, pv.KeyType},
		{"range", &pv.RangeError{Function: fn, Param: p, Range: pv.Range{Low: 1, High: 2}, Value: 3}, pv.ErrOutOfRange, pv.KeyRange},
	}

	all := []error{pv.ErrParamCount, pv.ErrMissingKeyword, pv.ErrNullNotAllowed, pv.ErrTypeMismatch, pv.ErrOutOfRange}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, tt.err, pv.ErrInvalidParams)
			assert.ErrorIs(t, tt.err, tt.sentinel)
			for _, other := range all {
				if other != tt.sentinel {
					assert.NotErrorIs(t, tt.err, other)
				}
			}

			wrapped := fmt.Errorf("calling f: %w", tt.err)
			assert.True(t, pv.IsValidationError(wrapped))

			verr, ok := pv.ExtractValidationError(wrapped)
			require.True(t, ok)
			assert.Equal(t, tt.key, verr.TranslationKey())
			assert.Equal(t, fn, verr.Func())
			assert.Equal(t, "f", verr.TranslationValues()["func"])
			assert.Equal(t, "tests", verr.TranslationValues()["module"])
			assert.Contains(t, tt.err.Error(), "func f in module tests")
		})
	}
}

func TestExtractValidationErrorRejectsOthers(t *testing.T) {
	t.Parallel()

	_, ok := pv.ExtractValidationError(nil)
	assert.False(t, ok)
	_, ok = pv.ExtractValidationError(errors.New("boom"))
	assert.False(t, ok)
	assert.False(t, pv.IsValidationError(errors.New("boom")))
	assert.False(t, pv.IsValidationError(pv.ErrNotAFunction))
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	fn := pv.Function{Module: "tests", Name: "myfunc"}

	assert.Equal(t,
		"expected 3 args in func myfunc in module tests but 4 were given",
		(&pv.CountError{Function: fn, Expected: 3, Received: 4}).Error())
	assert.Equal(t,
		`missing required kwarg "name" in func myfunc in module tests`,
		(&pv.MissingKeywordError{Function: fn, Name: "name"}).Error())
	assert.Equal(t,
		"unexpected nil value in func myfunc in module tests, parameter 2 (name)",
		(&pv.NullError{Function: fn, Param: pv.Param{Index: 2, Name: "name"}}).Error())
	assert.Equal(t,
		"arg type mismatch in func myfunc in module tests, parameter 1 type does not match expected string != int",
		(&pv.TypeError{Function: fn, Param: pv.Param{Index: 1}, Actual: pv.TypeOf("1"), Expected: pv.Int}).Error())
	assert.Equal(t,
		"out of range parameter 1 in func myfunc in module tests, value 1 not in range [3, 5]",
		(&pv.RangeError{Function: fn, Param: pv.Param{Index: 1}, Range: pv.Range{Low: 3, High: 5}, Value: 1}).Error())
}

func TestTranslationValues(t *testing.T) {
	t.Parallel()
	fn := pv.Function{Module: "tests", Name: "mykwfunc"}

	values := (&pv.RangeError{
		Function: fn,
		Param:    pv.Param{Index: 1, Name: "age"},
		Range:    pv.Range{Low: 25, High: 50},
		Value:    10,
	}).TranslationValues()

	assert.Equal(t, map[string]any{
		"func":   "mykwfunc",
		"module": "tests",
		"param":  "1 (age)",
		"index":  1,
		"name":   "age",
		"value":  10,
		"low":    float64(25),
		"high":   float64(50),
	}, values)

	values = (&pv.CountError{Function: fn, Expected: 2, Received: 0}).TranslationValues()
	assert.Equal(t, 2, values["expected"])
	assert.Equal(t, 0, values["received"])
}
