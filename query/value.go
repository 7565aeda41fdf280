package query

import (
	"strconv"
	"unique"
)

// Kind identifies the runtime tag of a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a floating-point value.
	KindFloat
	// KindText represents a text value.
	KindText
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// Value is the dynamically typed comparison value bound by the host engine
// for one predicate.
//
// Its Kind, not the declared type of the column it is compared against,
// decides how the comparison is coerced.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string]
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an integer Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a floating-point Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// Text returns a text Value.
func Text(v string) Value { return Value{Kind: KindText, s: unique.Make(v)} }

// IsNumeric reports whether the value is an integer or a float.
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// TextValue returns the string if Kind is KindText, otherwise empty string.
func (v Value) TextValue() string {
	if v.Kind == KindText {
		return v.s.Value()
	}
	return ""
}

// ExtractInt64 converts the value into the 64-bit integer domain.
// Floats are truncated toward zero; non-numeric values extract as 0.
func (v Value) ExtractInt64() int64 {
	switch v.Kind {
	case KindInt:
		return v.I64
	case KindFloat:
		return int64(v.F64)
	default:
		return 0
	}
}

// ExtractFloat64 converts the value into the double-precision domain.
// Non-numeric values extract as 0.
func (v Value) ExtractFloat64() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.I64)
	case KindFloat:
		return v.F64
	default:
		return 0
	}
}

// String returns a stable, human-readable form used in logs and errors.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s.Value())
	default:
		return "<invalid>"
	}
}
