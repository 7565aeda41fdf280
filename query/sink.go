package query

import (
	"fmt"
)

// ResultSink receives the value of one cell, typed per the column's
// declared type.
type ResultSink interface {
	ReportInt(v int32)
	ReportUint(v uint32)
	ReportLong(v int64)
	ReportUlong(v uint64)
	ReportDouble(v float64)
	ReportText(v string)
	ReportNull()
}

// Scalar is a ResultSink that keeps the last reported value.
// The zero value is ready to use.
type Scalar struct {
	Type Type
	Null bool
	I64  int64
	U64  uint64
	F64  float64
	S    string
}

var _ ResultSink = (*Scalar)(nil)

func (s *Scalar) reset(t Type) {
	*s = Scalar{Type: t}
}

// ReportInt implements ResultSink.
func (s *Scalar) ReportInt(v int32) {
	s.reset(TypeInt)
	s.I64 = int64(v)
}

// ReportUint implements ResultSink.
func (s *Scalar) ReportUint(v uint32) {
	s.reset(TypeUint)
	s.U64 = uint64(v)
}

// ReportLong implements ResultSink.
func (s *Scalar) ReportLong(v int64) {
	s.reset(TypeLong)
	s.I64 = v
}

// ReportUlong implements ResultSink.
func (s *Scalar) ReportUlong(v uint64) {
	s.reset(TypeUlong)
	s.U64 = v
}

// ReportDouble implements ResultSink.
func (s *Scalar) ReportDouble(v float64) {
	s.reset(TypeDouble)
	s.F64 = v
}

// ReportText implements ResultSink.
func (s *Scalar) ReportText(v string) {
	s.reset(TypeString)
	s.S = v
}

// ReportNull implements ResultSink.
// The type of a null is left unset.
func (s *Scalar) ReportNull() {
	*s = Scalar{Null: true}
}

// Value converts the scalar back into a dynamic Value.
// Unsigned 64-bit values above MaxInt64 wrap, as they would in SQLite.
func (s Scalar) Value() Value {
	if s.Null {
		return Null()
	}
	switch s.Type {
	case TypeInt, TypeLong:
		return Int(s.I64)
	case TypeUint, TypeUlong:
		return Int(int64(s.U64))
	case TypeDouble:
		return Float(s.F64)
	case TypeString:
		return Text(s.S)
	default:
		return Value{}
	}
}

// String formats the scalar for logs and test failures.
func (s Scalar) String() string {
	if s.Null {
		return "NULL"
	}
	switch s.Type {
	case TypeInt, TypeLong:
		return fmt.Sprintf("%d", s.I64)
	case TypeUint, TypeUlong:
		return fmt.Sprintf("%d", s.U64)
	case TypeDouble:
		return fmt.Sprintf("%g", s.F64)
	case TypeString:
		return fmt.Sprintf("%q", s.S)
	default:
		return "<unset>"
	}
}
