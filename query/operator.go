package query

import (
	"cmp"
	"fmt"
)

// Operator represents a comparison operator for filtering.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
)

// SQLite virtual table constraint codes (SQLITE_INDEX_CONSTRAINT_*).
const (
	sqliteOpEq = 2
	sqliteOpGt = 4
	sqliteOpLe = 8
	sqliteOpLt = 16
	sqliteOpGe = 32
	sqliteOpNe = 68
)

// FromSQLiteOp maps a SQLite constraint operator code to an Operator.
// It returns false for codes without a column-level equivalent (LIKE, GLOB,
// IS NULL, ...), which the host must evaluate itself.
func FromSQLiteOp(code int) (Operator, bool) {
	switch code {
	case sqliteOpEq:
		return OpEqual, true
	case sqliteOpGt:
		return OpGreaterThan, true
	case sqliteOpLe:
		return OpLessEqual, true
	case sqliteOpLt:
		return OpLessThan, true
	case sqliteOpGe:
		return OpGreaterEqual, true
	case sqliteOpNe:
		return OpNotEqual, true
	default:
		return "", false
	}
}

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	switch op {
	case OpEqual, OpNotEqual, OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual:
		return true
	default:
		return false
	}
}

// IsGreater reports whether op is > or >=.
func (op Operator) IsGreater() bool {
	return op == OpGreaterThan || op == OpGreaterEqual
}

// IsLess reports whether op is < or <=.
func (op Operator) IsLess() bool {
	return op == OpLessThan || op == OpLessEqual
}

// IsInclusive reports whether op admits equality (=, >=, <=).
func (op Operator) IsInclusive() bool {
	return op == OpEqual || op == OpGreaterEqual || op == OpLessEqual
}

// Predicate tests a stored value a against a comparison value b.
type Predicate[C cmp.Ordered] func(a, b C) bool

// PredicateFor returns the binary predicate implementing op over C.
//
// An unknown operator means the host bound something the column layer was
// never told about; it panics with a ContractViolation.
func PredicateFor[C cmp.Ordered](op Operator) Predicate[C] {
	switch op {
	case OpEqual:
		return func(a, b C) bool { return a == b }
	case OpNotEqual:
		return func(a, b C) bool { return a != b }
	case OpGreaterThan:
		return func(a, b C) bool { return a > b }
	case OpGreaterEqual:
		return func(a, b C) bool { return a >= b }
	case OpLessThan:
		return func(a, b C) bool { return a < b }
	case OpLessEqual:
		return func(a, b C) bool { return a <= b }
	default:
		panic(&ContractViolation{Reason: fmt.Sprintf("unknown operator %q", string(op))})
	}
}
