package query

import "cmp"

// Type is the declared type of a column, as reported to the host engine.
type Type uint8

const (
	// TypeInt is a signed 32-bit integer column.
	TypeInt Type = iota + 1
	// TypeUint is an unsigned 32-bit (or narrower) integer column.
	TypeUint
	// TypeLong is a signed 64-bit integer column.
	TypeLong
	// TypeUlong is an unsigned 64-bit integer column.
	TypeUlong
	// TypeDouble is a double-precision column.
	TypeDouble
	// TypeString is a text column.
	TypeString
)

// String returns the SQL-ish name of the type.
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "INT"
	case TypeUint:
		return "UNSIGNED INT"
	case TypeLong:
		return "BIG INT"
	case TypeUlong:
		return "UNSIGNED BIG INT"
	case TypeDouble:
		return "DOUBLE"
	case TypeString:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// Direction is the direction of an order-by clause.
type Direction uint8

const (
	// Ascending sorts smallest first.
	Ascending Direction = iota
	// Descending sorts largest first.
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// OrderBy is one ORDER BY term: a column of the table and a direction.
type OrderBy struct {
	Column    int
	Direction Direction
}

// Desc reports whether the term sorts descending.
func (ob OrderBy) Desc() bool {
	return ob.Direction == Descending
}

// CompareAsc returns -1, 0 or +1 as a is less than, equal to or greater
// than b.
func CompareAsc[T cmp.Ordered](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// CompareDesc is the exact inverse of CompareAsc for the same pair.
// It negates the result, not the operands, so ties stay ties.
func CompareDesc[T cmp.Ordered](a, b T) int {
	return -CompareAsc(a, b)
}
