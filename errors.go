package colscan

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colscan/column"
	"github.com/hupe1980/colscan/query"
)

var (
	// ErrEmptyName is returned when a table or column has no name.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrNilRowCount is returned when a table has no row count source.
	ErrNilRowCount = errors.New("row count must not be nil")

	// ErrNilColumn is returned when a schema contains a nil column.
	ErrNilColumn = errors.New("column must not be nil")

	// ErrNotSorted is returned when a column declared naturally ordered is
	// backed by unsorted values.
	ErrNotSorted = column.ErrNotSorted
)

// ErrColumnIndex indicates a query referencing a column the table does not
// have.
type ErrColumnIndex struct {
	// Clause is "constraint" or "order by".
	Clause string
	Index  int
	Count  int
}

func (e *ErrColumnIndex) Error() string {
	return fmt.Sprintf("%s references column %d, table has %d", e.Clause, e.Index, e.Count)
}

// ErrDuplicateColumn indicates two columns sharing a name.
type ErrDuplicateColumn struct {
	Name   string
	First  int
	Second int
}

func (e *ErrDuplicateColumn) Error() string {
	return fmt.Sprintf("duplicate column %q at %d and %d", e.Name, e.First, e.Second)
}

// ErrInvalidOperator indicates a constraint with an operator outside the
// supported set.
type ErrInvalidOperator struct {
	Constraint int
	Op         query.Operator
}

func (e *ErrInvalidOperator) Error() string {
	return fmt.Sprintf("constraint %d: invalid operator %q", e.Constraint, string(e.Op))
}
