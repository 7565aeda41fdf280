package column

import (
	"math"

	"github.com/hupe1980/colscan/query"
)

// RowFilter is the candidate row set a column narrows.
// Columns never enumerate candidates; they only hand it a predicate.
type RowFilter interface {
	// FilterRows removes every candidate row for which pred returns false.
	FilterRows(pred func(row uint32) bool)
}

// Comparator compares the column's values at two rows of the same table,
// returning -1, 0 or +1.
type Comparator func(a, b uint32) int

// Bounds is the half-open row range [MinIdx, MaxIdx) guaranteed to contain
// every row matching a predicate.
//
// When Consumed is true every row inside the range matches and no residual
// filtering is needed for that predicate.
type Bounds struct {
	MinIdx   uint32
	MaxIdx   uint32
	Consumed bool
}

// FullBounds is the unconsumed range covering all n rows.
func FullBounds(n uint32) Bounds {
	return Bounds{MinIdx: 0, MaxIdx: n}
}

// unboundedBounds is used by columns that do not know the table's row count.
// The scan clamps MaxIdx to the actual number of rows.
func unboundedBounds() Bounds {
	return Bounds{MinIdx: 0, MaxIdx: math.MaxUint32}
}

// Empty reports whether the range contains no rows.
func (b Bounds) Empty() bool {
	return b.MaxIdx <= b.MinIdx
}

// Column is a view over backing storage that a scan can report, narrow,
// filter and sort by without knowing the physical layout.
//
// Columns are read-only and stateless beyond their borrowed storage
// references. Row offsets passed to any method must be below the length of
// the backing storage; this is not checked.
type Column interface {
	// Name is unique within a table.
	Name() string

	// Hidden columns are excluded from default projection.
	Hidden() bool

	// Type is the declared type. Report always matches it, except that
	// string columns may report NULL.
	Type() query.Type

	// IsNaturallyOrdered reports whether the backing values are non-decreasing
	// by row offset. BoundFilter only narrows when this is true.
	IsNaturallyOrdered() bool

	// Report emits the value at row into sink.
	Report(sink query.ResultSink, row uint32)

	// BoundFilter narrows the row range for op/v. It returns the full,
	// unconsumed range when it cannot narrow.
	BoundFilter(op query.Operator, v query.Value) Bounds

	// Filter removes candidate rows that fail op/v. It never removes a
	// matching row.
	Filter(op query.Operator, v query.Value, rows RowFilter)

	// FilterPushdown reports whether Filter fully evaluates predicates.
	// When false, Filter keeps a superset and the host must re-check.
	FilterPushdown() bool

	// Sort returns a three-way comparator for the order-by direction,
	// consistent with the values Report emits.
	Sort(ob query.OrderBy) Comparator
}

// Option configures a column at construction.
type Option func(*options)

type options struct {
	hidden  bool
	ordered bool
}

// Hidden excludes the column from default projection.
func Hidden() Option {
	return func(o *options) {
		o.hidden = true
	}
}

// NaturallyOrdered declares that the backing sequence is non-decreasing by
// row offset, enabling bound narrowing. Only numeric columns honour it.
func NaturallyOrdered() Option {
	return func(o *options) {
		o.ordered = true
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// base carries the attributes every column has.
type base struct {
	name   string
	hidden bool
}

// Name implements Column.
func (b *base) Name() string { return b.name }

// Hidden implements Column.
func (b *base) Hidden() bool { return b.hidden }
