package column

import (
	"github.com/hupe1980/colscan/query"
	"github.com/hupe1980/colscan/storage"
)

// TsEnd is the end of an interval, start[row] + dur[row], computed on
// demand from two backing sequences and never materialized.
//
// The sum is not monotonic even when start is, so bounds are never
// narrowed. Sums are assumed to be non-negative, as timestamps are.
type TsEnd struct {
	base
	start *storage.Sequence[int64]
	dur   *storage.Sequence[int64]
}

var _ Column = (*TsEnd)(nil)

// NewTsEnd binds an end-of-interval column to its start and duration
// sequences, which must have the same length.
func NewTsEnd(name string, start, dur *storage.Sequence[int64], optFns ...Option) *TsEnd {
	o := applyOptions(optFns)
	return &TsEnd{
		base:  base{name: name, hidden: o.hidden},
		start: start,
		dur:   dur,
	}
}

// At returns start[row] + dur[row].
func (c *TsEnd) At(row uint32) int64 {
	return c.start.At(row) + c.dur.At(row)
}

// Type implements Column.
func (c *TsEnd) Type() query.Type { return query.TypeUlong }

// IsNaturallyOrdered implements Column.
func (c *TsEnd) IsNaturallyOrdered() bool { return false }

// FilterPushdown implements Column.
func (c *TsEnd) FilterPushdown() bool { return true }

// Report implements Column.
func (c *TsEnd) Report(sink query.ResultSink, row uint32) {
	sink.ReportUlong(uint64(c.At(row)))
}

// BoundFilter implements Column.
func (c *TsEnd) BoundFilter(query.Operator, query.Value) Bounds {
	return FullBounds(c.start.Len())
}

// Filter implements Column.
func (c *TsEnd) Filter(op query.Operator, v query.Value, rows RowFilter) {
	filterNumeric(op, v, rows, true, c.At)
}

// Sort implements Column.
func (c *TsEnd) Sort(ob query.OrderBy) Comparator {
	if ob.Desc() {
		return func(a, b uint32) int {
			return query.CompareDesc(c.At(a), c.At(b))
		}
	}
	return func(a, b uint32) int {
		return query.CompareAsc(c.At(a), c.At(b))
	}
}
