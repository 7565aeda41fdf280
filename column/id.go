package column

import (
	"github.com/hupe1980/colscan/model"
	"github.com/hupe1980/colscan/query"
)

// ID is the synthesized identifier column: every row reports
// model.NewGlobalID(table, row). Nothing is stored beyond the table tag.
//
// Ids are monotonic in the row offset for a fixed tag, but the column does
// not exploit this; bounds stay conservative.
type ID struct {
	base
	table model.TableID
}

var _ Column = (*ID)(nil)

// NewID creates an identifier column for table.
func NewID(name string, table model.TableID, optFns ...Option) *ID {
	o := applyOptions(optFns)
	return &ID{
		base:  base{name: name, hidden: o.hidden},
		table: table,
	}
}

// Table returns the tag the column encodes.
func (c *ID) Table() model.TableID { return c.table }

// At returns the encoded id of row.
func (c *ID) At(row uint32) uint64 {
	return uint64(model.NewGlobalID(c.table, row))
}

// Type implements Column.
func (c *ID) Type() query.Type { return query.TypeUlong }

// IsNaturallyOrdered implements Column.
func (c *ID) IsNaturallyOrdered() bool { return false }

// FilterPushdown implements Column.
func (c *ID) FilterPushdown() bool { return true }

// Report implements Column.
func (c *ID) Report(sink query.ResultSink, row uint32) {
	sink.ReportUlong(c.At(row))
}

// BoundFilter implements Column.
// The column has no backing sequence and so no row count; the scan clamps
// the returned range to the table.
func (c *ID) BoundFilter(query.Operator, query.Value) Bounds {
	return unboundedBounds()
}

// Filter implements Column. Each candidate's id is encoded and compared
// directly against v; v is never decoded.
func (c *ID) Filter(op query.Operator, v query.Value, rows RowFilter) {
	filterNumeric(op, v, rows, true, c.At)
}

// Sort implements Column.
func (c *ID) Sort(ob query.OrderBy) Comparator {
	if ob.Desc() {
		return func(a, b uint32) int {
			return query.CompareDesc(c.At(a), c.At(b))
		}
	}
	return func(a, b uint32) int {
		return query.CompareAsc(c.At(a), c.At(b))
	}
}
