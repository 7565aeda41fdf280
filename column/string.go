package column

import (
	"github.com/hupe1980/colscan/query"
	"github.com/hupe1980/colscan/storage"
)

// StringIDType is the set of integer types usable as string pool ids.
// None is wider than storage.StringID.
type StringIDType interface {
	~uint8 | ~uint16 | ~uint32
}

// String is a column of interned strings: each row holds an id into a
// shared string pool.
//
// Strings carry no ordering guarantee, so String never narrows bounds.
// Filter is a no-op; predicates on string columns are left entirely to the
// host engine and FilterPushdown reports false.
type String[Id StringIDType] struct {
	base
	ids  *storage.Sequence[Id]
	pool *storage.StringPool
}

var _ Column = (*String[storage.StringID])(nil)

// NewString binds a string column to its id sequence and pool.
func NewString[Id StringIDType](name string, ids *storage.Sequence[Id], pool *storage.StringPool, optFns ...Option) *String[Id] {
	o := applyOptions(optFns)
	return &String[Id]{
		base: base{name: name, hidden: o.hidden},
		ids:  ids,
		pool: pool,
	}
}

func (c *String[Id]) lookup(row uint32) string {
	return c.pool.Get(storage.StringID(c.ids.At(row)))
}

// Type implements Column.
func (c *String[Id]) Type() query.Type { return query.TypeString }

// IsNaturallyOrdered implements Column.
func (c *String[Id]) IsNaturallyOrdered() bool { return false }

// FilterPushdown implements Column.
func (c *String[Id]) FilterPushdown() bool { return false }

// Report implements Column. The empty string is reported as NULL.
func (c *String[Id]) Report(sink query.ResultSink, row uint32) {
	s := c.lookup(row)
	if s == "" {
		sink.ReportNull()
		return
	}
	sink.ReportText(s)
}

// BoundFilter implements Column.
func (c *String[Id]) BoundFilter(query.Operator, query.Value) Bounds {
	return FullBounds(c.ids.Len())
}

// Filter implements Column. It keeps every candidate.
func (c *String[Id]) Filter(query.Operator, query.Value, RowFilter) {}

// Sort implements Column.
func (c *String[Id]) Sort(ob query.OrderBy) Comparator {
	if ob.Desc() {
		return func(a, b uint32) int {
			return query.CompareDesc(c.lookup(a), c.lookup(b))
		}
	}
	return func(a, b uint32) int {
		return query.CompareAsc(c.lookup(a), c.lookup(b))
	}
}
