package column

import (
	"math"

	"github.com/hupe1980/colscan/query"
	"github.com/hupe1980/colscan/storage"
)

// Number is the set of fixed-width representations a numeric column can
// store.
type Number interface {
	int32 | uint8 | uint32 | int64 | float64
}

// numericTraits describes a Number representation.
type numericTraits struct {
	typ      query.Type
	integral bool

	// min and max delimit the domain of integral representations.
	min, max int64
}

func traitsOf[T Number]() numericTraits {
	var zero T
	switch any(zero).(type) {
	case int32:
		return numericTraits{typ: query.TypeInt, integral: true, min: math.MinInt32, max: math.MaxInt32}
	case uint8:
		return numericTraits{typ: query.TypeUint, integral: true, min: 0, max: math.MaxUint8}
	case uint32:
		return numericTraits{typ: query.TypeUint, integral: true, min: 0, max: math.MaxUint32}
	case int64:
		return numericTraits{typ: query.TypeLong, integral: true, min: math.MinInt64, max: math.MaxInt64}
	default:
		return numericTraits{typ: query.TypeDouble}
	}
}

// reporterFor returns the sink method matching T's declared type.
func reporterFor[T Number]() func(query.ResultSink, T) {
	var zero T
	switch any(zero).(type) {
	case int32:
		return func(s query.ResultSink, v T) { s.ReportInt(int32(v)) }
	case uint8, uint32:
		return func(s query.ResultSink, v T) { s.ReportUint(uint32(v)) }
	case int64:
		return func(s query.ResultSink, v T) { s.ReportLong(int64(v)) }
	default:
		return func(s query.ResultSink, v T) { s.ReportDouble(float64(v)) }
	}
}

// Numeric is a column of fixed-width numbers read straight from one backing
// sequence.
type Numeric[T Number] struct {
	base
	seq     *storage.Sequence[T]
	ordered bool
	traits  numericTraits
	report  func(query.ResultSink, T)
}

var _ Column = (*Numeric[int64])(nil)

// NewNumeric binds a numeric column to seq.
//
// Pass NaturallyOrdered only if seq is guaranteed non-decreasing; bound
// narrowing relies on it.
func NewNumeric[T Number](name string, seq *storage.Sequence[T], optFns ...Option) *Numeric[T] {
	o := applyOptions(optFns)
	return &Numeric[T]{
		base:    base{name: name, hidden: o.hidden},
		seq:     seq,
		ordered: o.ordered,
		traits:  traitsOf[T](),
		report:  reporterFor[T](),
	}
}

// Type implements Column.
func (c *Numeric[T]) Type() query.Type { return c.traits.typ }

// IsNaturallyOrdered implements Column.
func (c *Numeric[T]) IsNaturallyOrdered() bool { return c.ordered }

// FilterPushdown implements Column.
func (c *Numeric[T]) FilterPushdown() bool { return true }

// BackingSorted reports whether the backing sequence is currently sorted.
func (c *Numeric[T]) BackingSorted() bool { return c.seq.IsSorted() }

// Report implements Column.
func (c *Numeric[T]) Report(sink query.ResultSink, row uint32) {
	c.report(sink, c.seq.At(row))
}

// BoundFilter implements Column.
//
// For a naturally ordered column it turns op/v into a value window and
// binary-searches the window's edges. The window lives in the same domain
// the residual filter compares in: exact int64 for an integer value against
// an integral column, float64 otherwise. Every row in the returned range
// matches, so the bounds are consumed.
func (c *Numeric[T]) BoundFilter(op query.Operator, v query.Value) Bounds {
	n := c.seq.Len()
	if !c.ordered || !v.IsNumeric() {
		return FullBounds(n)
	}

	values := c.seq.Values()

	var lo, hi int
	if c.traits.integral && v.Kind == query.KindInt {
		w := integralWindow(op, v.I64, c.traits.min, c.traits.max)
		switch {
		case w.full:
			return FullBounds(n)
		case w.empty:
			return Bounds{Consumed: true}
		}
		lo, hi = searchWindow(values, w.lo, w.hi)
	} else {
		dmin, dmax := math.Inf(-1), math.Inf(1)
		if c.traits.integral {
			dmin, dmax = float64(c.traits.min), float64(c.traits.max)
		}
		w := floatWindow(op, v.ExtractFloat64(), dmin, dmax)
		switch {
		case w.full:
			return FullBounds(n)
		case w.empty:
			return Bounds{Consumed: true}
		}
		lo, hi = searchWindow(values, w.lo, w.hi)
	}

	return Bounds{MinIdx: uint32(lo), MaxIdx: uint32(hi), Consumed: true}
}

// Filter implements Column.
func (c *Numeric[T]) Filter(op query.Operator, v query.Value, rows RowFilter) {
	filterNumeric(op, v, rows, c.traits.integral, c.seq.At)
}

// Sort implements Column.
func (c *Numeric[T]) Sort(ob query.OrderBy) Comparator {
	if ob.Desc() {
		return func(a, b uint32) int {
			return query.CompareDesc(c.seq.At(a), c.seq.At(b))
		}
	}
	return func(a, b uint32) int {
		return query.CompareAsc(c.seq.At(a), c.seq.At(b))
	}
}

// scalar is every representation the shared numeric filter can read,
// including computed unsigned ids.
type scalar interface {
	Number | uint64
}

// filterNumeric removes rows whose value fails op/v.
//
// The comparison domain comes from v's runtime tag: an integer against an
// integral column compares exactly in int64, anything else in float64.
// A non-numeric tag is a binder contract break and panics.
func filterNumeric[T scalar](op query.Operator, v query.Value, rows RowFilter, integral bool, at func(row uint32) T) {
	switch {
	case v.Kind == query.KindInt && integral:
		filterWithCast[int64](op, v, rows, at)
	case v.IsNumeric():
		filterWithCast[float64](op, v, rows, at)
	default:
		query.MustBeNumeric(v)
	}
}

func filterWithCast[C int64 | float64, T scalar](op query.Operator, v query.Value, rows RowFilter, at func(row uint32) T) {
	pred := query.PredicateFor[C](op)

	var extracted C
	switch any(extracted).(type) {
	case int64:
		extracted = C(v.ExtractInt64())
	default:
		extracted = C(v.ExtractFloat64())
	}

	rows.FilterRows(func(row uint32) bool {
		return pred(C(at(row)), extracted)
	})
}
