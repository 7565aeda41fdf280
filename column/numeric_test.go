package column

import (
	"errors"
	"math"
	"testing"

	"github.com/hupe1980/colscan/internal/rowindex"
	"github.com/hupe1980/colscan/query"
	"github.com/hupe1980/colscan/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOps = []query.Operator{
	query.OpEqual,
	query.OpNotEqual,
	query.OpGreaterThan,
	query.OpGreaterEqual,
	query.OpLessThan,
	query.OpLessEqual,
}

// filterRange runs c.Filter over the candidates [start, end).
func filterRange(c Column, op query.Operator, v query.Value, start, end uint32) []uint32 {
	idx := rowindex.New(start, end)
	c.Filter(op, v, idx)
	return idx.ToRowVector()
}

func TestNumeric_BoundFilterScenarios(t *testing.T) {
	seq := storage.NewSequence[int64](10, 20, 30, 40, 50)
	c := NewNumeric("ts", seq, NaturallyOrdered())

	t.Run("greater equal narrows", func(t *testing.T) {
		b := c.BoundFilter(query.OpGreaterEqual, query.Int(25))
		assert.Equal(t, Bounds{MinIdx: 2, MaxIdx: 5, Consumed: true}, b)

		rows := filterRange(c, query.OpGreaterEqual, query.Int(25), b.MinIdx, b.MaxIdx)
		require.Equal(t, []uint32{2, 3, 4}, rows)

		var got []int64
		for _, r := range rows {
			got = append(got, seq.At(r))
		}
		assert.Equal(t, []int64{30, 40, 50}, got)
	})

	t.Run("absent equality is empty", func(t *testing.T) {
		b := c.BoundFilter(query.OpEqual, query.Int(99))
		assert.Equal(t, Bounds{MinIdx: 5, MaxIdx: 5, Consumed: true}, b)
		assert.True(t, b.Empty())
		assert.Empty(t, filterRange(c, query.OpEqual, query.Int(99), b.MinIdx, b.MaxIdx))
	})

	t.Run("present equality", func(t *testing.T) {
		b := c.BoundFilter(query.OpEqual, query.Int(30))
		assert.Equal(t, Bounds{MinIdx: 2, MaxIdx: 3, Consumed: true}, b)
	})

	t.Run("strict less", func(t *testing.T) {
		b := c.BoundFilter(query.OpLessThan, query.Int(30))
		assert.Equal(t, Bounds{MinIdx: 0, MaxIdx: 2, Consumed: true}, b)
	})

	t.Run("less equal float", func(t *testing.T) {
		b := c.BoundFilter(query.OpLessEqual, query.Float(30.5))
		assert.Equal(t, Bounds{MinIdx: 0, MaxIdx: 3, Consumed: true}, b)
	})

	t.Run("strict greater float", func(t *testing.T) {
		b := c.BoundFilter(query.OpGreaterThan, query.Float(19.5))
		assert.Equal(t, Bounds{MinIdx: 1, MaxIdx: 5, Consumed: true}, b)
	})

	t.Run("non integral equality is empty", func(t *testing.T) {
		b := c.BoundFilter(query.OpEqual, query.Float(30.5))
		assert.True(t, b.Consumed)
		assert.True(t, b.Empty())
	})

	t.Run("not equal is not narrowed", func(t *testing.T) {
		assert.Equal(t, FullBounds(5), c.BoundFilter(query.OpNotEqual, query.Int(30)))
	})

	t.Run("text is not narrowed", func(t *testing.T) {
		assert.Equal(t, FullBounds(5), c.BoundFilter(query.OpEqual, query.Text("30")))
	})
}

func TestNumeric_BoundFilterRequiresOrdering(t *testing.T) {
	c := NewNumeric("dur", storage.NewSequence[int64](10, 20, 30))

	b := c.BoundFilter(query.OpGreaterEqual, query.Int(25))
	assert.Equal(t, FullBounds(3), b)
	assert.False(t, b.Consumed)
}

func TestNumeric_FullDomainIsNotNarrowed(t *testing.T) {
	c := NewNumeric("depth", storage.NewSequence[uint8](0, 1, 1, 3, 255), NaturallyOrdered())

	tests := []struct {
		name string
		op   query.Operator
		v    query.Value
	}{
		{"ge negative", query.OpGreaterEqual, query.Int(-5)},
		{"ge zero", query.OpGreaterEqual, query.Int(0)},
		{"le max", query.OpLessEqual, query.Int(255)},
		{"lt huge", query.OpLessThan, query.Int(1 << 40)},
		{"gt minus infinity", query.OpGreaterThan, query.Float(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, FullBounds(5), c.BoundFilter(tt.op, tt.v))
		})
	}
}

func TestNumeric_OutOfDomainIsEmpty(t *testing.T) {
	c := NewNumeric("depth", storage.NewSequence[uint8](0, 1, 1, 3, 255), NaturallyOrdered())

	tests := []struct {
		name string
		op   query.Operator
		v    query.Value
	}{
		{"gt max", query.OpGreaterThan, query.Int(255)},
		{"ge above", query.OpGreaterEqual, query.Int(256)},
		{"lt zero", query.OpLessThan, query.Int(0)},
		{"eq negative", query.OpEqual, query.Int(-1)},
		{"gt max int64", query.OpGreaterThan, query.Int(math.MaxInt64)},
		{"lt min int64", query.OpLessThan, query.Int(math.MinInt64)},
		{"nan", query.OpGreaterEqual, query.Float(math.NaN())},
		{"ge plus infinity", query.OpGreaterEqual, query.Float(math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := c.BoundFilter(tt.op, tt.v)
			assert.True(t, b.Consumed)
			assert.True(t, b.Empty())
			assert.Empty(t, filterRange(c, tt.op, tt.v, 0, 5))
		})
	}
}

func TestNumeric_FloatColumnBounds(t *testing.T) {
	c := NewNumeric("value", storage.NewSequence(-1.5, 0, 0, 2.25, 2.25, 10), NaturallyOrdered())

	assert.Equal(t, Bounds{MinIdx: 3, MaxIdx: 5, Consumed: true}, c.BoundFilter(query.OpEqual, query.Float(2.25)))
	assert.Equal(t, Bounds{MinIdx: 3, MaxIdx: 6, Consumed: true}, c.BoundFilter(query.OpGreaterThan, query.Int(0)))
	assert.Equal(t, Bounds{MinIdx: 0, MaxIdx: 3, Consumed: true}, c.BoundFilter(query.OpLessThan, query.Float(2.25)))
	assert.Equal(t, FullBounds(6), c.BoundFilter(query.OpGreaterEqual, query.Float(math.Inf(-1))))

	b := c.BoundFilter(query.OpGreaterThan, query.Float(math.Inf(1)))
	assert.True(t, b.Consumed)
	assert.True(t, b.Empty())
}

// checkBoundConsistency verifies, for every operator and probe value, that
// the bound contains every matching row and that filtering inside the bound
// matches filtering the whole column.
func checkBoundConsistency[T Number](t *testing.T, values []T, probes []query.Value) {
	t.Helper()

	c := NewNumeric("col", storage.NewSequence(values...), NaturallyOrdered())
	n := uint32(len(values))

	for _, op := range allOps {
		for _, v := range probes {
			all := filterRange(c, op, v, 0, n)
			b := c.BoundFilter(op, v)

			for _, row := range all {
				require.True(t, row >= b.MinIdx && row < b.MaxIdx,
					"%s %s: matching row %d outside [%d,%d)", op, v, row, b.MinIdx, b.MaxIdx)
			}

			inside := filterRange(c, op, v, b.MinIdx, b.MaxIdx)
			require.Equal(t, all, inside, "%s %s", op, v)

			if b.Consumed && !b.Empty() {
				require.Len(t, all, int(b.MaxIdx-b.MinIdx), "%s %s: consumed bound with non-matching rows", op, v)
			}
		}
	}
}

func TestNumeric_BoundFilterConsistency(t *testing.T) {
	intProbes := []query.Value{
		query.Int(-100), query.Int(-1), query.Int(0), query.Int(1), query.Int(3),
		query.Int(7), query.Int(8), query.Int(255), query.Int(256),
		query.Int(math.MaxInt64), query.Int(math.MinInt64),
		query.Float(-0.5), query.Float(0), query.Float(2.5), query.Float(3), query.Float(7.0001),
		query.Float(254.9), query.Float(1e30), query.Float(-1e30),
		query.Float(math.Inf(1)), query.Float(math.Inf(-1)), query.Float(math.NaN()),
	}

	t.Run("uint8", func(t *testing.T) {
		checkBoundConsistency(t, []uint8{0, 0, 1, 3, 3, 3, 7, 200, 255}, intProbes)
	})

	t.Run("uint32", func(t *testing.T) {
		checkBoundConsistency(t, []uint32{0, 1, 3, 3, 7, 8, 8, 1 << 31, math.MaxUint32}, intProbes)
	})

	t.Run("int32", func(t *testing.T) {
		checkBoundConsistency(t, []int32{math.MinInt32, -100, -1, -1, 0, 3, 7, 7, math.MaxInt32}, intProbes)
	})

	t.Run("int64", func(t *testing.T) {
		checkBoundConsistency(t, []int64{-1 << 40, -100, -1, 0, 0, 3, 7, 8, 256, 1 << 40}, intProbes)
	})

	t.Run("float64", func(t *testing.T) {
		checkBoundConsistency(t, []float64{math.Inf(-1), -100, -0.5, 0, 0, 2.5, 3, 7.0001, 254.9, math.Inf(1)}, intProbes)
	})

	t.Run("int64 beyond float precision", func(t *testing.T) {
		const p53 = int64(1) << 53

		values := []int64{
			math.MinInt64, -p53 - 1, p53, p53 + 1, p53 + 2, p53 + 4,
			math.MaxInt64 - 1024, math.MaxInt64 - 1, math.MaxInt64,
		}
		probes := []query.Value{
			query.Float(float64(p53)), query.Float(float64(p53 + 2)),
			query.Float(math.Nextafter(float64(p53), math.Inf(1))),
			query.Float(9.223372036854775807e18), query.Float(-9.223372036854775808e18),
			query.Float(float64(-p53)),
			query.Int(p53), query.Int(p53 + 1), query.Int(p53 + 3),
			query.Int(math.MaxInt64), query.Int(math.MaxInt64 - 1), query.Int(math.MinInt64),
		}
		checkBoundConsistency(t, values, probes)
	})

	t.Run("empty", func(t *testing.T) {
		checkBoundConsistency(t, []int64{}, intProbes)
	})
}

func TestNumeric_BoundFilterFloatBeyondPrecision(t *testing.T) {
	const p53 = int64(1) << 53

	// As float64, p53+1 rounds to p53.
	c := NewNumeric("ts", storage.NewSequence(p53, p53+1, p53+2, p53+4), NaturallyOrdered())
	f := query.Float(float64(p53))

	tests := []struct {
		name string
		op   query.Operator
		want Bounds
		rows []uint32
	}{
		{"gt", query.OpGreaterThan, Bounds{MinIdx: 2, MaxIdx: 4, Consumed: true}, []uint32{2, 3}},
		{"ge", query.OpGreaterEqual, Bounds{MinIdx: 0, MaxIdx: 4, Consumed: true}, []uint32{0, 1, 2, 3}},
		{"eq", query.OpEqual, Bounds{MinIdx: 0, MaxIdx: 2, Consumed: true}, []uint32{0, 1}},
		{"lt", query.OpLessThan, Bounds{MinIdx: 0, MaxIdx: 0, Consumed: true}, []uint32{}},
		{"le", query.OpLessEqual, Bounds{MinIdx: 0, MaxIdx: 2, Consumed: true}, []uint32{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := c.BoundFilter(tt.op, f)
			assert.Equal(t, tt.want, b)
			assert.Equal(t, tt.rows, filterRange(c, tt.op, f, 0, 4))
			assert.Equal(t, tt.rows, filterRange(c, tt.op, f, b.MinIdx, b.MaxIdx))
		})
	}

	t.Run("integer value stays exact", func(t *testing.T) {
		assert.Equal(t, Bounds{MinIdx: 1, MaxIdx: 2, Consumed: true}, c.BoundFilter(query.OpEqual, query.Int(p53+1)))
		assert.Equal(t, Bounds{MinIdx: 2, MaxIdx: 4, Consumed: true}, c.BoundFilter(query.OpGreaterThan, query.Int(p53+1)))
	})
}

func TestNumeric_FilterCoercion(t *testing.T) {
	t.Run("integer value against double column", func(t *testing.T) {
		c := NewNumeric("value", storage.NewSequence(4.9, 5.0, 5.1))

		assert.Equal(t, []uint32{2}, filterRange(c, query.OpGreaterThan, query.Int(5), 0, 3))
		assert.Equal(t, []uint32{1, 2}, filterRange(c, query.OpGreaterEqual, query.Int(5), 0, 3))
		assert.Equal(t, []uint32{1}, filterRange(c, query.OpEqual, query.Int(5), 0, 3))
	})

	t.Run("float value against integer column", func(t *testing.T) {
		c := NewNumeric("cpu", storage.NewSequence[uint32](4, 5, 6))

		assert.Equal(t, []uint32{1, 2}, filterRange(c, query.OpGreaterThan, query.Float(4.5), 0, 3))
		assert.Empty(t, filterRange(c, query.OpEqual, query.Float(4.5), 0, 3))
		assert.Equal(t, []uint32{0, 2}, filterRange(c, query.OpNotEqual, query.Float(5), 0, 3))
	})

	t.Run("integer comparison is exact", func(t *testing.T) {
		// Adjacent values above 2^53 are indistinguishable as float64.
		big := int64(1<<53) + 1
		c := NewNumeric("ts", storage.NewSequence(big-1, big, big+1))

		assert.Equal(t, []uint32{1}, filterRange(c, query.OpEqual, query.Int(big), 0, 3))
		assert.Equal(t, []uint32{2}, filterRange(c, query.OpGreaterThan, query.Int(big), 0, 3))
	})

	t.Run("only candidates are tested", func(t *testing.T) {
		c := NewNumeric("utid", storage.NewSequence[int32](1, 2, 3, 4, 5))
		assert.Equal(t, []uint32{3, 4}, filterRange(c, query.OpGreaterEqual, query.Int(2), 3, 5))
	})
}

func TestNumeric_FilterContractViolation(t *testing.T) {
	c := NewNumeric("ts", storage.NewSequence[int64](1, 2, 3))

	for _, v := range []query.Value{query.Text("2"), query.Null(), {}} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "value %s", v)
				_, ok := r.(*query.ContractViolation)
				assert.True(t, ok)
			}()
			filterRange(c, query.OpEqual, v, 0, 3)
		}()
	}
}

func TestNumeric_Report(t *testing.T) {
	var s query.Scalar

	NewNumeric("a", storage.NewSequence[int32](-4)).Report(&s, 0)
	assert.Equal(t, query.Scalar{Type: query.TypeInt, I64: -4}, s)

	NewNumeric("b", storage.NewSequence[uint8](200)).Report(&s, 0)
	assert.Equal(t, query.Scalar{Type: query.TypeUint, U64: 200}, s)

	NewNumeric("c", storage.NewSequence[uint32](math.MaxUint32)).Report(&s, 0)
	assert.Equal(t, query.Scalar{Type: query.TypeUint, U64: math.MaxUint32}, s)

	NewNumeric("d", storage.NewSequence[int64](1<<40)).Report(&s, 0)
	assert.Equal(t, query.Scalar{Type: query.TypeLong, I64: 1 << 40}, s)

	NewNumeric("e", storage.NewSequence(2.5)).Report(&s, 0)
	assert.Equal(t, query.Scalar{Type: query.TypeDouble, F64: 2.5}, s)
}

func TestNumeric_Type(t *testing.T) {
	assert.Equal(t, query.TypeInt, NewNumeric("a", storage.NewSequence[int32]()).Type())
	assert.Equal(t, query.TypeUint, NewNumeric("b", storage.NewSequence[uint8]()).Type())
	assert.Equal(t, query.TypeUint, NewNumeric("c", storage.NewSequence[uint32]()).Type())
	assert.Equal(t, query.TypeLong, NewNumeric("d", storage.NewSequence[int64]()).Type())
	assert.Equal(t, query.TypeDouble, NewNumeric("e", storage.NewSequence[float64]()).Type())
}

func TestNumeric_Attributes(t *testing.T) {
	c := NewNumeric("ts", storage.NewSequence[int64](), Hidden(), NaturallyOrdered())
	assert.Equal(t, "ts", c.Name())
	assert.True(t, c.Hidden())
	assert.True(t, c.IsNaturallyOrdered())
	assert.True(t, c.FilterPushdown())

	plain := NewNumeric("dur", storage.NewSequence[int64]())
	assert.False(t, plain.Hidden())
	assert.False(t, plain.IsNaturallyOrdered())
}

func TestNumeric_Sort(t *testing.T) {
	c := NewNumeric("v", storage.NewSequence(3.0, 1.0, 3.0))

	asc := c.Sort(query.OrderBy{})
	desc := c.Sort(query.OrderBy{Direction: query.Descending})

	assert.Equal(t, 1, asc(0, 1))
	assert.Equal(t, -1, asc(1, 0))
	assert.Equal(t, 0, asc(0, 2))
	assert.Equal(t, -1, desc(0, 1))
	assert.Equal(t, 1, desc(1, 0))
	assert.Equal(t, 0, desc(0, 2))
}

func TestValidate(t *testing.T) {
	sorted := NewNumeric("ts", storage.NewSequence[int64](1, 2, 2), NaturallyOrdered())
	require.NoError(t, Validate(sorted))

	unsorted := NewNumeric("ts", storage.NewSequence[int64](2, 1), NaturallyOrdered())
	err := Validate(unsorted)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotSorted))
	assert.Contains(t, err.Error(), `"ts"`)

	// Unordered columns make no claim to check.
	require.NoError(t, Validate(NewNumeric("dur", storage.NewSequence[int64](2, 1))))
	require.NoError(t, Validate(NewID("id", 1)))
}
