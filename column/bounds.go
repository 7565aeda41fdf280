package column

import (
	"math"
	"sort"

	"github.com/hupe1980/colscan/query"
)

// window is a closed value range [lo, hi] in the comparison domain C.
type window[C int64 | float64] struct {
	lo, hi C

	// empty means no value can satisfy the predicate.
	empty bool

	// full means every value of the column's domain satisfies it, so
	// narrowing is pointless.
	full bool
}

// integralWindow derives the exact int64 window of op/v for an integral
// column whose domain is [tmin, tmax].
func integralWindow(op query.Operator, v, tmin, tmax int64) window[int64] {
	lo, hi := tmin, tmax

	switch op {
	case query.OpGreaterThan, query.OpGreaterEqual:
		if op == query.OpGreaterThan {
			if v == math.MaxInt64 {
				return window[int64]{empty: true}
			}
			v++
		}
		if v > tmax {
			return window[int64]{empty: true}
		}
		lo = max(lo, v)
	case query.OpLessThan, query.OpLessEqual:
		if op == query.OpLessThan {
			if v == math.MinInt64 {
				return window[int64]{empty: true}
			}
			v--
		}
		if v < tmin {
			return window[int64]{empty: true}
		}
		hi = min(hi, v)
	case query.OpEqual:
		if v < tmin || v > tmax {
			return window[int64]{empty: true}
		}
		lo, hi = v, v
	default:
		return window[int64]{full: true}
	}

	if lo <= tmin && hi >= tmax {
		return window[int64]{full: true}
	}
	return window[int64]{lo: lo, hi: hi}
}

// floatWindow derives the float64 window of op/f for a column whose values,
// widened to float64, lie in [dmin, dmax]. NaN never matches.
//
// Stored integers are compared as float64(x), the same widening the residual
// filter applies, so the window is exact for every column type.
func floatWindow(op query.Operator, f, dmin, dmax float64) window[float64] {
	if !op.IsGreater() && !op.IsLess() && op != query.OpEqual {
		return window[float64]{full: true}
	}
	if math.IsNaN(f) {
		return window[float64]{empty: true}
	}

	lo, hi := math.Inf(-1), math.Inf(1)

	switch op {
	case query.OpGreaterEqual:
		lo = f
	case query.OpGreaterThan:
		if math.IsInf(f, 1) {
			return window[float64]{empty: true}
		}
		lo = math.Nextafter(f, math.Inf(1))
	case query.OpLessEqual:
		hi = f
	case query.OpLessThan:
		if math.IsInf(f, -1) {
			return window[float64]{empty: true}
		}
		hi = math.Nextafter(f, math.Inf(-1))
	case query.OpEqual:
		lo, hi = f, f
	}

	if lo <= dmin && hi >= dmax {
		return window[float64]{full: true}
	}
	return window[float64]{lo: lo, hi: hi}
}

// searchWindow returns the row range of sorted values whose widening to C
// lies in [lo, hi]: the lower bound of lo, then the upper bound of hi
// starting from there.
func searchWindow[C int64 | float64, T Number](values []T, lo, hi C) (int, int) {
	first := sort.Search(len(values), func(i int) bool {
		return C(values[i]) >= lo
	})
	last := first + sort.Search(len(values)-first, func(i int) bool {
		return C(values[first+i]) > hi
	})
	return first, last
}
