package rowindex

import (
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Mode is the physical representation of the candidate set.
type Mode uint8

const (
	// ModeAllRows means every row in [start, end) is a candidate.
	ModeAllRows Mode = iota
	// ModeBitVector is a dense bit per row in [start, end).
	ModeBitVector
	// ModeRowSet is a sparse roaring bitmap of row offsets.
	ModeRowSet
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAllRows:
		return "all_rows"
	case ModeBitVector:
		return "bit_vector"
	case ModeRowSet:
		return "row_set"
	default:
		return "unknown"
	}
}

// FilteredRowIndex is the mutable set of candidate rows for one scan.
//
// It starts as a contiguous range, the output of bound narrowing. The first
// FilterRows switches it to a dense bit vector over that range;
// IntersectRows switches it to a sparse row set. Rows are only ever removed.
//
// Not safe for concurrent use. Each scan owns its own index.
type FilteredRowIndex struct {
	mode Mode

	// start and end delimit the range every mode is confined to.
	start uint32
	end   uint32

	// bits[i] is row start+i. Valid in ModeBitVector.
	bits *bitset.BitSet

	// rows is valid in ModeRowSet.
	rows *roaring.Bitmap
}

// New creates an index admitting every row in [start, end).
// An inverted range is treated as empty.
func New(start, end uint32) *FilteredRowIndex {
	if end < start {
		end = start
	}
	return &FilteredRowIndex{
		mode:  ModeAllRows,
		start: start,
		end:   end,
	}
}

// Mode returns the current representation.
func (f *FilteredRowIndex) Mode() Mode {
	return f.mode
}

// Range returns the [start, end) range the candidates are confined to.
func (f *FilteredRowIndex) Range() (uint32, uint32) {
	return f.start, f.end
}

// FilterRows removes every candidate for which pred returns false.
// pred is called at most once per current candidate, in ascending order.
func (f *FilteredRowIndex) FilterRows(pred func(row uint32) bool) {
	switch f.mode {
	case ModeAllRows:
		bs := bitset.New(uint(f.end - f.start))
		for row := f.start; row < f.end; row++ {
			if pred(row) {
				bs.Set(uint(row - f.start))
			}
		}
		f.bits = bs
		f.mode = ModeBitVector
	case ModeBitVector:
		for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
			if !pred(f.start + uint32(i)) {
				f.bits.Clear(i)
			}
		}
	case ModeRowSet:
		// roaring iterators are invalidated by removal, so build the survivors
		// separately.
		kept := make([]uint32, 0, f.rows.GetCardinality())
		it := f.rows.Iterator()
		for it.HasNext() {
			row := it.Next()
			if pred(row) {
				kept = append(kept, row)
			}
		}
		f.rows = roaring.BitmapOf(kept...)
	}
}

// IntersectRows keeps only candidates that also appear in rows.
// rows need not be sorted; rows outside the index range are ignored.
func (f *FilteredRowIndex) IntersectRows(rows []uint32) {
	other := roaring.BitmapOf(rows...)

	switch f.mode {
	case ModeAllRows:
		other.RemoveRange(0, uint64(f.start))
		other.RemoveRange(uint64(f.end), math.MaxUint32+1)
		f.rows = other
	case ModeBitVector:
		current := roaring.New()
		for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
			current.Add(f.start + uint32(i))
		}
		current.And(other)
		f.rows = current
		f.bits = nil
	case ModeRowSet:
		f.rows.And(other)
	}
	f.mode = ModeRowSet
}

// Contains reports whether row is still a candidate.
func (f *FilteredRowIndex) Contains(row uint32) bool {
	if row < f.start || row >= f.end {
		return false
	}
	switch f.mode {
	case ModeBitVector:
		return f.bits.Test(uint(row - f.start))
	case ModeRowSet:
		return f.rows.Contains(row)
	default:
		return true
	}
}

// Len returns the number of candidates.
func (f *FilteredRowIndex) Len() uint32 {
	switch f.mode {
	case ModeBitVector:
		return uint32(f.bits.Count())
	case ModeRowSet:
		return uint32(f.rows.GetCardinality())
	default:
		return f.end - f.start
	}
}

// ToRowVector returns the candidates in ascending order.
func (f *FilteredRowIndex) ToRowVector() []uint32 {
	switch f.mode {
	case ModeBitVector:
		out := make([]uint32, 0, f.bits.Count())
		for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
			out = append(out, f.start+uint32(i))
		}
		return out
	case ModeRowSet:
		return f.rows.ToArray()
	default:
		out := make([]uint32, 0, f.end-f.start)
		for row := f.start; row < f.end; row++ {
			out = append(out, row)
		}
		return out
	}
}

// Rows iterates over the candidates, ascending or descending.
func (f *FilteredRowIndex) Rows(desc bool) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		switch {
		case f.mode == ModeAllRows && !desc:
			for row := f.start; row < f.end; row++ {
				if !yield(row) {
					return
				}
			}
		case f.mode == ModeAllRows:
			for row := f.end; row > f.start; row-- {
				if !yield(row - 1) {
					return
				}
			}
		case f.mode == ModeRowSet && desc:
			it := f.rows.ReverseIterator()
			for it.HasNext() {
				if !yield(it.Next()) {
					return
				}
			}
		case f.mode == ModeRowSet:
			it := f.rows.Iterator()
			for it.HasNext() {
				if !yield(it.Next()) {
					return
				}
			}
		case !desc:
			for i, ok := f.bits.NextSet(0); ok; i, ok = f.bits.NextSet(i + 1) {
				if !yield(f.start + uint32(i)) {
					return
				}
			}
		default:
			rows := f.ToRowVector()
			for i := len(rows) - 1; i >= 0; i-- {
				if !yield(rows[i]) {
					return
				}
			}
		}
	}
}
