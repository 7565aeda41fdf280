package testutil

import (
	"github.com/hupe1980/colscan/column"
	"github.com/hupe1980/colscan/model"
	"github.com/hupe1980/colscan/storage"
)

// Slices is an in-memory slice table: the storage object that owns the
// backing sequences its columns borrow.
type Slices struct {
	Ts    *storage.Sequence[int64]
	Dur   *storage.Sequence[int64]
	CPU   *storage.Sequence[uint32]
	Depth *storage.Sequence[uint8]
	Utid  *storage.Sequence[int32]
	Value *storage.Sequence[float64]
	Names *storage.Sequence[storage.StringID]
	Pool  *storage.StringPool
}

// NewSlices creates an empty slice table.
func NewSlices() *Slices {
	return &Slices{
		Ts:    storage.NewSequence[int64](),
		Dur:   storage.NewSequence[int64](),
		CPU:   storage.NewSequence[uint32](),
		Depth: storage.NewSequence[uint8](),
		Utid:  storage.NewSequence[int32](),
		Value: storage.NewSequence[float64](),
		Names: storage.NewSequence[storage.StringID](),
		Pool:  storage.NewStringPool(),
	}
}

// Add appends one slice. An empty name is stored as the NULL string.
func (s *Slices) Add(ts, dur int64, cpu uint32, depth uint8, utid int32, value float64, name string) {
	s.Ts.Append(ts)
	s.Dur.Append(dur)
	s.CPU.Append(cpu)
	s.Depth.Append(depth)
	s.Utid.Append(utid)
	s.Value.Append(value)
	s.Names.Append(s.Pool.Intern(name))
}

// Len returns the number of rows.
func (s *Slices) Len() uint32 {
	return s.Ts.Len()
}

// Column indexes of Columns.
const (
	ColID = iota
	ColTs
	ColDur
	ColTsEnd
	ColCPU
	ColDepth
	ColUtid
	ColValue
	ColName
)

// Columns returns the schema of the slice table. ts is naturally ordered
// as long as rows are added in timestamp order.
func (s *Slices) Columns() []column.Column {
	return []column.Column{
		column.NewID("id", model.TableSched, column.Hidden()),
		column.NewNumeric("ts", s.Ts, column.NaturallyOrdered()),
		column.NewNumeric("dur", s.Dur),
		column.NewTsEnd("ts_end", s.Ts, s.Dur),
		column.NewNumeric("cpu", s.CPU),
		column.NewNumeric("depth", s.Depth),
		column.NewNumeric("utid", s.Utid),
		column.NewNumeric("value", s.Value),
		column.NewString("name", s.Names, s.Pool),
	}
}

// RandomSlices fills a slice table with n rows in timestamp order.
func RandomSlices(rng *RNG, n int) *Slices {
	vocabulary := []string{"", "sched_switch", "sched_wakeup", "irq", "softirq", "binder", "gc"}

	s := NewSlices()
	ts := rng.SortedInt64s(n, 1000, 50)
	dur := rng.Int64Range(n, 0, 200)
	names := rng.ZipfPicks(n, len(vocabulary), 1.2)

	for i := range n {
		s.Add(
			ts[i],
			dur[i],
			uint32(rng.Intn(8)),
			uint8(rng.Intn(4)),
			int32(rng.Intn(20)-5),
			float64(rng.Intn(1000))/10,
			vocabulary[names[i]],
		)
	}
	return s
}
