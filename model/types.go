package model

import (
	"fmt"
)

// TableID tags the table a row belongs to.
// It is the high part of a GlobalID, so it must stay small enough for the
// encoded id to fit in a signed 64-bit integer.
type TableID uint8

const (
	// TableInvalid is the zero tag. No table uses it.
	TableInvalid TableID = iota
	// TableCounters tags the counters table.
	TableCounters
	// TableRawEvents tags the raw events table.
	TableRawEvents
	// TableInstants tags the instants table.
	TableInstants
	// TableSched tags the sched slices table.
	TableSched
)

// rowShift is the bit offset of the table tag inside a GlobalID.
const rowShift = 32

// GlobalID identifies a row across all tables.
//
// It is synthesized on demand from a table tag and a row offset and is never
// stored. For a fixed table the encoding is a bijection and it is monotonic
// in the row offset.
type GlobalID uint64

// NewGlobalID encodes (table, row) into a GlobalID.
func NewGlobalID(table TableID, row uint32) GlobalID {
	return GlobalID(uint64(table)<<rowShift | uint64(row))
}

// Decode splits the id back into its table tag and row offset.
func (id GlobalID) Decode() (TableID, uint32) {
	return TableID(uint64(id) >> rowShift), uint32(uint64(id))
}

// Table returns the table tag of the id.
func (id GlobalID) Table() TableID {
	t, _ := id.Decode()
	return t
}

// Row returns the row offset of the id.
func (id GlobalID) Row() uint32 {
	_, r := id.Decode()
	return r
}

// RowOf returns the row offset encoded in id if id belongs to table.
func RowOf(table TableID, id GlobalID) (uint32, bool) {
	t, r := id.Decode()
	if t != table {
		return 0, false
	}
	return r, true
}

// String returns a string representation of the GlobalID.
func (id GlobalID) String() string {
	t, r := id.Decode()
	return fmt.Sprintf("ID(%d:%d)", t, r)
}
