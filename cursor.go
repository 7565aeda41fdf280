package colscan

import "github.com/hupe1980/colscan/query"

// Cursor iterates over the rows produced by a scan.
//
// A cursor is a snapshot of row offsets; values are read from the columns
// when reported. Not safe for concurrent use.
type Cursor struct {
	table   *Table
	rows    []uint32
	pos     int
	recheck []int
}

// Next advances to the next row. It returns false once the rows are
// exhausted.
func (c *Cursor) Next() bool {
	if c.pos+1 >= len(c.rows) {
		c.pos = len(c.rows)
		return false
	}
	c.pos++
	return true
}

// Row returns the offset of the current row.
func (c *Cursor) Row() uint32 {
	return c.rows[c.pos]
}

// Report emits the current row's value of column col into sink.
func (c *Cursor) Report(col int, sink query.ResultSink) {
	c.table.cols[col].Report(sink, c.rows[c.pos])
}

// Len returns the total number of rows.
func (c *Cursor) Len() int {
	return len(c.rows)
}

// Rows returns all row offsets in cursor order.
func (c *Cursor) Rows() []uint32 {
	return c.rows
}

// Recheck lists the constraints, by position in the query, that the host
// must evaluate again on every row: their columns keep a superset.
func (c *Cursor) Recheck() []int {
	return c.recheck
}

// Reset rewinds the cursor to before the first row.
func (c *Cursor) Reset() {
	c.pos = -1
}
