// Package rowindex implements the candidate row set that columns narrow
// during a scan.
//
// # Representations
//
//	AllRows:   [start, end)                 - output of bound narrowing, no memory
//	BitVector: bitset over [start, end)     - after the first residual filter
//	RowSet:    roaring bitmap of rows       - after intersecting an external row list
//
// Columns never enumerate candidates. They hand a predicate to FilterRows
// and the index decides how to walk its current representation.
package rowindex
