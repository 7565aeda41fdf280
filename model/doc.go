// Package model defines the identity types shared by columns and tables.
//
// # Identity Types
//
//   - Row offset: a dense, table-local uint32 index into the backing sequences
//   - TableID: a small tag naming the table a row belongs to
//   - GlobalID: (TableID, row offset) packed into one uint64
//
// # Global IDs
//
// A GlobalID is never stored. It is computed when needed and decoded back
// into a row offset when another table joins on it:
//
//	id := model.NewGlobalID(model.TableSched, 42)
//	row, ok := model.RowOf(model.TableSched, id) // 42, true
package model
