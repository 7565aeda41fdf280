// Package column implements the storage-access contract a scan uses to
// report, narrow, filter and sort rows without knowing how a column is laid
// out.
//
// # Variants
//
//	Numeric[T]   - one backing sequence of int32, uint8, uint32, int64 or float64
//	String[Id]   - id sequence into a shared string pool; "" reports NULL
//	TsEnd        - start[row] + dur[row], computed on demand
//	ID           - model.NewGlobalID(table, row), computed on demand
//
// # Narrowing
//
// BoundFilter is the cheap step. Only a numeric column declared
// NaturallyOrdered narrows: the predicate becomes a value window and two
// binary searches turn it into a row range whose rows all match. Every
// other column returns the full range, unconsumed.
//
// # Residual Filtering
//
// Filter evaluates the predicate row by row through the RowFilter. The
// comparison domain follows the runtime tag of the bound value:
//
//	integer value, integral column  -> int64, exact
//	any other numeric combination   -> float64
//	text or null                    -> panic(*query.ContractViolation)
//
// String columns do not filter at all and report FilterPushdown() == false.
//
// # Lifetime
//
// Columns borrow their storage. The owner must keep the sequences alive and
// unmodified while any scan using the columns is running.
package column
