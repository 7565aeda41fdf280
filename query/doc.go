// Package query defines the in-process contract between the host query
// engine and the column layer.
//
// # Values
//
// The host binds one dynamically typed Value per predicate:
//
//   - Int: query.Int(25)
//   - Float: query.Float(5.5)
//   - Text: query.Text("foo")
//   - Null: query.Null()
//
// Columns decide the comparison domain from Value.Kind. Integer values
// against integral columns compare exactly as int64; every other numeric
// combination compares as float64.
//
// # Operators
//
// Operators are mapped from SQLite constraint codes with FromSQLiteOp and
// turned into typed predicates with PredicateFor.
//
// # Results
//
// Columns report cells through a ResultSink. Scalar is a recording sink
// useful for tests and single-value lookups.
//
// # Contract Violations
//
// A non-numeric Value reaching a numeric comparison, or an unknown operator,
// panics with *ContractViolation. These are binder bugs, not data errors.
package query
