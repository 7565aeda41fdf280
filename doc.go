// Package colscan provides columnar storage access for an embedded SQL
// engine's virtual tables.
//
// Each table is a set of columns over in-memory sequences. A column is a
// small, stateless view that knows how to report a cell, narrow the row
// range for a predicate by binary search when its data is sorted, filter
// candidate rows, and compare two rows for sorting. The host engine binds
// constraints and ORDER BY terms; a Table drives the columns to answer them.
//
// # Quick Start
//
//	ts := storage.NewSequence[int64](10, 20, 30, 40, 50)
//	dur := storage.NewSequence[int64](1, 2, 3, 4, 5)
//
//	tbl, _ := colscan.NewTable("slice", ts.Len, []column.Column{
//	    column.NewID("id", model.TableSched, column.Hidden()),
//	    column.NewNumeric("ts", ts, column.NaturallyOrdered()),
//	    column.NewNumeric("dur", dur),
//	    column.NewTsEnd("ts_end", ts, dur),
//	})
//
//	cur, _ := tbl.Scan(ctx, colscan.Query{
//	    Constraints: []colscan.Constraint{
//	        {Column: 1, Op: query.OpGreaterEqual, Value: query.Int(25)},
//	    },
//	})
//
//	var v query.Scalar
//	for cur.Next() {
//	    cur.Report(3, &v)
//	    fmt.Println(v.U64)
//	}
//
// # Scan Pipeline
//
// A scan first intersects the bounds of every constraint: on a naturally
// ordered column this is a binary search, and the constraint is consumed.
// An optional row restriction is applied next. Remaining constraints run as
// residual filters over the candidates, which move from a plain range to a
// dense bit vector or a sparse row set as needed. Finally the rows are
// sorted, unless a single ORDER BY term on an ordered column makes the
// natural order sufficient.
//
// String columns never filter. Their constraints are listed by
// Cursor.Recheck for the host to evaluate.
//
// # Concurrency
//
// Scans only read storage and may run concurrently; ScanAll does so with a
// bounded worker group. Appending to storage while a scan is in flight is
// not supported.
package colscan
