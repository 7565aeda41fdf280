package colscan

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/colscan/column"
	"github.com/hupe1980/colscan/internal/rowindex"
	"github.com/hupe1980/colscan/query"
	"golang.org/x/sync/errgroup"
)

// Constraint is one predicate of a query: column <Op> Value.
type Constraint struct {
	Column int
	Op     query.Operator
	Value  query.Value
}

// Query is what the host engine asks of one scan.
type Query struct {
	Constraints []Constraint
	OrderBy     []query.OrderBy

	// Rows, when non-nil, restricts the scan to these row offsets, e.g. the
	// output of an external index. Order and duplicates do not matter. A
	// non-nil empty slice matches nothing.
	Rows []uint32
}

// ColumnInfo describes a column for host schema reporting.
type ColumnInfo struct {
	Name             string
	Type             query.Type
	Hidden           bool
	NaturallyOrdered bool
	FilterPushdown   bool
}

// Table is a named set of columns over a common row count.
//
// Table owns no data. Columns borrow storage sequences; rowCount reports
// how many rows they currently hold. Scans are read-only and may run
// concurrently, but the storage must not grow while any scan is in flight.
type Table struct {
	name     string
	rowCount func() uint32
	cols     []column.Column
	byName   map[string]int
	opts     options
}

// NewTable creates a table from its columns.
//
// Column names must be unique. Columns declared naturally ordered are
// checked against their backing data, since bound narrowing on unsorted
// data returns wrong answers.
func NewTable(name string, rowCount func() uint32, cols []column.Column, optFns ...Option) (*Table, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if rowCount == nil {
		return nil, ErrNilRowCount
	}

	t := &Table{
		name:     name,
		rowCount: rowCount,
		cols:     slices.Clone(cols),
		byName:   make(map[string]int, len(cols)),
		opts:     applyOptions(optFns),
	}

	for i, c := range t.cols {
		if c == nil {
			return nil, fmt.Errorf("column %d: %w", i, ErrNilColumn)
		}
		if c.Name() == "" {
			return nil, fmt.Errorf("column %d: %w", i, ErrEmptyName)
		}
		if j, ok := t.byName[c.Name()]; ok {
			return nil, &ErrDuplicateColumn{Name: c.Name(), First: j, Second: i}
		}
		if err := column.Validate(c); err != nil {
			return nil, err
		}
		t.byName[c.Name()] = i
	}

	t.opts.logger = t.opts.logger.WithTable(name)
	t.opts.logger.LogTableCreated(context.Background(), len(t.cols))

	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// RowCount returns the current number of rows.
func (t *Table) RowCount() uint32 { return t.rowCount() }

// Column returns the i-th column.
func (t *Table) Column(i int) column.Column { return t.cols[i] }

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.byName[name]
	return i, ok
}

// Schema describes every column, in order.
func (t *Table) Schema() []ColumnInfo {
	out := make([]ColumnInfo, len(t.cols))
	for i, c := range t.cols {
		out[i] = ColumnInfo{
			Name:             c.Name(),
			Type:             c.Type(),
			Hidden:           c.Hidden(),
			NaturallyOrdered: c.IsNaturallyOrdered(),
			FilterPushdown:   c.FilterPushdown(),
		}
	}
	return out
}

// Scan evaluates q and returns a cursor over the matching rows.
//
// A value whose tag a numeric column cannot compare against (text, NULL)
// panics with *query.ContractViolation: the binder promised never to send
// one.
func (t *Table) Scan(ctx context.Context, q Query) (*Cursor, error) {
	start := time.Now()

	cur, stats, err := t.scan(ctx, q)

	t.opts.metricsCollector.RecordScan(stats, time.Since(start), err)
	t.opts.logger.LogScan(ctx, stats, err)

	if err != nil {
		return nil, err
	}
	return cur, nil
}

func (t *Table) scan(ctx context.Context, q Query) (*Cursor, ScanStats, error) {
	stats := ScanStats{Constraints: len(q.Constraints)}

	if err := t.validate(q); err != nil {
		return nil, stats, err
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	n := t.rowCount()
	stats.Rows = n

	// Every column is asked; unordered ones answer with the full range.
	minIdx, maxIdx := uint32(0), n
	consumed := make([]bool, len(q.Constraints))
	for i, cs := range q.Constraints {
		b := t.cols[cs.Column].BoundFilter(cs.Op, cs.Value)
		minIdx = max(minIdx, b.MinIdx)
		maxIdx = min(maxIdx, b.MaxIdx)
		consumed[i] = b.Consumed
	}

	idx := rowindex.New(minIdx, maxIdx)
	if q.Rows != nil {
		idx.IntersectRows(q.Rows)
	}
	stats.Candidates = idx.Len()

	var recheck []int
	for i, cs := range q.Constraints {
		if consumed[i] {
			stats.Consumed++
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}

		c := t.cols[cs.Column]
		c.Filter(cs.Op, cs.Value, idx)
		stats.Filtered++

		if !c.FilterPushdown() {
			recheck = append(recheck, i)
		}
	}
	stats.Recheck = len(recheck)

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	rows, sorted := t.order(idx, q.OrderBy)
	stats.Sorted = sorted
	stats.Matched = uint32(len(rows))
	stats.Mode = idx.Mode().String()

	return &Cursor{table: t, rows: rows, pos: -1, recheck: recheck}, stats, nil
}

func (t *Table) validate(q Query) error {
	for i, cs := range q.Constraints {
		if cs.Column < 0 || cs.Column >= len(t.cols) {
			return &ErrColumnIndex{Clause: "constraint", Index: cs.Column, Count: len(t.cols)}
		}
		if !cs.Op.Valid() {
			return &ErrInvalidOperator{Constraint: i, Op: cs.Op}
		}
	}
	for _, ob := range q.OrderBy {
		if ob.Column < 0 || ob.Column >= len(t.cols) {
			return &ErrColumnIndex{Clause: "order by", Index: ob.Column, Count: len(t.cols)}
		}
	}
	return nil
}

// order materializes the candidates in the requested order. It reports
// whether an explicit sort was needed.
func (t *Table) order(idx *rowindex.FilteredRowIndex, obs []query.OrderBy) ([]uint32, bool) {
	switch {
	case len(obs) == 0:
		return idx.ToRowVector(), false
	case len(obs) == 1 && t.cols[obs[0].Column].IsNaturallyOrdered():
		return slices.Collect(idx.Rows(obs[0].Desc())), false
	}

	cmps := make([]column.Comparator, len(obs))
	for i, ob := range obs {
		cmps[i] = t.cols[ob.Column].Sort(ob)
	}

	rows := idx.ToRowVector()
	slices.SortStableFunc(rows, func(a, b uint32) int {
		for _, cmp := range cmps {
			if r := cmp(a, b); r != 0 {
				return r
			}
		}
		return 0
	})
	return rows, true
}

// ScanAll runs independent scans concurrently and returns their cursors in
// query order. The first error cancels the remaining scans.
func (t *Table) ScanAll(ctx context.Context, qs []Query) ([]*Cursor, error) {
	cursors := make([]*Cursor, len(qs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.opts.parallelism)

	for i, q := range qs {
		g.Go(func() error {
			cur, err := t.Scan(gctx, q)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			cursors[i] = cur
			return nil
		})
	}

	err := g.Wait()
	t.opts.logger.LogScanAll(ctx, len(qs), err)
	if err != nil {
		return nil, err
	}
	return cursors, nil
}
