package colscan

import (
	"sync/atomic"
	"time"
)

// ScanStats describes the work done by one scan.
type ScanStats struct {
	// Constraints is the number of constraints in the query.
	Constraints int

	// Rows is the table's row count when the scan started.
	Rows uint32

	// Candidates is the size of the range left after bound narrowing and
	// the row restriction, before residual filtering.
	Candidates uint32

	// Matched is the number of rows the cursor yields.
	Matched uint32

	// Consumed counts constraints answered entirely by bound narrowing.
	Consumed int

	// Filtered counts constraints evaluated by a residual filter.
	Filtered int

	// Recheck counts constraints the host must still evaluate.
	Recheck int

	// Sorted is true if the rows had to be sorted explicitly.
	Sorted bool

	// Mode is the final representation of the candidate set.
	Mode string
}

// MetricsCollector defines an interface for collecting scan metrics.
// Implement this interface to integrate with monitoring systems; package
// prom provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordScan is called after each scan.
	// duration is the total time taken, err is nil if successful.
	RecordScan(stats ScanStats, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordScan(ScanStats, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ScanCount      atomic.Int64
	ScanErrors     atomic.Int64
	ScanTotalNanos atomic.Int64
	RowsCandidate  atomic.Int64
	RowsMatched    atomic.Int64
	Consumed       atomic.Int64
	Filtered       atomic.Int64
	Recheck        atomic.Int64
	Sorts          atomic.Int64
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(stats ScanStats, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanErrors.Add(1)
		return
	}
	b.RowsCandidate.Add(int64(stats.Candidates))
	b.RowsMatched.Add(int64(stats.Matched))
	b.Consumed.Add(int64(stats.Consumed))
	b.Filtered.Add(int64(stats.Filtered))
	b.Recheck.Add(int64(stats.Recheck))
	if stats.Sorted {
		b.Sorts.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ScanCount:     b.ScanCount.Load(),
		ScanErrors:    b.ScanErrors.Load(),
		ScanAvgNanos:  b.getAvgScanNanos(),
		RowsCandidate: b.RowsCandidate.Load(),
		RowsMatched:   b.RowsMatched.Load(),
		Consumed:      b.Consumed.Load(),
		Filtered:      b.Filtered.Load(),
		Recheck:       b.Recheck.Load(),
		Sorts:         b.Sorts.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgScanNanos() int64 {
	count := b.ScanCount.Load()
	if count == 0 {
		return 0
	}
	return b.ScanTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ScanCount     int64
	ScanErrors    int64
	ScanAvgNanos  int64
	RowsCandidate int64
	RowsMatched   int64
	Consumed      int64
	Filtered      int64
	Recheck       int64
	Sorts         int64
}
