// Package prom exports colscan scan metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, _ := prom.NewCollector(reg, prom.WithNamespace("trace"))
//	tbl, _ := colscan.NewTable("slice", rowCount, cols, colscan.WithMetricsCollector(c))
package prom

import (
	"net/http"
	"time"

	"github.com/hupe1980/colscan"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Collector is a colscan.MetricsCollector backed by Prometheus metrics.
type Collector struct {
	scans       *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	rows        *prometheus.CounterVec
	constraints *prometheus.CounterVec
	sorts       prometheus.Counter
	matched     prometheus.Histogram
}

var _ colscan.MetricsCollector = (*Collector)(nil)

type options struct {
	namespace   string
	constLabels prometheus.Labels
	buckets     []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace prefixes every metric name. The default is "colscan".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithConstLabels attaches labels to every metric, e.g. the table name.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *options) {
		o.constLabels = labels
	}
}

// WithBuckets sets the latency histogram buckets, in seconds.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// NewCollector creates the scan metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	o := options{
		namespace: "colscan",
		buckets:   prometheus.DefBuckets,
	}
	for _, fn := range optFns {
		fn(&o)
	}

	c := &Collector{
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "scans_total",
			Help:        "Number of scans by status.",
			ConstLabels: o.constLabels,
		}, []string{"status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   o.namespace,
			Name:        "scan_duration_seconds",
			Help:        "Scan latency by status.",
			ConstLabels: o.constLabels,
			Buckets:     o.buckets,
		}, []string{"status"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "rows_total",
			Help:        "Rows seen per scan stage (candidate after bounds, matched after filters).",
			ConstLabels: o.constLabels,
		}, []string{"stage"}),
		constraints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "constraints_total",
			Help:        "Constraints by how they were evaluated.",
			ConstLabels: o.constLabels,
		}, []string{"evaluation"}),
		sorts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Name:        "sorts_total",
			Help:        "Scans that needed an explicit sort.",
			ConstLabels: o.constLabels,
		}),
		matched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   o.namespace,
			Name:        "scan_matched_rows",
			Help:        "Rows returned per scan.",
			ConstLabels: o.constLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	for _, m := range []prometheus.Collector{c.scans, c.latency, c.rows, c.constraints, c.sorts, c.matched} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordScan implements colscan.MetricsCollector.
func (c *Collector) RecordScan(stats colscan.ScanStats, d time.Duration, err error) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	c.scans.WithLabelValues(status).Inc()
	c.latency.WithLabelValues(status).Observe(d.Seconds())

	if err != nil {
		return
	}

	c.rows.WithLabelValues("candidate").Add(float64(stats.Candidates))
	c.rows.WithLabelValues("matched").Add(float64(stats.Matched))
	c.constraints.WithLabelValues("consumed").Add(float64(stats.Consumed))
	c.constraints.WithLabelValues("filtered").Add(float64(stats.Filtered))
	c.constraints.WithLabelValues("recheck").Add(float64(stats.Recheck))
	c.matched.Observe(float64(stats.Matched))

	if stats.Sorted {
		c.sorts.Inc()
	}
}

// Handler serves the metrics gathered by g in the Prometheus exposition
// format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
