// Package metrics provides the Prometheus collectors exported by PharmaZen:
//   - HTTP request counters, latency histograms and in-flight gauge
//   - per-client rate limiter bucket gauge
//   - catalog import run, record and duration collectors
//
// All collectors are registered with the Prometheus default registry during
// package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Import record outcomes.
const (
	OutcomeInserted     = "inserted"
	OutcomeSkipped      = "skipped"
	OutcomeDeduplicated = "deduplicated"
)

// Import run results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (clients seen recently)",
		},
	)

	ImportRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_import_runs_total",
			Help: "Catalog import runs by result",
		},
		[]string{"result"},
	)

	ImportRecordsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_import_records_total",
			Help: "Medicine records processed by import outcome",
		},
		[]string{"outcome"},
	)

	ImportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_import_duration_seconds",
			Help:    "Wall time of a full catalog import",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	SearchDocumentsIndexed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "search_documents_indexed_total",
			Help: "Medicine documents pushed to the search index",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(ImportRunsTotal)
	prometheus.MustRegister(ImportRecordsTotal)
	prometheus.MustRegister(ImportDuration)
	prometheus.MustRegister(SearchDocumentsIndexed)
}
