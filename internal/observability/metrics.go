package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the cone
// engine.
type Metrics struct {
	StormsProcessed  prometheus.Counter
	StormErrors      prometheus.Counter
	RecordsDropped   prometheus.Counter
	ConesBuilt       prometheus.Counter
	EmptyCones       prometheus.Counter
	InterceptRows    prometheus.Counter
	ReportsPublished prometheus.Counter

	RunsTotal   *prometheus.CounterVec // label: outcome={no_storms,no_impacts,impacts}
	RunDuration prometheus.Histogram

	PortfolioSize prometheus.Gauge
	RunInProgress prometheus.Gauge
}

// NewMetrics creates and registers all engine metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.StormsProcessed,
		m.StormErrors,
		m.RecordsDropped,
		m.ConesBuilt,
		m.EmptyCones,
		m.InterceptRows,
		m.ReportsPublished,
		m.RunsTotal,
		m.RunDuration,
		m.PortfolioSize,
		m.RunInProgress,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		StormsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_cone",
			Name:      "storms_processed_total",
			Help:      "Total storms examined across all runs.",
		}),
		StormErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_cone",
			Name:      "storm_errors_total",
			Help:      "Total storms skipped due to per-storm processing failures.",
		}),
		RecordsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_cone",
			Name:      "records_dropped_total",
			Help:      "Total advisory lines rejected by the parser's drop rules.",
		}),
		ConesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_cone",
			Name:      "cones_built_total",
			Help:      "Total non-empty uncertainty cones constructed.",
		}),
		EmptyCones: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_cone",
			Name:      "empty_cones_total",
			Help:      "Total storms with no usable uncertainty geometry.",
		}),
		InterceptRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_cone",
			Name:      "intercept_rows_total",
			Help:      "Total AOI/cone intersection rows produced.",
		}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_cone",
			Name:      "reports_published_total",
			Help:      "Total impact reports published downstream.",
		}),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_cone",
			Name:      "runs_total",
			Help:      "Completed runs by terminal outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "storm_cone",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete discover-cone-overlay-report run.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		PortfolioSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_cone",
			Name:      "portfolio_size",
			Help:      "Number of AOIs loaded for the current run.",
		}),
		RunInProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_cone",
			Name:      "run_in_progress",
			Help:      "1 while a run is executing, 0 otherwise.",
		}),
	}
}
