package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "drought_dashboard"

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	DatasetRows    prometheus.Gauge
	SessionsActive prometheus.Gauge

	// Render cycle metrics.
	Renders        *prometheus.CounterVec   // labels: view={page,table,line,compare,export}
	EmptyResults   *prometheus.CounterVec   // labels: view
	RenderDuration *prometheus.HistogramVec // labels: view

	// Selection metrics.
	SelectionChanges *prometheus.CounterVec // labels: action={update,reset}
	InvalidSelection prometheus.Counter

	// Event publishing metrics.
	EventsPublished prometheus.Counter
	EventErrors     prometheus.Counter
	EventsEnabled   prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.DatasetRows,
		m.SessionsActive,
		m.Renders,
		m.EmptyResults,
		m.RenderDuration,
		m.SelectionChanges,
		m.InvalidSelection,
		m.EventsPublished,
		m.EventErrors,
		m.EventsEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics that are not registered anywhere, so
// tests can build as many as they like without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Number of observation rows loaded at startup.",
		}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Sessions currently holding selection state.",
		}),
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render cycles by view.",
		}, []string{"view"}),
		EmptyResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_results_total",
			Help:      "Render cycles whose filter matched no rows, by view.",
		}, []string{"view"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of a filter, sort and aggregate cycle including output encoding.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"view"}),
		SelectionChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selection_changes_total",
			Help:      "Accepted selection changes by action.",
		}, []string{"action"}),
		InvalidSelection: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_selection_total",
			Help:      "Selection updates rejected by validation.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Selection events written to Kafka.",
		}),
		EventErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_errors_total",
			Help:      "Selection events that failed to publish.",
		}),
		EventsEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "events_enabled",
			Help:      "1 when selection event publishing is enabled, 0 otherwise.",
		}),
	}
}
