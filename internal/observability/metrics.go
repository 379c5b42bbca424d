package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// chatbot pipeline.
type Metrics struct {
	// Turns labeled by outcome: success, not_understood, geocode_miss,
	// forecast_miss, error.
	Turns        *prometheus.CounterVec
	TurnDuration prometheus.Histogram

	// Outbound provider calls, labeled by service ({gemini,opencage,meteoblue})
	// and outcome ({success,miss,error}).
	ProviderRequests *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec

	SessionActive prometheus.Gauge
}

// NewMetrics creates and registers all chatbot metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Turns,
		m.TurnDuration,
		m.ProviderRequests,
		m.ProviderDuration,
		m.SessionActive,
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
		Turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatbot",
			Name:      "turns_total",
			Help:      "Completed user turns by outcome.",
		}, []string{"outcome"}),
		TurnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chatbot",
			Name:      "turn_duration_seconds",
			Help:      "Duration of a complete interpret-geocode-forecast-compose turn.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatbot",
			Name:      "provider_requests_total",
			Help:      "Outbound provider API requests by service and outcome.",
		}, []string{"service", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chatbot",
			Name:      "provider_request_duration_seconds",
			Help:      "Provider API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service"}),
		SessionActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "chatbot",
			Name:      "session_active",
			Help:      "1 while the interactive loop is reading input, 0 after exit.",
		}),
	}
}
