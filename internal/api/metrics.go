package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments the estimate API.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
	parseFailures prometheus.Counter
	duration      prometheus.Histogram
}

// NewMetrics registers the API metrics on reg (DefaultRegisterer when nil).
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "estimate_requests_total",
				Help:      "Total number of estimate API requests",
			},
			[]string{"status"},
		),
		parseFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cron_parse_failures_total",
				Help:      "Total number of cron expressions rejected during estimation",
			},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "estimate_duration_seconds",
				Help:      "Duration of estimate computations",
				Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1},
			},
		),
	}

	reg.MustRegister(m.requestsTotal, m.parseFailures, m.duration)
	return m
}

func (m *Metrics) observeRequest(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(status).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) observeParseFailure() {
	if m == nil {
		return
	}
	m.parseFailures.Inc()
}
