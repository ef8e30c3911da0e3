package statistics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics observes statistics query latency. A nil *Metrics records nothing.
type Metrics struct {
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statistics_query_duration_seconds",
				Help:    "Duration of audit statistics queries.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"query", "result"},
		),
	}
	reg.MustRegister(m.duration)
	return m
}

func (m *Metrics) observe(query string, start time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.duration.WithLabelValues(query, result).Observe(time.Since(start).Seconds())
}
