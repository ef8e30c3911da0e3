package audit

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Skip reasons reported by audit_capture_skipped_total.
const (
	reasonNoActor         = "no_actor"
	reasonOperationFailed = "operation_failed"
)

// Metrics counts capture outcomes. A nil *Metrics records nothing.
type Metrics struct {
	captured *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	failures prometheus.Counter
}

// NewMetrics creates the capture collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		captured: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_records_captured_total",
				Help: "Total number of audit records persisted.",
			},
			[]string{"action", "target"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_capture_skipped_total",
				Help: "Total number of audited operations that produced no record.",
			},
			[]string{"reason"},
		),
		failures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "audit_capture_failures_total",
				Help: "Total number of audit records lost to store failures.",
			},
		),
	}

	reg.MustRegister(m.captured, m.skipped, m.failures)
	return m
}

func (m *Metrics) recordCaptured(c Classification) {
	if m == nil {
		return
	}
	m.captured.WithLabelValues(string(c.Action), string(c.Target)).Inc()
}

func (m *Metrics) recordSkipped(reason string) {
	if m == nil {
		return
	}
	m.skipped.WithLabelValues(reason).Inc()
}

func (m *Metrics) recordFailure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}
