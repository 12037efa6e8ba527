package provisioning

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the orchestrator. A nil
// *Metrics records nothing.
type Metrics struct {
	phasesTotal   *prometheus.CounterVec
	phaseDuration *prometheus.HistogramVec
	sharesTotal   *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg when reg is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		phasesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "srmkit",
				Subsystem: "provisioning",
				Name:      "phases_total",
				Help:      "Total number of provisioning phases by operation, phase and result",
			},
			[]string{"operation", "phase", "result"},
		),
		phaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "srmkit",
				Subsystem: "provisioning",
				Name:      "phase_duration_seconds",
				Help:      "Duration of provisioning phases in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~51s
			},
			[]string{"operation", "phase"},
		),
		sharesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "srmkit",
				Subsystem: "provisioning",
				Name:      "file_shares_total",
				Help:      "File shares handed out by how they were obtained",
			},
			[]string{"action"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.phasesTotal, m.phaseDuration, m.sharesTotal)
	}
	return m
}

func (m *Metrics) observePhase(operation, phase string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.phasesTotal.WithLabelValues(operation, phase, result).Inc()
	m.phaseDuration.WithLabelValues(operation, phase).Observe(elapsed.Seconds())
}

func (m *Metrics) recordShare(action ShareAction) {
	if m == nil {
		return
	}
	m.sharesTotal.WithLabelValues(string(action)).Inc()
}
