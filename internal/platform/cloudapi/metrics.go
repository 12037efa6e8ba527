package cloudapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the transport middleware.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which tests use to avoid collisions.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "srmkit",
				Subsystem: "cloudapi",
				Name:      "requests_total",
				Help:      "Total number of cloud API requests by service, action and result code",
			},
			[]string{"service", "action", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "srmkit",
				Subsystem: "cloudapi",
				Name:      "request_duration_seconds",
				Help:      "Duration of cloud API requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
			},
			[]string{"service", "action"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.requestsTotal, m.requestDuration)
	}
	return m
}

func (m *Metrics) observe(service, action string, err error, elapsed time.Duration) {
	code := "OK"
	if err != nil {
		code = ErrorCodeOf(err)
		if code == "" {
			code = "TransportError"
		}
	}
	m.requestsTotal.WithLabelValues(service, action, code).Inc()
	m.requestDuration.WithLabelValues(service, action).Observe(elapsed.Seconds())
}
