package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess   = "success"
	OutcomeSoftError = "soft_error"
	OutcomeHardError = "hard_error"
	OutcomeTransport = "transport_error"
)

// GatewayMetrics counts outbound iPay calls. A nil *GatewayMetrics is valid
// and records nothing.
type GatewayMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ipay",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "Total number of requests sent to iPay.",
	}, []string{"operation", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ipay",
		Subsystem: "gateway",
		Name:      "request_duration_ms",
		Help:      "iPay request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"operation"})

	reg.MustRegister(requests, latency)
	return &GatewayMetrics{Requests: requests, LatencyMS: latency}
}

func (m *GatewayMetrics) Observe(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(operation, outcome).Inc()
	m.LatencyMS.WithLabelValues(operation).Observe(float64(elapsed.Milliseconds()))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
