package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGatewayMetrics_Observe(t *testing.T) {
	m := NewGatewayMetrics(prometheus.NewRegistry())

	m.Observe("checkout", OutcomeSuccess, 12*time.Millisecond)
	m.Observe("checkout", OutcomeSuccess, 3*time.Millisecond)
	m.Observe("checkout", OutcomeHardError, time.Millisecond)

	if got := testutil.ToFloat64(m.Requests.WithLabelValues("checkout", OutcomeSuccess)); got != 2 {
		t.Fatalf("expected 2 successes, got %v", got)
	}
	if got := testutil.ToFloat64(m.Requests.WithLabelValues("checkout", OutcomeHardError)); got != 1 {
		t.Fatalf("expected 1 hard error, got %v", got)
	}
}

func TestGatewayMetrics_NilIsNoop(t *testing.T) {
	var m *GatewayMetrics
	m.Observe("token", OutcomeSuccess, time.Millisecond)
}
