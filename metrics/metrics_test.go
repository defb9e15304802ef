package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// New registers against the default registry, so the whole package test
// shares a single instance.
func TestMetrics(t *testing.T) {
	m := New()

	t.Run("observe records status label", func(t *testing.T) {
		m.Observe("/search", 200, 120*time.Millisecond)
		m.Observe("/search", 200, 80*time.Millisecond)
		m.Observe("/contents", 400, 10*time.Millisecond)

		if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/search", "200")); got != 2 {
			t.Errorf("requests_total{/search,200} = %v, want 2", got)
		}
		if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/contents", "400")); got != 1 {
			t.Errorf("requests_total{/contents,400} = %v, want 1", got)
		}
	})

	t.Run("transport failure becomes its own label", func(t *testing.T) {
		m.Observe("/findSimilar", 0, 5*time.Millisecond)

		if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/findSimilar", "transport_error")); got != 1 {
			t.Errorf("requests_total{/findSimilar,transport_error} = %v, want 1", got)
		}
	})

	t.Run("in-flight gauge tracks inc and dec", func(t *testing.T) {
		m.IncRequestsInFlight()
		m.IncRequestsInFlight()
		if got := testutil.ToFloat64(m.RequestsInFlight); got != 2 {
			t.Errorf("requests_in_flight = %v, want 2", got)
		}

		m.DecRequestsInFlight()
		m.DecRequestsInFlight()
		if got := testutil.ToFloat64(m.RequestsInFlight); got != 0 {
			t.Errorf("requests_in_flight = %v, want 0", got)
		}
	})
}
