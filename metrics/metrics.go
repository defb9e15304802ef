// Package metrics instruments the exa client with Prometheus counters
// and histograms. A *Metrics satisfies exa.Observer, so wiring it up is
// one Config field; exposing it is one Handler call.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	exa "github.com/kitbuilder587/exa-go"
)

var (
	_ exa.Observer        = (*Metrics)(nil)
	_ exa.InFlightTracker = (*Metrics)(nil)
)

type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exa_client_requests_total",
				Help: "Total number of API requests by endpoint and HTTP status",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exa_client_request_duration_seconds",
				Help:    "API request duration by endpoint",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		RequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "exa_client_requests_in_flight",
				Help: "Number of API requests currently in flight",
			},
		),
	}
}

// Observe records one completed exchange. Status 0 (transport failure)
// becomes the "transport_error" label value.
func (m *Metrics) Observe(endpoint string, status int, duration time.Duration) {
	label := "transport_error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	m.RequestsTotal.WithLabelValues(endpoint, label).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metrics) IncRequestsInFlight() {
	m.RequestsInFlight.Inc()
}

func (m *Metrics) DecRequestsInFlight() {
	m.RequestsInFlight.Dec()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}
