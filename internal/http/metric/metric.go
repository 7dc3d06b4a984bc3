package metric

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	InflightRequests prometheus.Gauge
}

var (
	once   sync.Once
	shared *Metrics
)

// New returns the process-wide HTTP metrics. Collectors register on the
// default registry, so they are created once.
func New() *Metrics {
	once.Do(func() {
		shared = &Metrics{
			RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			}, []string{"method", "path"}),
			RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "path"}),
			InflightRequests: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "http_inflight_requests",
				Help: "Number of in-flight HTTP requests.",
			}),
		}
	})

	return shared
}
