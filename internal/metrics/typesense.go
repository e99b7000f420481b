package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Search service Prometheus metrics.
var (
	TypesenseRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "typesense_requests_total",
			Help:      "Total number of search service requests",
		},
		[]string{"op", "collection", "status"},
	)

	TypesenseRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "folio",
			Name:      "typesense_request_duration_seconds",
			Help:      "Search service request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"op"},
	)
)

var registerTypesense sync.Once

// RegisterTypesenseMetrics registers search service metrics on the default registry.
// Safe to call more than once.
func RegisterTypesenseMetrics() {
	registerTypesense.Do(func() {
		prometheus.MustRegister(TypesenseRequestsTotal)
		prometheus.MustRegister(TypesenseRequestDuration)
	})
}
