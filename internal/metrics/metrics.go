// Package metrics defines the Prometheus instruments for the Voyage Log API.
// Instruments are registered on the default registry via promauto and exposed
// by promhttp at GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VoyagesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voyagelog_voyages_created_total",
		Help: "Total number of voyages successfully created.",
	})

	VoyagesDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "voyagelog_voyages_deleted_total",
		Help: "Total number of voyages successfully deleted.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voyagelog_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "voyagelog_http_request_duration_seconds",
		Help:    "HTTP request latency by method and status code.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "status"},
	)
)
