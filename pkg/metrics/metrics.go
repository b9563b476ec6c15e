package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PayloadRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payload_requests_total",
			Help: "Total number of requests sent to the Payload collection API",
		},
		[]string{"collection", "method", "outcome"},
	)

	PayloadRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payload_request_duration_seconds",
			Help:    "Duration of requests sent to the Payload collection API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collection", "method"},
	)

	DashboardFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_fallbacks_total",
			Help: "Total number of reads answered with the fixed fallback value",
		},
		[]string{"operation"},
	)
)

// Register registra os coletores no registry informado
func Register(registerer prometheus.Registerer) {
	registerer.MustRegister(
		PayloadRequestsTotal,
		PayloadRequestDuration,
		DashboardFallbacksTotal,
	)
}

// ObservePayloadRequest contabiliza uma chamada ao Payload
func ObservePayloadRequest(collection, method string, started time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	PayloadRequestsTotal.WithLabelValues(collection, method, outcome).Inc()
	PayloadRequestDuration.WithLabelValues(collection, method).Observe(time.Since(started).Seconds())
}

func IncFallback(operation string) {
	DashboardFallbacksTotal.WithLabelValues(operation).Inc()
}
