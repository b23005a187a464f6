package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portal", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portal", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	DocumentOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portal", Name: "document_operations_total", Help: "Successful document lifecycle operations by kind."},
		[]string{"op"},
	)
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portal", Name: "http_requests_total", Help: "Total number of HTTP requests."},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "portal", Name: "http_request_duration_seconds", Help: "Duration of HTTP requests.", Buckets: []float64{0.1, 0.5, 1, 2.5, 5}},
		[]string{"method", "path"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(DocumentOps)
	reg.MustRegister(RequestsTotal)
	reg.MustRegister(RequestDuration)
}
