package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfill_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fulfill_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	QcDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfill_qc_decisions_total",
			Help: "QC decisions by gate type and outcome",
		},
		[]string{"type", "outcome"},
	)

	QcSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fulfill_qc_submissions_total",
			Help: "QC evidence submissions by gate type",
		},
		[]string{"type"},
	)

	ProgressCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfill_progress_cache_hits_total",
			Help: "Order progress payloads served from Redis",
		},
	)

	ProgressCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fulfill_progress_cache_misses_total",
			Help: "Order progress payloads recomputed on cache miss",
		},
	)

	LiveClientsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fulfill_live_clients",
			Help: "Connected progress websocket clients",
		},
	)
)
