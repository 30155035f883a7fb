package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	QueriesProcessed *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
	RequestSeconds   *prometheus.HistogramVec
	InflightQueries  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		QueriesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hermes_queries_processed_total",
			Help: "Total number of processed travel queries.",
		}, []string{"outcome"}),
		UpstreamErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hermes_upstream_errors_total",
			Help: "Total number of errors received from upstream collaborators.",
		}, []string{"collaborator"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hermes_upstream_request_duration_seconds",
			Help:    "Duration of requests to upstream collaborators.",
			Buckets: prometheus.DefBuckets,
		}, []string{"collaborator"}),
		InflightQueries: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hermes_inflight_queries",
			Help: "Current number of queries being handled.",
		}),
	}
}
