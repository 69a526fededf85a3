package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"strconv"
)

const namespace = "event_map"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	FilterResultSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "filter_result_size",
			Help:      "Number of events returned by a filter",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "events",
			Help:      "Number of events in the active catalog",
		},
	)

	CatalogRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "refresh_total",
			Help:      "Catalog refreshes by outcome",
		},
		[]string{"result"},
	)

	SessionActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "actions_total",
			Help:      "Session actions applied",
		},
		[]string{"action"},
	)

	ActivityMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "activity_messages_total",
			Help:      "Activity messages consumed by subject and outcome",
		},
		[]string{"subject", "result"},
	)
)

func init() {
	prometheus.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		FilterResultSize,
		CatalogSize,
		CatalogRefreshTotal,
		SessionActionsTotal,
		ActivityMessagesTotal,
	)
}

// Status renders an HTTP status code as a label value.
func Status(code int) string {
	return strconv.Itoa(code)
}
