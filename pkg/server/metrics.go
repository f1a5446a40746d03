package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus instruments for the server.
type metrics struct {
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	eventsTotal    *prometheus.CounterVec
	eventDuration  prometheus.Histogram
	updatesSent    prometheus.Counter
	updateBatch    prometheus.Histogram
	updatesDropped prometheus.Counter
}

// newMetrics registers the server instruments with the given registry.
// A nil registry uses the default registerer.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &metrics{
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "luma",
			Name:      "active_sessions",
			Help:      "Number of active WebSocket sessions",
		}),

		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "luma",
			Name:      "sessions_total",
			Help:      "Total number of sessions created",
		}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "luma",
			Name:      "events_total",
			Help:      "Total number of inbound events by status",
		}, []string{"status"}),

		eventDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "luma",
			Name:      "event_duration_seconds",
			Help:      "Event handler duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		updatesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "luma",
			Name:      "updates_sent_total",
			Help:      "Total number of update batches sent to clients",
		}),

		updateBatch: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "luma",
			Name:      "update_batch_size",
			Help:      "Number of elements per update batch",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),

		updatesDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "luma",
			Name:      "updates_dropped_total",
			Help:      "Total number of update messages dropped by full outboxes",
		}),
	}
}
