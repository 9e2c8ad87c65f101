package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	locationsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "locations_processed_total",
			Help:      "Total number of driver positions written",
		},
	)

	locationsInvalid = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "locations_invalid_total",
			Help:      "Total number of undecodable or invalid position messages",
		},
	)

	locationsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "locations_rejected_total",
			Help:      "Total number of positions rejected by the order store",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	locationProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "location_processing_duration_seconds",
			Help:      "Histogram of position processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	locationsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "locations_in_progress",
			Help:      "Number of positions currently being processed",
		},
	)
)

var liveConnections = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "delivery_service",
		Subsystem: "live",
		Name:      "connections",
		Help:      "Number of open websocket connections",
	},
)

func RegisterMetrics() {
	prometheus.MustRegister(
		locationsProcessed,
		locationsInvalid,
		locationsRejected,
		commitErrors,
		locationProcessingDuration,
		locationsInProgress,

		liveConnections,
	)
}
