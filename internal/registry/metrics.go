package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "delivery_service",
		Subsystem: "registry",
		Name:      "active_subscriptions",
		Help:      "Number of open live subscriptions",
	})

	activeFeeds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "delivery_service",
		Subsystem: "registry",
		Name:      "active_feeds",
		Help:      "Number of distinct live queries",
	})

	snapshotsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "registry",
		Name:      "snapshots_delivered_total",
		Help:      "Snapshots handed to subscribers",
	})

	snapshotsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "registry",
		Name:      "snapshots_replaced_total",
		Help:      "Undelivered snapshots replaced by a newer one",
	})

	feedErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "registry",
		Name:      "feed_errors_total",
		Help:      "Failed feed queries",
	})
)
