package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var published = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "delivery_service",
	Subsystem: "events",
	Name:      "published_total",
	Help:      "Order events sent to Kafka by type and result",
}, []string{"type", "result"})
