package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Committed order mutations by event type.",
	}, []string{"event"})

	locationReports = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "orders",
		Name:      "location_reports_total",
		Help:      "Accepted driver location reports.",
	})

	idempotentReplays = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "orders",
		Name:      "idempotent_replays_total",
		Help:      "Create requests answered from a stored idempotency result.",
	})
)
