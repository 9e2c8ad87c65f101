package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "routing",
		Name:      "upstream_requests_total",
		Help:      "Requests to the router and geocoder by api and status",
	}, []string{"api", "status"})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "routing",
		Name:      "cache_hits_total",
		Help:      "Lookups answered from cache",
	}, []string{"api"})
)
