package repo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var malformedRecords = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "delivery_service",
	Subsystem: "store",
	Name:      "malformed_records_total",
	Help:      "Number of stored orders skipped because they could not be decoded.",
})
