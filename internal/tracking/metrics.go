package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	activeReporters = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "delivery_service",
		Subsystem: "tracking",
		Name:      "active_reporters",
		Help:      "Number of running location reporters",
	})

	positionsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "tracking",
		Name:      "positions_written_total",
		Help:      "Positions written by reporters",
	})

	positionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "delivery_service",
		Subsystem: "tracking",
		Name:      "position_errors_total",
		Help:      "Positions that failed to be written",
	})
)
