// Package metrics exposes Prometheus counters for the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScheduleCalculations counts schedule computations by outcome.
	ScheduleCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_calculations_total",
			Help: "Total number of schedule calculations",
		},
		[]string{"status"},
	)

	// ValidationFailures counts requests rejected by input validation.
	ValidationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Number of requests that failed input validation",
		},
	)

	// CacheLookups counts result-cache lookups by result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Result cache lookups",
		},
		[]string{"result"},
	)
)
