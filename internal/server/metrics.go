package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "timetable"

// Solve outcomes as exposed on the metrics endpoint.
const (
	outcomeOK      = "ok"
	outcomeUnsat   = "unsat"
	outcomeTimeout = "timeout"
	outcomeError   = "error"
)

var (
	solvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "solves_total",
			Help:      "Solve attempts by outcome (ok, unsat, timeout, error).",
		},
		[]string{"outcome"},
	)

	solveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of a single solve.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
	)
)
