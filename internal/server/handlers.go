// Package server exposes the solver over HTTP: a schedule endpoint, a
// workload report endpoint, liveness and prometheus metrics. Every request
// runs its own solve against the configured catalog, so the handlers share
// no mutable state.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbelhadj/timetable-csp/internal/catalog"
	"github.com/kbelhadj/timetable-csp/internal/csp"
	"github.com/kbelhadj/timetable-csp/internal/schedule"
)

// DefaultTimeout bounds a single solve when the config does not set one.
const DefaultTimeout = 30 * time.Second

// Config carries what a handler needs: the catalog to solve, the solver
// options and the per-request solve budget.
type Config struct {
	Catalog catalog.Catalog
	Options csp.Options
	Timeout time.Duration
}

func (cfg Config) timeout() time.Duration {
	if cfg.Timeout <= 0 {
		return DefaultTimeout
	}
	return cfg.Timeout
}

// Welcome greets callers hitting the root path.
func Welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the timetable solver")
}

// HealthCheck reports liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSchedule solves the configured catalog and returns the timetable in
// its grouped wire form.
func GetSchedule(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, a, ok := solve(c, cfg)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, schedule.Serialize(a))
	}
}

// GetReport solves the configured catalog and returns the workload report.
func GetReport(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		solver, a, ok := solve(c, cfg)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, solver.Report(a))
	}
}

// solve runs one bounded solve. On any failure it writes the error response
// and returns ok=false, so callers only render the success shape.
func solve(c *gin.Context, cfg Config) (*csp.Solver, *csp.Assignment, bool) {
	solver, err := csp.New(cfg.Catalog, cfg.Options)
	if err != nil {
		slog.Error("catalog rejected", "request_id", c.GetString(requestIDKey), "error", err)
		solvesTotal.WithLabelValues(outcomeError).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid catalog: " + err.Error()})
		return nil, nil, false
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.timeout())
	defer cancel()

	start := time.Now()
	a, err := solver.Solve(ctx)
	solveDuration.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		solvesTotal.WithLabelValues(outcomeTimeout).Inc()
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "solve timed out"})
		return nil, nil, false
	case err != nil:
		slog.Error("solve failed", "request_id", c.GetString(requestIDKey), "error", err)
		solvesTotal.WithLabelValues(outcomeError).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "solve failed"})
		return nil, nil, false
	case a == nil:
		solvesTotal.WithLabelValues(outcomeUnsat).Inc()
		c.JSON(http.StatusConflict, gin.H{"error": "no timetable satisfies the catalog"})
		return nil, nil, false
	}

	solvesTotal.WithLabelValues(outcomeOK).Inc()
	return solver, a, true
}
