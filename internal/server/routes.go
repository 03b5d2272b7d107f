package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires the middleware chain and every endpoint onto the router.
func SetupRoutes(router *gin.Engine, cfg Config) {
	router.Use(RequestID(), AccessLog(), CORS())

	router.GET("/", Welcome)
	router.GET("/healthz", HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/schedule", GetSchedule(cfg))
		api.GET("/schedule/report", GetReport(cfg))
	}
}
