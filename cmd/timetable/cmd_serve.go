package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/kbelhadj/timetable-csp/internal/server"
)

func runServe(cmd *cobra.Command, args []string) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cat, err := loadCatalog()
	if err != nil {
		log.Fatalf("cannot load catalog: %v", err)
	}

	if debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	listen := addr
	if listen == "" {
		port := os.Getenv("TIMETABLE_PORT")
		if port == "" {
			port = "8080"
		}
		listen = ":" + port
	}

	router := gin.New()
	router.Use(gin.Recovery())
	server.SetupRoutes(router, server.Config{Catalog: cat})

	slog.Info("starting the timetable server", "addr", listen)
	if err := router.Run(listen); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
