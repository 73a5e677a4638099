package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/miloosorio186/dashboard-tech/internal/api"
	"github.com/miloosorio186/dashboard-tech/internal/config"
	"github.com/miloosorio186/dashboard-tech/internal/gateway"
	"github.com/miloosorio186/dashboard-tech/internal/metrics"
	"github.com/miloosorio186/dashboard-tech/internal/state"
	"github.com/miloosorio186/dashboard-tech/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting dashboard-tech server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Initialize remote data gateway
	gw := gateway.NewClient(&cfg.Gateway, collector, log)

	// Initialize the session state store
	store := state.NewStore(gw, &cfg.State, collector, log)

	// Run the initial load in the background; the API answers 503 for
	// data endpoints until the fetch join settles
	go store.Load(context.Background())

	// Initialize router
	router := api.NewRouter(store, collector, registry, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
