package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/narrow-rankings/internal/cache"
	"github.com/mauv0809/narrow-rankings/internal/config"
	server "github.com/mauv0809/narrow-rankings/internal/http"
	"github.com/mauv0809/narrow-rankings/internal/metrics"
	"github.com/mauv0809/narrow-rankings/internal/narrowarrow"
	"github.com/mauv0809/narrow-rankings/internal/notifier"
	"github.com/mauv0809/narrow-rankings/internal/notifier/slack"
	"github.com/mauv0809/narrow-rankings/internal/points"
	"github.com/mauv0809/narrow-rankings/internal/rankings"
	"github.com/mauv0809/narrow-rankings/internal/source"
	"github.com/mauv0809/narrow-rankings/internal/views"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	log.Info("Configuration loaded", "levels", len(cfg.LevelIDs), "api_base", cfg.APIBase, "fetch_concurrency", cfg.FetchConcurrency)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	fetcher := narrowarrow.NewHTTPFetcher(cfg.HTTPTimeout)
	src := source.New(fetcher, cache.New(), narrowarrow.NewEndpoints(cfg.APIBase), metricsSvc)
	aggregator := rankings.New(src, points.ForRank, metricsSvc, rankings.WithConcurrency(cfg.FetchConcurrency))
	pages := views.NewBuilder(src, aggregator, points.ForRank, cfg.LevelIDs, views.Avatars(cfg.PlayerAvatars))

	// The notifier stays a nil interface when Slack is disabled.
	var n notifier.Notifier
	if cfg.Slack.Enabled() {
		n = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Warn("SLACK_BOT_TOKEN not set, Slack notifications disabled")
	}

	s := server.NewServer(pages, metricsSvc, metricsHandler, cfg, n)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
