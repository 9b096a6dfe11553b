package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venture/internal/api"
	"venture/internal/config"
	"venture/internal/game"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadAPIFromEnv()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	catalog := game.DefaultCatalog()
	if cfg.CatalogPath != "" {
		loaded, err := game.LoadCatalogFile(cfg.CatalogPath)
		if err != nil {
			logger.Error("load catalog failed", "path", cfg.CatalogPath, "err", err)
			os.Exit(1)
		}
		catalog = loaded
		logger.Info("catalog loaded", "path", cfg.CatalogPath,
			"startups", len(catalog.Startups), "events", len(catalog.Events))
	}

	sink := game.NewRingSink(cfg.NotificationCap)
	engine := game.NewEngine(catalog, cfg.UserID, cfg.Username, logger,
		game.WithRoundDuration(cfg.RoundDuration),
		game.WithEventEvery(cfg.EventEvery),
		game.WithNotifier(sink))

	// Round clock: one engine tick per second while the process runs.
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				engine.Tick()
			}
		}
	}()

	server := api.New(cfg, logger, engine, sink)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("venture api listening", "addr", cfg.Addr,
		"round_duration", cfg.RoundDuration.String(), "event_every", cfg.EventEvery.String())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
