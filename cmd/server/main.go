package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"optionslab/internal/config"
	"optionslab/internal/modules/backtest"
	backtesthandlers "optionslab/internal/modules/backtest/handlers"
	"optionslab/internal/modules/datasets"
	datasethandlers "optionslab/internal/modules/datasets/handlers"
	"optionslab/internal/scheduler"
	"optionslab/internal/server"
	"optionslab/pkg/logger"
)

func main() {
	// Load configuration first so the log level is honored
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info"})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Int("port", cfg.Port).
		Msg("Starting optionslab")

	// Storage layer and the index cache on top of it
	datasetRepo := datasets.NewRepository(cfg.DataDir, log)
	indexCache := datasets.NewCache(datasetRepo, log)

	// Services
	datasetService := datasets.NewService(datasetRepo, indexCache, log)
	backtestService := backtest.NewService(datasetRepo, indexCache, log)

	// Background rescan keeps the index cache honest when dataset
	// files change on disk
	sched := scheduler.New(log)
	rescanJob := datasets.NewRescanJob(datasetRepo, indexCache, log)
	if err := sched.AddJob(cfg.RescanSchedule, rescanJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register dataset rescan job")
	}
	sched.Start()

	srv := server.New(server.Config{
		Log:              log,
		Config:           cfg,
		DatasetHandlers:  datasethandlers.NewHandler(datasetService, log),
		BacktestHandlers: backtesthandlers.NewHandler(backtestService, log),
		SystemHandlers:   server.NewSystemHandlers(datasetRepo, indexCache, log),
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	sched.Stop()

	// The HTTP server gets up to 10 seconds to finish in-flight
	// requests before being forced down.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
