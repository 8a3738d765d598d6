package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docforge/outliner/internal/api"
	"github.com/docforge/outliner/internal/config"
	"github.com/docforge/outliner/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch cfg.Mode {
	case config.ModeBatch:
		runBatch(ctx, cfg, log)
	case config.ModeServe:
		runServe(ctx, cfg, log)
	}
}

func runBatch(ctx context.Context, cfg config.Config, log *slog.Logger) {
	stats := pipeline.NewRunStats(time.Hour)
	runner := &pipeline.Runner{
		InputDir:    cfg.InputDir,
		OutputDir:   cfg.OutputDir,
		Workers:     cfg.Workers,
		SamplePages: cfg.SamplePages,
		Log:         log,
		Stats:       stats,
	}
	sum, err := runner.Run(ctx)
	if err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}
	snap := stats.Snapshot()
	log.Info("batch latency",
		"processed", sum.Processed,
		"avg_ms", snap.AvgMs,
		"p95_ms", snap.P95Ms,
	)
}

func runServe(ctx context.Context, cfg config.Config, log *slog.Logger) {
	stats := pipeline.NewRunStats(time.Hour)
	orch := pipeline.NewOrchestrator(pipeline.OrchestratorConfig{
		Workers:      cfg.Workers,
		MaxQueueSize: cfg.MaxQueueSize,
		SamplePages:  cfg.SamplePages,
		JobTTL:       cfg.JobTTL,
	}, log, stats)
	orch.Start(ctx)

	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting outliner", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
