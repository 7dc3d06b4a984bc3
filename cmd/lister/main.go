package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/luciantraders/meesho-lister/internal/config"
	"github.com/luciantraders/meesho-lister/internal/http"
	"github.com/luciantraders/meesho-lister/internal/imgur"
	"github.com/luciantraders/meesho-lister/internal/log"
	"github.com/luciantraders/meesho-lister/internal/service"
	"github.com/luciantraders/meesho-lister/internal/telemetry"
	"github.com/luciantraders/meesho-lister/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running lister: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log   config.Log
		HTTP  config.HTTP
		Imgur config.Imgur
		Otel  config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	uploader := imgur.NewClient(cfg.Imgur, logger)

	draftService := service.NewDraftService()
	exportService := service.NewExportService(logger, draftService, uploader)
	trendService := service.NewTrendService()

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, draftService, exportService, trendService)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()

	return nil
}
