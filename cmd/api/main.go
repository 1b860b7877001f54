package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/FACorreiaa/docledger/internal/api"
	"github.com/FACorreiaa/docledger/internal/domain/auth"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/category"
	extractionhandler "github.com/FACorreiaa/docledger/internal/domain/extraction/handler"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/ocr"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/parser"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/pdftable"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/repository"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/segment"
	"github.com/FACorreiaa/docledger/internal/domain/extraction/service"
	"github.com/FACorreiaa/docledger/internal/domain/transaction"
	"github.com/FACorreiaa/docledger/pkg/config"
	"github.com/FACorreiaa/docledger/pkg/cron"
	"github.com/FACorreiaa/docledger/pkg/db"
	"github.com/FACorreiaa/docledger/pkg/metrics"
	"github.com/FACorreiaa/docledger/pkg/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN(),
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: 10 * time.Minute,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}
	defer database.Close()

	if err := database.RunMigrations(); err != nil {
		return err
	}

	store, err := storage.NewLocal(cfg.Upload.Dir)
	if err != nil {
		return fmt.Errorf("failed to init upload storage: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	extractionMetrics := metrics.NewExtraction(registry)

	logRepo := repository.NewPostgresLogRepository(database.Pool)
	txRepo := transaction.NewPostgresRepository(database.Pool)
	userRepo := auth.NewPostgresUserRepository(database.Pool)

	authSvc := auth.NewService(userRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	authHandler := auth.NewHandler(authSvc, logger)

	images := ocr.NewExtractor(ocr.NewTesseract(cfg.OCR.Languages...), segment.Whitespace{})
	tables := pdftable.New()
	rowParser := parser.New().WithCategories(category.NewNormalizer())

	pipeline := service.NewPipelineService(
		logRepo,
		txRepo,
		store,
		images,
		tables,
		rowParser,
		extractionMetrics,
		logger,
	)
	extractionHandler := extractionhandler.NewHandler(pipeline, store, cfg.Upload.MaxBytes, logger)

	if cfg.Janitor.Enabled {
		janitor := cron.NewJanitor(
			store,
			logRepo,
			time.Duration(cfg.Janitor.MaxAgeMinutes)*time.Minute,
			logger,
		)
		if err := janitor.Start(); err != nil {
			return fmt.Errorf("failed to start janitor: %w", err)
		}
		defer janitor.Stop()
	}

	router := api.NewRouter(api.RouterConfig{
		AllowedOrigins:     cfg.Server.AllowedOrigins,
		RateLimitPerSecond: float64(cfg.Server.RateLimitPerSecond),
		RateLimitBurst:     cfg.Server.RateLimitBurst,
	}, authSvc, authHandler, extractionHandler, registry, logger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
