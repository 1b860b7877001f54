// Package cron runs scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/FACorreiaa/docledger/internal/domain/extraction/repository"
	"github.com/FACorreiaa/docledger/pkg/storage"
)

// Janitor reaps what crashed requests leave behind: upload files that were
// never deleted and extraction logs stuck in pending.
type Janitor struct {
	cron    *cron.Cron
	uploads storage.Sweeper
	logs    repository.LogRepository
	maxAge  time.Duration
	logger  *slog.Logger
}

// NewJanitor creates the janitor. maxAge is how long files and pending logs
// may linger before being reaped.
func NewJanitor(uploads storage.Sweeper, logs repository.LogRepository, maxAge time.Duration, logger *slog.Logger) *Janitor {
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Janitor{
		cron:    c,
		uploads: uploads,
		logs:    logs,
		maxAge:  maxAge,
		logger:  logger,
	}
}

// Start schedules the sweep to run every 15 minutes.
func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc("*/15 * * * *", j.sweep); err != nil {
		return err
	}
	j.cron.Start()
	j.logger.Info("janitor started", slog.Duration("max_age", j.maxAge))
	return nil
}

// Stop gracefully stops the scheduler.
func (j *Janitor) Stop() context.Context {
	j.logger.Info("janitor stopping")
	return j.cron.Stop()
}

func (j *Janitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := j.uploads.Sweep(j.maxAge)
	if err != nil {
		j.logger.Error("upload sweep failed", slog.Any("error", err))
	} else if removed > 0 {
		j.logger.Info("swept stale uploads", slog.Int("removed", removed))
	}

	failed, err := j.logs.FailStale(ctx, time.Now().Add(-j.maxAge))
	if err != nil {
		j.logger.Error("stale log sweep failed", slog.Any("error", err))
	} else if failed > 0 {
		j.logger.Info("failed stale extraction logs", slog.Int64("count", failed))
	}
}
