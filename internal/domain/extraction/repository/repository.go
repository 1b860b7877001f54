// Package repository persists extraction logs.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/FACorreiaa/docledger/internal/domain/extraction/outcome"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LogRepository stores extraction logs. UpdateStatus must refuse
// transitions the outcome state machine does not allow.
type LogRepository interface {
	Create(ctx context.Context, log *outcome.Log) error
	GetByID(ctx context.Context, id uuid.UUID) (*outcome.Log, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next outcome.Status, extractedCount int, errorMessage string) error
	FailStale(ctx context.Context, pendingSince time.Time) (int64, error)
}
