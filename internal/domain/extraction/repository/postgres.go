package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FACorreiaa/docledger/internal/domain/extraction/outcome"
)

// ErrNotFound is returned when no extraction log matches the given ID.
var ErrNotFound = errors.New("extraction log not found")

// PostgresLogRepository implements LogRepository on PostgreSQL.
type PostgresLogRepository struct {
	db DB
}

// NewPostgresLogRepository creates a PostgreSQL-backed log repository.
func NewPostgresLogRepository(db DB) *PostgresLogRepository {
	return &PostgresLogRepository{db: db}
}

// Create inserts a new pending log.
func (r *PostgresLogRepository) Create(ctx context.Context, log *outcome.Log) error {
	query := `
		INSERT INTO extraction_logs (id, user_id, file_name, file_type, status, extracted_count, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	err := r.db.QueryRow(ctx, query,
		log.ID,
		log.UserID,
		log.FileName,
		log.FileType,
		log.Status,
		log.ExtractedCount,
		log.ErrorMessage,
	).Scan(&log.CreatedAt, &log.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create extraction log: %w", err)
	}
	return nil
}

// GetByID retrieves a log by ID.
func (r *PostgresLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*outcome.Log, error) {
	query := `
		SELECT id, user_id, file_name, file_type, status, extracted_count, error_message, created_at, updated_at
		FROM extraction_logs
		WHERE id = $1`

	log := &outcome.Log{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&log.ID,
		&log.UserID,
		&log.FileName,
		&log.FileType,
		&log.Status,
		&log.ExtractedCount,
		&log.ErrorMessage,
		&log.CreatedAt,
		&log.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get extraction log: %w", err)
	}
	return log, nil
}

// UpdateStatus transitions a log to next. The WHERE clause restricts the
// update to statuses that may legally precede next, so an illegal
// transition (or a regression) touches zero rows and is rejected.
func (r *PostgresLogRepository) UpdateStatus(ctx context.Context, id uuid.UUID, next outcome.Status, extractedCount int, errorMessage string) error {
	allowed := outcome.AllowedFrom(next)
	if len(allowed) == 0 {
		return fmt.Errorf("%w: nothing transitions to %s", outcome.ErrInvalidTransition, next)
	}

	from := make([]string, len(allowed))
	for i, s := range allowed {
		from[i] = string(s)
	}

	query := `
		UPDATE extraction_logs
		SET status = $2, extracted_count = $3, error_message = $4, updated_at = now()
		WHERE id = $1 AND status = ANY($5)`

	tag, err := r.db.Exec(ctx, query, id, next, extractedCount, errorMessage, from)
	if err != nil {
		return fmt.Errorf("update extraction log status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: log %s cannot move to %s", outcome.ErrInvalidTransition, id, next)
	}
	return nil
}

// FailStale marks logs still pending since before the cutoff as failed.
// Crashed pipeline runs never conclude their log; the janitor closes them.
func (r *PostgresLogRepository) FailStale(ctx context.Context, pendingSince time.Time) (int64, error) {
	query := `
		UPDATE extraction_logs
		SET status = $1, error_message = 'extraction never concluded', updated_at = now()
		WHERE status = $2 AND created_at < $3`

	tag, err := r.db.Exec(ctx, query, outcome.StatusFailed, outcome.StatusPending, pendingSince)
	if err != nil {
		return 0, fmt.Errorf("fail stale extraction logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
