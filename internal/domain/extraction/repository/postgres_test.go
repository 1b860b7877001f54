package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/docledger/internal/domain/extraction/outcome"
)

func TestPostgresLogRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresLogRepository(mock)
	log := outcome.NewLog(uuid.New(), "scan.png", "image/png")
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO extraction_logs`).
		WithArgs(log.ID, log.UserID, "scan.png", "image/png", outcome.StatusPending, 0, "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, repo.Create(context.Background(), log))
	assert.Equal(t, now, log.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLogRepository_UpdateStatus(t *testing.T) {
	t.Run("pending to success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPostgresLogRepository(mock)
		id := uuid.New()

		mock.ExpectExec(`UPDATE extraction_logs`).
			WithArgs(id, outcome.StatusSuccess, 3, "", []string{"pending"}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.UpdateStatus(context.Background(), id, outcome.StatusSuccess, 3, ""))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("illegal transition touches no rows and errors", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPostgresLogRepository(mock)
		id := uuid.New()

		// Log is already failed; completed may only follow success.
		mock.ExpectExec(`UPDATE extraction_logs`).
			WithArgs(id, outcome.StatusCompleted, 0, "", []string{"success"}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err = repo.UpdateStatus(context.Background(), id, outcome.StatusCompleted, 0, "")
		assert.ErrorIs(t, err, outcome.ErrInvalidTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing may transition to pending", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPostgresLogRepository(mock)
		err = repo.UpdateStatus(context.Background(), uuid.New(), outcome.StatusPending, 0, "")
		assert.ErrorIs(t, err, outcome.ErrInvalidTransition)
	})
}

func TestPostgresLogRepository_FailStale(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPostgresLogRepository(mock)
	cutoff := time.Now().Add(-time.Hour)

	mock.ExpectExec(`UPDATE extraction_logs`).
		WithArgs(outcome.StatusFailed, outcome.StatusPending, cutoff).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	n, err := repo.FailStale(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
