package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_BulkInsert(t *testing.T) {
	t.Run("copies all candidates", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPostgresRepository(mock)
		userID := uuid.New()
		candidates := []*Candidate{
			{
				Date:        NewDate(time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)),
				Description: "Coffee",
				Category:    "Food",
				Type:        TypeExpense,
				Amount:      decimal.RequireFromString("-4.50"),
			},
			{
				Date:        NewDate(time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)),
				Description: "Salary",
				Category:    "Salary",
				Type:        TypeIncome,
				Amount:      decimal.RequireFromString("2500"),
			},
		}

		mock.ExpectCopyFrom(pgx.Identifier{"transactions"}, copyColumns).WillReturnResult(2)

		n, err := repo.BulkInsert(context.Background(), userID, candidates)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input skips the round trip", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := NewPostgresRepository(mock)
		n, err := repo.BulkInsert(context.Background(), uuid.New(), nil)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
