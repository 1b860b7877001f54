package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CopyDB is the subset of pgxpool.Pool the repository needs.
type CopyDB interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// Repository persists confirmed transactions.
type Repository interface {
	BulkInsert(ctx context.Context, userID uuid.UUID, candidates []*Candidate) (int, error)
}

// PostgresRepository implements Repository using COPY for bulk inserts.
type PostgresRepository struct {
	db CopyDB
}

// NewPostgresRepository creates a PostgreSQL-backed transaction repository.
func NewPostgresRepository(db CopyDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var copyColumns = []string{"id", "user_id", "date", "description", "category", "type", "amount"}

// BulkInsert persists candidates for a user in one COPY round trip and
// returns the number of rows written.
func (r *PostgresRepository) BulkInsert(ctx context.Context, userID uuid.UUID, candidates []*Candidate) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []any{
			uuid.New(),
			userID,
			c.Date.Time(),
			c.Description,
			c.Category,
			string(c.Type),
			c.Amount,
		})
	}

	count, err := r.db.CopyFrom(ctx, pgx.Identifier{"transactions"}, copyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("bulk insert transactions: %w", err)
	}
	return int(count), nil
}
