// Package transaction defines the transaction model shared by the extraction
// pipeline, the review flow, and persistence.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are plain decimal numbers on the wire, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Type distinguishes money in from money out.
type Type string

const (
	TypeIncome  Type = "Income"
	TypeExpense Type = "Expense"
)

// Valid reports whether t is one of the two accepted transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Candidate is a parsed, not-yet-persisted transaction awaiting human review.
// Reviewers may edit any field between the preview and confirm phases, so
// nothing here is trusted until it passes the validation gate again.
type Candidate struct {
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        Type            `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
}

// Transaction is a persisted transaction row.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        Type            `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
