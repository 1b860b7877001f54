// Package validate implements the gate every candidate transaction must pass
// before it is shown in a preview or persisted.
//
// The gate is stateless and is deliberately run twice: once on freshly parsed
// candidates and once on whatever comes back from the reviewer, who may have
// edited fields arbitrarily in between. Records that fail are dropped, never
// reported.
package validate

import (
	"strings"

	"github.com/FACorreiaa/docledger/internal/domain/transaction"
)

// Valid reports whether a single candidate passes all checks: non-nil, date
// present, description non-empty, amount non-zero, and a recognized type.
func Valid(c *transaction.Candidate) bool {
	if c == nil {
		return false
	}
	if c.Date.IsZero() {
		return false
	}
	if strings.TrimSpace(c.Description) == "" {
		return false
	}
	if c.Amount.IsZero() {
		return false
	}
	return c.Type.Valid()
}

// Filter returns the candidates passing Valid, order preserved. Running it
// over an already-valid list returns an equal list.
func Filter(candidates []*transaction.Candidate) []*transaction.Candidate {
	valid := make([]*transaction.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if Valid(c) {
			valid = append(valid, c)
		}
	}
	return valid
}
