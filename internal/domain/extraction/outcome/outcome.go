// Package outcome models the extraction log: the status record that links an
// upload's processing request to its later confirmation request.
package outcome

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of one extraction attempt.
type Status string

const (
	// StatusPending is set when the pipeline run starts, before any
	// extraction attempt.
	StatusPending Status = "pending"
	// StatusSuccess means the validation gate ran to completion (possibly
	// with zero transactions) and the raw file was deleted.
	StatusSuccess Status = "success"
	// StatusFailed means no table grid could be produced. There is no retry
	// transition; a failed run requires a brand-new upload.
	StatusFailed Status = "failed"
	// StatusCompleted is set by the confirmation step once transactions are
	// durably persisted. Only success precedes completed.
	StatusCompleted Status = "completed"
)

// ErrInvalidTransition is returned for any transition the state machine does
// not allow, including regressions back to pending.
var ErrInvalidTransition = errors.New("invalid extraction status transition")

var transitions = map[Status][]Status{
	StatusPending: {StatusSuccess, StatusFailed},
	StatusSuccess: {StatusCompleted},
}

// CanTransition reports whether moving from s to next is legal.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedFrom returns the statuses that may legally transition into next.
// Repositories use it to guard updates at the SQL level.
func AllowedFrom(next Status) []Status {
	var from []Status
	for s, targets := range transitions {
		for _, t := range targets {
			if t == next {
				from = append(from, s)
			}
		}
	}
	return from
}

// Log is one extraction attempt for one uploaded document.
type Log struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	FileName       string
	FileType       string
	Status         Status
	ExtractedCount int
	ErrorMessage   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewLog creates a pending log for a fresh upload.
func NewLog(userID uuid.UUID, fileName, fileType string) *Log {
	return &Log{
		ID:       uuid.New(),
		UserID:   userID,
		FileName: fileName,
		FileType: fileType,
		Status:   StatusPending,
	}
}

// Transition moves the log to next, rejecting anything the state machine
// does not allow.
func (l *Log) Transition(next Status) error {
	if !l.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.Status, next)
	}
	l.Status = next
	return nil
}
