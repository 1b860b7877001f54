package outcome

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusSuccess, true},
		{StatusPending, StatusFailed, true},
		{StatusSuccess, StatusCompleted, true},
		{StatusPending, StatusCompleted, false},
		{StatusSuccess, StatusPending, false},
		{StatusFailed, StatusPending, false},
		{StatusFailed, StatusSuccess, false},
		{StatusFailed, StatusCompleted, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusSuccess, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransition(tt.to))
		})
	}
}

func TestAllowedFrom(t *testing.T) {
	assert.ElementsMatch(t, []Status{StatusPending}, AllowedFrom(StatusSuccess))
	assert.ElementsMatch(t, []Status{StatusPending}, AllowedFrom(StatusFailed))
	assert.ElementsMatch(t, []Status{StatusSuccess}, AllowedFrom(StatusCompleted))
	assert.Empty(t, AllowedFrom(StatusPending))
}

func TestLogTransition(t *testing.T) {
	t.Run("new log starts pending", func(t *testing.T) {
		log := NewLog(uuid.New(), "scan.png", "image/png")
		assert.Equal(t, StatusPending, log.Status)
		assert.NotEqual(t, uuid.Nil, log.ID)
	})

	t.Run("full happy path", func(t *testing.T) {
		log := NewLog(uuid.New(), "scan.png", "image/png")
		require.NoError(t, log.Transition(StatusSuccess))
		require.NoError(t, log.Transition(StatusCompleted))
	})

	t.Run("failed is terminal", func(t *testing.T) {
		log := NewLog(uuid.New(), "scan.pdf", "application/pdf")
		require.NoError(t, log.Transition(StatusFailed))

		for _, next := range []Status{StatusPending, StatusSuccess, StatusCompleted} {
			err := log.Transition(next)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
		assert.Equal(t, StatusFailed, log.Status)
	})

	t.Run("success never regresses to pending", func(t *testing.T) {
		log := NewLog(uuid.New(), "scan.png", "image/png")
		require.NoError(t, log.Transition(StatusSuccess))
		assert.ErrorIs(t, log.Transition(StatusPending), ErrInvalidTransition)
	})
}
