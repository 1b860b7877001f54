package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	t.Run("ISO date parses via the first layout", func(t *testing.T) {
		got, ok := NormalizeDate("2023-01-15")
		require.True(t, ok)
		assert.Equal(t, time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("dotted European date", func(t *testing.T) {
		got, ok := NormalizeDate("15.01.2023")
		require.True(t, ok)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("ambiguous slash date resolves as month first", func(t *testing.T) {
		got, ok := NormalizeDate("03/04/2024")
		require.True(t, ok)
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 4, got.Day())
	})

	t.Run("day past twelve falls through to day-first layout", func(t *testing.T) {
		got, ok := NormalizeDate("15/01/2024")
		require.True(t, ok)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("general-purpose fallback", func(t *testing.T) {
		got, ok := NormalizeDate("Jan 15, 2023")
		require.True(t, ok)
		assert.Equal(t, 2023, got.Year())
		assert.Equal(t, time.January, got.Month())
	})

	t.Run("invalid calendar date is rejected", func(t *testing.T) {
		_, ok := NormalizeDate("2023-02-30")
		assert.False(t, ok)
	})

	t.Run("garbage returns false", func(t *testing.T) {
		_, ok := NormalizeDate("not-a-date")
		assert.False(t, ok)
	})

	t.Run("empty and whitespace return false", func(t *testing.T) {
		_, ok := NormalizeDate("")
		assert.False(t, ok)
		_, ok = NormalizeDate("   ")
		assert.False(t, ok)
	})
}
