package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	t.Run("save keeps the original extension", func(t *testing.T) {
		path, err := s.Save("Statement Jan.PDF", strings.NewReader("content"))
		require.NoError(t, err)
		assert.Equal(t, ".PDF", filepath.Ext(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		path, err := s.Save("scan.png", strings.NewReader("x"))
		require.NoError(t, err)

		require.NoError(t, s.Remove(path))
		require.NoError(t, s.Remove(path))
	})

	t.Run("sweep removes only stale files", func(t *testing.T) {
		dir := t.TempDir()
		sw, err := NewLocal(dir)
		require.NoError(t, err)

		stale, err := sw.Save("old.png", strings.NewReader("x"))
		require.NoError(t, err)
		past := time.Now().Add(-2 * time.Hour)
		require.NoError(t, os.Chtimes(stale, past, past))

		fresh, err := sw.Save("new.png", strings.NewReader("x"))
		require.NoError(t, err)

		removed, err := sw.Sweep(time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		_, err = os.Stat(stale)
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(fresh)
		assert.NoError(t, err)
	})
}
