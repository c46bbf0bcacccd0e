package fsops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "file.txt")
	assert.False(t, Exists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, Exists(path))
}

func TestAtomicWrite(t *testing.T) {
	t.Run("writes data and creates parent directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "nested", "dir", "file.txt")

		require.NoError(t, AtomicWrite(path, []byte("hello"), 0644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "file.txt")

		require.NoError(t, AtomicWrite(path, []byte("first"), 0644))
		require.NoError(t, AtomicWrite(path, []byte("second"), 0644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "file.txt")

		require.NoError(t, AtomicWrite(path, []byte("data"), 0644))

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
