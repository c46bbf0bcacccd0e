package marker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/gswitch/internal/gitx"
)

// writeMarker drops a marker file naming key into dir.
func writeMarker(t *testing.T, dir, key string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(key+"\n"), 0644))
	return path
}

func mkdirAll(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0755))
	return path
}

func TestResolver_Find(t *testing.T) {
	t.Run("finds marker in the start directory", func(t *testing.T) {
		repo := t.TempDir()
		want := writeMarker(t, repo, "work")

		resolver := NewResolver(gitx.NewFakeLocator(repo))

		got, ok := resolver.Find(repo)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("finds marker at the repository root from a subdirectory", func(t *testing.T) {
		repo := t.TempDir()
		want := writeMarker(t, repo, "work")
		sub := mkdirAll(t, filepath.Join(repo, "a", "b", "c"))

		resolver := NewResolver(gitx.NewFakeLocator(repo))

		got, ok := resolver.Find(sub)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("closest marker wins", func(t *testing.T) {
		repo := t.TempDir()
		writeMarker(t, repo, "root-profile")
		mid := mkdirAll(t, filepath.Join(repo, "a", "b"))
		want := writeMarker(t, mid, "mid-profile")
		start := mkdirAll(t, filepath.Join(repo, "a", "b", "c"))

		resolver := NewResolver(gitx.NewFakeLocator(repo))

		got, ok := resolver.Find(start)
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("never crosses the repository boundary upward", func(t *testing.T) {
		outer := t.TempDir()
		writeMarker(t, outer, "outside")
		repo := mkdirAll(t, filepath.Join(outer, "repo"))
		start := mkdirAll(t, filepath.Join(repo, "sub"))

		resolver := NewResolver(gitx.NewFakeLocator(repo))

		_, ok := resolver.Find(start)
		assert.False(t, ok)
	})

	t.Run("suppresses markers outside any repository", func(t *testing.T) {
		dir := t.TempDir()
		writeMarker(t, dir, "should-not-find")

		resolver := NewResolver(gitx.NewFakeLocator(""))

		_, ok := resolver.Find(dir)
		assert.False(t, ok)
	})

	t.Run("returns nothing when no marker exists", func(t *testing.T) {
		repo := t.TempDir()
		resolver := NewResolver(gitx.NewFakeLocator(repo))

		_, ok := resolver.Find(repo)
		assert.False(t, ok)
	})

	t.Run("found marker stays within repository bounds", func(t *testing.T) {
		repo := t.TempDir()
		writeMarker(t, repo, "work")
		start := mkdirAll(t, filepath.Join(repo, "x", "y"))

		resolver := NewResolver(gitx.NewFakeLocator(repo))

		got, ok := resolver.Find(start)
		require.True(t, ok)

		rel, err := filepath.Rel(repo, got)
		require.NoError(t, err)
		assert.False(t, strings.HasPrefix(rel, ".."))
	})
}

func TestParse(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("  work  \n"), 0644))

		key, err := Parse(path)
		require.NoError(t, err)
		assert.Equal(t, "work", key)
	})

	t.Run("fails on empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte(""), 0644))

		_, err := Parse(path)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("fails on whitespace-only file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("   \n\t"), 0644))

		_, err := Parse(path)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, err := Parse(filepath.Join(t.TempDir(), FileName))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmpty)
	})
}

func TestCreate(t *testing.T) {
	t.Run("writes key with a trailing newline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)

		require.NoError(t, Create(path, "work"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "work\n", string(data))
	})

	t.Run("overwrites an existing marker", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)

		require.NoError(t, Create(path, "old"))
		require.NoError(t, Create(path, "new"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(data))
	})
}
