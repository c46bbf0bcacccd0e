package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("respects GSWITCH_ROOT override", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("GSWITCH_ROOT", tmpDir)

		paths, err := DefaultPaths()
		require.NoError(t, err)

		assert.Equal(t, tmpDir, paths.Root)
		assert.Equal(t, filepath.Join(tmpDir, "profiles.yaml"), paths.Store)
	})

	t.Run("defaults under the user config directory", func(t *testing.T) {
		t.Setenv("GSWITCH_ROOT", "")

		paths, err := DefaultPaths()
		require.NoError(t, err)

		assert.Equal(t, "gswitch", filepath.Base(paths.Root))
		assert.Equal(t, "profiles.yaml", filepath.Base(paths.Store))
	})
}

func TestEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	paths := &Paths{
		Root:  filepath.Join(tmpDir, "gswitch"),
		Store: filepath.Join(tmpDir, "gswitch", "profiles.yaml"),
	}

	require.NoError(t, paths.EnsureDirectories())
	require.NoError(t, paths.EnsureDirectories())
}
