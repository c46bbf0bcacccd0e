package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/gswitch/internal/profiles"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	// rootCmd is shared across tests; reset flags left set by earlier runs.
	for _, name := range []string{"help", "version"} {
		if f := rootCmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	output, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "gsw")
	assert.Contains(t, output, "Profile Management:")
	assert.Contains(t, output, "Switching:")
	assert.Contains(t, output, "Shell Integration:")
}

func TestRootCommand_Version(t *testing.T) {
	SetVersion("1.2.3")

	output, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, output, "1.2.3")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "no-such-command")
	assert.Error(t, err)
}

func TestAddAndRemoveCommands(t *testing.T) {
	root := t.TempDir()
	t.Setenv("GSWITCH_ROOT", root)

	_, err := execute(t, "add", "work", "--user-name", "Work Me", "--email", "me@work.example")
	require.NoError(t, err)

	store, err := profiles.NewFileStore(filepath.Join(root, "profiles.yaml")).Load()
	require.NoError(t, err)
	p, ok := store.Get("work")
	require.True(t, ok)
	assert.Equal(t, "Work Me", p.Name)
	assert.Equal(t, "me@work.example", p.Email)
	assert.Empty(t, p.SigningKey)

	_, err = execute(t, "remove", "work")
	require.NoError(t, err)

	store, err = profiles.NewFileStore(filepath.Join(root, "profiles.yaml")).Load()
	require.NoError(t, err)
	_, ok = store.Get("work")
	assert.False(t, ok)
}

func TestRemoveCommand_MissingProfileIsBenign(t *testing.T) {
	t.Setenv("GSWITCH_ROOT", t.TempDir())

	_, err := execute(t, "remove", "ghost")
	assert.NoError(t, err)
}

func TestActivateCommand_UnsupportedShellIsBenign(t *testing.T) {
	_, err := execute(t, "activate", "powershell")
	assert.NoError(t, err)
}
