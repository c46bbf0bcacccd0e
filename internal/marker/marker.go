// Package marker resolves .gswitch marker files.
//
// A marker is a plain-text file whose trimmed content names the profile to
// auto-apply when working in or below the directory containing it. Markers
// are only meaningful inside a git repository: a marker outside version
// control is never honored, so an identity cannot leak into unrelated
// filesystem trees.
package marker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danieljhkim/gswitch/internal/fsops"
	"github.com/danieljhkim/gswitch/internal/gitx"
)

// FileName is the marker file name looked up in each directory.
const FileName = ".gswitch"

// ErrEmpty indicates a marker file whose trimmed content is empty.
// An empty marker is an error, not a valid "no profile" signal; absence of
// the file itself is the "no profile" signal.
var ErrEmpty = errors.New(".gswitch file is empty")

// Resolver finds marker files within repository boundaries.
type Resolver struct {
	locator gitx.Locator
}

// NewResolver creates a Resolver using locator for repository checks.
func NewResolver(locator gitx.Locator) *Resolver {
	return &Resolver{locator: locator}
}

// Find searches for a marker file starting at startDir and walking upward
// one directory at a time. The closest marker wins. The walk stops at the
// repository root and never crosses it; outside a repository no marker is
// ever returned, even if one is physically present.
func (r *Resolver) Find(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	// Fast path: marker in the start directory itself (the common case),
	// honored only when the directory is confirmed inside a repository.
	candidate := filepath.Join(dir, FileName)
	if fsops.Exists(candidate) && r.locator.Locate(dir).Inside {
		return candidate, true
	}

	ctx := r.locator.Locate(dir)
	if !ctx.Inside {
		return "", false
	}
	root := filepath.Clean(ctx.Root)

	for {
		candidate := filepath.Join(dir, FileName)
		if fsops.Exists(candidate) {
			return candidate, true
		}

		// Stop at the repository root or when there is no parent left.
		if dir == root {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Parse reads a marker file and returns its trimmed content as the profile
// key. Returns ErrEmpty when the trimmed content is empty, covering both
// zero-length and whitespace-only files.
func Parse(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file: %w", FileName, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", ErrEmpty
	}

	return key, nil
}

// Create writes a marker file naming profileKey, followed by a single
// trailing newline. An existing marker at path is overwritten.
func Create(path, profileKey string) error {
	if err := os.WriteFile(path, []byte(profileKey+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s file: %w", FileName, err)
	}
	return nil
}
