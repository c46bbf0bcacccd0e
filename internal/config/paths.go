// Package config manages the filesystem paths used by gswitch.
//
// The profile store lives under the user config directory by default
// (~/.config/gswitch on Linux) and can be relocated with the GSWITCH_ROOT
// environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem paths used by gswitch.
type Paths struct {
	// Root is the base directory for all gswitch data.
	Root string

	// Store is the path to the profile store file.
	Store string
}

// DefaultPaths returns the default paths for gswitch.
// The root can be overridden with the GSWITCH_ROOT environment variable.
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("GSWITCH_ROOT")
	if root == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		root = filepath.Join(configDir, "gswitch")
	}

	return &Paths{
		Root:  root,
		Store: filepath.Join(root, "profiles.yaml"),
	}, nil
}

// EnsureDirectories creates the root directory if it doesn't exist.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
