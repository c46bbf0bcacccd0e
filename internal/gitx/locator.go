package gitx

import (
	"path/filepath"
	"strings"
)

// Context describes whether a directory sits inside a git repository.
// It is computed fresh on every Locate call and never cached.
type Context struct {
	// Inside is true if the directory is part of a git repository.
	Inside bool

	// Root is the repository top-level directory. Empty when Inside is false.
	Root string
}

// Locator determines the repository context for a directory.
type Locator interface {
	// Locate reports whether startDir is inside a git repository and,
	// if so, the repository root.
	Locate(startDir string) Context
}

// GitLocator implements Locator by asking git for the repository top level.
type GitLocator struct {
	runner Runner
}

// NewLocator creates a GitLocator backed by the given runner.
func NewLocator(runner Runner) *GitLocator {
	return &GitLocator{runner: runner}
}

// Locate runs `git rev-parse --show-toplevel` in startDir. Any execution
// failure or non-zero exit collapses into "not inside a repository";
// callers only ever need the yes/no signal plus the root.
func (l *GitLocator) Locate(startDir string) Context {
	res := l.runner.Run(startDir, "rev-parse", "--show-toplevel")
	if !res.OK {
		return Context{}
	}

	root := strings.TrimSpace(res.Stdout)
	if root == "" {
		return Context{}
	}

	return Context{Inside: true, Root: filepath.Clean(root)}
}

// FakeLocator implements Locator with a fixed repository root for testing.
// Directories at or below Root are reported as inside the repository.
type FakeLocator struct {
	Root string
}

// NewFakeLocator creates a FakeLocator rooted at root. An empty root means
// no directory is inside a repository.
func NewFakeLocator(root string) *FakeLocator {
	return &FakeLocator{Root: root}
}

// Locate reports dir as inside the repository if it equals Root or is a
// descendant of it.
func (f *FakeLocator) Locate(dir string) Context {
	if f.Root == "" {
		return Context{}
	}

	root := filepath.Clean(f.Root)
	current := filepath.Clean(dir)

	for {
		if current == root {
			return Context{Inside: true, Root: root}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return Context{}
		}
		current = parent
	}
}
