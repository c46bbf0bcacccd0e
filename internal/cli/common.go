package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/gswitch/internal/config"
	"github.com/danieljhkim/gswitch/internal/engine"
	"github.com/danieljhkim/gswitch/internal/gitcfg"
	"github.com/danieljhkim/gswitch/internal/gitx"
	"github.com/danieljhkim/gswitch/internal/marker"
	"github.com/danieljhkim/gswitch/internal/profiles"
)

// newLogger creates a logger writing to stderr. Debug output is enabled
// with the --verbose flag; otherwise only warnings and errors surface.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// newStore creates the file-backed profile store at the default location.
func newStore() (*profiles.FileStore, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	return profiles.NewFileStore(paths.Store), nil
}

// newEngine creates an engine with real implementations of all
// collaborators, rooted at the current working directory.
func newEngine() (*engine.Engine, error) {
	store, err := newStore()
	if err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	logger := newLogger()
	runner := gitx.NewRealRunner(logger)
	locator := gitx.NewLocator(runner)
	resolver := marker.NewResolver(locator)
	applier := gitcfg.NewApplier(runner, cwd)

	return engine.New(locator, resolver, applier, store, cwd, logger), nil
}
