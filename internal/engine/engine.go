// Package engine orchestrates profile resolution and application.
//
// The engine is a thin policy layer over its collaborators: the repository
// locator, the marker resolver, the config applier, and the profile store.
// Each operation runs to completion within a single invocation; no state
// is shared across calls, and the store is re-read fresh every time.
package engine

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/danieljhkim/gswitch/internal/gitcfg"
	"github.com/danieljhkim/gswitch/internal/gitx"
	"github.com/danieljhkim/gswitch/internal/marker"
	"github.com/danieljhkim/gswitch/internal/profiles"
)

// Engine implements the switch/local/auto resolution policy.
type Engine struct {
	locator gitx.Locator
	markers *marker.Resolver
	applier *gitcfg.Applier
	store   profiles.StoreRepo
	cwd     string
	logger  *log.Logger
}

// New creates an Engine operating from cwd.
func New(
	locator gitx.Locator,
	markers *marker.Resolver,
	applier *gitcfg.Applier,
	store profiles.StoreRepo,
	cwd string,
	logger *log.Logger,
) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		locator: locator,
		markers: markers,
		applier: applier,
		store:   store,
		cwd:     cwd,
		logger:  logger,
	}
}

// Switch applies the named profile at global scope and records it as the
// store's current profile. Per-repository state is never touched. A key
// absent from the store yields ErrProfileNotFound before any write.
func (e *Engine) Switch(key string) error {
	store, err := e.store.Load()
	if err != nil {
		return err
	}

	p, ok := store.Get(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, key)
	}

	if err := e.applier.Apply(p, gitcfg.ScopeGlobal); err != nil {
		return err
	}

	store.SetCurrent(key)
	if err := e.store.Save(store); err != nil {
		return fmt.Errorf("failed to persist current profile: %w", err)
	}

	e.logger.Debug("switched profile globally", "profile", key)
	return nil
}

// Local applies the named profile at local scope. The current directory
// must be inside a repository; the store's current-profile pointer is
// never touched because local application is repository-scoped only.
func (e *Engine) Local(key string) error {
	if !e.locator.Locate(e.cwd).Inside {
		return ErrNotARepository
	}

	store, err := e.store.Load()
	if err != nil {
		return err
	}

	p, ok := store.Get(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, key)
	}

	if err := e.applier.Apply(p, gitcfg.ScopeLocal); err != nil {
		return err
	}

	e.logger.Debug("switched profile locally", "profile", key)
	return nil
}

// Auto resolves the marker for the current directory and applies the named
// profile at local scope. Returns the resolved profile key on success.
//
// Outside a repository, with no marker, or with a marker naming an unknown
// profile, Auto is a benign no-op distinguished by its error. An empty
// marker and failed config writes are hard failures. Auto never touches
// the current-profile pointer and is idempotent for a given marker and
// store.
func (e *Engine) Auto() (string, error) {
	if !e.locator.Locate(e.cwd).Inside {
		return "", ErrNotARepository
	}

	path, ok := e.markers.Find(e.cwd)
	if !ok {
		return "", ErrNoMarker
	}
	e.logger.Debug("resolved marker", "path", path)

	key, err := marker.Parse(path)
	if err != nil {
		return "", err
	}

	store, err := e.store.Load()
	if err != nil {
		return "", err
	}

	p, ok := store.Get(key)
	if !ok {
		return key, fmt.Errorf("%w: %q", ErrProfileNotFound, key)
	}

	if err := e.applier.Apply(p, gitcfg.ScopeLocal); err != nil {
		return key, err
	}

	e.logger.Debug("auto-switched profile locally", "profile", key)
	return key, nil
}

// Current reads the effective git identity the way git itself resolves it
// across scopes.
func (e *Engine) Current() (profiles.Profile, error) {
	return e.applier.ReadEffective()
}

// Import reads the effective git identity and stores it under key,
// refusing to overwrite an existing profile.
func (e *Engine) Import(key string) (profiles.Profile, error) {
	p, err := e.applier.ReadEffective()
	if err != nil {
		return profiles.Profile{}, err
	}

	store, err := e.store.Load()
	if err != nil {
		return profiles.Profile{}, err
	}

	if _, exists := store.Get(key); exists {
		return profiles.Profile{}, fmt.Errorf("%w: %q", ErrProfileExists, key)
	}

	store.Add(key, p)
	if err := e.store.Save(store); err != nil {
		return profiles.Profile{}, err
	}

	return p, nil
}

// Init creates a marker file in the current directory naming key, which
// must exist in the store.
func (e *Engine) Init(key string) (string, error) {
	store, err := e.store.Load()
	if err != nil {
		return "", err
	}

	if _, ok := store.Get(key); !ok {
		return "", fmt.Errorf("%w: %q", ErrProfileNotFound, key)
	}

	path := filepath.Join(e.cwd, marker.FileName)
	if err := marker.Create(path, key); err != nil {
		return "", err
	}

	return path, nil
}
