// Package gitcfg applies and reads identity profiles in git configuration.
//
// Writes go through `git config` at an explicit scope and are sequential
// and fail-fast: the first failing field aborts the remaining writes and
// earlier successful writes are left in place. There is no rollback; git
// offers no transaction to lean on, and simulating one would only hide the
// partial state.
package gitcfg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danieljhkim/gswitch/internal/gitx"
	"github.com/danieljhkim/gswitch/internal/profiles"
)

// Scope selects the breadth of a configuration read or write.
type Scope string

const (
	// ScopeLocal targets the repository-specific configuration.
	ScopeLocal Scope = "local"

	// ScopeGlobal targets the user-wide configuration.
	ScopeGlobal Scope = "global"
)

func (s Scope) flag() string {
	return "--" + string(s)
}

// ErrIncomplete indicates that a mandatory identity field (name or email)
// is absent from git configuration.
var ErrIncomplete = errors.New("git identity is incomplete")

// WriteError reports a failed `git config` write. Field names the profile
// field that failed and Diagnostic carries git's raw stderr.
type WriteError struct {
	Field      string
	Diagnostic string
}

func (e *WriteError) Error() string {
	diag := strings.TrimSpace(e.Diagnostic)
	if diag == "" {
		return fmt.Sprintf("failed to set git user.%s", e.Field)
	}
	return fmt.Sprintf("failed to set git user.%s: %s", e.Field, diag)
}

// Applier applies and reads profiles against git configuration.
type Applier struct {
	runner gitx.Runner
	dir    string
}

// NewApplier creates an Applier running git commands in dir. For local
// scope operations dir must be inside the target repository.
func NewApplier(runner gitx.Runner, dir string) *Applier {
	return &Applier{runner: runner, dir: dir}
}

// writeStep is one ordered field write of an Apply call.
type writeStep struct {
	field string
	key   string
	value string
}

// Apply writes the profile's fields to git configuration at the given
// scope, in order: name, email, then signing key. A profile without a
// signing key skips that step entirely rather than attempting it. The
// first failing write aborts the rest and returns a WriteError naming the
// field; writes that already succeeded stay in place.
func (a *Applier) Apply(p profiles.Profile, scope Scope) error {
	steps := []writeStep{
		{field: "name", key: "user.name", value: p.Name},
		{field: "email", key: "user.email", value: p.Email},
	}
	if p.SigningKey != "" {
		steps = append(steps, writeStep{field: "signingkey", key: "user.signingkey", value: p.SigningKey})
	}

	for _, step := range steps {
		res := a.runner.Run(a.dir, "config", scope.flag(), step.key, step.value)
		if !res.OK {
			return &WriteError{Field: step.field, Diagnostic: res.Stderr}
		}
	}

	return nil
}

// Read queries the identity fields at the given scope. Missing name or
// email is a hard failure; a missing signing key yields a profile without
// one.
func (a *Applier) Read(scope Scope) (profiles.Profile, error) {
	return a.read([]string{scope.flag()})
}

// ReadEffective queries git's merged view of the identity, the way plain
// `git config --get` resolves it across scopes.
func (a *Applier) ReadEffective() (profiles.Profile, error) {
	return a.read(nil)
}

func (a *Applier) read(scopeArgs []string) (profiles.Profile, error) {
	name, ok := a.get(scopeArgs, "user.name")
	if !ok {
		return profiles.Profile{}, fmt.Errorf("%w: user.name is not set", ErrIncomplete)
	}

	email, ok := a.get(scopeArgs, "user.email")
	if !ok {
		return profiles.Profile{}, fmt.Errorf("%w: user.email is not set", ErrIncomplete)
	}

	p := profiles.Profile{Name: name, Email: email}
	if key, ok := a.get(scopeArgs, "user.signingkey"); ok {
		p.SigningKey = key
	}

	return p, nil
}

func (a *Applier) get(scopeArgs []string, key string) (string, bool) {
	args := append([]string{"config"}, scopeArgs...)
	args = append(args, "--get", key)

	res := a.runner.Run(a.dir, args...)
	if !res.OK {
		return "", false
	}

	value := strings.TrimSpace(res.Stdout)
	if value == "" {
		return "", false
	}

	return value, true
}
