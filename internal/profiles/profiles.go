// Package profiles defines git identity profiles and their persisted store.
//
// A profile bundles the git identity fields (display name, email, optional
// signing key) under a unique store key. The store maps keys to profiles
// and optionally remembers which profile was last switched to globally.
// It is persisted as YAML at a well-known per-user location.
package profiles

import "sort"

// Profile is a named git identity: display name, email, and an optional
// signing key. The store key identifying a profile is separate from the
// Name field, which is the human display name written to user.name.
type Profile struct {
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	SigningKey string `yaml:"signing_key,omitempty"`
}

// Store is the in-memory shape of the profile store: a mapping from
// profile key to Profile plus an optional current-profile pointer.
//
// Current may reference a key that is no longer in the mapping. A dangling
// pointer is legal and simply means "no current profile"; it is never an
// error.
type Store struct {
	Profiles map[string]Profile `yaml:"profiles"`
	Current  string             `yaml:"current_profile,omitempty"`
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{Profiles: make(map[string]Profile)}
}

// Get returns the profile stored under key.
func (s *Store) Get(key string) (Profile, bool) {
	p, ok := s.Profiles[key]
	return p, ok
}

// Add stores a profile under key, replacing any existing entry.
func (s *Store) Add(key string, p Profile) {
	if s.Profiles == nil {
		s.Profiles = make(map[string]Profile)
	}
	s.Profiles[key] = p
}

// Remove deletes the profile stored under key and reports whether it
// existed. If the current-profile pointer referenced key, it is cleared.
func (s *Store) Remove(key string) bool {
	if _, ok := s.Profiles[key]; !ok {
		return false
	}
	if s.Current == key {
		s.Current = ""
	}
	delete(s.Profiles, key)
	return true
}

// SetCurrent points the store at key as the current profile.
func (s *Store) SetCurrent(key string) {
	s.Current = key
}

// IsCurrent reports whether key is the current profile. A dangling
// current-profile pointer matches nothing.
func (s *Store) IsCurrent(key string) bool {
	if s.Current == "" {
		return false
	}
	if _, ok := s.Profiles[s.Current]; !ok {
		return false
	}
	return s.Current == key
}

// Keys returns all profile keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.Profiles))
	for k := range s.Profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
