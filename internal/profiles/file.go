package profiles

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/danieljhkim/gswitch/internal/fsops"
)

// StoreRepo abstracts loading and saving the profile store.
type StoreRepo interface {
	// Load reads the persisted store. A missing store file yields an
	// empty store, not an error.
	Load() (*Store, error)

	// Save persists the store, replacing the previous contents.
	Save(*Store) error
}

// FileStore implements StoreRepo using a YAML file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore persisting to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the store file location.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads and parses the store file.
func (f *FileStore) Load() (*Store, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewStore(), nil
		}
		return nil, fmt.Errorf("failed to read profile store: %w", err)
	}

	var store Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse profile store: %w", err)
	}

	if store.Profiles == nil {
		store.Profiles = make(map[string]Profile)
	}

	return &store, nil
}

// Save serializes the store and writes it atomically. Concurrent
// invocations racing on the file resolve last-writer-wins.
func (f *FileStore) Save(store *Store) error {
	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("failed to serialize profile store: %w", err)
	}

	if err := fsops.AtomicWrite(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile store: %w", err)
	}

	return nil
}
