package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// Store is the durable backing of Settings. Load returns the last saved
// snapshot; Save replaces it atomically.
type Store interface {
	Load() (map[string]string, error)
	Save(values map[string]string) error
}

// MemoryStore keeps the snapshot in memory. Sharing one MemoryStore between
// Settings instances models a process restart in tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	saves  int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Load implements Store.
func (m *MemoryStore) Load() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyValues(m.values), nil
}

// Save implements Store.
func (m *MemoryStore) Save(values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = copyValues(values)
	m.saves++
	return nil
}

// Saves returns how many snapshots were saved.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// FileStore keeps the snapshot in a JSON file. Writes go to a temporary file
// that is renamed over the target, under an advisory file lock shared with
// other processes using the same path.
type FileStore struct {
	path string
	lock *flock.Flock
}

// NewFileStore creates a store backed by path. The parent directory is
// created if needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("settings path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}
	return &FileStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

// Path returns the settings file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load implements Store. A missing file yields an empty snapshot.
func (f *FileStore) Load() (map[string]string, error) {
	if err := f.lock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to lock settings file: %w", err)
	}
	defer f.lock.Unlock()

	// #nosec G304 -- path is supplied by the embedding application
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	values := make(map[string]string)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to decode settings file: %w", err)
	}
	return values, nil
}

// Save implements Store.
func (f *FileStore) Save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock settings file: %w", err)
	}
	defer f.lock.Unlock()

	tempPath := f.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary settings file: %w", err)
	}
	if err := os.Rename(tempPath, f.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename settings file: %w", err)
	}
	return nil
}

func copyValues(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
