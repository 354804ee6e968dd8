// Package progress is the durable storage port for reading position.
// Values are base-10 integer strings under fixed keys.
package progress

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Fixed storage keys
const (
	KeyIndex   = "wyfsb-index"
	KeyHighest = "wyfsb-highest"
)

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var ErrNotFound = errors.New("progress key not found")

// Store is a small string key/value store
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// ParseBackend normalises a backend name. Empty selects the file backend.
func ParseBackend(name string) (string, error) {
	switch b := strings.ToLower(strings.TrimSpace(name)); b {
	case "", BackendFile:
		return BackendFile, nil
	case BackendSQLite, BackendMemory:
		return b, nil
	}
	return "", fmt.Errorf("unknown progress backend %q (want file, sqlite or memory)", name)
}

// DefaultFileName is the file a backend uses when no path is configured.
// The backends never share a file.
func DefaultFileName(backend string) string {
	if b, _ := ParseBackend(backend); b == BackendSQLite {
		return "progress.db"
	}
	return "progress.toml"
}

// Open creates the store for the configured backend
func Open(backend, path string) (Store, error) {
	b, err := ParseBackend(backend)
	if err != nil {
		return nil, err
	}
	switch b {
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return NewFileStore(path)
	}
}

// MemoryStore keeps values for the lifetime of the process
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
