package progress

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
	"github.com/pelletier/go-toml/v2"
)

type fileData struct {
	Values map[string]string `toml:"values"`
}

// FileStore persists values in a TOML file that is replaced atomically on
// every write
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path. The file is created on the
// first write.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("progress file path is empty")
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := data.Values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data.Values[key] = value
	return s.save(data)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := data.Values[key]; !ok {
		return nil
	}
	delete(data.Values, key)
	return s.save(data)
}

func (s *FileStore) Close() error { return nil }

func (s *FileStore) load() (*fileData, error) {
	data := &fileData{Values: make(map[string]string)}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read progress file: %w", err)
	}

	if err := toml.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("failed to parse progress file: %w", err)
	}
	if data.Values == nil {
		data.Values = make(map[string]string)
	}
	return data, nil
}

func (s *FileStore) save(data *fileData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create progress directory: %w", err)
	}

	raw, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("failed to write progress file: %w", err)
	}
	return nil
}
