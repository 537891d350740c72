package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

// JSONIndexStore persists the scan index as a JSON file in the
// workspace cache directory
type JSONIndexStore struct {
	path string
	mu   sync.RWMutex
}

// NewJSONIndexStore creates a store writing to the given path
func NewJSONIndexStore(path string) *JSONIndexStore {
	return &JSONIndexStore{path: path}
}

// Ensure it implements the interface
var _ ports.IndexStore = (*JSONIndexStore)(nil)

// Load reads the index from disk
func (s *JSONIndexStore) Load() (*domain.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// No scan yet: empty index, not an error
			return domain.NewIndex(), nil
		}
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}

	var idx domain.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}
	if idx.Assets == nil {
		idx.Assets = make(map[string]domain.IndexEntry)
	}

	return &idx, nil
}

// Save persists the index atomically via a temp file in the same
// directory, so a crashed write never leaves a truncated index
func (s *JSONIndexStore) Save(idx *domain.Index) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".index-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp index: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close index: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace index: %w", err)
	}

	return nil
}

// Exists checks if a persisted index is present
func (s *JSONIndexStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
