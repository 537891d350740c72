package domain

import (
	"time"
)

// Index represents the persisted snapshot of the last catalog scan
type Index struct {
	Version     string                `json:"version"`
	LastScanned time.Time             `json:"last_scanned"`
	Assets      map[string]IndexEntry `json:"assets"`
}

// IndexEntry represents cached metadata for a single asset
type IndexEntry struct {
	Name       string   `json:"name"`
	Kind       Kind     `json:"kind"`
	Identifier string   `json:"identifier"`
	Path       string   `json:"path"`
	Namespace  string   `json:"namespace,omitempty"`
	Files      []string `json:"files,omitempty"`
	Hash       string   `json:"hash,omitempty"`
}

// NewIndex creates a new empty index
func NewIndex() *Index {
	return &Index{
		Version:     "1.0",
		LastScanned: time.Now(),
		Assets:      make(map[string]IndexEntry),
	}
}

// AddAsset records an asset in the index, keyed by kind/name
func (idx *Index) AddAsset(a Asset) {
	if idx.Assets == nil {
		idx.Assets = make(map[string]IndexEntry)
	}
	idx.Assets[a.Key()] = IndexEntry{
		Name:       a.Name,
		Kind:       a.Kind,
		Identifier: a.Identifier(),
		Path:       a.Path,
		Namespace:  a.Namespace,
		Files:      a.Files,
		Hash:       a.Hash,
	}
}

// Get retrieves an entry by asset key (kind/name)
func (idx *Index) Get(key string) (IndexEntry, bool) {
	entry, exists := idx.Assets[key]
	return entry, exists
}

// Has checks if an asset key exists in the index
func (idx *Index) Has(key string) bool {
	_, exists := idx.Assets[key]
	return exists
}

// Count returns the total number of indexed assets
func (idx *Index) Count() int {
	return len(idx.Assets)
}

// CountByKind returns the number of indexed assets per kind
func (idx *Index) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, entry := range idx.Assets {
		counts[entry.Kind]++
	}
	return counts
}

// UpdateLastScanned updates the last scanned timestamp
func (idx *Index) UpdateLastScanned() {
	idx.LastScanned = time.Now()
}

// Clear removes all assets from the index
func (idx *Index) Clear() {
	idx.Assets = make(map[string]IndexEntry)
}
