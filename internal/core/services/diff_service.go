package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/orbital-labs/acgen/internal/core/domain"
)

// DiffService compares the current catalog contents against the last
// persisted scan. A catalog change never mutates generated symbols in
// place; the old snapshot is superseded, and diff makes that delta
// visible before regeneration.
type DiffService struct{}

// NewDiffService creates a new diff service
func NewDiffService() *DiffService {
	return &DiffService{}
}

// Rename pairs a removed entry with the added asset carrying the same
// manifest hash
type Rename struct {
	From string
	To   string
	Kind domain.Kind
}

// Change describes an asset whose manifest content changed
type Change struct {
	Name string
	Kind domain.Kind
}

// DiffRequest represents a diff request
type DiffRequest struct {
	Catalog *domain.Catalog
	Index   *domain.Index
}

// DiffResponse represents the catalog delta since the last scan
type DiffResponse struct {
	Added   []domain.Asset
	Removed []domain.IndexEntry
	Changed []Change
	Renamed []Rename
}

// Empty reports whether the catalog matches the last scan
func (r *DiffResponse) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 &&
		len(r.Changed) == 0 && len(r.Renamed) == 0
}

// Execute computes the delta between catalog and index
func (s *DiffService) Execute(ctx context.Context, req DiffRequest) (*DiffResponse, error) {
	if req.Catalog == nil {
		return nil, fmt.Errorf("no catalog to diff")
	}
	if req.Index == nil {
		return nil, fmt.Errorf("no index to diff against")
	}

	current := make(map[string]domain.Asset, len(req.Catalog.Assets))
	for _, a := range req.Catalog.Assets {
		current[a.Key()] = a
	}

	resp := &DiffResponse{}

	for _, a := range req.Catalog.Assets {
		entry, exists := req.Index.Get(a.Key())
		if !exists {
			resp.Added = append(resp.Added, a)
			continue
		}
		if entry.Hash != a.Hash {
			resp.Changed = append(resp.Changed, Change{Name: a.Name, Kind: a.Kind})
		}
	}

	for key, entry := range req.Index.Assets {
		if _, exists := current[key]; !exists {
			resp.Removed = append(resp.Removed, entry)
		}
	}
	sort.Slice(resp.Removed, func(i, j int) bool {
		return resp.Removed[i].Name < resp.Removed[j].Name
	})

	s.detectRenames(resp)

	return resp, nil
}

// detectRenames folds added/removed pairs sharing a manifest hash into
// renames. Ambiguous hashes (empty, or matching several entries) are
// left as plain add/remove.
func (s *DiffService) detectRenames(resp *DiffResponse) {
	removedByHash := make(map[string][]int)
	for i, e := range resp.Removed {
		if e.Hash != "" {
			removedByHash[e.Hash] = append(removedByHash[e.Hash], i)
		}
	}

	var added []domain.Asset
	usedRemoved := make(map[int]bool)

	for _, a := range resp.Added {
		candidates := removedByHash[a.Hash]
		if a.Hash == "" || len(candidates) != 1 || usedRemoved[candidates[0]] {
			added = append(added, a)
			continue
		}

		idx := candidates[0]
		old := resp.Removed[idx]
		if old.Kind != a.Kind {
			added = append(added, a)
			continue
		}

		usedRemoved[idx] = true
		resp.Renamed = append(resp.Renamed, Rename{From: old.Name, To: a.Name, Kind: a.Kind})
	}

	var removed []domain.IndexEntry
	for i, e := range resp.Removed {
		if !usedRemoved[i] {
			removed = append(removed, e)
		}
	}

	resp.Added = added
	resp.Removed = removed
}
