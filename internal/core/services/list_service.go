package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

// ListService serves filtered views of the scan index
type ListService struct {
	store ports.IndexStore
}

// NewListService creates a new list service
func NewListService(store ports.IndexStore) *ListService {
	return &ListService{store: store}
}

// ListRequest represents a request to list indexed assets
type ListRequest struct {
	Kind      domain.Kind // Empty means all kinds
	Namespace string      // Empty means all namespaces
	Query     string      // Substring match on name or identifier
	SortBy    string      // "name" (default) or "kind"
}

// ListResponse represents the listing result
type ListResponse struct {
	Assets []domain.IndexEntry
	Total  int
}

// Execute filters and sorts the index
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	index, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	if req.Kind != "" && !req.Kind.Valid() {
		return nil, fmt.Errorf("unknown kind %q", req.Kind)
	}

	query := strings.ToLower(req.Query)

	var matches []domain.IndexEntry
	for _, entry := range index.Assets {
		if req.Kind != "" && entry.Kind != req.Kind {
			continue
		}
		if req.Namespace != "" && entry.Namespace != req.Namespace {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(entry.Name), query) &&
			!strings.Contains(strings.ToLower(entry.Identifier), query) {
			continue
		}
		matches = append(matches, entry)
	}

	switch req.SortBy {
	case "kind":
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Kind != matches[j].Kind {
				return matches[i].Kind < matches[j].Kind
			}
			return strings.ToLower(matches[i].Name) < strings.ToLower(matches[j].Name)
		})
	default:
		sort.Slice(matches, func(i, j int) bool {
			return strings.ToLower(matches[i].Name) < strings.ToLower(matches[j].Name)
		})
	}

	return &ListResponse{
		Assets: matches,
		Total:  len(matches),
	}, nil
}
