package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

// StatsService aggregates catalog analytics from the scan index
type StatsService struct {
	store ports.IndexStore
}

// NewStatsService creates a new stats service
func NewStatsService(store ports.IndexStore) *StatsService {
	return &StatsService{store: store}
}

// NamespaceCount is one row of the per-namespace breakdown
type NamespaceCount struct {
	Namespace string
	Count     int
}

// StatsResponse represents aggregated catalog statistics
type StatsResponse struct {
	TotalAssets   int
	ByKind        map[domain.Kind]int
	Namespaces    []NamespaceCount
	PayloadFiles  int
	LastScanned   time.Time
	LongestName   string
	MissingHashes int
}

// Execute computes statistics over the persisted index
func (s *StatsService) Execute(ctx context.Context) (*StatsResponse, error) {
	index, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	resp := &StatsResponse{
		TotalAssets: index.Count(),
		ByKind:      index.CountByKind(),
		LastScanned: index.LastScanned,
	}

	nsCounts := make(map[string]int)
	for _, entry := range index.Assets {
		ns := entry.Namespace
		if ns == "" {
			ns = "(root)"
		}
		nsCounts[ns]++

		resp.PayloadFiles += len(entry.Files)

		if len(entry.Name) > len(resp.LongestName) {
			resp.LongestName = entry.Name
		}
		if entry.Hash == "" {
			resp.MissingHashes++
		}
	}

	for ns, count := range nsCounts {
		resp.Namespaces = append(resp.Namespaces, NamespaceCount{Namespace: ns, Count: count})
	}
	sort.Slice(resp.Namespaces, func(i, j int) bool {
		if resp.Namespaces[i].Count != resp.Namespaces[j].Count {
			return resp.Namespaces[i].Count > resp.Namespaces[j].Count
		}
		return resp.Namespaces[i].Namespace < resp.Namespaces[j].Namespace
	})

	return resp, nil
}
