package services

import (
	"context"
	"fmt"
	"time"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/ports"
)

// ScanService reads configured catalogs and maintains the scan index
type ScanService struct {
	source ports.CatalogSource
	store  ports.IndexStore
}

// NewScanService creates a new scan service
func NewScanService(source ports.CatalogSource, store ports.IndexStore) *ScanService {
	return &ScanService{
		source: source,
		store:  store,
	}
}

// ScanRequest represents a request to scan catalog roots
type ScanRequest struct {
	Roots []string
}

// ScanResponse represents the result of a scan
type ScanResponse struct {
	Catalog     *domain.Catalog
	TotalAssets int
	ByKind      map[domain.Kind]int
	Skipped     []string
	Duration    time.Duration
}

// Execute scans every root, merges the catalogs, and persists the
// index snapshot that list, stats, and diff read from
func (s *ScanService) Execute(ctx context.Context, req ScanRequest) (*ScanResponse, error) {
	if len(req.Roots) == 0 {
		return nil, fmt.Errorf("no catalog roots configured")
	}

	start := time.Now()

	var catalogs []*domain.Catalog
	for _, root := range req.Roots {
		cat, err := s.source.Read(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}
		catalogs = append(catalogs, cat)
	}

	merged := domain.Merge(catalogs...)

	index := domain.NewIndex()
	for _, a := range merged.Assets {
		index.AddAsset(a)
	}
	index.UpdateLastScanned()

	if err := s.store.Save(index); err != nil {
		return nil, fmt.Errorf("failed to save index: %w", err)
	}

	byKind := make(map[domain.Kind]int)
	for _, a := range merged.Assets {
		byKind[a.Kind]++
	}

	return &ScanResponse{
		Catalog:     merged,
		TotalAssets: merged.Count(),
		ByKind:      byKind,
		Skipped:     merged.Skipped,
		Duration:    time.Since(start),
	}, nil
}

// Snapshot reads the catalogs without touching the index, for
// read-only operations like diff and validate
func (s *ScanService) Snapshot(ctx context.Context, roots []string) (*domain.Catalog, error) {
	if len(roots) == 0 {
		return nil, fmt.Errorf("no catalog roots configured")
	}

	var catalogs []*domain.Catalog
	for _, root := range roots {
		cat, err := s.source.Read(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}
		catalogs = append(catalogs, cat)
	}

	return domain.Merge(catalogs...), nil
}

// LoadIndex loads the persisted index
func (s *ScanService) LoadIndex() (*domain.Index, error) {
	return s.store.Load()
}

// IndexExists checks if a scan has been persisted
func (s *ScanService) IndexExists() bool {
	return s.store.Exists()
}
