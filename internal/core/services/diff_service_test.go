package services

import (
	"context"
	"testing"

	"github.com/orbital-labs/acgen/internal/core/domain"
)

func indexOf(assets ...domain.Asset) *domain.Index {
	idx := domain.NewIndex()
	for _, a := range assets {
		idx.AddAsset(a)
	}
	return idx
}

func TestDiffService_NoChanges(t *testing.T) {
	a := domain.Asset{Name: "GoogleLogo", Kind: domain.KindImage, Hash: "h1"}
	cat := &domain.Catalog{Assets: []domain.Asset{a}}

	resp, err := NewDiffService().Execute(context.Background(), DiffRequest{
		Catalog: cat,
		Index:   indexOf(a),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Empty() {
		t.Errorf("expected empty diff, got %+v", resp)
	}
}

func TestDiffService_AddedAndRemoved(t *testing.T) {
	old := domain.Asset{Name: "OldLogo", Kind: domain.KindImage, Hash: "h1"}
	new_ := domain.Asset{Name: "NewLogo", Kind: domain.KindImage, Hash: "h2"}
	cat := &domain.Catalog{Assets: []domain.Asset{new_}}

	resp, err := NewDiffService().Execute(context.Background(), DiffRequest{
		Catalog: cat,
		Index:   indexOf(old),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Added) != 1 || resp.Added[0].Name != "NewLogo" {
		t.Errorf("expected NewLogo added, got %+v", resp.Added)
	}
	if len(resp.Removed) != 1 || resp.Removed[0].Name != "OldLogo" {
		t.Errorf("expected OldLogo removed, got %+v", resp.Removed)
	}
	if len(resp.Renamed) != 0 {
		t.Errorf("expected no renames for distinct hashes, got %+v", resp.Renamed)
	}
}

func TestDiffService_DetectsRename(t *testing.T) {
	old := domain.Asset{Name: "OrbitalLogo", Kind: domain.KindImage, Hash: "same"}
	renamed := domain.Asset{Name: "OrbitalLogoLight", Kind: domain.KindImage, Hash: "same"}
	cat := &domain.Catalog{Assets: []domain.Asset{renamed}}

	resp, err := NewDiffService().Execute(context.Background(), DiffRequest{
		Catalog: cat,
		Index:   indexOf(old),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Renamed) != 1 {
		t.Fatalf("expected 1 rename, got %+v", resp)
	}
	r := resp.Renamed[0]
	if r.From != "OrbitalLogo" || r.To != "OrbitalLogoLight" {
		t.Errorf("unexpected rename %+v", r)
	}
	if len(resp.Added) != 0 || len(resp.Removed) != 0 {
		t.Errorf("expected rename to consume add/remove, got %+v", resp)
	}
}

func TestDiffService_ChangedManifest(t *testing.T) {
	before := domain.Asset{Name: "GoogleLogo", Kind: domain.KindImage, Hash: "h1"}
	after := domain.Asset{Name: "GoogleLogo", Kind: domain.KindImage, Hash: "h2"}
	cat := &domain.Catalog{Assets: []domain.Asset{after}}

	resp, err := NewDiffService().Execute(context.Background(), DiffRequest{
		Catalog: cat,
		Index:   indexOf(before),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Changed) != 1 || resp.Changed[0].Name != "GoogleLogo" {
		t.Errorf("expected GoogleLogo changed, got %+v", resp.Changed)
	}
}

func TestDiffService_AmbiguousHashIsNotRename(t *testing.T) {
	// Two removed entries share a hash with one added asset: ambiguous,
	// reported as plain add/remove
	oldA := domain.Asset{Name: "A", Kind: domain.KindImage, Hash: "same"}
	oldB := domain.Asset{Name: "B", Kind: domain.KindImage, Hash: "same"}
	added := domain.Asset{Name: "C", Kind: domain.KindImage, Hash: "same"}
	cat := &domain.Catalog{Assets: []domain.Asset{added}}

	resp, err := NewDiffService().Execute(context.Background(), DiffRequest{
		Catalog: cat,
		Index:   indexOf(oldA, oldB),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Renamed) != 0 {
		t.Errorf("expected no rename for ambiguous hash, got %+v", resp.Renamed)
	}
	if len(resp.Added) != 1 || len(resp.Removed) != 2 {
		t.Errorf("expected plain add/remove, got %+v", resp)
	}
}
