package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/orbital-labs/acgen/internal/adapters/catalog"
	"github.com/orbital-labs/acgen/internal/core/domain"
)

func TestValidateService_CleanCatalog(t *testing.T) {
	root, _ := newTestWorkspace(t)
	cat, err := catalog.NewReader().Read(context.Background(), root)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	svc := NewValidateService()
	resp, err := svc.Execute(context.Background(), ValidateRequest{Catalog: cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Errors != 0 {
		t.Errorf("expected no errors, got %d: %+v", resp.Errors, resp.Findings)
	}
}

func TestValidateService_MissingPayload(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "Assets.xcassets")
	// Manifest references logo.png but the file is never written
	writeSet(t, root, "GoogleLogo.imageset", testImageManifest)

	cat, err := catalog.NewReader().Read(context.Background(), root)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	resp, err := NewValidateService().Execute(context.Background(), ValidateRequest{Catalog: cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Errors == 0 {
		t.Fatal("expected error for missing payload file")
	}
	found := false
	for _, f := range resp.Findings {
		if f.Severity == SeverityError && f.Asset == "GoogleLogo" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected finding about GoogleLogo, got %+v", resp.Findings)
	}
}

func TestValidateService_IdentifierCollision(t *testing.T) {
	cat := &domain.Catalog{}
	cat.Add(domain.Asset{Name: "google-logo", Kind: domain.KindImage, Path: "a.imageset", Hash: "x"})
	cat.Add(domain.Asset{Name: "Google Logo", Kind: domain.KindImage, Path: "b.imageset", Hash: "y"})

	resp, err := NewValidateService().Execute(context.Background(), ValidateRequest{Catalog: cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Errors != 1 {
		t.Fatalf("expected 1 collision error, got %d: %+v", resp.Errors, resp.Findings)
	}
}

func TestValidateService_DuplicateName(t *testing.T) {
	cat := &domain.Catalog{}
	cat.Add(domain.Asset{Name: "Logo", Kind: domain.KindImage, Path: "A/Logo.imageset", Hash: "x"})
	cat.Add(domain.Asset{Name: "Logo", Kind: domain.KindImage, Path: "B/Logo.imageset", Hash: "y"})

	resp, err := NewValidateService().Execute(context.Background(), ValidateRequest{Catalog: cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Errors == 0 {
		t.Fatal("expected duplicate name error")
	}
}

func TestValidateService_SkippedAndBareSets(t *testing.T) {
	cat := &domain.Catalog{Skipped: []string{"AppIcon.appiconset"}}
	cat.Add(domain.Asset{Name: "Bare", Kind: domain.KindImage, Path: "Bare.imageset"}) // no hash: no manifest

	resp, err := NewValidateService().Execute(context.Background(), ValidateRequest{Catalog: cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Errors != 0 {
		t.Errorf("expected warnings only, got %d errors", resp.Errors)
	}
	if resp.Warnings != 2 {
		t.Errorf("expected 2 warnings (skipped set + missing manifest), got %d: %+v",
			resp.Warnings, resp.Findings)
	}
}

func TestValidateService_NilCatalog(t *testing.T) {
	if _, err := NewValidateService().Execute(context.Background(), ValidateRequest{}); err == nil {
		t.Fatal("expected error for nil catalog")
	}
}
