package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orbital-labs/acgen/internal/adapters/renderer"
	"github.com/orbital-labs/acgen/internal/core/domain"
)

func testCatalog(names ...string) *domain.Catalog {
	c := &domain.Catalog{}
	for _, n := range names {
		c.Add(domain.Asset{Name: n, Kind: domain.KindImage, Path: n + ".imageset"})
	}
	c.Sort()
	return c
}

func TestGenerateService_Execute(t *testing.T) {
	svc := NewGenerateService(renderer.NewObjCRenderer(), renderer.NewGoRenderer("assetnames"))
	out := t.TempDir()

	headerPath := filepath.Join(out, "GeneratedAssetSymbols.h")
	goPath := filepath.Join(out, "assetnames", "names.go")

	resp, err := svc.Execute(context.Background(), GenerateRequest{
		Catalog: testCatalog("GoogleLogo", "OrbitalLogo", "OrbitalLogoDark"),
		Targets: []Target{
			{Format: "objc", Output: headerPath},
			{Format: "go", Output: goPath},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Written) != 2 {
		t.Fatalf("expected 2 files written, got %v", resp.Written)
	}
	if resp.Symbols != 3 {
		t.Errorf("expected 3 symbols, got %d", resp.Symbols)
	}

	header, err := os.ReadFile(headerPath)
	if err != nil {
		t.Fatalf("failed to read generated header: %v", err)
	}
	if !strings.Contains(string(header), `ACImageNameOrbitalLogoDark AC_SWIFT_PRIVATE = @"OrbitalLogoDark";`) {
		t.Errorf("expected OrbitalLogoDark constant in header:\n%s", header)
	}

	goSrc, err := os.ReadFile(goPath)
	if err != nil {
		t.Fatalf("failed to read generated go source: %v", err)
	}
	if !strings.Contains(string(goSrc), `ImageGoogleLogo = "GoogleLogo"`) {
		t.Errorf("expected ImageGoogleLogo constant in go source:\n%s", goSrc)
	}
}

func TestGenerateService_Execute_SkipsUnchanged(t *testing.T) {
	svc := NewGenerateService(renderer.NewObjCRenderer())
	headerPath := filepath.Join(t.TempDir(), "GeneratedAssetSymbols.h")

	req := GenerateRequest{
		Catalog: testCatalog("GoogleLogo"),
		Targets: []Target{{Format: "objc", Output: headerPath}},
	}

	first, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Written) != 1 {
		t.Fatalf("expected first run to write, got %+v", first)
	}

	info, err := os.Stat(headerPath)
	if err != nil {
		t.Fatalf("failed to stat header: %v", err)
	}
	firstMod := info.ModTime()

	second, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Skipped) != 1 || len(second.Written) != 0 {
		t.Fatalf("expected unchanged run to skip, got %+v", second)
	}

	info, err = os.Stat(headerPath)
	if err != nil {
		t.Fatalf("failed to stat header: %v", err)
	}
	if !info.ModTime().Equal(firstMod) {
		t.Error("expected unchanged header to be left untouched")
	}

	// Force overrides the skip
	req.Force = true
	forced, err := svc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forced.Written) != 1 {
		t.Fatalf("expected forced run to write, got %+v", forced)
	}
}

func TestGenerateService_Execute_Collision(t *testing.T) {
	svc := NewGenerateService(renderer.NewObjCRenderer())

	// "google-logo" and "Google Logo" both derive GoogleLogo
	_, err := svc.Execute(context.Background(), GenerateRequest{
		Catalog: testCatalog("google-logo", "Google Logo"),
		Targets: []Target{{Format: "objc", Output: filepath.Join(t.TempDir(), "out.h")}},
	})
	if err == nil {
		t.Fatal("expected identifier collision error")
	}
	if !strings.Contains(err.Error(), "collision") {
		t.Errorf("expected collision in error, got: %v", err)
	}
}

func TestGenerateService_Execute_UnknownTarget(t *testing.T) {
	svc := NewGenerateService(renderer.NewObjCRenderer())

	_, err := svc.Execute(context.Background(), GenerateRequest{
		Catalog: testCatalog("GoogleLogo"),
		Targets: []Target{{Format: "kotlin", Output: filepath.Join(t.TempDir(), "out.kt")}},
	})
	if err == nil {
		t.Fatal("expected error for unknown target format")
	}
}

func TestGenerateService_Execute_InvalidName(t *testing.T) {
	svc := NewGenerateService(renderer.NewObjCRenderer())

	cat := &domain.Catalog{}
	cat.Add(domain.Asset{Name: "---", Kind: domain.KindImage, Path: "---.imageset"})

	_, err := svc.Execute(context.Background(), GenerateRequest{
		Catalog: cat,
		Targets: []Target{{Format: "objc", Output: filepath.Join(t.TempDir(), "out.h")}},
	})
	if err == nil {
		t.Fatal("expected error for name with no identifier characters")
	}
}
