package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if len(cfg.Targets) != 1 || cfg.Targets[0].Format != "objc" {
		t.Errorf("expected default objc target, got %+v", cfg.Targets)
	}

	if cfg.DefaultSort != "name" {
		t.Errorf("expected default DefaultSort='name', got %q", cfg.DefaultSort)
	}

	if cfg.WatchDebounceMS != 500 {
		t.Errorf("expected default WatchDebounceMS=500, got %d", cfg.WatchDebounceMS)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/acgen.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.MaxSearchResults != 50 {
		t.Errorf("expected default MaxSearchResults=50, got %d", cfg.MaxSearchResults)
	}
}

func TestSave_And_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "acgen.yaml")

	cfg := DefaultConfig()
	cfg.Catalogs = []string{"App/Assets.xcassets"}
	cfg.Targets = []Target{
		{Format: "objc", Output: "Generated/GeneratedAssetSymbols.h"},
		{Format: "go", Output: "gen/assetnames/names.go", GoPackage: "assetnames"},
	}

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if len(loaded.Catalogs) != 1 || loaded.Catalogs[0] != "App/Assets.xcassets" {
		t.Errorf("catalogs did not round-trip: %v", loaded.Catalogs)
	}
	if len(loaded.Targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(loaded.Targets))
	}
	if loaded.Targets[1].GoPackage != "assetnames" {
		t.Errorf("expected go_package to round-trip, got %q", loaded.Targets[1].GoPackage)
	}
}

func TestLoad_InvalidFormat(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "acgen.yaml")
	content := "targets:\n  - format: kotlin\n    output: out.kt\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("expected error for unknown target format")
	}
}

func TestValidate_MissingOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Targets = []Target{{Format: "swift"}}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for target without output path")
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "acgen.yaml")
	// Sparse config: only catalogs set
	if err := os.WriteFile(configPath, []byte("catalogs:\n  - Assets.xcassets\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ColorTheme != "auto" {
		t.Errorf("expected ColorTheme default, got %q", cfg.ColorTheme)
	}
	if cfg.SnippetTemplate == "" {
		t.Error("expected SnippetTemplate default")
	}
}
