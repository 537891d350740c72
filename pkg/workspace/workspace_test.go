package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFind_WalksUpward(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigName), []byte("catalogs: []\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	nested := filepath.Join(root, "App", "Sources")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	w, err := Find(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Resolve symlinks before comparing; t.TempDir may be symlinked on macOS
	wantRoot, _ := filepath.EvalSymlinks(root)
	gotRoot, _ := filepath.EvalSymlinks(w.RootPath)
	if gotRoot != wantRoot {
		t.Errorf("expected root %s, got %s", wantRoot, gotRoot)
	}
}

func TestFind_NotFound(t *testing.T) {
	if _, err := Find(t.TempDir()); err == nil {
		t.Fatal("expected error when no config exists upward")
	}
}

func TestWorkspace_InitializeAndClean(t *testing.T) {
	w := New(t.TempDir())

	if err := w.Initialize(); err != nil {
		t.Fatalf("failed to initialize: %v", err)
	}
	if _, err := os.Stat(w.CachePath); err != nil {
		t.Fatalf("expected cache directory: %v", err)
	}

	if err := os.WriteFile(w.IndexPath(), []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	if err := w.CleanCache(); err != nil {
		t.Fatalf("failed to clean cache: %v", err)
	}
	if _, err := os.Stat(w.IndexPath()); !os.IsNotExist(err) {
		t.Error("expected cache contents to be removed")
	}
}

func TestWorkspace_Resolve(t *testing.T) {
	w := New("/project")

	if got := w.Resolve("Assets.xcassets"); got != filepath.Join("/project", "Assets.xcassets") {
		t.Errorf("unexpected resolved path: %s", got)
	}
	if got := w.Resolve("/abs/Assets.xcassets"); got != "/abs/Assets.xcassets" {
		t.Errorf("absolute path should pass through, got: %s", got)
	}
}

func TestWorkspace_Exists(t *testing.T) {
	w := New(t.TempDir())
	if w.Exists() {
		t.Error("Exists() should be false without a config file")
	}

	if err := os.WriteFile(w.ConfigPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if !w.Exists() {
		t.Error("Exists() should be true once the config file is present")
	}
}
