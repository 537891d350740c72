package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigName is the file that marks a directory as an acgen workspace
const ConfigName = "acgen.yaml"

// cacheDirName holds the scan index and generated reports
const cacheDirName = ".acgen"

// Workspace represents a project directory managed by acgen
type Workspace struct {
	RootPath   string
	ConfigPath string
	CachePath  string
}

// New creates a workspace rooted at the given directory
func New(root string) *Workspace {
	return &Workspace{
		RootPath:   root,
		ConfigPath: filepath.Join(root, ConfigName),
		CachePath:  filepath.Join(root, cacheDirName),
	}
}

// Find locates the workspace by searching upward from start for the
// config file, the way build tools resolve their project root
func Find(start string) (*Workspace, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return New(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no %s found in %s or any parent directory", ConfigName, start)
		}
		dir = parent
	}
}

// Initialize creates the workspace cache structure
func (w *Workspace) Initialize() error {
	if err := os.MkdirAll(w.CachePath, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory %s: %w", w.CachePath, err)
	}
	return nil
}

// Exists checks if the workspace has been initialized
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.ConfigPath)
	return err == nil && !info.IsDir()
}

// IndexPath returns the path to the scan index file
func (w *Workspace) IndexPath() string {
	return filepath.Join(w.CachePath, "index.json")
}

// ReportPath returns the path for a generated report file
func (w *Workspace) ReportPath(filename string) string {
	return filepath.Join(w.CachePath, filename)
}

// Resolve turns a workspace-relative path into an absolute one,
// leaving already-absolute paths alone
func (w *Workspace) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.RootPath, path)
}

// CleanCache removes everything under the cache directory
func (w *Workspace) CleanCache() error {
	entries, err := os.ReadDir(w.CachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(w.CachePath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}
