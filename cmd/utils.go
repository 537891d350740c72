package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/orbital-labs/acgen/internal/adapters/catalog"
)

// catalogRoots resolves the configured catalog paths to absolute
// paths, falling back to discovery when none are configured
func catalogRoots() ([]string, error) {
	if len(appConfig.Catalogs) > 0 {
		roots := make([]string, 0, len(appConfig.Catalogs))
		for _, c := range appConfig.Catalogs {
			roots = append(roots, appWorkspace.Resolve(c))
		}
		return roots, nil
	}

	found, err := catalog.Discover(appWorkspace.RootPath)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no .xcassets catalogs found under %s (set 'catalogs' in %s)",
			appWorkspace.RootPath, appWorkspace.ConfigPath)
	}
	return found, nil
}

// GetPreferredEditor returns the editor command from env or default
func GetPreferredEditor() string {
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return "vi"
}

// OpenFile opens a file using the OS default application.
func OpenFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	// We use Start() to detach the process so acgen can exit while the viewer stays open
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open '%s': %w", path, err)
	}

	return nil
}
