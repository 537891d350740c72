package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/pkg/ui"
	"github.com/orbital-labs/acgen/pkg/workspace"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an acgen workspace",
	Long: `Initialize an acgen workspace in the current directory.

This creates:
  - acgen.yaml : Catalog roots and generation targets
  - .acgen/    : Scan index and generated reports`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	ws := workspace.New(cwd)

	// Check if already initialized
	if ws.Exists() {
		fmt.Println(ui.FormatWarning("Workspace already initialized"))
		fmt.Println(ui.FormatMuted("Config: " + ws.ConfigPath))
		return nil
	}

	fmt.Println(ui.FormatRocket("Initializing acgen workspace..."))
	fmt.Println()

	if err := ws.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize workspace"))
		return err
	}

	if err := createDefaultConfig(ws); err != nil {
		fmt.Println(ui.FormatError("Failed to create default config"))
		return err
	}

	if err := createCacheGitignore(ws); err != nil {
		fmt.Println(ui.FormatWarning("Failed to create cache .gitignore: " + err.Error()))
		// Don't fail - the ignore file is a convenience
	}

	fmt.Println(ui.FormatSuccess("Workspace initialized successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Location", ws.RootPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. List your catalogs in acgen.yaml (or let scan discover them)"))
	fmt.Println(ui.FormatMuted("  2. Scan the catalogs: acgen scan"))
	fmt.Println(ui.FormatMuted("  3. Generate symbols: acgen generate"))

	return nil
}

func createDefaultConfig(ws *workspace.Workspace) error {
	// Commented starter config; all settings have defaults
	defaultConfig := `# acgen configuration
#
# Catalog roots, relative to this file. Leave empty to discover
# every *.xcassets directory under the workspace.
catalogs: []

# Generated artifacts. Formats: objc, swift, go
targets:
  - format: objc
    output: Generated/GeneratedAssetSymbols.h

# snippet_template: 'UIImage(named: "%s")'
# color_theme: auto
# watch_debounce_ms: 500
`

	return os.WriteFile(ws.ConfigPath, []byte(defaultConfig), 0644)
}

func createCacheGitignore(ws *workspace.Workspace) error {
	// The index is derived state; keep it out of version control
	content := "*\n!.gitignore\n"
	return os.WriteFile(ws.ReportPath(".gitignore"), []byte(content), 0644)
}
