package cmd

import (
	"fmt"
	"os"

	"github.com/orbital-labs/acgen/internal/adapters/catalog"
	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"

	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your acgen workspace",
	Long: `Diagnose issues with your acgen setup.

Checks for:
  - Workspace and configuration integrity
  - Catalog reachability
  - Scan index freshness
  - Asset validation problems`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("🏥 acgen Doctor"))
	fmt.Println()

	// 1. Check Workspace Structure
	checkStep("Workspace Directory", func() error {
		if !appWorkspace.Exists() {
			return fmt.Errorf("not found at %s", appWorkspace.RootPath)
		}
		return nil
	})

	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appWorkspace.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (using defaults)", appWorkspace.ConfigPath)
		}
		return nil
	})

	checkStep("Cache Directory", func() error {
		if _, err := os.Stat(appWorkspace.CachePath); os.IsNotExist(err) {
			return fmt.Errorf("missing (will be created on next scan)")
		}
		return nil
	})

	// 2. Check Catalogs
	var roots []string
	checkStep("Asset Catalogs", func() error {
		var err error
		roots, err = catalogRoots()
		if err != nil {
			return err
		}
		for _, root := range roots {
			if !catalog.IsCatalog(root) {
				return fmt.Errorf("%s is not an asset catalog", root)
			}
		}
		return nil
	})

	// 3. Check Generation Targets
	checkStep("Generation Targets", func() error {
		if len(appConfig.Targets) == 0 {
			return fmt.Errorf("none configured in %s", appWorkspace.ConfigPath)
		}
		return nil
	})

	// 4. Check Index
	checkStep("Scan Index", func() error {
		if !scanService.IndexExists() {
			return fmt.Errorf("missing (run 'acgen scan')")
		}
		return nil
	})

	// 5. Check Environment
	checkStep("EDITOR Variable", func() error {
		if os.Getenv("EDITOR") == "" {
			return fmt.Errorf("not set (using fallback 'vi')")
		}
		return nil
	})

	if len(roots) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(ui.FormatInfo("Checking catalog integrity..."))

	checkStep("Asset Validation", func() error {
		ctx := getContext()

		cat, err := scanService.Snapshot(ctx, roots)
		if err != nil {
			return err
		}

		resp, err := validateService.Execute(ctx, services.ValidateRequest{Catalog: cat})
		if err != nil {
			return err
		}

		for _, f := range resp.Findings {
			if f.Severity != services.SeverityError {
				continue
			}
			fmt.Printf("    %s: %s\n", f.Asset, f.Message)
		}

		if resp.Errors > 0 {
			return fmt.Errorf("found %d validation errors", resp.Errors)
		}
		if resp.Warnings > 0 {
			return fmt.Errorf("%d warnings (run 'acgen validate' for details)", resp.Warnings)
		}
		return nil
	})
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}
