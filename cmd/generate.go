package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var (
	generateForce bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate symbol sources from the catalogs",
	Long: `Scan the configured catalogs and write every generation target.

Output files are replaced atomically and left untouched when their
content is already up to date, so generate is safe to run from build
scripts on every build. Use --force to rewrite unchanged files.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "Rewrite outputs even when unchanged")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	roots, err := catalogRoots()
	if err != nil {
		return err
	}

	// Scan fresh so generate never works from a stale index
	scanResp, err := scanService.Execute(ctx, services.ScanRequest{Roots: roots})
	if err != nil {
		return err
	}

	var targets []services.Target
	for _, t := range appConfig.Targets {
		targets = append(targets, services.Target{
			Format: t.Format,
			Output: appWorkspace.Resolve(t.Output),
		})
	}

	resp, err := generateService.Execute(ctx, services.GenerateRequest{
		Catalog: scanResp.Catalog,
		Targets: targets,
		Force:   generateForce,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Generated %d symbols", resp.Symbols)))
	for _, path := range resp.Written {
		fmt.Println(ui.FormatInfo("  wrote " + path))
	}
	for _, path := range resp.Skipped {
		fmt.Println(ui.FormatMuted("  unchanged " + path))
	}

	return nil
}
