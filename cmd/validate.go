package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check catalog integrity",
	Long: `Validate the catalogs without generating anything.

Reports:
  - asset names that cannot produce an identifier
  - duplicate names within a kind
  - distinct names colliding on one identifier
  - manifest entries referencing missing payload files
  - resource sets without a Contents.json

Exits non-zero when any error-severity finding exists, so validate can
gate CI.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	roots, err := catalogRoots()
	if err != nil {
		return err
	}

	cat, err := scanService.Snapshot(ctx, roots)
	if err != nil {
		return err
	}

	resp, err := validateService.Execute(ctx, services.ValidateRequest{Catalog: cat})
	if err != nil {
		return err
	}

	if len(resp.Findings) == 0 {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Catalog is clean (%d assets)", cat.Count())))
		return nil
	}

	for _, f := range resp.Findings {
		switch f.Severity {
		case services.SeverityError:
			fmt.Printf("%s %s\n", ui.FormatError(f.Asset), f.Message)
		default:
			fmt.Printf("%s %s\n", ui.FormatWarning(f.Asset), f.Message)
		}
	}

	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d error(s), %d warning(s)", resp.Errors, resp.Warnings)))

	if resp.Errors > 0 {
		os.Exit(1)
	}
	return nil
}
