package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan asset catalogs and rebuild the index",
	Long: `Walk the configured catalog roots, parse every resource set, and
rebuild the scan index.

The index is what list, stats, diff, pick, and explore read from; run
scan after changing catalog contents outside of watch mode.`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	roots, err := catalogRoots()
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatRocket("Scanning catalogs..."))
	for _, root := range roots {
		fmt.Println(ui.FormatMuted("  " + root))
	}

	resp, err := scanService.Execute(ctx, services.ScanRequest{Roots: roots})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Indexed %d assets in %s",
		resp.TotalAssets, resp.Duration.Round(time.Millisecond))))

	for _, kind := range domain.AllKinds {
		if count := resp.ByKind[kind]; count > 0 {
			fmt.Println(ui.FormatMuted(fmt.Sprintf("  %-7s %d", kind, count)))
		}
	}

	if len(resp.Skipped) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Skipped %d unsupported set(s):", len(resp.Skipped))))
		for _, s := range resp.Skipped {
			fmt.Println(ui.FormatMuted("  " + s))
		}
	}

	return nil
}
