package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Show catalog changes since the last scan",
	Long: `Compare the asset catalogs on disk against the scan index and
report what was added, removed, renamed, or had its manifest changed.

The index is not modified; run 'acgen scan' to accept the new state.`,
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if !scanService.IndexExists() {
		fmt.Println(ui.FormatWarning("No scan index found"))
		fmt.Println(ui.FormatInfo("Run 'acgen scan' first"))
		return nil
	}

	roots, err := catalogRoots()
	if err != nil {
		return err
	}

	cat, err := scanService.Snapshot(ctx, roots)
	if err != nil {
		return err
	}

	index, err := scanService.LoadIndex()
	if err != nil {
		return err
	}

	resp, err := diffService.Execute(ctx, services.DiffRequest{
		Catalog: cat,
		Index:   index,
	})
	if err != nil {
		return err
	}

	if resp.Empty() {
		fmt.Println(ui.FormatSuccess("Catalogs match the last scan"))
		return nil
	}

	for _, a := range resp.Added {
		fmt.Printf("%s %s (%s)\n", ui.StyleSuccess.Render("+"), a.Name, a.Kind)
	}
	for _, e := range resp.Removed {
		fmt.Printf("%s %s (%s)\n", ui.StyleError.Render("-"), e.Name, e.Kind)
	}
	for _, r := range resp.Renamed {
		fmt.Printf("%s %s -> %s (%s)\n", ui.StyleWarning.Render("~"), r.From, r.To, r.Kind)
	}
	for _, c := range resp.Changed {
		fmt.Printf("%s %s (%s)\n", ui.StyleInfo.Render("*"), c.Name, c.Kind)
	}

	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d added, %d removed, %d renamed, %d changed",
		len(resp.Added), len(resp.Removed), len(resp.Renamed), len(resp.Changed))))
	fmt.Println(ui.FormatInfo("Run 'acgen scan' to update the index"))

	return nil
}
