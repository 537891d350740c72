package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var (
	statsHTML bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Analyze the scan index and display useful statistics.

Includes:
  - Asset counts by kind
  - Namespace breakdown
  - Payload file totals

Use --html to render an HTML chart report into the workspace cache and
open it in the browser.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVarP(&statsHTML, "html", "H", false, "Render an HTML chart report")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if !scanService.IndexExists() {
		fmt.Println(ui.FormatWarning("No scan index found"))
		fmt.Println(ui.FormatInfo("Run 'acgen scan' first"))
		return nil
	}

	fmt.Println(ui.FormatRocket("Analyzing catalogs..."))

	resp, err := statsService.Execute(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle("Catalog Analytics"))
	fmt.Println()

	// --- General Stats (Tabular) ---
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Total Assets:"), resp.TotalAssets)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Payload Files:"), resp.PayloadFiles)
	for _, kind := range domain.AllKinds {
		if count := resp.ByKind[kind]; count > 0 {
			fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render(fmt.Sprintf("%s assets:", kind)), count)
		}
	}
	if resp.LongestName != "" {
		fmt.Fprintf(w, "%s\t%s\n", ui.StyleBold.Render("Longest Name:"), resp.LongestName)
	}
	fmt.Fprintf(w, "%s\t%s\n", ui.StyleBold.Render("Last Scanned:"), resp.LastScanned.Format("2006-01-02 15:04"))
	w.Flush()

	// --- Namespace Breakdown ---
	if len(resp.Namespaces) > 0 {
		fmt.Println()
		fmt.Println(ui.StyleHeader.Render("Namespaces"))
		for _, ns := range resp.Namespaces {
			fmt.Printf("  %-20s %d\n", ns.Namespace, ns.Count)
		}
	}

	if resp.MissingHashes > 0 {
		fmt.Println()
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d set(s) without a manifest", resp.MissingHashes)))
	}

	if statsHTML {
		return renderStatsReport(resp)
	}

	return nil
}

// renderStatsReport writes an HTML chart report into the cache and opens it
func renderStatsReport(resp *services.StatsResponse) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Assets by Kind"}),
	)

	var pieData []opts.PieData
	for _, kind := range domain.AllKinds {
		if count := resp.ByKind[kind]; count > 0 {
			pieData = append(pieData, opts.PieData{Name: string(kind), Value: count})
		}
	}
	pie.AddSeries("kinds", pieData)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Assets by Namespace"}),
	)

	var nsNames []string
	var nsData []opts.BarData
	for _, ns := range resp.Namespaces {
		nsNames = append(nsNames, ns.Namespace)
		nsData = append(nsData, opts.BarData{Value: ns.Count})
	}
	bar.SetXAxis(nsNames).AddSeries("assets", nsData)

	page := components.NewPage()
	page.AddCharts(pie, bar)

	if err := appWorkspace.Initialize(); err != nil {
		return err
	}
	reportPath := appWorkspace.ReportPath("stats.html")

	f, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	fmt.Println()
	fmt.Println(ui.FormatRocket("Opening report..."))
	return OpenFile(reportPath)
}
