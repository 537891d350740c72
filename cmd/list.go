package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var (
	listKind      string
	listNamespace string
	listSort      string
)

var listCmd = &cobra.Command{
	Use:     "list [query]",
	Aliases: []string{"ls"},
	Short:   "List indexed assets",
	Long: `List assets from the scan index.

An optional query filters by substring match on the asset name or the
derived identifier. Run 'acgen scan' first to populate the index.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listKind, "kind", "k", "", "Filter by kind (image, color, data, symbol)")
	listCmd.Flags().StringVarP(&listNamespace, "namespace", "n", "", "Filter by folder namespace")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort order (name, kind)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if !scanService.IndexExists() {
		fmt.Println(ui.FormatWarning("No scan index found"))
		fmt.Println(ui.FormatInfo("Run 'acgen scan' first"))
		return nil
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	sortBy := listSort
	if sortBy == "" {
		sortBy = appConfig.DefaultSort
	}

	resp, err := listService.Execute(ctx, services.ListRequest{
		Kind:      domain.Kind(listKind),
		Namespace: listNamespace,
		Query:     query,
		SortBy:    sortBy,
	})
	if err != nil {
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No matching assets found."))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "NAME", Width: 24},
		{Header: "KIND", Width: 7},
		{Header: "IDENTIFIER", Width: 24},
		{Header: "PATH"},
	})

	for _, entry := range resp.Assets {
		table.AddRow([]string{
			entry.Name,
			string(entry.Kind),
			entry.Identifier,
			entry.Path,
		})
	}

	fmt.Println()
	fmt.Print(table.Render())
	fmt.Println()
	fmt.Println(ui.FormatMuted(fmt.Sprintf("%d asset(s)", resp.Total)))

	return nil
}
