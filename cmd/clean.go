package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/pkg/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clear the workspace cache",
	Long: `Remove the scan index and generated reports from the cache directory.

The next scan rebuilds the index from scratch. Generated output files
(generation targets) are left untouched.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	fmt.Print(ui.StyleWarning.Render("Cleaning cache... "))

	if err := appWorkspace.CleanCache(); err != nil {
		fmt.Println(ui.FormatError("Failed"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Done"))
	fmt.Println(ui.FormatMuted("Scan index and reports removed."))
	return nil
}
