package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick [query]",
	Short: "Fuzzy-find an asset and copy a usage snippet",
	Long: `Open a fuzzy finder over the indexed assets and copy a code snippet
for the selected one to the clipboard.

The snippet template is configurable via snippet_template in acgen.yaml
(the asset name replaces %s).`,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if !scanService.IndexExists() {
		fmt.Println(ui.FormatWarning("No scan index found"))
		fmt.Println(ui.FormatInfo("Run 'acgen scan' first"))
		return nil
	}

	query := ""
	if len(args) > 0 {
		query = strings.Join(args, " ")
	}

	resp, err := listService.Execute(ctx, services.ListRequest{Query: query})
	if err != nil {
		return err
	}

	if len(resp.Assets) == 0 {
		fmt.Println(ui.FormatWarning("No assets match"))
		return nil
	}

	return runInteractiveAssetPick(resp.Assets)
}

// runInteractiveAssetPick launches the fuzzy finder over index entries
func runInteractiveAssetPick(entries []domain.IndexEntry) error {
	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			e := entries[i]
			// Construct a searchable string containing all metadata
			return fmt.Sprintf("%s  %s  %s  %s",
				e.Name,
				e.Kind,
				e.Identifier,
				e.Namespace,
			)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]

			var s strings.Builder
			s.WriteString(fmt.Sprintf("Asset: %s\n", ui.StyleBold.Render(e.Name)))
			s.WriteString(fmt.Sprintf("Kind:  %s\n", e.Kind))
			s.WriteString(fmt.Sprintf("Path:  %s\n", e.Path))
			s.WriteString("\n")

			s.WriteString(ui.StyleHeader.Render("Identifier") + "\n")
			s.WriteString(e.Identifier + "\n\n")

			if e.Namespace != "" {
				s.WriteString(ui.StyleHeader.Render("Namespace") + "\n")
				s.WriteString(e.Namespace + "\n\n")
			}

			if len(e.Files) > 0 {
				s.WriteString(ui.StyleHeader.Render("Payload Files") + "\n")
				for _, f := range e.Files {
					s.WriteString(fmt.Sprintf("- %s\n", f))
				}
			} else {
				s.WriteString(ui.FormatMuted("(No payload files)"))
			}

			return s.String()
		}),
	)

	if err != nil {
		fmt.Println(ui.FormatInfo("Selection cancelled."))
		return nil
	}

	selected := entries[idx]
	snippet := fmt.Sprintf(appConfig.SnippetTemplate, selected.Name)

	fmt.Println(ui.FormatSuccess("Selected: " + selected.Name))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Snippet (Copied):"))
	fmt.Println(ui.StyleBold.Render(snippet))

	if err := clipboard.WriteAll(snippet); err != nil {
		fmt.Println(ui.FormatMuted("(Clipboard access failed)"))
	}

	return nil
}
