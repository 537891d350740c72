package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive catalog explorer",
	Long: `Browse the indexed assets grouped by namespace.

Vim Navigation:
- k / ↑ : Move Up
- j / ↓ : Move Down
- l / → : Enter Namespace
- h / ← : Back to Namespaces
- c     : Copy Snippet
- q     : Quit`,
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if !scanService.IndexExists() {
		fmt.Println(ui.FormatWarning("No scan index found"))
		fmt.Println(ui.FormatInfo("Run 'acgen scan' first"))
		return nil
	}

	resp, err := listService.Execute(ctx, services.ListRequest{})
	if err != nil {
		return err
	}

	if len(resp.Assets) == 0 {
		fmt.Println(ui.FormatWarning("Index is empty."))
		return nil
	}

	// Group entries by namespace; root-level assets live under ""
	groups := make(map[string][]domain.IndexEntry)
	for _, e := range resp.Assets {
		groups[e.Namespace] = append(groups[e.Namespace], e)
	}

	p := tea.NewProgram(initialExploreModel(groups))
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}

// --- TUI Model ---

const rootNamespaceLabel = "(root)"

type exploreModel struct {
	groups     map[string][]domain.IndexEntry
	namespaces []string

	cursor    int  // Selected namespace
	inAssets  bool // Whether the asset table has focus
	table     table.Model
	current   []domain.IndexEntry
	statusMsg string
}

func initialExploreModel(groups map[string][]domain.IndexEntry) exploreModel {
	var namespaces []string
	for ns := range groups {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)

	return exploreModel{
		groups:     groups,
		namespaces: namespaces,
	}
}

func (m *exploreModel) enterNamespace() {
	entries := m.groups[m.namespaces[m.cursor]]
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	m.current = entries

	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Kind", Width: 8},
		{Title: "Identifier", Width: 30},
	}

	rows := []table.Row{}
	for _, e := range entries {
		rows = append(rows, table.Row{e.Name, string(e.Kind), e.Identifier})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	// --- Styles using Safe Terminal Colors ---
	s := table.DefaultStyles()

	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		BorderBottom(true).
		Bold(true)

	s.Selected = s.Selected.
		Foreground(ui.ColorDefault).
		Background(ui.ColorPrimary).
		Bold(true)

	t.SetStyles(s)

	m.table = t
	m.inAssets = true
	m.statusMsg = ""
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

		if m.inAssets {
			switch msg.String() {
			case "left", "h":
				m.inAssets = false
				m.statusMsg = ""
				return m, nil

			case "c", "enter":
				idx := m.table.Cursor()
				if idx < len(m.current) {
					snippet := fmt.Sprintf(appConfig.SnippetTemplate, m.current[idx].Name)
					if err := clipboard.WriteAll(snippet); err != nil {
						m.statusMsg = "(Clipboard access failed)"
					} else {
						m.statusMsg = "Copied: " + snippet
					}
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

		// --- VIM NAVIGATION (namespace level) ---
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.namespaces)-1 {
				m.cursor++
			}

		case "right", "l", "enter":
			m.enterNamespace()
		}
	}
	return m, nil
}

func (m exploreModel) View() string {
	var s strings.Builder

	if m.inAssets {
		label := m.namespaces[m.cursor]
		if label == "" {
			label = rootNamespaceLabel
		}

		s.WriteString("\n")
		s.WriteString(ui.StyleTitle.Render(" 🖼 " + label))
		s.WriteString(ui.StyleMuted.Render(fmt.Sprintf(" (%d assets)", len(m.current))))
		s.WriteString("\n\n")
		s.WriteString(m.table.View())
		s.WriteString("\n\n")
		if m.statusMsg != "" {
			s.WriteString(ui.FormatSuccess(" " + m.statusMsg))
			s.WriteString("\n")
		}
		s.WriteString(ui.StyleMuted.Render(" [k/j] Navigate  [c] Copy Snippet  [h] Back  [q] Quit"))
		s.WriteString("\n")
		return s.String()
	}

	s.WriteString("\n")
	s.WriteString(ui.StyleTitle.Render(" 🖼 Asset Catalog Explorer"))
	s.WriteString("\n\n")
	s.WriteString(ui.StyleBold.Render(fmt.Sprintf(" Namespaces (%d)", len(m.namespaces))))
	s.WriteString("\n\n")

	for i, ns := range m.namespaces {
		cursor := "  "
		style := ui.StyleMuted

		if m.cursor == i {
			cursor = ui.StyleAccent.Render("→ ")
			style = ui.StyleSuccess.Copy().Bold(true)
		}

		label := ns
		if label == "" {
			label = rootNamespaceLabel
		}

		s.WriteString(fmt.Sprintf("%s%s %s\n",
			cursor,
			style.Render(label),
			ui.StyleMuted.Render(fmt.Sprintf("(%d)", len(m.groups[ns]))),
		))
	}

	s.WriteString("\n\n")
	s.WriteString(ui.StyleMuted.Render(" [k/j] Navigate  [l] Enter  [q] Quit"))
	s.WriteString("\n")

	return s.String()
}
