package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/domain"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Full-screen catalog browser",
	Long: `Browse the scan index in a full-screen terminal view, grouped by
asset kind, with a detail pane for the selected asset.

Controls:
  - ↑↓/jk    : Navigate
  - Enter/l  : Open Detail
  - Esc/h    : Close Detail
  - g/G      : Jump to Top/Bottom
  - q        : Quit`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !scanService.IndexExists() {
		fmt.Println(ui.FormatWarning("No scan index found"))
		fmt.Println(ui.FormatInfo("Run 'acgen scan' first"))
		return nil
	}

	index, err := scanService.LoadIndex()
	if err != nil {
		return err
	}

	if index.Count() == 0 {
		fmt.Println(ui.FormatWarning("Index is empty."))
		return nil
	}

	view, err := NewCatalogBrowserView(index)
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	return view.Run()
}

// CatalogBrowserView provides a terminal-based catalog browser
type CatalogBrowserView struct {
	index         *domain.Index
	entries       []domain.IndexEntry // Flattened, kind-ordered
	screen        tcell.Screen
	width         int
	height        int
	scrollOffset  int
	selectedIndex int
	showDetail    bool
}

// NewCatalogBrowserView creates a new catalog browser
func NewCatalogBrowserView(index *domain.Index) (*CatalogBrowserView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	width, height := screen.Size()

	var entries []domain.IndexEntry
	for _, kind := range domain.AllKinds {
		var group []domain.IndexEntry
		for _, e := range index.Assets {
			if e.Kind == kind {
				group = append(group, e)
			}
		}
		sort.Slice(group, func(i, j int) bool {
			return strings.ToLower(group[i].Name) < strings.ToLower(group[j].Name)
		})
		entries = append(entries, group...)
	}

	return &CatalogBrowserView{
		index:         index,
		entries:       entries,
		screen:        screen,
		width:         width,
		height:        height,
		scrollOffset:  0,
		selectedIndex: 0,
	}, nil
}

// Run starts the browser
func (v *CatalogBrowserView) Run() error {
	defer v.screen.Fini()

	v.screen.Clear()
	v.render()

	for {
		ev := v.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.width, v.height = ev.Size()
			v.screen.Sync()
			v.render()

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			if ev.Key() == tcell.KeyEscape {
				if v.showDetail {
					v.showDetail = false
					v.render()
					continue
				}
				return nil
			}

			v.handleKeyPress(ev)
			v.render()
		}
	}
}

// handleKeyPress processes keyboard input
func (v *CatalogBrowserView) handleKeyPress(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyCtrlP:
		v.moveCursor(-1)
	case tcell.KeyDown, tcell.KeyCtrlN:
		v.moveCursor(1)
	case tcell.KeyEnter:
		v.showDetail = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.showDetail = false
	case tcell.KeyHome:
		v.selectedIndex = 0
		v.scrollOffset = 0
	case tcell.KeyEnd:
		v.selectedIndex = len(v.entries) - 1
		v.adjustScroll()
	}

	// Vim-style navigation
	switch ev.Rune() {
	case 'j':
		v.moveCursor(1)
	case 'k':
		v.moveCursor(-1)
	case 'h':
		v.showDetail = false
	case 'l':
		v.showDetail = true
	case 'g':
		v.selectedIndex = 0
		v.scrollOffset = 0
	case 'G':
		v.selectedIndex = len(v.entries) - 1
		v.adjustScroll()
	}
}

// moveCursor moves the selection cursor
func (v *CatalogBrowserView) moveCursor(delta int) {
	if len(v.entries) == 0 {
		return
	}

	v.selectedIndex += delta

	if v.selectedIndex < 0 {
		v.selectedIndex = 0
	}
	if v.selectedIndex >= len(v.entries) {
		v.selectedIndex = len(v.entries) - 1
	}

	v.adjustScroll()
}

// adjustScroll adjusts scroll offset to keep cursor visible
func (v *CatalogBrowserView) adjustScroll() {
	visibleLines := v.height - 8 // Reserve space for header/footer

	if v.selectedIndex < v.scrollOffset {
		v.scrollOffset = v.selectedIndex
	}
	if v.selectedIndex >= v.scrollOffset+visibleLines {
		v.scrollOffset = v.selectedIndex - visibleLines + 1
	}
}

// render draws the interface
func (v *CatalogBrowserView) render() {
	v.screen.Clear()

	y := 0

	// Header
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorPurple)
	v.drawText(0, y, "┌─ Asset Catalog Browser", titleStyle)
	y++
	statsText := fmt.Sprintf("│  %d assets │ Scanned: %s",
		v.index.Count(), v.index.LastScanned.Format("2006-01-02 15:04"))
	v.drawText(0, y, statsText, tcell.StyleDefault.Foreground(tcell.ColorGray))
	y++
	v.drawText(0, y, "└─────────────────────────────────────────────────────────────", tcell.StyleDefault.Foreground(tcell.ColorGray))
	y += 2

	if v.showDetail && v.selectedIndex < len(v.entries) {
		v.renderDetail(y)
	} else {
		v.renderList(y)
	}

	// Footer
	footerY := v.height - 2
	v.drawText(0, footerY, strings.Repeat("─", v.width), tcell.StyleDefault.Foreground(tcell.ColorGray))
	footerY++

	helpText := "↑↓/jk: Navigate │ Enter/l: Detail │ Esc/h: Back │ q: Quit"
	v.drawText(0, footerY, helpText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	v.screen.Show()
}

// renderList draws the kind-grouped asset list
func (v *CatalogBrowserView) renderList(y int) {
	visibleLines := v.height - 8
	lastKind := domain.Kind("")

	for i, e := range v.entries {
		if i < v.scrollOffset {
			continue
		}
		if i >= v.scrollOffset+visibleLines {
			break
		}

		if e.Kind != lastKind {
			headerStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorGreen)
			v.drawText(0, y, strings.ToUpper(string(e.Kind))+"S", headerStyle)
			y++
			lastKind = e.Kind
		}

		style := tcell.StyleDefault
		prefix := "  "

		if i == v.selectedIndex {
			style = style.Reverse(true)
			prefix = "▶ "
		}

		v.drawText(0, y, prefix+e.Name, style)
		y++
	}
}

// renderDetail draws the selected asset's detail pane
func (v *CatalogBrowserView) renderDetail(y int) {
	e := v.entries[v.selectedIndex]

	headerStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.Color51)
	valueStyle := tcell.StyleDefault

	rows := []struct {
		label string
		value string
	}{
		{"Name", e.Name},
		{"Kind", string(e.Kind)},
		{"Identifier", e.Identifier},
		{"Namespace", e.Namespace},
		{"Path", e.Path},
		{"Hash", e.Hash},
	}

	for _, row := range rows {
		if row.value == "" {
			continue
		}
		v.drawText(0, y, row.label, headerStyle)
		v.drawText(14, y, row.value, valueStyle)
		y++
	}
	y++

	if len(e.Files) > 0 {
		v.drawText(0, y, "PAYLOAD FILES", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow))
		y++
		for _, f := range e.Files {
			v.drawText(0, y, "  • "+f, valueStyle)
			y++
		}
	}
}

// drawText draws text at the specified position
func (v *CatalogBrowserView) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= v.width {
			break
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
