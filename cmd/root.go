package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/adapters/catalog"
	"github.com/orbital-labs/acgen/internal/adapters/renderer"
	"github.com/orbital-labs/acgen/internal/adapters/store"
	"github.com/orbital-labs/acgen/internal/core/ports"
	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/config"
	"github.com/orbital-labs/acgen/pkg/ui"
	"github.com/orbital-labs/acgen/pkg/workspace"
)

var (
	// Global workspace instance
	appWorkspace *workspace.Workspace
	appConfig    *config.Config

	// Services
	scanService     *services.ScanService
	generateService *services.GenerateService
	validateService *services.ValidateService
	listService     *services.ListService
	statsService    *services.StatsService
	diffService     *services.DiffService

	// Adapters
	catalogReader *catalog.Reader
	indexStore    *store.JSONIndexStore
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "acgen",
	Short: "acgen - asset catalog symbol generator",
	Long: ui.StyleTitle.Render("acgen") + " - Asset Catalog Symbol Generator\n\n" +
		"Scans asset catalogs (.xcassets) and generates typed name constants\n" +
		"so image, color, and data resources are looked up by symbol, never\n" +
		"by hand-typed string.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Commands that run before a workspace exists
	if cmd.Name() == "init" || cmd.Name() == "version" {
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	ws, err := workspace.Find(cwd)
	if err != nil {
		fmt.Println(ui.FormatError("No acgen workspace found"))
		fmt.Println(ui.FormatInfo("Run 'acgen init' in your project root to create one"))
		os.Exit(1)
	}
	appWorkspace = ws

	cfg, err := config.Load(ws.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(cfg.ColorTheme)

	// Initialize adapters
	catalogReader = catalog.NewReader()
	indexStore = store.NewJSONIndexStore(ws.IndexPath())

	// Initialize services
	scanService = services.NewScanService(catalogReader, indexStore)
	generateService = services.NewGenerateService(buildRenderers(cfg)...)
	validateService = services.NewValidateService()
	listService = services.NewListService(indexStore)
	statsService = services.NewStatsService(indexStore)
	diffService = services.NewDiffService()

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

// buildRenderers constructs one renderer per format, applying
// per-target options from the config
func buildRenderers(cfg *config.Config) []ports.Renderer {
	goPackage := ""
	swiftEnum := ""
	for _, t := range cfg.Targets {
		if t.Format == "go" && t.GoPackage != "" {
			goPackage = t.GoPackage
		}
		if t.Format == "swift" && t.SwiftEnum != "" {
			swiftEnum = t.SwiftEnum
		}
	}

	swift := renderer.NewSwiftRenderer()
	if swiftEnum != "" {
		swift.EnumName = swiftEnum
	}

	return []ports.Renderer{
		renderer.NewObjCRenderer(),
		swift,
		renderer.NewGoRenderer(goPackage),
	}
}
