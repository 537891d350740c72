package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/orbital-labs/acgen/internal/core/services"
	"github.com/orbital-labs/acgen/pkg/ui"
)

var (
	watchQuiet bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch catalogs and regenerate on change",
	Long: `Watch the asset catalogs and rerun generation whenever a set or
its Contents.json changes.

This command monitors every configured catalog for:
  - New asset sets created
  - Contents.json manifests modified
  - Sets or payload files removed

Changes are debounced (watch_debounce_ms in acgen.yaml) so a batch of
edits from Xcode triggers a single regeneration.

Use --quiet to suppress regeneration notifications.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Suppress regeneration notifications")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	roots, err := catalogRoots()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify does not recurse, so register every directory under each root
	for _, root := range roots {
		if err := watchTree(watcher, root); err != nil {
			return fmt.Errorf("failed to watch %s: %w", root, err)
		}
	}

	if !watchQuiet {
		fmt.Println(ui.FormatRocket("Starting acgen watcher..."))
		for _, root := range roots {
			fmt.Println(ui.FormatMuted("Watching: " + root))
		}
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	// Debounce timer to avoid regenerating once per touched file
	var debounceTimer *time.Timer
	debounceDuration := time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
	needsGenerate := false

	doGenerate := func() {
		if !needsGenerate {
			return
		}
		needsGenerate = false

		if !watchQuiet {
			fmt.Println(ui.FormatInfo("Catalog changes detected, regenerating..."))
		}

		scanResp, err := scanService.Execute(ctx, services.ScanRequest{Roots: roots})
		if err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatError("Scan failed: " + err.Error()))
			}
			log.Printf("Scan error: %v", err)
			return
		}

		var targets []services.Target
		for _, t := range appConfig.Targets {
			targets = append(targets, services.Target{
				Format: t.Format,
				Output: appWorkspace.Resolve(t.Output),
			})
		}

		resp, err := generateService.Execute(ctx, services.GenerateRequest{
			Catalog: scanResp.Catalog,
			Targets: targets,
		})
		if err != nil {
			if !watchQuiet {
				fmt.Println(ui.FormatError("Generate failed: " + err.Error()))
			}
			log.Printf("Generate error: %v", err)
			return
		}

		if !watchQuiet {
			fmt.Println(ui.FormatSuccess(fmt.Sprintf("Regenerated %d symbols (%d files written)",
				resp.Symbols, len(resp.Written))))
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			baseName := filepath.Base(event.Name)
			if strings.HasPrefix(baseName, ".") || strings.HasPrefix(baseName, "~") {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {

				// Newly created set directories need their own watch
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						_ = watchTree(watcher, event.Name)
					}
				}

				needsGenerate = true

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, doGenerate)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if !watchQuiet {
				fmt.Println()
				fmt.Println(ui.FormatMuted("Watcher stopped"))
			}
			return nil
		}
	}
}

// watchTree registers root and every directory below it with the watcher
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
