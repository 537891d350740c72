package cmd

import (
	"testing"

	"github.com/orbital-labs/acgen/pkg/config"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"init", "scan", "generate", "validate", "list", "stats", "diff",
		"watch", "pick", "explore", "browse", "config", "clean", "doctor",
		"version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Errorf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil {
				t.Errorf("Command '%s' is nil", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}

	if rootCmd.Use != "acgen" {
		t.Errorf("Expected root command Use to be 'acgen', got '%s'", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Root command Short description is empty")
	}
}

// TestCommandsHaveHelp verifies all commands have help text
func TestCommandsHaveHelp(t *testing.T) {
	commands := rootCmd.Commands()

	if len(commands) == 0 {
		t.Fatal("No commands registered")
	}

	for _, cmd := range commands {
		t.Run(cmd.Name(), func(t *testing.T) {
			if cmd.Short == "" {
				t.Errorf("Command '%s' has no Short description", cmd.Name())
			}
		})
	}
}

// TestFlagsExist verifies important flags are registered
func TestFlagsExist(t *testing.T) {
	tests := []struct {
		command  string
		flagName string
	}{
		{"generate", "force"},
		{"list", "kind"},
		{"list", "namespace"},
		{"list", "sort"},
		{"stats", "html"},
		{"watch", "quiet"},
	}

	for _, tt := range tests {
		t.Run(tt.command+"_"+tt.flagName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.command})
			if err != nil {
				t.Fatalf("Command '%s' not found: %v", tt.command, err)
			}

			flag := cmd.Flags().Lookup(tt.flagName)
			if flag == nil {
				t.Errorf("Flag '--%s' not found on command '%s'", tt.flagName, tt.command)
			}
		})
	}
}

// TestCommandAliases verifies command aliases work
func TestCommandAliases(t *testing.T) {
	tests := []struct {
		alias   string
		command string
	}{
		{"gen", "generate"},
		{"v", "version"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{tt.alias})
			if err != nil {
				t.Errorf("Alias '%s' not found: %v", tt.alias, err)
			}
			if cmd == nil || cmd.Name() != tt.command {
				t.Errorf("Alias '%s' did not resolve to '%s'", tt.alias, tt.command)
			}
		})
	}
}

// TestBuildRenderers verifies per-target config options reach the renderers
func TestBuildRenderers(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Targets = []config.Target{
		{Format: "objc", Output: "Generated/GeneratedAssetSymbols.h"},
		{Format: "swift", Output: "Generated/AssetSymbols.swift", SwiftEnum: "Res"},
		{Format: "go", Output: "assetnames/names.go", GoPackage: "resnames"},
	}

	renderers := buildRenderers(cfg)
	if len(renderers) != 3 {
		t.Fatalf("Expected 3 renderers, got %d", len(renderers))
	}

	targets := make(map[string]bool)
	for _, r := range renderers {
		targets[r.Target()] = true
	}

	for _, want := range []string{"objc", "swift", "go"} {
		if !targets[want] {
			t.Errorf("Renderer for target '%s' missing", want)
		}
	}
}
