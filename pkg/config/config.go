package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Target configures one generated artifact
type Target struct {
	Format    string `yaml:"format"`               // "objc", "swift", "go"
	Output    string `yaml:"output"`               // Workspace-relative output path
	GoPackage string `yaml:"go_package,omitempty"` // Package clause for the go format
	SwiftEnum string `yaml:"swift_enum,omitempty"` // Container enum for the swift format
}

type Config struct {
	// Catalogs lists catalog roots relative to the workspace.
	// Empty means discover *.xcassets under the workspace root.
	Catalogs []string `yaml:"catalogs"`

	// Targets lists the artifacts `acgen generate` produces
	Targets []Target `yaml:"targets"`

	// UI Settings
	ColorTheme  string `yaml:"color_theme"`
	DefaultSort string `yaml:"default_sort"`

	// Search Settings
	MaxSearchResults int `yaml:"max_search_results"`

	// Watch Settings
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// SnippetTemplate is the code snippet copied by `acgen pick`;
	// %s is replaced with the asset name
	SnippetTemplate string `yaml:"snippet_template"`
}

// ValidFormats lists the renderer formats targets may reference
var ValidFormats = []string{"objc", "swift", "go"}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		Catalogs: []string{},
		Targets: []Target{
			{Format: "objc", Output: "Generated/GeneratedAssetSymbols.h"},
		},
		ColorTheme:       "auto",
		DefaultSort:      "name",
		MaxSearchResults: 50,
		WatchDebounceMS:  500,
		SnippetTemplate:  `UIImage(named: "%s")`,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "name"
	}
	if cfg.MaxSearchResults <= 0 {
		cfg.MaxSearchResults = 50
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}
	if cfg.SnippetTemplate == "" {
		cfg.SnippetTemplate = `UIImage(named: "%s")`
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks target formats and output paths
func (c *Config) Validate() error {
	for i, t := range c.Targets {
		if !isValidFormat(t.Format) {
			return fmt.Errorf("target %d: unknown format %q (valid: objc, swift, go)", i, t.Format)
		}
		if t.Output == "" {
			return fmt.Errorf("target %d: output path is required", i)
		}
	}

	if c.DefaultSort != "name" && c.DefaultSort != "kind" {
		return fmt.Errorf("default_sort must be \"name\" or \"kind\", got %q", c.DefaultSort)
	}

	return nil
}

func isValidFormat(format string) bool {
	for _, valid := range ValidFormats {
		if format == valid {
			return true
		}
	}
	return false
}
