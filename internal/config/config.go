package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardsplit/internal/card"
	"github.com/arcanaland/cardsplit/internal/deck"
)

// Collision policies for cards whose names derive the same file name.
const (
	CollisionError     = "error"
	CollisionOverwrite = "overwrite"
	CollisionSuffix    = "suffix"
)

var ErrInvalidConfig = errors.New("invalid config")

// DefaultCategories is the category list processed when none is configured.
var DefaultCategories = []string{
	"agendas", "assets", "events", "hardware", "ice", "icebreakers",
	"identities", "operations", "programs", "resources", "upgrades",
}

// Config represents the application configuration
type Config struct {
	Categories       []string `toml:"categories"`
	InputDir         string   `toml:"input_dir"`
	OutputDir        string   `toml:"output_dir"`
	Extension        string   `toml:"extension"`
	DefinitionPrefix string   `toml:"definition_prefix"`
	Delimiter        string   `toml:"delimiter"`
	OnCollision      string   `toml:"on_collision"`
	Jobs             int      `toml:"jobs"`
}

// Default returns the built-in configuration: every category, read from and
// written to the working directory, failing on name collisions.
func Default() *Config {
	return &Config{
		Categories:       append([]string(nil), DefaultCategories...),
		InputDir:         ".",
		OutputDir:        ".",
		Extension:        deck.DefaultExtension,
		DefinitionPrefix: card.DefaultDefinitionPrefix,
		Delimiter:        deck.DefaultDelimiter,
		OnCollision:      CollisionError,
		Jobs:             1,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardsplit", "config.toml")
}

// LoadConfig loads the config file at path, or the default location when
// path is empty. A missing file yields the defaults; keys absent from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to path as TOML, creating parent directories.
func SaveConfig(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return file.Close()
}

// Validate reports the first problem found in the configuration.
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("%w: no categories configured", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Categories))
	for _, category := range c.Categories {
		if category == "" || filepath.Base(category) != category {
			return fmt.Errorf("%w: bad category name %q", ErrInvalidConfig, category)
		}
		if seen[category] {
			return fmt.Errorf("%w: category %q listed twice", ErrInvalidConfig, category)
		}
		seen[category] = true
	}

	switch c.OnCollision {
	case CollisionError, CollisionOverwrite, CollisionSuffix:
	default:
		return fmt.Errorf("%w: unknown on_collision policy %q (want %s, %s or %s)",
			ErrInvalidConfig, c.OnCollision, CollisionError, CollisionOverwrite, CollisionSuffix)
	}

	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalidConfig, c.Jobs)
	}

	if _, err := c.DelimiterRegexp(); err != nil {
		return err
	}
	return nil
}

// DelimiterRegexp compiles the block delimiter.
func (c *Config) DelimiterRegexp() (*regexp.Regexp, error) {
	delimiter := c.Delimiter
	if delimiter == "" {
		delimiter = deck.DefaultDelimiter
	}
	re, err := regexp.Compile(delimiter)
	if err != nil {
		return nil, fmt.Errorf("%w: delimiter: %v", ErrInvalidConfig, err)
	}
	return re, nil
}

// HasCategory reports whether name is one of the configured categories.
func (c *Config) HasCategory(name string) bool {
	for _, category := range c.Categories {
		if category == name {
			return true
		}
	}
	return false
}
