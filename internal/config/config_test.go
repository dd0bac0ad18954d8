package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultCategories, cfg.Categories)
	assert.Len(t, cfg.Categories, 11)
	assert.Equal(t, ".clj", cfg.Extension)
	assert.Equal(t, CollisionError, cfg.OnCollision)
	assert.Equal(t, 1, cfg.Jobs)
	assert.NoError(t, cfg.Validate())

	cfg.Categories[0] = "changed"
	assert.Equal(t, "agendas", DefaultCategories[0])
}

func TestGetConfigFilePath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, filepath.Join("/tmp/xdg", "cardsplit", "config.toml"), GetConfigFilePath())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `categories = ["ice", "programs"]
output_dir = "out"
on_collision = "suffix"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ice", "programs"}, cfg.Categories)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, ".", cfg.InputDir)
	assert.Equal(t, CollisionSuffix, cfg.OnCollision)
	assert.Equal(t, "card-definitions", cfg.DefinitionPrefix)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`on_collision = "explode"`), 0644))

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`categories = [`), 0644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Categories = []string{"agendas"}
	cfg.Jobs = 4

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no categories", func(c *Config) { c.Categories = nil }},
		{"empty category", func(c *Config) { c.Categories = []string{""} }},
		{"category with path", func(c *Config) { c.Categories = []string{"../ice"} }},
		{"duplicate category", func(c *Config) { c.Categories = []string{"ice", "ice"} }},
		{"unknown policy", func(c *Config) { c.OnCollision = "ignore" }},
		{"zero jobs", func(c *Config) { c.Jobs = 0 }},
		{"bad delimiter", func(c *Config) { c.Delimiter = "(" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestHasCategory(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.HasCategory("icebreakers"))
	assert.False(t, cfg.HasCategory("tokens"))
}
