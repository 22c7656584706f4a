package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.False(t, cfg.Print.Compact)
	assert.Equal(t, "%v", cfg.Print.Verb)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, 0, cfg.Log.Verbosity)
	assert.Equal(t, "toml", cfg.Source.DefaultFormat)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[print]
compact = true
verb = "%.2f"

[log]
verbosity = 2

[source]
default_format = "yaml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Print.Compact)
	assert.Equal(t, "%.2f", cfg.Print.Verb)
	assert.Equal(t, 2, cfg.Log.Verbosity)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "yaml", cfg.Source.DefaultFormat)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("NDARRAY_PRINT_COMPACT", "true")
	t.Setenv("NDARRAY_LOG_VERBOSITY", "1")

	cfg, err := LoadWithViper(New())
	require.NoError(t, err)
	assert.True(t, cfg.Print.Compact)
	assert.Equal(t, 1, cfg.Log.Verbosity)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Print:  PrintConfig{Verb: "%v"},
		Source: SourceConfig{DefaultFormat: "json"},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty verb", func(c *Config) { c.Print.Verb = "" }, true},
		{"verb without percent", func(c *Config) { c.Print.Verb = "v" }, true},
		{"negative verbosity", func(c *Config) { c.Log.Verbosity = -1 }, true},
		{"unknown format", func(c *Config) { c.Source.DefaultFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
