// Package config loads ndarray command settings through viper.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// ProjectConfigName is the file looked up in the working directory when no
// explicit --config path is given.
const ProjectConfigName = "ndarray.toml"

// EnvPrefix prefixes environment overrides: NDARRAY_PRINT_COMPACT=true.
const EnvPrefix = "NDARRAY"

// Supported document formats.
var validFormats = []string{"toml", "yaml", "yml", "json"}

// Config is the full ndarray configuration.
type Config struct {
	Print  PrintConfig  `mapstructure:"print"`
	Log    LogConfig    `mapstructure:"log"`
	Source SourceConfig `mapstructure:"source"`
}

// PrintConfig controls how arrays are rendered.
type PrintConfig struct {
	Compact bool   `mapstructure:"compact"`
	Verb    string `mapstructure:"verb"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	JSON      bool `mapstructure:"json"`
	Verbosity int  `mapstructure:"verbosity"`
}

// SourceConfig controls how array documents are read.
type SourceConfig struct {
	// DefaultFormat is used for files whose extension names no known format.
	DefaultFormat string `mapstructure:"default_format"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("print.compact", false)
	v.SetDefault("print.verb", "%v")
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
	v.SetDefault("source.default_format", "toml")
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads configuration from path, or from ndarray.toml in the working
// directory when path is empty. A missing project file is not an error;
// a missing explicit file is.
func Load(path string) (*Config, error) {
	v := New()

	if path == "" {
		if dir, err := os.Getwd(); err == nil {
			candidate := filepath.Join(dir, ProjectConfigName)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates configuration from a prepared viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Print.Verb == "" || !strings.HasPrefix(c.Print.Verb, "%") {
		return errors.Newf("print.verb must be a fmt verb such as %%v, got %q", c.Print.Verb)
	}
	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be non-negative, got %d", c.Log.Verbosity)
	}
	if !slices.Contains(validFormats, c.Source.DefaultFormat) {
		return errors.WithHintf(
			errors.Newf("unknown source.default_format %q", c.Source.DefaultFormat),
			"supported formats: %s", strings.Join(validFormats, ", "))
	}
	return nil
}
