// Package config loads the docmerge configuration from a config file and
// DOCMERGE_* environment variables, with validated defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config holds the settings shared by every command. The enablement flag
// exists because docstring inheritance must be a no-op unless explicitly
// turned on; the similarity ratio of zero disables near-duplicate warnings.
type Config struct {
	Dialect         string  `mapstructure:"dialect" validate:"oneof=numpy google"`
	Enabled         bool    `mapstructure:"enabled"`
	SimilarityRatio float64 `mapstructure:"similarity_ratio" validate:"gte=0,lte=1"`
	LogLevel        string  `mapstructure:"log_level"`
	LogFormat       string  `mapstructure:"log_format"`
}

var validate = validator.New()

// InitializeViper sets search paths, defaults and the environment binding.
// A missing config file is fine, everything then comes from defaults and
// the DOCMERGE_ environment.
func InitializeViper() error {
	viper.SetConfigName("docmerge")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "docmerge"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "docmerge"))
	}

	viper.SetDefault("dialect", "numpy")
	viper.SetDefault("enabled", true)
	viper.SetDefault("similarity_ratio", 0.0)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")

	viper.SetEnvPrefix("DOCMERGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	}
	return nil
}

// Load initializes viper, decodes the settings and validates them.
func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &cfg,
		// Environment values arrive as strings; decode them into the typed
		// fields the way viper's own Get* accessors would.
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(settings()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// settings merges viper's file settings with the bound environment values.
// viper.AllSettings alone does not include automatic-env keys that were
// never set elsewhere, so the known keys are read explicitly.
func settings() map[string]any {
	out := viper.AllSettings()
	for _, key := range []string{"dialect", "enabled", "similarity_ratio", "log_level", "log_format"} {
		out[key] = viper.Get(key)
	}
	return out
}
