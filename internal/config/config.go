// Copyright (c) 2026 Wondertext Team
// Wondertext - text utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists the Wondertext configuration. Viper
// merges defaults, the YAML config file, WONDERTEXT_* environment variables
// and bound command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the persisted application configuration.
type Config struct {
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Language string `mapstructure:"language" yaml:"language"`
	Storage  struct {
		Slot string `mapstructure:"slot" yaml:"slot"`
	} `mapstructure:"storage" yaml:"storage"`
	Speech struct {
		// Command is the TTS program plus leading arguments, e.g. "espeak-ng -v en-us".
		// Empty means auto-detect.
		Command string `mapstructure:"command" yaml:"command"`
		Rate    int    `mapstructure:"rate" yaml:"rate"`
	} `mapstructure:"speech" yaml:"speech"`
	Editor struct {
		ReadingWPM int  `mapstructure:"reading_wpm" yaml:"reading_wpm"`
		Preview    bool `mapstructure:"preview" yaml:"preview"`
	} `mapstructure:"editor" yaml:"editor"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"database.type":      "sqlite",
		"database.dsn":       "./wondertext.db",
		"language":           "en",
		"storage.slot":       "savedText",
		"speech.command":     "",
		"speech.rate":        0,
		"editor.reading_wpm": 200,
		"editor.preview":     true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Wondertext")
		default:
			configDir = "/etc/wondertext"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "wondertext")
	}

	return filepath.Join(configDir, "wondertext.yaml"), nil
}

// LoadConfig resolves a configuration of type T. Precedence from low to
// high: defaults, config file, environment, flags of cmd. A missing config
// file is reported as viper.ConfigFileNotFoundError together with the
// resolved configuration so callers can decide to write a default file.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("wondertext")
	v.SetConfigType("yaml")

	// An explicit --config path wins over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix("wondertext")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(path, c)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](path string, c *T) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
