// Package config handles configuration loading and validation for the
// editor.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deepak-shinde14/demo-editor/store"
)

// Config holds the application configuration.
type Config struct {
	// StorageKey is the key the document is saved under.
	StorageKey string         `yaml:"storage_key"`
	Editor     EditorConfig   `yaml:"editor"`
	Database   DatabaseConfig `yaml:"database"`
	DataDir    string         `yaml:"-"` // set by caller, not from config file
}

// EditorConfig holds terminal editor options.
type EditorConfig struct {
	LineNumbers  bool   `yaml:"line_numbers"`
	StatusLine   *bool  `yaml:"status_line"` // nil means enabled
	Placeholder  string `yaml:"placeholder"`
	HistoryLimit int    `yaml:"history_limit"` // 0 uses the default; negative disables undo
}

// DatabaseConfig holds storage options.
type DatabaseConfig struct {
	FileName string `yaml:"file_name"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		StorageKey: store.DefaultKey,
		Editor: EditorConfig{
			Placeholder: "Start typing…",
		},
		Database: DatabaseConfig{
			FileName: store.DefaultOpenOptions().FileName,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided
// dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}
	cfg.DataDir = dataDir

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.StorageKey == "" {
		c.StorageKey = defaults.StorageKey
	}
	if c.Database.FileName == "" {
		c.Database.FileName = defaults.Database.FileName
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if strings.TrimSpace(c.StorageKey) != c.StorageKey {
		return fmt.Errorf("storage_key %q must not have surrounding whitespace", c.StorageKey)
	}

	if strings.ContainsAny(c.Database.FileName, `/\`) {
		return fmt.Errorf("database.file_name %q must be a file name, not a path", c.Database.FileName)
	}

	return nil
}

// ShowStatus reports whether the status line is enabled.
func (e EditorConfig) ShowStatus() bool {
	return e.StatusLine == nil || *e.StatusLine
}

// Marshal renders the configuration as YAML, for `config` style output.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
