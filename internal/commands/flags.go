package commands

import (
	"os"
	"path/filepath"

	"github.com/deepak-shinde14/demo-editor/internal/config"
	"github.com/deepak-shinde14/demo-editor/store"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Store is opened in the Before hook and closed in the After hook
	Store *store.Store
}

// storageKey returns override when set, else the configured key.
func (f *Flags) storageKey(override string) string {
	if override != "" {
		return override
	}
	return f.Config.StorageKey
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "demo-editor", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "demo-editor")
}
