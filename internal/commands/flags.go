package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/pagekit/internal/core/config"
)

const appName = "pagekit"

type Flags struct {
	LogLevel     string
	LogFile      string
	ConfigPath   string
	DataDir      string
	ProfilerPort int

	config *config.Config
}

// LoadConfig loads the config file once and caches it for later calls.
func (f *Flags) LoadConfig() (*config.Config, error) {
	if f.config != nil {
		return f.config, nil
	}

	cfg, err := config.Load(f.ConfigPath, f.DataDir)
	if err != nil {
		return nil, err
	}
	f.config = cfg
	return cfg, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName)
}

// LogFilePath returns the log file to use: the explicit flag value, or
// <data-dir>/pagekit.log.
func (f *Flags) LogFilePath() string {
	if f.LogFile != "" {
		return f.LogFile
	}
	return filepath.Join(f.DataDir, appName+".log")
}
