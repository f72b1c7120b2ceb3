package app

import (
	"huectl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug lowers the log level to DEBUG regardless of the configured level.
	Debug bool

	// ConfigPath replaces the layered config files when set.
	ConfigPath string

	// Version is reported by the tool server and used by self-update.
	Version string

	// HuectlConfig is filled in by NewApplication.
	HuectlConfig *config.HuectlConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, configPath, version string) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		Version:    version,
	}
}
