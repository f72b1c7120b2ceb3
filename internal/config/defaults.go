package config

import (
	"path/filepath"

	"huectl/internal/palette"
)

const defaultDataDir = ".local/share/huectl"

// GetDefaultConfig returns the configuration used when no file overrides it.
// homeDir may be empty, in which case the store stays disabled.
func GetDefaultConfig(homeDir string) HuectlConfig {
	cfg := HuectlConfig{
		Palette: PaletteConfig{
			DefaultCount: palette.DefaultCount,
			MinCount:     palette.MinCount,
			MaxCount:     palette.MaxCount,
		},
		Server: ServerConfig{
			Transport: TransportStdio,
			Host:      "localhost",
			Port:      8090,
		},
		UI: UIConfig{
			Theme: ThemeAuto,
		},
		Update: UpdateConfig{
			Repository: "huectl/huectl",
		},
		LogLevel: "info",
	}
	if homeDir != "" {
		cfg.Store.Dir = filepath.Join(homeDir, defaultDataDir)
	}
	return cfg
}
