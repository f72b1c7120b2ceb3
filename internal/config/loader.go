package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"huectl/internal/palette"
	"huectl/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/huectl"
	projectConfigDir = ".huectl"
	configFileName   = "config.yaml"
	envFileName      = ".env"
	envPrefix        = "HUECTL_"
)

// LoadConfig loads the huectl configuration by layering default, user,
// project and environment settings.
func LoadConfig() (HuectlConfig, error) {
	return load("")
}

// LoadConfigFrom loads defaults, then the file at path, then the
// environment. User and project files are skipped.
func LoadConfigFrom(path string) (HuectlConfig, error) {
	return load(path)
}

func load(explicitPath string) (HuectlConfig, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		logging.Warn("Config", "Could not determine home directory: %v", err)
		homeDir = ""
	}
	config := GetDefaultConfig(homeDir)

	var paths []string
	if explicitPath != "" {
		paths = []string{explicitPath}
	} else {
		if p, err := getUserConfigPath(); err != nil {
			logging.Warn("Config", "Could not determine user config path: %v", err)
		} else {
			paths = append(paths, p)
		}
		if p, err := getProjectConfigPath(); err != nil {
			logging.Warn("Config", "Could not determine project config path: %v", err)
		} else {
			paths = append(paths, p)
		}
	}

	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			if p == explicitPath {
				return HuectlConfig{}, fmt.Errorf("config file %s does not exist", p)
			}
			continue
		}
		overlay, err := loadConfigFromFile(p)
		if err != nil {
			return HuectlConfig{}, fmt.Errorf("error loading config from %s: %w", p, err)
		}
		logging.Debug("Config", "Loaded configuration layer %s", p)
		config = mergeConfigs(config, overlay)
	}

	loadDotEnv()
	config, err = applyEnv(config)
	if err != nil {
		return HuectlConfig{}, err
	}

	config.Store.Dir = expandHome(config.Store.Dir, homeDir)
	if err := Validate(config); err != nil {
		return HuectlConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadDotEnv reads ./.env without overriding variables already set.
var loadDotEnv = func() {
	wd, err := osGetwd()
	if err != nil {
		return
	}
	path := filepath.Join(wd, envFileName)
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		logging.Warn("Config", "Ignoring unreadable %s: %v", path, err)
	}
}

// loadConfigFromFile loads a HuectlConfig from a YAML file.
func loadConfigFromFile(filePath string) (HuectlConfig, error) {
	var config HuectlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return HuectlConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return HuectlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
// Zero values in overlay leave base untouched.
func mergeConfigs(base, overlay HuectlConfig) HuectlConfig {
	merged := base

	if overlay.Palette.DefaultCount != 0 {
		merged.Palette.DefaultCount = overlay.Palette.DefaultCount
	}
	if overlay.Palette.MinCount != 0 {
		merged.Palette.MinCount = overlay.Palette.MinCount
	}
	if overlay.Palette.MaxCount != 0 {
		merged.Palette.MaxCount = overlay.Palette.MaxCount
	}

	if overlay.Server.Transport != "" {
		merged.Server.Transport = overlay.Server.Transport
	}
	if overlay.Server.Host != "" {
		merged.Server.Host = overlay.Server.Host
	}
	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}

	if overlay.Store.Dir != "" {
		merged.Store.Dir = overlay.Store.Dir
	}
	if overlay.UI.Theme != "" {
		merged.UI.Theme = overlay.UI.Theme
	}
	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}

	return merged
}

func applyEnv(config HuectlConfig) (HuectlConfig, error) {
	overlay := HuectlConfig{}

	if v, ok := lookupEnv("PALETTE_COUNT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return HuectlConfig{}, fmt.Errorf("%sPALETTE_COUNT: %w", envPrefix, err)
		}
		overlay.Palette.DefaultCount = n
	}
	if v, ok := lookupEnv("SERVER_PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return HuectlConfig{}, fmt.Errorf("%sSERVER_PORT: %w", envPrefix, err)
		}
		overlay.Server.Port = n
	}
	overlay.Server.Transport, _ = lookupEnv("SERVER_TRANSPORT")
	overlay.Server.Host, _ = lookupEnv("SERVER_HOST")
	overlay.Store.Dir, _ = lookupEnv("STORE_DIR")
	overlay.UI.Theme, _ = lookupEnv("UI_THEME")
	overlay.LogLevel, _ = lookupEnv("LOG_LEVEL")

	return mergeConfigs(config, overlay), nil
}

func lookupEnv(name string) (string, bool) {
	v, ok := osLookupEnv(envPrefix + name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func expandHome(path, homeDir string) string {
	if homeDir == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

// Validate reports settings no component can work with.
func Validate(config HuectlConfig) error {
	p := config.Palette
	if p.MinCount < 1 || p.MaxCount < p.MinCount {
		return fmt.Errorf("palette count bounds [%d,%d] are invalid", p.MinCount, p.MaxCount)
	}
	// the TUI binds one lock key per slot, 1 through 8
	if p.MaxCount > palette.MaxCount {
		return fmt.Errorf("palette maxCount %d exceeds %d", p.MaxCount, palette.MaxCount)
	}
	if p.DefaultCount < p.MinCount || p.DefaultCount > p.MaxCount {
		return fmt.Errorf("palette defaultCount %d is outside [%d,%d]", p.DefaultCount, p.MinCount, p.MaxCount)
	}

	switch config.Server.Transport {
	case TransportStdio, TransportSSE, TransportStreamableHTTP:
	default:
		return fmt.Errorf("unknown server transport %q", config.Server.Transport)
	}
	if config.Server.Transport != TransportStdio && (config.Server.Port <= 0 || config.Server.Port > 65535) {
		return fmt.Errorf("server port %d is out of range", config.Server.Port)
	}

	switch config.UI.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("unknown ui theme %q", config.UI.Theme)
	}

	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return err
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// ClampCount bounds a requested palette size by the configured limits.
// Zero selects the configured default.
func (p PaletteConfig) ClampCount(n int) int {
	switch {
	case n == 0:
		return p.DefaultCount
	case n < p.MinCount:
		return p.MinCount
	case n > p.MaxCount:
		return p.MaxCount
	default:
		return n
	}
}
