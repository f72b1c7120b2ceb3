package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content HuectlConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// isolate points every config source at tempDir and clears the environment layer.
func isolate(t *testing.T, tempDir string, env map[string]string) {
	t.Helper()

	origHome, origWd, origLookup := osUserHomeDir, osGetwd, osLookupEnv
	origUser, origProject, origDotEnv := getUserConfigPath, getProjectConfigPath, loadDotEnv
	t.Cleanup(func() {
		osUserHomeDir, osGetwd, osLookupEnv = origHome, origWd, origLookup
		getUserConfigPath, getProjectConfigPath, loadDotEnv = origUser, origProject, origDotEnv
	})

	osUserHomeDir = func() (string, error) { return tempDir, nil }
	osGetwd = func() (string, error) { return filepath.Join(tempDir, "project"), nil }
	osLookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
	loadDotEnv = func() {}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir, nil)

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(tempDir), loadedConfig)
	assert.Equal(t, filepath.Join(tempDir, defaultDataDir), loadedConfig.Store.Dir)
	assert.Equal(t, TransportStdio, loadedConfig.Server.Transport)
}

func TestLoadConfig_UserAndProjectOverride(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir, nil)

	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, HuectlConfig{
		Palette: PaletteConfig{DefaultCount: 6},
		Server:  ServerConfig{Transport: TransportSSE, Port: 9000},
		UI:      UIConfig{Theme: ThemeDark},
	})
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), configFileName, HuectlConfig{
		Server: ServerConfig{Port: 9100},
		Store:  StoreConfig{Dir: "~/palettes"},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 6, loadedConfig.Palette.DefaultCount)
	assert.Equal(t, 2, loadedConfig.Palette.MinCount, "untouched settings keep defaults")
	assert.Equal(t, TransportSSE, loadedConfig.Server.Transport)
	assert.Equal(t, 9100, loadedConfig.Server.Port, "project overrides user")
	assert.Equal(t, ThemeDark, loadedConfig.UI.Theme)
	assert.Equal(t, filepath.Join(tempDir, "palettes"), loadedConfig.Store.Dir)
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir, map[string]string{
		"HUECTL_PALETTE_COUNT":    "3",
		"HUECTL_SERVER_TRANSPORT": "streamable-http",
		"HUECTL_SERVER_PORT":      "7000",
		"HUECTL_UI_THEME":         " light ",
		"HUECTL_LOG_LEVEL":        "",
	})
	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, HuectlConfig{
		Palette: PaletteConfig{DefaultCount: 6},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, loadedConfig.Palette.DefaultCount)
	assert.Equal(t, TransportStreamableHTTP, loadedConfig.Server.Transport)
	assert.Equal(t, 7000, loadedConfig.Server.Port)
	assert.Equal(t, ThemeLight, loadedConfig.UI.Theme)
	assert.Equal(t, "info", loadedConfig.LogLevel, "empty variables are ignored")
}

func TestLoadConfig_BadEnvironmentNumber(t *testing.T) {
	isolate(t, t.TempDir(), map[string]string{"HUECTL_SERVER_PORT": "eighty"})

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HUECTL_SERVER_PORT")
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir, nil)

	dir := filepath.Join(tempDir, userConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("palette: [not, a, map"), 0644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading config")
}

func TestLoadConfigFrom(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir, nil)

	// user config must be ignored when an explicit path is given
	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, HuectlConfig{
		UI: UIConfig{Theme: ThemeDark},
	})
	explicit := createTempConfigFile(t, filepath.Join(tempDir, "elsewhere"), "huectl.yaml", HuectlConfig{
		Server: ServerConfig{Host: "0.0.0.0"},
	})

	loadedConfig, err := LoadConfigFrom(explicit)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", loadedConfig.Server.Host)
	assert.Equal(t, ThemeAuto, loadedConfig.UI.Theme)

	_, err = LoadConfigFrom(filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	tempDir := t.TempDir()
	isolate(t, tempDir, nil)
	loadDotEnv = func() {
		osLookupEnv = func(key string) (string, bool) {
			if key == "HUECTL_STORE_DIR" {
				return "/srv/palettes", true
			}
			return "", false
		}
	}

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/srv/palettes", loadedConfig.Store.Dir)
}

func TestValidate(t *testing.T) {
	valid := GetDefaultConfig("/home/test")
	require.NoError(t, Validate(valid))

	tests := []struct {
		name   string
		mutate func(*HuectlConfig)
	}{
		{"min above max", func(c *HuectlConfig) { c.Palette.MinCount = 9 }},
		{"default outside bounds", func(c *HuectlConfig) { c.Palette.DefaultCount = 12 }},
		{"zero min", func(c *HuectlConfig) { c.Palette.MinCount = 0 }},
		{"max above lockable slots", func(c *HuectlConfig) { c.Palette.MaxCount = 9 }},
		{"unknown transport", func(c *HuectlConfig) { c.Server.Transport = "websocket" }},
		{"port out of range", func(c *HuectlConfig) { c.Server.Transport = TransportSSE; c.Server.Port = 70000 }},
		{"unknown theme", func(c *HuectlConfig) { c.UI.Theme = "sepia" }},
		{"unknown log level", func(c *HuectlConfig) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestPaletteConfigClampCount(t *testing.T) {
	p := PaletteConfig{DefaultCount: 5, MinCount: 2, MaxCount: 8}
	assert.Equal(t, 5, p.ClampCount(0))
	assert.Equal(t, 2, p.ClampCount(1))
	assert.Equal(t, 2, p.ClampCount(-4))
	assert.Equal(t, 7, p.ClampCount(7))
	assert.Equal(t, 8, p.ClampCount(30))
}

func TestMergeConfigs_ZeroOverlayKeepsBase(t *testing.T) {
	base := GetDefaultConfig("/home/test")
	assert.Equal(t, base, mergeConfigs(base, HuectlConfig{}))
}
