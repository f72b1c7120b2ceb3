package config

// HuectlConfig is the top-level configuration structure for huectl.
type HuectlConfig struct {
	Palette  PaletteConfig `yaml:"palette"`
	Server   ServerConfig  `yaml:"server"`
	Store    StoreConfig   `yaml:"store"`
	UI       UIConfig      `yaml:"ui"`
	Update   UpdateConfig  `yaml:"update"`
	LogLevel string        `yaml:"logLevel,omitempty"`
}

// PaletteConfig bounds palette sizes requested through the front ends.
type PaletteConfig struct {
	DefaultCount int `yaml:"defaultCount,omitempty"`
	MinCount     int `yaml:"minCount,omitempty"`
	MaxCount     int `yaml:"maxCount,omitempty"`
}

const (
	// TransportStdio serves MCP over stdin/stdout.
	TransportStdio = "stdio"
	// TransportSSE is the Server-Sent Events transport.
	TransportSSE = "sse"
	// TransportStreamableHTTP is the streamable HTTP transport.
	TransportStreamableHTTP = "streamable-http"
)

// ServerConfig defines how the MCP tool server listens.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"` // stdio, sse or streamable-http
	Host      string `yaml:"host,omitempty"`      // ignored for stdio
	Port      int    `yaml:"port,omitempty"`      // ignored for stdio
}

// StoreConfig locates saved palettes. An empty Dir disables the store.
type StoreConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// Theme values for UIConfig.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// UIConfig holds TUI preferences.
type UIConfig struct {
	Theme string `yaml:"theme,omitempty"`
}

// UpdateConfig holds self-update settings.
type UpdateConfig struct {
	Repository string `yaml:"repository,omitempty"` // GitHub owner/name
}
