package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"huectl/internal/config"
	"huectl/internal/store"
	"huectl/pkg/logging"
)

// ErrNoStore is returned by operations that need saved palettes when no
// store directory is configured.
var ErrNoStore = errors.New("no palette store configured (set store.dir or HUECTL_STORE_DIR)")

// Application is the main application structure that bootstraps huectl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration, sets up CLI logging on stderr and
// initializes the shared services.
func NewApplication(cfg *Config) (*Application, error) {
	return newApplication(cfg, os.Stderr)
}

func newApplication(cfg *Config, logOutput io.Writer) (*Application, error) {
	// Log to stderr until the configured level is known.
	logging.InitForCLI(logLevel(cfg.Debug, ""), logOutput)

	var hc config.HuectlConfig
	var err error
	if cfg.ConfigPath != "" {
		hc, err = config.LoadConfigFrom(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load huectl configuration from %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from %s", cfg.ConfigPath)
	} else {
		hc, err = config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load huectl configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded layered configuration")
	}
	cfg.HuectlConfig = &hc

	logging.InitForCLI(logLevel(cfg.Debug, hc.LogLevel), logOutput)

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Config returns the loaded configuration.
func (a *Application) Config() config.HuectlConfig {
	return *a.config.HuectlConfig
}

// UpdateConfig applies command-line overrides and validates the result.
func (a *Application) UpdateConfig(fn func(*config.HuectlConfig)) error {
	updated := *a.config.HuectlConfig
	fn(&updated)
	if err := config.Validate(updated); err != nil {
		return err
	}
	*a.config.HuectlConfig = updated
	return nil
}

// Services returns the shared collaborators.
func (a *Application) Services() *Services {
	return a.services
}

// Store returns the palette store or ErrNoStore.
func (a *Application) Store() (*store.Store, error) {
	if a.services.Store == nil {
		return nil, ErrNoStore
	}
	return a.services.Store, nil
}

func logLevel(debug bool, configured string) logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	if configured == "" {
		return logging.LevelInfo
	}
	level, err := logging.ParseLevel(configured)
	if err != nil {
		logging.Warn("Bootstrap", "Ignoring log level: %v", err)
	}
	return level
}
