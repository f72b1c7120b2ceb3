package app

import (
	"fmt"

	"huectl/internal/store"
	"huectl/internal/tools"
	"huectl/pkg/logging"
)

// Services holds the collaborators shared by the front ends.
type Services struct {
	// Store is nil when no store directory is configured.
	Store *store.Store
	Tools *tools.ColorTools
}

// InitializeServices opens the palette store and builds the tool layer.
func InitializeServices(cfg *Config) (*Services, error) {
	hc := cfg.HuectlConfig

	var st *store.Store
	if hc.Store.Dir != "" {
		var err error
		st, err = store.New(hc.Store.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open palette store: %w", err)
		}
		logging.Debug("Bootstrap", "Palette store at %s", st.Path())
	} else {
		logging.Debug("Bootstrap", "No store directory configured; saved palettes are disabled")
	}

	return &Services{
		Store: st,
		Tools: tools.NewColorTools(hc.Palette, st),
	}, nil
}
