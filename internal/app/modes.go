package app

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"huectl/internal/config"
	"huectl/internal/palette"
	"huectl/internal/server"
	"huectl/internal/tui/controller"
	"huectl/pkg/logging"
)

// RunServer serves the color tools on the configured transport until ctx
// is cancelled or the client disconnects.
func (a *Application) RunServer(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	hc := a.config.HuectlConfig
	tools := a.services.Tools.ServerTools()
	logging.Info("Server", "Serving %d tools over %s", len(tools), hc.Server.Transport)

	ts := server.NewToolServer(hc.Server, a.config.Version, tools)
	if err := ts.Serve(ctx, stdin, stdout); err != nil {
		logging.Error("Server", err, "Tool server stopped")
		return err
	}
	logging.Info("Server", "Tool server stopped")
	return nil
}

// RunTUI runs the interactive palette explorer. gen may be nil.
func (a *Application) RunTUI(ctx context.Context, gen *palette.Generator) error {
	applyTheme(a.config.HuectlConfig.UI.Theme)

	// Log entries go to the TUI log pane while it owns the terminal.
	logChan := logging.InitForTUI(logLevel(a.config.Debug, a.config.HuectlConfig.LogLevel))

	p := controller.NewProgram(*a.config.HuectlConfig, a.services.Store, gen, a.config.Debug, logChan, tea.WithContext(ctx))
	_, err := p.Run()
	logging.CloseTUIChannel()
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Debug("TUI-Lifecycle", "TUI exited")
	return nil
}

func applyTheme(theme string) {
	switch theme {
	case config.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case config.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}
