package controller

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/tui/model"
	"huectl/pkg/logging"
)

const (
	controllerSubsystem = "Controller"
	statusDuration      = 3 * time.Second
)

// Update routes a message to its handler and returns the updated model.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.DebugMode {
			logging.Debug(controllerSubsystem, "key %q in mode %s", msg.String(), m.CurrentAppMode)
		}
		if m.CurrentAppMode == model.ModeSaveInput {
			return handleKeyMsgInputMode(m, msg)
		}
		return handleKeyMsgGlobal(m, msg)

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.String())
		return m, model.ListenForLogEntriesCmd(m.LogChannel)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarMessageType = model.StatusBarInfo
		return m, nil

	case model.PaletteSavedMsg:
		if msg.Err != nil {
			logging.Error(controllerSubsystem, msg.Err, "Failed to save palette")
			return m, m.SetStatusMessage(fmt.Sprintf("Save failed: %v", msg.Err), model.StatusBarError, statusDuration)
		}
		logging.Info(controllerSubsystem, "Saved palette %q (%d colors)", msg.Palette.Name, len(msg.Palette.Colors))
		return m, m.SetStatusMessage(fmt.Sprintf("Saved %q", msg.Palette.Name), model.StatusBarSuccess, statusDuration)
	}

	if m.CurrentAppMode == model.ModeSaveInput {
		var cmd tea.Cmd
		m.SaveInput, cmd = m.SaveInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// savePaletteCmd writes the current colors to the store off the UI loop.
func savePaletteCmd(m *model.Model, name string) tea.Cmd {
	st := m.Store
	colors := append([]string(nil), m.Colors...)
	return func() tea.Msg {
		p, err := st.Save(name, colors)
		return model.PaletteSavedMsg{Palette: p, Err: err}
	}
}
