package controller

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/tui/model"
)

// handleKeyMsgInputMode feeds keys to the palette name input.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		m.SaveInput.Blur()
		m.SaveInput.Reset()
		m.CurrentAppMode = model.ModeExplore
		return m, nil

	case key.Matches(keyMsg, m.Keys.Enter):
		name := strings.TrimSpace(m.SaveInput.Value())
		if name == "" {
			return m, m.SetStatusMessage("Name cannot be empty", model.StatusBarError, statusDuration)
		}
		m.SaveInput.Blur()
		m.SaveInput.Reset()
		m.CurrentAppMode = model.ModeExplore
		return m, savePaletteCmd(m, name)

	case keyMsg.Type == tea.KeyCtrlC:
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.SaveInput, cmd = m.SaveInput.Update(keyMsg)
	return m, cmd
}
