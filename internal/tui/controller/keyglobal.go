package controller

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/palette"
	"huectl/internal/tui/model"
	"huectl/pkg/logging"
)

// handleKeyMsgGlobal processes key presses outside the save input.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeHelpOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeExplore
			return m, nil
		case key.Matches(keyMsg, m.Keys.Quit):
		default:
			return m, nil
		}
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		m.CurrentAppMode = model.ModeQuitting
		m.QuittingMessage = "Bye."
		return m, tea.Quit

	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.Esc):
		m.Panel = model.PanelNone
		return m, nil

	case key.Matches(keyMsg, m.Keys.Regenerate):
		m.Regenerate()
		logging.Debug(controllerSubsystem, "Regenerated %d colors, %d locked", m.Count, len(m.Locks))
		return m, nil

	case key.Matches(keyMsg, m.Keys.Lock):
		return toggleLock(m, keyMsg.String())

	case key.Matches(keyMsg, m.Keys.Left):
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Right):
		if m.Selected < len(m.Colors)-1 {
			m.Selected++
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.MoreColors):
		if !m.SetCount(m.Count + 1) {
			return m, m.SetStatusMessage(fmt.Sprintf("At most %d colors", m.MaxCount), model.StatusBarInfo, statusDuration)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.FewerColors):
		if !m.SetCount(m.Count - 1) {
			return m, m.SetStatusMessage(fmt.Sprintf("At least %d colors", m.MinCount), model.StatusBarInfo, statusDuration)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Copy):
		hex := m.SelectedColor()
		if err := m.Clipboard(hex); err != nil {
			logging.Error(controllerSubsystem, err, "Failed to copy %s", hex)
			return m, m.SetStatusMessage("Copy failed", model.StatusBarError, statusDuration)
		}
		return m, m.SetStatusMessage(fmt.Sprintf("Copied %s", hex), model.StatusBarSuccess, statusDuration)

	case key.Matches(keyMsg, m.Keys.Harmony):
		if m.Panel == model.PanelHarmony {
			m.HarmonyIndex = (m.HarmonyIndex + 1) % len(palette.HarmonyTypes())
		} else {
			m.Panel = model.PanelHarmony
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Contrast):
		if m.Panel == model.PanelContrast {
			m.Panel = model.PanelNone
		} else {
			m.Panel = model.PanelContrast
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Save):
		if m.Store == nil {
			return m, m.SetStatusMessage("No palette store configured", model.StatusBarError, statusDuration)
		}
		m.CurrentAppMode = model.ModeSaveInput
		m.SaveInput.Reset()
		return m, m.SaveInput.Focus()

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.ShowLog = !m.ShowLog
		return m, nil
	}

	return m, nil
}

// toggleLock flips the lock on the slot named by a digit key. Digits are
// 1-based on the keyboard and 0-based in Locks.
func toggleLock(m *model.Model, digit string) (*model.Model, tea.Cmd) {
	n, err := strconv.Atoi(digit)
	if err != nil {
		return m, nil
	}
	pos := n - 1
	if pos < 0 || pos >= len(m.Colors) {
		return m, m.SetStatusMessage(fmt.Sprintf("No color at slot %d", n), model.StatusBarInfo, statusDuration)
	}

	m.Selected = pos
	if m.Locks.Toggle(pos, m.Colors[pos]) {
		return m, m.SetStatusMessage(fmt.Sprintf("Locked %s", m.Colors[pos]), model.StatusBarInfo, statusDuration)
	}
	return m, m.SetStatusMessage(fmt.Sprintf("Unlocked slot %d", n), model.StatusBarInfo, statusDuration)
}
