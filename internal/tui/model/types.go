package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/palette"
	"huectl/internal/store"
	"huectl/internal/tui/design"
	"huectl/pkg/logging"
)

// AppMode selects which input handler and overlay are active.
type AppMode int

const (
	ModeExplore AppMode = iota
	ModeSaveInput
	ModeHelpOverlay
	ModeQuitting
)

func (m AppMode) String() string {
	switch m {
	case ModeExplore:
		return "Explore"
	case ModeSaveInput:
		return "SaveInput"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// DetailPanel is the panel shown under the palette strip.
type DetailPanel int

const (
	PanelNone DetailPanel = iota
	PanelHarmony
	PanelContrast
)

// MessageType styles the status bar.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
)

// MaxActivityLogLines bounds the in-memory log pane.
const MaxActivityLogLines = 200

// KeyMap defines the keybindings for the palette explorer.
type KeyMap struct {
	Regenerate  key.Binding
	Lock        key.Binding
	Left        key.Binding
	Right       key.Binding
	MoreColors  key.Binding
	FewerColors key.Binding
	Copy        key.Binding
	Harmony     key.Binding
	Contrast    key.Binding
	Save        key.Binding
	ToggleLog   key.Binding
	Help        key.Binding
	Enter       key.Binding
	Esc         key.Binding
	Quit        key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.Lock, k.Copy, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.Lock, k.Left, k.Right},
		{k.MoreColors, k.FewerColors, k.Copy},
		{k.Harmony, k.Contrast, k.Save, k.ToggleLog},
		{k.Help, k.Esc, k.Quit},
	}
}

// Model holds the palette explorer state.
type Model struct {
	Width  int
	Height int

	CurrentAppMode AppMode
	Panel          DetailPanel
	DebugMode      bool
	ShowLog        bool

	Colors   []string
	Locks    palette.Locks
	Selected int
	Count    int
	MinCount int
	MaxCount int

	// HarmonyIndex cycles through palette.HarmonyTypes for the selected color.
	HarmonyIndex int

	Generator *palette.Generator
	// Store is nil when no store directory is configured; saving is disabled.
	Store *store.Store
	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error

	Keys      KeyMap
	Help      help.Model
	SaveInput textinput.Model

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	ActivityLog []string
	LogChannel  <-chan logging.LogEntry

	QuittingMessage string
}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status bar once its timer fires.
type ClearStatusBarMsg struct{}

// PaletteSavedMsg reports the outcome of a store save.
type PaletteSavedMsg struct {
	Palette store.Palette
	Err     error
}

// Init implements the first half of tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, ListenForLogEntriesCmd(m.LogChannel))
}

// Regenerate draws a fresh palette, keeping locked positions.
func (m *Model) Regenerate() {
	m.Colors = m.Generator.Generate(m.Count, m.Locks)
	if m.Selected >= len(m.Colors) {
		m.Selected = len(m.Colors) - 1
	}
}

// SetCount changes the palette size within bounds and regenerates. It
// reports whether the count changed.
func (m *Model) SetCount(n int) bool {
	if n < m.MinCount || n > m.MaxCount || n == m.Count {
		return false
	}
	m.Count = n
	m.Locks.Trim(n)
	m.Regenerate()
	return true
}

// saveInputChrome is the width of the "Save as: " label plus the panel frame.
const saveInputChrome = 16

// Resize records the terminal size and fits the help bar and name input
// to it. The input never grows past what a name can hold.
func (m *Model) Resize(width, height int) {
	m.Width, m.Height = width, height
	m.Help.Width = width
	m.SaveInput.Width = max(design.SwatchMinWidth, min(store.MaxNameLength, width-saveInputChrome))
}

// SelectedColor returns the hex of the selected swatch.
func (m *Model) SelectedColor() string {
	if m.Selected < 0 || m.Selected >= len(m.Colors) {
		return ""
	}
	return m.Colors[m.Selected]
}

// SelectedHarmony returns the harmony currently shown for the selected color.
func (m *Model) SelectedHarmony() palette.Harmony {
	types := palette.HarmonyTypes()
	kind := types[m.HarmonyIndex%len(types)]
	h, _ := palette.HarmonyByType(m.SelectedColor(), kind)
	return h
}

// SetStatusMessage shows a status bar message and schedules its removal.
// A newer message cancels the pending clear of an older one.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}
	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
