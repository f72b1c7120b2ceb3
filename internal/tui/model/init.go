package model

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/config"
	"huectl/internal/palette"
	"huectl/internal/store"
	"huectl/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Regenerate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "regenerate"),
		),
		Lock: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "toggle lock"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "select left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "select right"),
		),
		MoreColors: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more colors"),
		),
		FewerColors: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer colors"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy hex"),
		),
		Harmony: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "cycle harmony"),
		),
		Contrast: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contrast"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save palette"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InitializeModel builds the explorer model and draws the first palette.
// st may be nil, in which case saving is disabled. gen may be nil for the
// globally seeded generator.
func InitializeModel(cfg config.HuectlConfig, st *store.Store, gen *palette.Generator, debugMode bool, logChannel <-chan logging.LogEntry) *Model {
	if gen == nil {
		gen = palette.NewGenerator(nil)
	}

	ti := textinput.New()
	ti.Placeholder = "palette name"
	ti.CharLimit = store.MaxNameLength
	ti.Width = 40

	m := &Model{
		CurrentAppMode: ModeExplore,
		DebugMode:      debugMode,
		Locks:          palette.Locks{},
		Count:          cfg.Palette.ClampCount(cfg.Palette.DefaultCount),
		MinCount:       cfg.Palette.MinCount,
		MaxCount:       cfg.Palette.MaxCount,
		Generator:      gen,
		Store:          st,
		Clipboard:      clipboard.WriteAll,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		SaveInput:      ti,
		LogChannel:     logChannel,
	}
	m.Regenerate()
	return m
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed so the listener stops.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
