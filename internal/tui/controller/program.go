package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"huectl/internal/config"
	"huectl/internal/palette"
	"huectl/internal/store"
	"huectl/internal/tui/model"
	"huectl/internal/tui/view"
	"huectl/pkg/logging"
)

// explorer adapts the palette model to tea.Model. Resizes are applied
// here; everything else goes through Update.
type explorer struct {
	model *model.Model
}

func (e explorer) Init() tea.Cmd {
	return e.model.Init()
}

func (e explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		e.model.Resize(size.Width, size.Height)
		if e.model.DebugMode {
			logging.Debug(controllerSubsystem, "resized to %dx%d, %d swatches", size.Width, size.Height, len(e.model.Colors))
		}
		return e, nil
	}

	var cmd tea.Cmd
	e.model, cmd = Update(msg, e.model)
	return e, cmd
}

func (e explorer) View() string {
	return view.Render(e.model)
}

// NewProgram creates the Bubble Tea program for the palette explorer.
func NewProgram(
	cfg config.HuectlConfig,
	st *store.Store,
	gen *palette.Generator,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
	opts ...tea.ProgramOption,
) *tea.Program {
	m := model.InitializeModel(cfg, st, gen, debugMode, logChannel)
	return tea.NewProgram(explorer{model: m}, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
}
