package view

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"

	"huectl/internal/config"
	"huectl/internal/palette"
	"huectl/internal/tui/model"
)

func newRenderModel() *model.Model {
	m := model.InitializeModel(config.GetDefaultConfig(""), nil, palette.NewSeededGenerator(7), false, nil)
	m.Width = 100
	m.Height = 30
	return m
}

func TestRenderModes(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(m *model.Model)
		contains []string
		excludes []string
	}{
		{
			name:     "explore shows every swatch and short help",
			setup:    func(m *model.Model) {},
			contains: []string{"huectl", "5 colors", "regenerate"},
			excludes: []string{"Save as:"},
		},
		{
			name: "locked slot is marked",
			setup: func(m *model.Model) {
				m.Locks[2] = m.Colors[2]
			},
			contains: []string{IconLock, "1 locked"},
		},
		{
			name: "harmony panel",
			setup: func(m *model.Model) {
				m.Panel = model.PanelHarmony
				m.HarmonyIndex = 2
			},
			contains: []string{"Triadic", "h: next harmony"},
		},
		{
			name: "contrast panel",
			setup: func(m *model.Model) {
				m.Panel = model.PanelContrast
			},
			contains: []string{"Contrast of ", "#ffffff", "#000000", "text on this color"},
		},
		{
			name: "save input",
			setup: func(m *model.Model) {
				m.CurrentAppMode = model.ModeSaveInput
			},
			contains: []string{"Save as:"},
		},
		{
			name: "help overlay",
			setup: func(m *model.Model) {
				m.CurrentAppMode = model.ModeHelpOverlay
			},
			contains: []string{"cycle harmony", "toggle log", "fewer colors"},
		},
		{
			name: "log pane",
			setup: func(m *model.Model) {
				m.ShowLog = true
				model.AddRawLineToActivityLog(m, "12:00:00 INFO  [Test] first")
			},
			contains: []string{"[Test] first"},
		},
		{
			name: "empty log pane",
			setup: func(m *model.Model) {
				m.ShowLog = true
			},
			contains: []string{"no log entries"},
		},
		{
			name: "status bar",
			setup: func(m *model.Model) {
				m.StatusBarMessage = "Copied #123456"
				m.StatusBarMessageType = model.StatusBarSuccess
			},
			contains: []string{"Copied #123456"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newRenderModel()
			tt.setup(m)
			out := Render(m)
			for _, hex := range m.Colors {
				assert.Contains(t, out, hex)
			}
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderQuitting(t *testing.T) {
	m := newRenderModel()
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Bye."
	assert.Equal(t, "Bye.\n", Render(m))
}

func TestSwatchWidth(t *testing.T) {
	m := newRenderModel()

	m.Width = 0
	assert.Equal(t, 10, swatchWidth(m))

	m.Width = 120
	assert.Equal(t, 22, swatchWidth(m))

	m.Width = 30
	assert.Equal(t, 10, swatchWidth(m), "never narrower than the minimum")
}

func TestFit(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcdef", 4, "abc…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Fit(tt.in, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, runewidth.StringWidth(got))
		})
	}
}

func TestSafeIcon(t *testing.T) {
	assert.Equal(t, "✔ ", SafeIcon(IconCheck))
	assert.Equal(t, IconPalette+"  huectl", IconText(IconPalette, "huectl"))
}
