package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"huectl/internal/color"
	"huectl/internal/tui/design"
	"huectl/internal/tui/model"
)

// logPaneLines is how many recent log lines the log pane shows.
const logPaneLines = 8

// Render draws the whole explorer for the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return m.QuittingMessage + "\n"
	}

	sections := []string{
		renderHeader(m),
		renderStrip(m),
	}
	if panel := renderPanel(m); panel != "" {
		sections = append(sections, panel)
	}
	if m.CurrentAppMode == model.ModeSaveInput {
		sections = append(sections, design.PanelStyle.Render("Save as: "+m.SaveInput.View()))
	}
	if m.ShowLog {
		sections = append(sections, renderLog(m))
	}
	if status := renderStatusBar(m); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, renderHelp(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(m *model.Model) string {
	title := design.TitleStyle.Render(IconText(IconPalette, "huectl"))
	info := design.TextSecondaryStyle.Render(fmt.Sprintf("%d colors · %d locked", len(m.Colors), len(m.Locks)))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", info)
}

// swatchWidth splits the terminal width between the swatches. Each swatch
// carries a one-cell border on both sides.
func swatchWidth(m *model.Model) int {
	if m.Width <= 0 || len(m.Colors) == 0 {
		return design.SwatchMinWidth
	}
	w := m.Width/len(m.Colors) - 2
	if w < design.SwatchMinWidth {
		return design.SwatchMinWidth
	}
	return w
}

func renderStrip(m *model.Model) string {
	width := swatchWidth(m)
	swatches := make([]string, len(m.Colors))
	for i, hex := range m.Colors {
		marker := fmt.Sprintf("%d", i+1)
		if _, ok := m.Locks[i]; ok {
			marker = IconText(IconLock, marker)
		}
		label := Fit(hex, width) + "\n" + Fit(marker, width)
		style := design.SwatchStyle(hex, color.TextColorForBackground(hex), width, i == m.Selected)
		swatches[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, swatches...)
}

func renderPanel(m *model.Model) string {
	switch m.Panel {
	case model.PanelHarmony:
		return renderHarmony(m)
	case model.PanelContrast:
		return renderContrast(m)
	default:
		return ""
	}
}

func renderHarmony(m *model.Model) string {
	h := m.SelectedHarmony()
	chips := make([]string, len(h.Colors))
	for i, hex := range h.Colors {
		chips[i] = chip(hex)
	}
	title := design.TitleStyle.Render(h.Label)
	hint := design.TextSecondaryStyle.Render("h: next harmony")
	return design.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, " ", hint),
		strings.Join(chips, " "),
	))
}

func renderContrast(m *model.Model) string {
	hex := m.SelectedColor()
	lines := []string{design.TitleStyle.Render("Contrast of " + hex)}
	for _, against := range []string{color.White, color.Black} {
		res := color.CheckContrast(hex, against)
		lines = append(lines, fmt.Sprintf("%s %6s:1  AA %s  AA large %s  AAA %s  AAA large %s",
			chip(against), res.Ratio,
			verdict(res.AANormal), verdict(res.AALarge), verdict(res.AAANormal), verdict(res.AAALarge),
		))
	}
	lines = append(lines, design.TextSecondaryStyle.Render("text on this color: "+color.TextColorForBackground(hex)))
	return design.PanelStyle.Render(strings.Join(lines, "\n"))
}

func renderLog(m *model.Model) string {
	lines := m.ActivityLog
	if len(lines) > logPaneLines {
		lines = lines[len(lines)-logPaneLines:]
	}
	width := m.Width - 4
	body := make([]string, len(lines))
	for i, line := range lines {
		if width > 0 {
			line = Fit(line, width)
		}
		body[i] = line
	}
	if len(body) == 0 {
		body = []string{design.TextSecondaryStyle.Render("no log entries")}
	}
	return design.PanelStyle.Render(strings.Join(body, "\n"))
}

func renderStatusBar(m *model.Model) string {
	if m.StatusBarMessage == "" {
		return ""
	}
	switch m.StatusBarMessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle.Render(IconText(IconCheck, m.StatusBarMessage))
	case model.StatusBarError:
		return design.StatusBarErrorStyle.Render(IconText(IconWarning, m.StatusBarMessage))
	default:
		return design.StatusBarInfoStyle.Render(m.StatusBarMessage)
	}
}

func renderHelp(m *model.Model) string {
	if m.CurrentAppMode == model.ModeHelpOverlay {
		return design.PanelStyle.Render(m.Help.FullHelpView(m.Keys.FullHelp()))
	}
	return m.Help.ShortHelpView(m.Keys.ShortHelp())
}

// chip is a compact inline swatch.
func chip(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(color.TextColorForBackground(hex))).
		Padding(0, 1).
		Render(hex)
}

func verdict(pass bool) string {
	if pass {
		return design.TextSuccessStyle.Render(IconCheck)
	}
	return design.TextErrorStyle.Render(IconCross)
}
