package design

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	SpaceXS = 1

	// Swatch dimensions
	SwatchMinWidth = 10
	SwatchHeight   = 5
)

// Color palette for the chrome around the swatches. The swatches
// themselves are painted with the generated colors.
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, SpaceXS)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceXS)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(lipgloss.Color("#FFFFFF"))

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(lipgloss.Color("#FFFFFF"))

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(lipgloss.Color("#FFFFFF"))
)

// SwatchStyle paints a block in bg with readable fg text. The selected
// swatch gets a focus border.
func SwatchStyle(bg, fg string, width int, selected bool) lipgloss.Style {
	border := lipgloss.HiddenBorder()
	borderColor := lipgloss.TerminalColor(ColorBorder)
	if selected {
		border = lipgloss.ThickBorder()
		borderColor = ColorBorderFocus
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Width(width).
		Height(SwatchHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Border(border).
		BorderForeground(borderColor)
}
