package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Icon constants
const (
	IconLock    = "🔒" // U+1F512
	IconCheck   = "✔" // U+2714
	IconCross   = "✘" // U+2718
	IconPalette = "🎨" // U+1F3A8
	IconWarning = "⚠" // U+26A0 without VS16
)

// SafeIcon pads an icon so that wide glyphs do not swallow the next cell.
func SafeIcon(icon string) string {
	spaces := 1
	if runewidth.StringWidth(icon) >= 2 {
		spaces = 2
	}
	return fmt.Sprintf("%s%s", icon, strings.Repeat(" ", spaces))
}

// IconText formats an icon with text, handling spacing properly
func IconText(icon string, text string) string {
	return SafeIcon(icon) + text
}

// Fit truncates s to width cells, adding an ellipsis when it is cut, and
// pads it on the right to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
