// Package color provides the color math used throughout huectl.
//
// This package converts between the three representations huectl works
// with, parses loosely formatted color text into canonical hex, and
// evaluates WCAG contrast. Everything here is a pure function over value
// types: there is no I/O, no logging and no shared state.
//
// # Representations
//
// The package works with three forms of the same color:
//   - RGB: integer channels in [0,255]
//   - HSL: hue in degrees [0,360), saturation and lightness as integer percentages
//   - Canonical hex: "#rrggbb", lowercase, always six digits
//
// Canonical hex is the interchange form between packages. Palettes,
// harmonies and the palette store all hold plain hex strings.
//
// # Parsing
//
// Parse accepts:
//   - Hex with or without '#', 3 or 6 digits ("6CE", "#6c5ce7")
//   - rgb(r, g, b) with channels clamped to 255
//   - hsl(h, s%, l%) with the '%' optional, h clamped to 360, s and l to 100
//
// Any other input fails with a *ParseError whose message lists the
// accepted formats.
//
// # Contrast
//
// RelativeLuminance and ContrastRatio implement the WCAG 2.0 definitions
// (including the 0.03928 linearization threshold). CheckContrast grades a
// pair of colors against the AA and AAA thresholds.
//
// # Usage Example
//
//	hex, err := color.Parse("rgb(108, 92, 231)")
//	if err != nil {
//	    return err
//	}
//	info := color.Info(hex)          // {#6c5ce7 rgb(108, 92, 231) hsl(247, 74%, 63%)}
//	text := color.TextColorForBackground(hex)
//	result := color.CheckContrast(text, hex)
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package color
