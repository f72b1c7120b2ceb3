package color

import (
	"fmt"
	"math"
)

// WCAG 2.x thresholds.
const (
	AANormalThreshold  = 4.5
	AALargeThreshold   = 3.0
	AAANormalThreshold = 7.0
	AAALargeThreshold  = 4.5
)

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
func RelativeLuminance(c RGB) float64 {
	r := linearize(clampChannel(c.R))
	g := linearize(clampChannel(c.G))
	b := linearize(clampChannel(c.B))
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize uses the 0.03928 threshold from the WCAG 2.0 text.
func linearize(channel int) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1,21].
// It is symmetric in its arguments.
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// CheckContrast grades two canonical hex colors against the AA and AAA
// thresholds. Verdicts use the unrounded ratio.
func CheckContrast(hex1, hex2 string) ContrastResult {
	ratio := ContrastRatio(HexToRGB(hex1), HexToRGB(hex2))
	return ContrastResult{
		Ratio:     fmt.Sprintf("%.2f", ratio),
		AANormal:  ratio >= AANormalThreshold,
		AALarge:   ratio >= AALargeThreshold,
		AAANormal: ratio >= AAANormalThreshold,
		AAALarge:  ratio >= AAALargeThreshold,
	}
}

// TextColorForBackground picks white or black text, whichever contrasts
// more with the background. White wins only when strictly better.
func TextColorForBackground(hex string) string {
	bg := HexToRGB(hex)
	white := ContrastRatio(RGB{255, 255, 255}, bg)
	black := ContrastRatio(RGB{0, 0, 0}, bg)
	if white > black {
		return White
	}
	return Black
}
