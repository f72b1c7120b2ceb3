package color

import (
	"fmt"
	"math"
	"strconv"
)

// NormalizeHue wraps any hue into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative value plus 360 can land on 360 exactly
	if h >= 360 {
		h = 0
	}
	return h
}

// HSLToRGB converts an HSL color to RGB. Channels are rounded once, at the end.
func HSLToRGB(c HSL) RGB {
	h := NormalizeHue(c.H)
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// RGBToHSL converts an RGB color to HSL with an integral hue.
// Achromatic colors yield hue 0 and saturation 0.
func RGBToHSL(c RGB) HSL {
	r := float64(clampChannel(c.R)) / 255
	g := float64(clampChannel(c.G)) / 255
	b := float64(clampChannel(c.B)) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: int(math.Round(l * 100))}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{
		H: NormalizeHue(math.Round(h * 60)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// RGBToHex formats an RGB color as canonical hex.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// HexToRGB decodes a canonical hex color. The leading '#' is optional.
// Malformed digits decode as 0 for the affected channel; callers are
// expected to pass the output of Parse or RGBToHex.
func HexToRGB(hex string) RGB {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return RGB{}
	}
	return RGB{
		R: hexByte(hex[0:2]),
		G: hexByte(hex[2:4]),
		B: hexByte(hex[4:6]),
	}
}

// HexToHSL decodes a canonical hex color into HSL.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToHex converts an HSL color into canonical hex.
func HSLToHex(c HSL) string {
	return RGBToHex(HSLToRGB(c))
}

// FormatRGB renders "rgb(r, g, b)".
func FormatRGB(c RGB) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FormatHSL renders "hsl(h, s%, l%)".
func FormatHSL(c HSL) string {
	return fmt.Sprintf("hsl(%s, %d%%, %d%%)", strconv.FormatFloat(c.H, 'f', -1, 64), c.S, c.L)
}

// Info returns the display bundle for a canonical hex color.
func Info(hex string) ColorInfo {
	rgb := HexToRGB(hex)
	return ColorInfo{
		Hex: RGBToHex(rgb),
		RGB: FormatRGB(rgb),
		HSL: FormatHSL(RGBToHSL(rgb)),
	}
}

func toChannel(v float64) int {
	return clampChannel(int(math.Round(v * 255)))
}

func clampChannel(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return v
	}
}

func hexByte(s string) int {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}
