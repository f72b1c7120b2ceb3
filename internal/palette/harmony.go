package palette

import "huectl/internal/color"

// HarmonyType identifies one of the fixed hue relationships.
type HarmonyType string

const (
	Complementary      HarmonyType = "complementary"
	Analogous          HarmonyType = "analogous"
	Triadic            HarmonyType = "triadic"
	SplitComplementary HarmonyType = "split-complementary"
	Tetradic           HarmonyType = "tetradic"
)

// Harmony is a derived set of colors sharing the base color's saturation
// and lightness.
type Harmony struct {
	Type   HarmonyType `json:"type" yaml:"type"`
	Label  string      `json:"label" yaml:"label"`
	Colors []string    `json:"colors" yaml:"colors"`
}

type harmonyShape struct {
	kind    HarmonyType
	label   string
	offsets []float64
}

// harmonyShapes is ordered; Harmonies returns results in this order.
var harmonyShapes = []harmonyShape{
	{Complementary, "Complementary", []float64{0, 180}},
	{Analogous, "Analogous", []float64{-30, 0, 30}},
	{Triadic, "Triadic", []float64{0, 120, 240}},
	{SplitComplementary, "Split Complementary", []float64{0, 150, 210}},
	{Tetradic, "Tetradic", []float64{0, 90, 180, 270}},
}

// HarmonyTypes lists the supported harmonies in output order.
func HarmonyTypes() []HarmonyType {
	types := make([]HarmonyType, len(harmonyShapes))
	for i, shape := range harmonyShapes {
		types[i] = shape.kind
	}
	return types
}

// Harmonies derives the five harmonies of a canonical hex color.
// The base member (offset 0) is hex itself, not recomputed through HSL, so
// it never drifts; every other member is rotated in HSL and converted back.
// The zero offset yields the base color itself.
func Harmonies(hex string) []Harmony {
	base := color.HexToHSL(hex)
	baseHex := color.RGBToHex(color.HexToRGB(hex))

	harmonies := make([]Harmony, 0, len(harmonyShapes))
	for _, shape := range harmonyShapes {
		colors := make([]string, len(shape.offsets))
		for i, offset := range shape.offsets {
			if offset == 0 {
				colors[i] = baseHex
				continue
			}
			colors[i] = color.HSLToHex(color.HSL{
				H: color.NormalizeHue(base.H + offset),
				S: base.S,
				L: base.L,
			})
		}
		harmonies = append(harmonies, Harmony{
			Type:   shape.kind,
			Label:  shape.label,
			Colors: colors,
		})
	}
	return harmonies
}

// HarmonyByType returns the single harmony of the given type.
func HarmonyByType(hex string, kind HarmonyType) (Harmony, bool) {
	for _, h := range Harmonies(hex) {
		if h.Type == kind {
			return h, true
		}
	}
	return Harmony{}, false
}
