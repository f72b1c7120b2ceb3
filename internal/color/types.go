package color

const (
	// White is the canonical hex for pure white.
	White = "#ffffff"
	// Black is the canonical hex for pure black.
	Black = "#000000"
)

// RGB is a color with integer channels in [0,255].
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// HSL is a color in hue/saturation/lightness form.
// H is in degrees [0,360). S and L are integer percentages in [0,100].
type HSL struct {
	H float64 `json:"h" yaml:"h"`
	S int     `json:"s" yaml:"s"`
	L int     `json:"l" yaml:"l"`
}

// ColorInfo bundles the display strings for a canonical hex color.
// It is always derived from the hex and never stored.
type ColorInfo struct {
	Hex string `json:"hex" yaml:"hex"`
	RGB string `json:"rgb" yaml:"rgb"`
	HSL string `json:"hsl" yaml:"hsl"`
}

// ContrastResult is the WCAG judgement for a pair of colors.
type ContrastResult struct {
	Ratio     string `json:"ratio" yaml:"ratio"`
	AANormal  bool   `json:"aa_normal" yaml:"aa_normal"`
	AALarge   bool   `json:"aa_large" yaml:"aa_large"`
	AAANormal bool   `json:"aaa_normal" yaml:"aaa_normal"`
	AAALarge  bool   `json:"aaa_large" yaml:"aaa_large"`
}
