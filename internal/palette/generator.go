package palette

import (
	"math"
	"math/rand/v2"

	"huectl/internal/color"
)

// GoldenRatioConjugate is the fraction of the hue circle stepped between
// consecutive generated colors.
const GoldenRatioConjugate = 0.618033988749895

// Palette size bounds the front ends clamp to by default. Generate itself
// does not enforce them.
const (
	MinCount     = 2
	MaxCount     = 8
	DefaultCount = 5
)

// Saturation and lightness ranges for generated colors, in percent.
const (
	minSaturation   = 55
	saturationRange = 30
	minLightness    = 45
	lightnessRange  = 25
)

// Source supplies uniformly distributed values in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the math/rand/v2 top-level generator, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Generator produces palettes from a random source.
// A Generator built on a *rand.Rand must not be shared between goroutines.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src selects the
// process-wide source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// NewSeededGenerator returns a Generator whose output is fully determined
// by seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate returns exactly count canonical hex colors. Positions present in
// locked are emitted unchanged; all others get a freshly stepped hue with
// random saturation in [55,85] and lightness in [45,70].
func (g *Generator) Generate(count int, locked Locks) []string {
	if count <= 0 {
		return []string{}
	}

	colors := make([]string, count)
	hue := g.src.Float64() * 360
	step := 360 * GoldenRatioConjugate

	for i := 0; i < count; i++ {
		if hex, ok := locked[i]; ok {
			colors[i] = hex
			continue
		}

		hue = color.NormalizeHue(hue + step)
		colors[i] = color.HSLToHex(color.HSL{
			H: hue,
			S: int(math.Round(minSaturation + g.src.Float64()*saturationRange)),
			L: int(math.Round(minLightness + g.src.Float64()*lightnessRange)),
		})
	}

	return colors
}
