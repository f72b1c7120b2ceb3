package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huectl/internal/color"
)

// fixedSource always returns the same draw.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// countingSource records how many draws were taken.
type countingSource struct {
	draws int
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return 0.25
}

func TestGenerateWithFixedSource(t *testing.T) {
	g := NewGenerator(fixedSource(0.5))

	// start hue 180, S=70, L=58, then golden-ratio steps
	got := g.Generate(4, nil)
	assert.Equal(t, []string{"#dfb349", "#8749df", "#49df5c", "#df4962"}, got)
}

func TestGenerateLockedSlotsDoNotAdvanceHue(t *testing.T) {
	g := NewGenerator(fixedSource(0.5))

	got := g.Generate(4, Locks{1: "#00cec9"})
	assert.Equal(t, []string{"#dfb349", "#00cec9", "#8749df", "#49df5c"}, got)
}

func TestGenerateLockedSlotsDoNotDrawRandomness(t *testing.T) {
	src := &countingSource{}
	g := NewGenerator(src)

	g.Generate(5, Locks{0: "#6c5ce7", 2: "#00cec9"})
	// one start hue, then saturation and lightness for each generated slot
	assert.Equal(t, 1+2*3, src.draws)
}

func TestGeneratePreservesLocks(t *testing.T) {
	g := NewGenerator(nil)
	locks := Locks{0: "#6c5ce7", 2: "#00cec9"}

	for i := 0; i < 20; i++ {
		got := g.Generate(5, locks)
		require.Len(t, got, 5)
		assert.Equal(t, "#6c5ce7", got[0])
		assert.Equal(t, "#00cec9", got[2])
		for _, hex := range got {
			assert.True(t, color.IsCanonical(hex), "%q is not canonical hex", hex)
		}
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a := NewSeededGenerator(42).Generate(8, nil)
	b := NewSeededGenerator(42).Generate(8, nil)
	assert.Equal(t, a, b)

	c := NewSeededGenerator(43).Generate(8, nil)
	assert.NotEqual(t, a, c)
}

func TestGenerateLockedPrefixShiftsSequence(t *testing.T) {
	plain := NewSeededGenerator(7).Generate(3, nil)
	locked := NewSeededGenerator(7).Generate(4, Locks{0: "#000000"})

	assert.Equal(t, "#000000", locked[0])
	assert.Equal(t, plain, locked[1:])
}

func TestGenerateRanges(t *testing.T) {
	g := NewSeededGenerator(1)
	for i := 0; i < 50; i++ {
		for _, hex := range g.Generate(MaxCount, nil) {
			hsl := color.HexToHSL(hex)
			// re-deriving HSL from hex drifts by at most a point
			assert.GreaterOrEqual(t, hsl.S, minSaturation-2, "saturation of %s", hex)
			assert.LessOrEqual(t, hsl.S, minSaturation+saturationRange+2, "saturation of %s", hex)
			assert.GreaterOrEqual(t, hsl.L, minLightness-1, "lightness of %s", hex)
			assert.LessOrEqual(t, hsl.L, minLightness+lightnessRange+1, "lightness of %s", hex)
		}
	}
}

func TestGenerateEdgeCounts(t *testing.T) {
	g := NewGenerator(nil)
	assert.Empty(t, g.Generate(0, nil))
	assert.Empty(t, g.Generate(-3, nil))
	assert.Len(t, g.Generate(1, nil), 1)
	assert.Len(t, g.Generate(20, nil), 20)
}
