package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"huectl/internal/color"
	"huectl/internal/palette"
	"huectl/internal/store"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"table", OutputFormatTable, false},
		{"JSON", OutputFormatJSON, false},
		{" yaml ", OutputFormatYAML, false},
		{"", OutputFormatTable, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestPrintColorJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).PrintColor(NewColorReport("#1a1a2e")))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "#1a1a2e", got["hex"])
	assert.Equal(t, "rgb(26, 26, 46)", got["rgb"])
	assert.Equal(t, "#ffffff", got["text_color"])
}

func TestPrintColorYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatYAML).PrintColor(NewColorReport("#6c5ce7")))

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "#6c5ce7", got["hex"])
	assert.Equal(t, "hsl(247, 74%, 63%)", got["hsl"])
}

func TestPrintColorTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).PrintColor(NewColorReport("#6c5ce7")))

	out := buf.String()
	assert.Contains(t, out, "#6c5ce7")
	assert.Contains(t, out, "rgb(108, 92, 231)")
	assert.Contains(t, out, "HEX")
}

func TestPrintContrast(t *testing.T) {
	report := ContrastReport{
		Foreground:     "#ffffff",
		Background:     "#000000",
		ContrastResult: color.CheckContrast("#ffffff", "#000000"),
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).PrintContrast(report))
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "21.00", got["ratio"])
	assert.Equal(t, true, got["aaa_normal"])

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatYAML).PrintContrast(report))
	var gotYAML map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &gotYAML))
	assert.Equal(t, "21.00", gotYAML["ratio"])
	assert.Equal(t, true, gotYAML["aa_large"])

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).PrintContrast(report))
	assert.Contains(t, buf.String(), "21.00")
	assert.Contains(t, buf.String(), "pass")
}

func TestPrintPalette(t *testing.T) {
	colors := []string{"#6c5ce7", "#00cec9"}
	locks := palette.Locks{0: "#6c5ce7"}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).PrintPalette(colors, locks))
	assert.Contains(t, buf.String(), "#00cec9")
	assert.Contains(t, buf.String(), "locked")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).PrintPalette(colors, locks))
	var got struct {
		Colors []string `json:"colors"`
		Count  int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, colors, got.Colors)
	assert.Equal(t, 2, got.Count)
}

func TestPrintHarmonies(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).PrintHarmonies("#6c5ce7", palette.Harmonies("#6c5ce7")))
	out := buf.String()
	for _, label := range []string{"Complementary", "Analogous", "Triadic", "Split Complementary", "Tetradic"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "#d6e65b")
}

func TestPrintPalettes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).PrintPalettes(nil))
	assert.Contains(t, buf.String(), "No saved palettes")

	palettes := []store.Palette{{ID: "id-1", Name: "Brand", Colors: []string{"#6c5ce7"}, UpdatedAt: time.Now()}}
	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).PrintPalettes(palettes))
	assert.Contains(t, buf.String(), "Brand")
	assert.Contains(t, buf.String(), "Total:")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).PrintPalettes(palettes))
	assert.Contains(t, buf.String(), `"total": 1`)
}

func TestSwatchContainsHex(t *testing.T) {
	assert.Contains(t, Swatch("#6c5ce7"), "#6c5ce7")
}

func TestPrintTextColor(t *testing.T) {
	r := NewTextColorReport("#1a1a2e")
	assert.Equal(t, "#ffffff", r.Text)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON).PrintTextColor(r))
	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "#1a1a2e", got["background"])
	assert.Equal(t, "#ffffff", got["text"])
	assert.Equal(t, r.Ratio, got["ratio"])

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).PrintTextColor(r))
	assert.Contains(t, buf.String(), "Sample #ffffff")
}

func TestPrintSavedPalette(t *testing.T) {
	pal := store.Palette{ID: "id-1", Name: "Brand", Colors: []string{"#6c5ce7", "#00cec9"}}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable).PrintSavedPalette(pal))
	assert.Contains(t, buf.String(), "Brand")
	assert.Contains(t, buf.String(), "rgb(0, 206, 201)")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatYAML).PrintSavedPalette(pal))
	var got store.Palette
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, pal.Colors, got.Colors)
	assert.Equal(t, "Brand", got.Name)
}
