package store

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sunset = Palette{Name: "Warm Sunset!", Colors: []string{"#ff7675", "#fdcb6e"}}

func TestExportCSS(t *testing.T) {
	out, err := Export(sunset, FormatCSS)
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --warm-sunset-1: #ff7675;\n  --warm-sunset-2: #fdcb6e;\n}\n", out)
}

func TestExportSCSS(t *testing.T) {
	out, err := Export(sunset, FormatSCSS)
	require.NoError(t, err)
	assert.Equal(t, "$warm-sunset-1: #ff7675;\n$warm-sunset-2: #fdcb6e;\n", out)
}

func TestExportText(t *testing.T) {
	out, err := Export(sunset, FormatText)
	require.NoError(t, err)
	assert.Equal(t, "#ff7675\n#fdcb6e\n", out)
}

func TestExportJSON(t *testing.T) {
	out, err := Export(sunset, FormatJSON)
	require.NoError(t, err)

	var doc exportDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Warm Sunset!", doc.Name)
	require.Len(t, doc.Colors, 2)
	assert.Equal(t, exportColor{Hex: "#ff7675", RGB: "rgb(255, 118, 117)", HSL: "hsl(0, 100%, 73%)"}, doc.Colors[0])
}

func TestExportYAML(t *testing.T) {
	out, err := Export(sunset, FormatYAML)
	require.NoError(t, err)

	var doc exportDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "#fdcb6e", doc.Colors[1].Hex)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := Export(sunset, Format("pdf"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSS ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSS, f)

	_, err = ParseFormat("ase")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "warm-sunset", slug("Warm Sunset!"))
	assert.Equal(t, "palette-80s", slug("80s"))
	assert.Equal(t, "palette", slug("!!!"))
}

func TestStoreExport(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	_, err = s.Save("mono", []string{"#000", "#fff"})
	require.NoError(t, err)

	out, err := s.Export("MONO", FormatText)
	require.NoError(t, err)
	assert.Equal(t, "#000000\n#ffffff\n", out)

	_, err = s.Export("missing", FormatText)
	assert.ErrorIs(t, err, ErrNotFound)
}
