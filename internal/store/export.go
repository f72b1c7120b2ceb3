package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"huectl/internal/color"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ErrUnknownFormat is returned for formats Export does not support.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSS, FormatSCSS, FormatYAML, FormatText}
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (supported: json, css, scss, yaml, text)", ErrUnknownFormat, s)
}

type exportColor struct {
	Hex string `json:"hex" yaml:"hex"`
	RGB string `json:"rgb" yaml:"rgb"`
	HSL string `json:"hsl" yaml:"hsl"`
}

type exportDocument struct {
	Name   string        `json:"name" yaml:"name"`
	Colors []exportColor `json:"colors" yaml:"colors"`
}

// Export renders p in the given format.
func Export(p Palette, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(exportDoc(p), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(exportDoc(p))
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatCSS:
		var b strings.Builder
		b.WriteString(":root {\n")
		for i, hex := range p.Colors {
			fmt.Fprintf(&b, "  --%s-%d: %s;\n", slug(p.Name), i+1, hex)
		}
		b.WriteString("}\n")
		return b.String(), nil
	case FormatSCSS:
		var b strings.Builder
		for i, hex := range p.Colors {
			fmt.Fprintf(&b, "$%s-%d: %s;\n", slug(p.Name), i+1, hex)
		}
		return b.String(), nil
	case FormatText:
		return strings.Join(p.Colors, "\n") + "\n", nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Export renders the named palette.
func (s *Store) Export(name string, format Format) (string, error) {
	p, err := s.Get(name)
	if err != nil {
		return "", err
	}
	return Export(p, format)
}

func exportDoc(p Palette) exportDocument {
	doc := exportDocument{Name: p.Name, Colors: make([]exportColor, len(p.Colors))}
	for i, hex := range p.Colors {
		info := color.Info(hex)
		doc.Colors[i] = exportColor{Hex: info.Hex, RGB: info.RGB, HSL: info.HSL}
	}
	return doc
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// slug turns a palette name into a CSS identifier fragment.
func slug(name string) string {
	s := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "palette-" + s
	}
	return strings.TrimSuffix(s, "-")
}
