// Package cli renders huectl results for the terminal in table, JSON or
// YAML form.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"huectl/internal/color"
	"huectl/internal/palette"
	"huectl/internal/store"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (table, json, yaml)", s)
	}
}

// Printer writes command results in the selected format.
type Printer struct {
	out    io.Writer
	format OutputFormat
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, format OutputFormat) *Printer {
	if format == "" {
		format = OutputFormatTable
	}
	return &Printer{out: out, format: format}
}

// ColorReport is the result of describing one color.
type ColorReport struct {
	color.ColorInfo `yaml:",inline"`
	Luminance       float64 `json:"luminance" yaml:"luminance"`
	TextColor       string  `json:"text_color" yaml:"text_color"`
}

// NewColorReport describes a canonical hex color.
func NewColorReport(hex string) ColorReport {
	return ColorReport{
		ColorInfo: color.Info(hex),
		Luminance: color.RelativeLuminance(color.HexToRGB(hex)),
		TextColor: color.TextColorForBackground(hex),
	}
}

// ContrastReport pairs two colors with their WCAG grading.
type ContrastReport struct {
	Foreground           string `json:"foreground" yaml:"foreground"`
	Background           string `json:"background" yaml:"background"`
	color.ContrastResult `yaml:",inline"`
}

// TextColorReport names the readable text color for a background.
type TextColorReport struct {
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
	Ratio      string `json:"ratio" yaml:"ratio"`
}

// NewTextColorReport picks the text color for a canonical background hex.
func NewTextColorReport(bg string) TextColorReport {
	text := color.TextColorForBackground(bg)
	return TextColorReport{
		Background: bg,
		Text:       text,
		Ratio:      color.CheckContrast(text, bg).Ratio,
	}
}

// PrintColor prints a color report.
func (p *Printer) PrintColor(r ColorReport) error {
	if p.format != OutputFormatTable {
		return p.encode(r)
	}
	t := p.newTable()
	t.AppendHeader(table.Row{header("swatch"), header("hex"), header("rgb"), header("hsl"), header("luminance"), header("text")})
	t.AppendRow(table.Row{Swatch(r.Hex), r.Hex, r.RGB, r.HSL, fmt.Sprintf("%.4f", r.Luminance), r.TextColor})
	return p.render(t)
}

// PrintContrast prints a contrast report.
func (p *Printer) PrintContrast(r ContrastReport) error {
	if p.format != OutputFormatTable {
		return p.encode(r)
	}
	t := p.newTable()
	t.AppendHeader(table.Row{header("foreground"), header("background"), header("ratio"), header("AA"), header("AA large"), header("AAA"), header("AAA large")})
	t.AppendRow(table.Row{
		Swatch(r.Foreground), Swatch(r.Background), r.Ratio,
		verdict(r.AANormal), verdict(r.AALarge), verdict(r.AAANormal), verdict(r.AAALarge),
	})
	return p.render(t)
}

// PrintTextColor prints a text color report.
func (p *Printer) PrintTextColor(r TextColorReport) error {
	if p.format != OutputFormatTable {
		return p.encode(r)
	}
	t := p.newTable()
	t.AppendHeader(table.Row{header("background"), header("text"), header("ratio")})
	sample := lipgloss.NewStyle().
		Background(lipgloss.Color(r.Background)).
		Foreground(lipgloss.Color(r.Text)).
		Padding(0, 1).
		Render("Sample " + r.Text)
	t.AppendRow(table.Row{Swatch(r.Background), sample, r.Ratio})
	return p.render(t)
}

// PrintPalette prints a generated palette. Locked positions are marked.
func (p *Printer) PrintPalette(colors []string, locks palette.Locks) error {
	if p.format != OutputFormatTable {
		return p.encode(map[string]interface{}{
			"colors": colors,
			"count":  len(colors),
		})
	}
	t := p.newTable()
	t.AppendHeader(table.Row{header("#"), header("swatch"), header("hex"), header("hsl"), header("locked")})
	for i, hex := range colors {
		locked := ""
		if _, ok := locks[i]; ok {
			locked = text.FgHiYellow.Sprint("locked")
		}
		t.AppendRow(table.Row{i, Swatch(hex), hex, color.FormatHSL(color.HexToHSL(hex)), locked})
	}
	return p.render(t)
}

// PrintHarmonies prints every harmony of a base color.
func (p *Printer) PrintHarmonies(base string, harmonies []palette.Harmony) error {
	if p.format != OutputFormatTable {
		return p.encode(map[string]interface{}{
			"base":      base,
			"harmonies": harmonies,
		})
	}
	t := p.newTable()
	t.AppendHeader(table.Row{header("harmony"), header("colors")})
	for _, h := range harmonies {
		swatches := make([]string, len(h.Colors))
		for i, hex := range h.Colors {
			swatches[i] = Swatch(hex)
		}
		t.AppendRow(table.Row{h.Label, strings.Join(swatches, " ")})
	}
	return p.render(t)
}

// PrintPalettes prints saved palettes.
func (p *Printer) PrintPalettes(palettes []store.Palette) error {
	if p.format != OutputFormatTable {
		return p.encode(map[string]interface{}{
			"palettes": palettes,
			"total":    len(palettes),
		})
	}
	if len(palettes) == 0 {
		_, err := fmt.Fprintln(p.out, text.FgYellow.Sprint("No saved palettes"))
		return err
	}
	t := p.newTable()
	t.AppendHeader(table.Row{header("name"), header("colors"), header("updated"), header("id")})
	for _, pal := range palettes {
		swatches := make([]string, len(pal.Colors))
		for i, hex := range pal.Colors {
			swatches[i] = Swatch(hex)
		}
		t.AppendRow(table.Row{pal.Name, strings.Join(swatches, " "), pal.UpdatedAt.Local().Format("2006-01-02 15:04"), pal.ID})
	}
	if err := p.render(t); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.out, "\n%s %v palettes\n", text.FgHiBlue.Sprint("Total:"), text.FgHiWhite.Sprint(len(palettes)))
	return err
}

// PrintSavedPalette prints one saved palette with its colors expanded.
func (p *Printer) PrintSavedPalette(pal store.Palette) error {
	if p.format != OutputFormatTable {
		return p.encode(pal)
	}
	t := p.newTable()
	t.SetTitle(pal.Name)
	t.AppendHeader(table.Row{header("#"), header("swatch"), header("hex"), header("rgb"), header("hsl")})
	for i, hex := range pal.Colors {
		info := color.Info(hex)
		t.AppendRow(table.Row{i + 1, Swatch(hex), info.Hex, info.RGB, info.HSL})
	}
	return p.render(t)
}

// PrintRaw writes text verbatim regardless of format.
func (p *Printer) PrintRaw(s string) error {
	_, err := io.WriteString(p.out, s)
	return err
}

// Swatch renders a hex color as a colored label with readable text.
func Swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(color.TextColorForBackground(hex))).
		Padding(0, 1).
		Render(hex)
}

func (p *Printer) encode(v interface{}) error {
	switch p.format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(p.out, string(data))
		return err
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = p.out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

func (p *Printer) render(t table.Writer) error {
	_, err := fmt.Fprintln(p.out, t.Render())
	return err
}

func header(s string) string {
	return text.FgHiCyan.Sprint(strings.ToUpper(s))
}

func verdict(pass bool) string {
	if pass {
		return text.FgGreen.Sprint("pass")
	}
	return text.FgRed.Sprint("fail")
}
