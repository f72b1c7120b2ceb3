package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"huectl/internal/color"
	"huectl/internal/config"
	"huectl/internal/palette"
	"huectl/internal/store"
	"huectl/pkg/logging"
)

// ColorTools implements the MCP tools over the color core.
type ColorTools struct {
	limits config.PaletteConfig
	store  *store.Store
	// newGenerator returns a seeded generator when seed is non-nil.
	newGenerator func(seed *uint64) *palette.Generator
}

// NewColorTools creates the tool set. store may be nil, in which case the
// saved-palette tools are not offered.
func NewColorTools(limits config.PaletteConfig, st *store.Store) *ColorTools {
	return &ColorTools{
		limits: limits,
		store:  st,
		newGenerator: func(seed *uint64) *palette.Generator {
			if seed != nil {
				return palette.NewSeededGenerator(*seed)
			}
			return palette.NewGenerator(nil)
		},
	}
}

// ServerTools pairs every tool definition with its handler.
func (ct *ColorTools) ServerTools() []server.ServerTool {
	tools := []server.ServerTool{
		{Tool: ct.colorParseTool(), Handler: ct.HandleColorParse},
		{Tool: ct.colorInfoTool(), Handler: ct.HandleColorInfo},
		{Tool: ct.colorContrastTool(), Handler: ct.HandleColorContrast},
		{Tool: ct.textColorTool(), Handler: ct.HandleTextColorForBackground},
		{Tool: ct.paletteGenerateTool(), Handler: ct.HandlePaletteGenerate},
		{Tool: ct.paletteHarmoniesTool(), Handler: ct.HandlePaletteHarmonies},
	}
	if ct.store != nil {
		tools = append(tools,
			server.ServerTool{Tool: ct.paletteSaveTool(), Handler: ct.HandlePaletteSave},
			server.ServerTool{Tool: ct.paletteListTool(), Handler: ct.HandlePaletteList},
			server.ServerTool{Tool: ct.paletteExportTool(), Handler: ct.HandlePaletteExport},
		)
	}
	return tools
}

// GetTools returns the tool definitions only.
func (ct *ColorTools) GetTools() []mcp.Tool {
	serverTools := ct.ServerTools()
	tools := make([]mcp.Tool, len(serverTools))
	for i, st := range serverTools {
		tools[i] = st.Tool
	}
	return tools
}

// Color Tools
func (ct *ColorTools) colorParseTool() mcp.Tool {
	return mcp.NewTool("color_parse",
		mcp.WithDescription("Normalize a color written as hex (#6c5ce7, 6ce), rgb(r, g, b) or hsl(h, s%, l%) into canonical hex, RGB and HSL strings"),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Color text, e.g. #6c5ce7, rgb(108, 92, 231) or hsl(247, 74%, 63%)"),
		),
	)
}

func (ct *ColorTools) colorInfoTool() mcp.Tool {
	return mcp.NewTool("color_info",
		mcp.WithDescription("Describe a color: hex, RGB and HSL values, relative luminance and the readable text color on it"),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Color text in hex, rgb() or hsl() form"),
		),
	)
}

func (ct *ColorTools) colorContrastTool() mcp.Tool {
	return mcp.NewTool("color_contrast",
		mcp.WithDescription("Compute the WCAG contrast ratio between two colors and grade it against AA and AAA"),
		mcp.WithString("foreground",
			mcp.Required(),
			mcp.Description("Text color"),
		),
		mcp.WithString("background",
			mcp.Required(),
			mcp.Description("Background color"),
		),
	)
}

func (ct *ColorTools) textColorTool() mcp.Tool {
	return mcp.NewTool("color_text_for_background",
		mcp.WithDescription("Pick black or white text, whichever is more readable on the given background"),
		mcp.WithString("background",
			mcp.Required(),
			mcp.Description("Background color"),
		),
	)
}

// Palette Tools
func (ct *ColorTools) paletteGenerateTool() mcp.Tool {
	return mcp.NewTool("palette_generate",
		mcp.WithDescription("Generate a palette of evenly spread hues. Locked positions are kept as given"),
		mcp.WithNumber("count",
			mcp.Description(fmt.Sprintf("Number of colors (%d-%d, default %d)", ct.limits.MinCount, ct.limits.MaxCount, ct.limits.DefaultCount)),
			mcp.Min(float64(ct.limits.MinCount)),
			mcp.Max(float64(ct.limits.MaxCount)),
		),
		mcp.WithObject("locked",
			mcp.Description(`Colors to keep, keyed by 0-based position, e.g. {"0": "#6c5ce7"}`),
		),
		mcp.WithNumber("seed",
			mcp.Description("Optional non-negative integer seed for a reproducible palette"),
		),
	)
}

func (ct *ColorTools) paletteHarmoniesTool() mcp.Tool {
	return mcp.NewTool("palette_harmonies",
		mcp.WithDescription("Derive complementary, analogous, triadic, split-complementary and tetradic harmonies from a base color"),
		mcp.WithString("color",
			mcp.Required(),
			mcp.Description("Base color"),
		),
	)
}

// Saved Palette Tools
func (ct *ColorTools) paletteSaveTool() mcp.Tool {
	return mcp.NewTool("palette_save",
		mcp.WithDescription("Save a palette under a name, replacing any palette with the same name"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Palette name"),
		),
		mcp.WithArray("colors",
			mcp.Required(),
			mcp.Description("Colors in hex, rgb() or hsl() form"),
			mcp.Items(map[string]interface{}{"type": "string"}),
		),
	)
}

func (ct *ColorTools) paletteListTool() mcp.Tool {
	return mcp.NewTool("palette_list",
		mcp.WithDescription("List saved palettes"),
	)
}

func (ct *ColorTools) paletteExportTool() mcp.Tool {
	formats := make([]string, 0, len(store.Formats()))
	for _, f := range store.Formats() {
		formats = append(formats, string(f))
	}
	return mcp.NewTool("palette_export",
		mcp.WithDescription("Export a saved palette as JSON, CSS variables, SCSS variables, YAML or plain hex lines"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Palette name or ID"),
		),
		mcp.WithString("format",
			mcp.Description("Export format (default css)"),
			mcp.Enum(formats...),
		),
	)
}

// HandleColorParse handles the color_parse tool call
func (ct *ColorTools) HandleColorParse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireColor(req, "color")
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(color.Info(hex))
}

// colorDetails is the color_info payload.
type colorDetails struct {
	color.ColorInfo
	Values struct {
		RGB color.RGB `json:"rgb"`
		HSL color.HSL `json:"hsl"`
	} `json:"values"`
	Luminance float64 `json:"luminance"`
	TextColor string  `json:"text_color"`
}

// HandleColorInfo handles the color_info tool call
func (ct *ColorTools) HandleColorInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireColor(req, "color")
	if errResult != nil {
		return errResult, nil
	}

	rgb := color.HexToRGB(hex)
	details := colorDetails{
		ColorInfo: color.Info(hex),
		Luminance: color.RelativeLuminance(rgb),
		TextColor: color.TextColorForBackground(hex),
	}
	details.Values.RGB = rgb
	details.Values.HSL = color.RGBToHSL(rgb)
	return jsonResult(details)
}

// HandleColorContrast handles the color_contrast tool call
func (ct *ColorTools) HandleColorContrast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fg, errResult := requireColor(req, "foreground")
	if errResult != nil {
		return errResult, nil
	}
	bg, errResult := requireColor(req, "background")
	if errResult != nil {
		return errResult, nil
	}

	return jsonResult(struct {
		Foreground string `json:"foreground"`
		Background string `json:"background"`
		color.ContrastResult
	}{fg, bg, color.CheckContrast(fg, bg)})
}

// HandleTextColorForBackground handles the color_text_for_background tool call
func (ct *ColorTools) HandleTextColorForBackground(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bg, errResult := requireColor(req, "background")
	if errResult != nil {
		return errResult, nil
	}

	text := color.TextColorForBackground(bg)
	ratio := color.ContrastRatio(color.HexToRGB(text), color.HexToRGB(bg))
	return jsonResult(map[string]interface{}{
		"background": bg,
		"text":       text,
		"ratio":      fmt.Sprintf("%.2f", ratio),
	})
}

// HandlePaletteGenerate handles the palette_generate tool call
func (ct *ColorTools) HandlePaletteGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	count := ct.limits.ClampCount(req.GetInt("count", 0))

	rawLocks := map[string]string{}
	if v, ok := args["locked"]; ok && v != nil {
		obj, ok := v.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("locked must be an object mapping positions to colors"), nil
		}
		for k, c := range obj {
			s, ok := c.(string)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("locked[%q] must be a color string", k)), nil
			}
			rawLocks[k] = s
		}
	}
	locks, err := palette.ParseLocks(rawLocks, count)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var seed *uint64
	if v, ok := args["seed"]; ok && v != nil {
		f, ok := v.(float64)
		if !ok || f < 0 || f != float64(uint64(f)) {
			return mcp.NewToolResultError("seed must be a non-negative integer"), nil
		}
		s := uint64(f)
		seed = &s
	}

	colors := ct.newGenerator(seed).Generate(count, locks)
	logging.Debug("Tools", "Generated %d-color palette with %d locks", count, len(locks))
	return jsonResult(map[string]interface{}{
		"colors": colors,
		"count":  len(colors),
	})
}

// HandlePaletteHarmonies handles the palette_harmonies tool call
func (ct *ColorTools) HandlePaletteHarmonies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireColor(req, "color")
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(map[string]interface{}{
		"base":      hex,
		"harmonies": palette.Harmonies(hex),
	})
}

// HandlePaletteSave handles the palette_save tool call
func (ct *ColorTools) HandlePaletteSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if ct.store == nil {
		return mcp.NewToolResultError("palette store is not configured"), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	rawColors, ok := req.GetArguments()["colors"].([]interface{})
	if !ok {
		return mcp.NewToolResultError("colors must be an array of color strings"), nil
	}
	colors := make([]string, len(rawColors))
	for i, c := range rawColors {
		s, ok := c.(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("colors[%d] must be a string", i)), nil
		}
		colors[i] = s
	}

	saved, err := ct.store.Save(name, colors)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save palette: %v", err)), nil
	}
	logging.Info("Tools", "Saved palette %q", saved.Name)
	return jsonResult(saved)
}

// HandlePaletteList handles the palette_list tool call
func (ct *ColorTools) HandlePaletteList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if ct.store == nil {
		return mcp.NewToolResultError("palette store is not configured"), nil
	}
	palettes, err := ct.store.List()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list palettes: %v", err)), nil
	}
	return jsonResult(map[string]interface{}{
		"palettes": palettes,
		"total":    len(palettes),
	})
}

// HandlePaletteExport handles the palette_export tool call
func (ct *ColorTools) HandlePaletteExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if ct.store == nil {
		return mcp.NewToolResultError("palette store is not configured"), nil
	}
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	format, err := store.ParseFormat(req.GetString("format", string(store.FormatCSS)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := ct.store.Export(name, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to export palette: %v", err)), nil
	}
	return mcp.NewToolResultText(out), nil
}

// requireColor reads and parses a required color argument. A non-nil
// result is the error to hand back to the client.
func requireColor(req mcp.CallToolRequest, name string) (string, *mcp.CallToolResult) {
	text, err := req.RequireString(name)
	if err != nil || strings.TrimSpace(text) == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s is required", name))
	}
	hex, err := color.Parse(text)
	if err != nil {
		return "", mcp.NewToolResultError(err.Error())
	}
	return hex, nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	resultJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(resultJSON)),
		},
	}, nil
}
