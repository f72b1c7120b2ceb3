// Package tools exposes huectl's color operations as MCP tools.
//
// Every tool returns its result as indented JSON text content. Invalid
// arguments and parse failures are reported as tool error results
// (IsError=true) so MCP clients can show them to the user; the handlers
// only return a Go error for conditions the protocol layer must see.
//
// Tool Categories:
//
//   - Color: color_parse, color_info, color_contrast, color_text_for_background
//   - Palette: palette_generate, palette_harmonies
//   - Saved palettes (only with a configured store): palette_save,
//     palette_list, palette_export
//
// Example:
//
//	{
//	  "method": "tools/call",
//	  "params": {
//	    "name": "palette_generate",
//	    "arguments": {"count": 5, "locked": {"0": "#6c5ce7"}}
//	  }
//	}
//
// Response:
//
//	{
//	  "colors": ["#6c5ce7", "#e3a34f", "#4fb8e3", "#c04fe3", "#4fe37a"],
//	  "count": 5
//	}
package tools
