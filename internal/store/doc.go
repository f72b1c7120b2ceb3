// Package store persists named palettes for the CLI, the TUI and the tool
// server, and renders them in export formats.
//
// Palettes are kept in a single YAML document (palettes.yaml) inside the
// configured store directory. Writes go to a temporary file that is then
// renamed over the document, so a crash never leaves a half-written file.
//
// The color core knows nothing about this package; palettes are stored as
// plain canonical hex sequences.
package store
