// Package palette generates multi-color palettes and hue harmonies.
//
// Generated palettes step the hue by the golden ratio conjugate so that
// any prefix of a palette is spread evenly around the color wheel.
// Locked positions are passed through untouched and do not consume a hue
// step, so regenerating with the same locks keeps those slots stable while
// the rest reshuffle.
//
// Randomness is injected through Source. Production code uses NewGenerator(nil),
// tests and reproducible tool calls use NewSeededGenerator.
//
// Harmonies derives the five fixed hue relationships (complementary,
// analogous, triadic, split-complementary and tetradic) from a base color.
package palette
