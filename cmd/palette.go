package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"huectl/internal/color"
	"huectl/internal/palette"
	"huectl/pkg/logging"
)

func newPaletteCmd(opts *rootOptions) *cobra.Command {
	var (
		count int
		locks []string
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a palette of harmonious colors",
		Long: `Generates a palette by stepping the hue by the golden ratio from a random
start, with randomized saturation and lightness. Locked slots keep their
color. The count is clamped to the configured bounds (2 to 8 by default).`,
		Example: `  huectl palette
  huectl palette --count 6 --lock 0=#6c5ce7 --lock 3=#00cec9
  huectl palette --seed 42 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.application()
			if err != nil {
				return err
			}
			limits := a.Config().Palette
			n := limits.ClampCount(count)
			if count != 0 && n != count {
				logging.Warn("Palette", "Count %d clamped to %d", count, n)
			}

			locked, err := palette.ParseLockSpecs(locks, n)
			if err != nil {
				return err
			}

			gen := palette.NewGenerator(nil)
			if cmd.Flags().Changed("seed") {
				gen = palette.NewSeededGenerator(seed)
			}
			return opts.printer(cmd).PrintPalette(gen.Generate(n, locked), locked)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of colors (default from config)")
	cmd.Flags().StringArrayVar(&locks, "lock", nil, "Keep a color at a 0-based position, as position=color (repeatable)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible palette")
	return cmd
}

func newHarmonyCmd(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "harmony <color>",
		Short: "Derive color harmonies from a base color",
		Long: fmt.Sprintf(`Rotates the hue of a base color to build its harmonies while keeping its
saturation and lightness. Supported harmonies: %s.`, harmonyNames()),
		Example: `  huectl harmony '#6c5ce7'
  huectl harmony '#6c5ce7' --type triadic -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := color.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}

			harmonies := palette.Harmonies(base)
			if kind != "" {
				h, ok := palette.HarmonyByType(base, palette.HarmonyType(strings.ToLower(kind)))
				if !ok {
					return fmt.Errorf("unknown harmony %q (supported: %s)", kind, harmonyNames())
				}
				harmonies = []palette.Harmony{h}
			}
			return opts.printer(cmd).PrintHarmonies(base, harmonies)
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "Only show one harmony")
	return cmd
}

func harmonyNames() string {
	types := palette.HarmonyTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
