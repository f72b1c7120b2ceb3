package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"huectl/internal/palette"
)

func newUICmd(opts *rootOptions) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		Short:   "Explore palettes interactively",
		Long: `Opens the interactive palette explorer.

  space    regenerate          1-8   toggle lock on a slot
  ←/→      select a color      +/-   more or fewer colors
  y        copy selected hex   h     cycle harmonies
  c        contrast panel      s     save palette
  L        toggle log pane     ?     help
  q        quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.application()
			if err != nil {
				return err
			}

			var gen *palette.Generator
			if cmd.Flags().Changed("seed") {
				gen = palette.NewSeededGenerator(seed)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return a.RunTUI(ctx, gen)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible palettes")
	return cmd
}
