package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"huectl/internal/store"
	"huectl/pkg/logging"
)

func newSavedCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "saved",
		Aliases: []string{"palettes"},
		Short:   "Manage saved palettes",
		Long: `Saved palettes live in palettes.yaml under the configured store directory
(~/.local/share/huectl by default). Names are matched case-insensitively.`,
	}

	cmd.AddCommand(
		newSavedListCmd(opts),
		newSavedShowCmd(opts),
		newSavedSaveCmd(opts),
		newSavedDeleteCmd(opts),
		newSavedExportCmd(opts),
	)
	return cmd
}

// storeFor returns the configured store or a descriptive error.
func (o *rootOptions) storeFor() (*store.Store, error) {
	a, err := o.application()
	if err != nil {
		return nil, err
	}
	return a.Store()
}

func newSavedListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved palettes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.storeFor()
			if err != nil {
				return err
			}
			palettes, err := st.List()
			if err != nil {
				return err
			}
			return opts.printer(cmd).PrintPalettes(palettes)
		},
	}
}

func newSavedShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.storeFor()
			if err != nil {
				return err
			}
			p, err := st.Get(args[0])
			if err != nil {
				return err
			}
			return opts.printer(cmd).PrintSavedPalette(p)
		},
	}
}

func newSavedSaveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <color>...",
		Short: "Save colors under a name, replacing a palette of the same name",
		Example: `  huectl saved save brand '#6c5ce7' '#00cec9' 'rgb(253, 121, 168)'
  huectl palette -o json | jq -r '.colors[]' | xargs huectl saved save generated`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.storeFor()
			if err != nil {
				return err
			}
			p, err := st.Save(args[0], args[1:])
			if err != nil {
				return err
			}
			logging.Info("Saved", "Saved palette %q with %d colors", p.Name, len(p.Colors))
			return opts.printer(cmd).PrintSavedPalette(p)
		},
	}
}

func newSavedDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved palette",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.storeFor()
			if err != nil {
				return err
			}
			if err := st.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted palette %q\n", args[0])
			return nil
		},
	}
}

func newSavedExportCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Export a saved palette as json, css, scss, yaml or text",
		Example: `  huectl saved export brand --format css > brand.css`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := store.ParseFormat(format)
			if err != nil {
				return err
			}
			st, err := opts.storeFor()
			if err != nil {
				return err
			}
			out, err := st.Export(args[0], f)
			if err != nil {
				return err
			}
			return opts.printer(cmd).PrintRaw(out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(store.FormatCSS), "Export format (json, css, scss, yaml, text)")
	return cmd
}
