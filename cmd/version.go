package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version number of huectl",
		Long:        `All software has versions. This is huectl's.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipBootstrapAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "huectl version %s\n", cmd.Root().Version)
		},
	}
}
