package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"huectl/internal/app"
	"huectl/internal/cli"
)

// skipBootstrapAnnotation marks commands that must work without a valid
// configuration.
const skipBootstrapAnnotation = "huectl/skip-bootstrap"

// rootOptions carries the persistent flags and the bootstrapped
// application to every subcommand.
type rootOptions struct {
	output     string
	debug      bool
	configPath string

	app *app.Application
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "huectl",
		Short: "Parse, convert and generate colors from the terminal",
		Long: `huectl converts colors between hex, rgb() and hsl(), checks WCAG contrast,
generates palettes with locked slots, derives color harmonies and keeps
named palettes. The same operations are offered to AI assistants as MCP
tools through 'huectl serve'.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. invalid colors)
		SilenceUsage:      true,
		PersistentPreRunE: opts.bootstrap,
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", string(cli.OutputFormatTable), "Output format (table, json, yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default layers ~/.config/huectl and ./.huectl)")

	cmd.AddCommand(
		newVersionCmd(),
		newSelfUpdateCmd(opts),
		newParseCmd(opts),
		newContrastCmd(opts),
		newTextColorCmd(opts),
		newPaletteCmd(opts),
		newHarmonyCmd(opts),
		newSavedCmd(opts),
		newServeCmd(opts),
		newUICmd(opts),
	)
	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "huectl version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func (o *rootOptions) bootstrap(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipBootstrapAnnotation] == "true" || cmd.Name() == "help" {
		return nil
	}
	if _, err := cli.ParseOutputFormat(o.output); err != nil {
		return err
	}

	a, err := app.NewApplication(app.NewConfig(o.debug, o.configPath, cmd.Root().Version))
	if err != nil {
		return err
	}
	o.app = a
	return nil
}

func (o *rootOptions) printer(cmd *cobra.Command) *cli.Printer {
	// The format was validated in bootstrap.
	format, _ := cli.ParseOutputFormat(o.output)
	return cli.NewPrinter(cmd.OutOrStdout(), format)
}

func (o *rootOptions) application() (*app.Application, error) {
	if o.app == nil {
		return nil, fmt.Errorf("huectl is not initialized")
	}
	return o.app, nil
}
