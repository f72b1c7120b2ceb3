package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"huectl/internal/cli"
	"huectl/internal/color"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <color>",
		Short: "Parse a color and show it as hex, rgb and hsl",
		Long: `Parses a color written as hex (#6c5ce7, 6c5ce7, #6ce), rgb(108, 92, 231)
or hsl(247, 74%, 63%) and prints its canonical forms, relative luminance
and the readable text color on top of it. Out-of-range rgb and hsl
components are clamped.`,
		Example: `  huectl parse '#6c5ce7'
  huectl parse rgb(108, 92, 231) -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := color.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return opts.printer(cmd).PrintColor(cli.NewColorReport(hex))
		},
	}
}

func newContrastCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast of two colors",
		Long: `Computes the WCAG 2.x contrast ratio of two colors and reports whether it
meets AA and AAA for normal and large text.`,
		Example: `  huectl contrast '#ffffff' '#6c5ce7'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := color.Parse(args[0])
			if err != nil {
				return err
			}
			bg, err := color.Parse(args[1])
			if err != nil {
				return err
			}
			return opts.printer(cmd).PrintContrast(cli.ContrastReport{
				Foreground:     fg,
				Background:     bg,
				ContrastResult: color.CheckContrast(fg, bg),
			})
		},
	}
}

func newTextColorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "text-color <background>",
		Short: "Pick black or white text for a background",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := color.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return opts.printer(cmd).PrintTextColor(cli.NewTextColorReport(bg))
		},
	}
}
