package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"huectl/internal/config"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		transport string
		host      string
		port      int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the color tools to AI assistants over MCP",
		Long: `Starts an MCP server exposing huectl's color operations as tools.

Transports:
  stdio            (default) for assistants that launch huectl as a subprocess
  sse              Server-Sent Events at http://<host>:<port>/sse
  streamable-http  streamable HTTP at http://<host>:<port>/mcp

The saved-palette tools are offered only when a store directory is configured.
Logs are written to stderr so they never mix with the stdio protocol.`,
		Example: `  huectl serve
  huectl serve --transport streamable-http --port 8090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.application()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			err = a.UpdateConfig(func(c *config.HuectlConfig) {
				if flags.Changed("transport") {
					c.Server.Transport = transport
				}
				if flags.Changed("host") {
					c.Server.Host = host
				}
				if flags.Changed("port") {
					c.Server.Port = port
				}
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.RunServer(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", config.TransportStdio, "Transport: stdio, sse or streamable-http")
	cmd.Flags().StringVar(&host, "host", "localhost", "Listen host for HTTP transports")
	cmd.Flags().IntVar(&port, "port", 8090, "Listen port for HTTP transports")
	return cmd
}
