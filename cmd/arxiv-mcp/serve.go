// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-mcp/internal/server"
	"github.com/pdiddy/arxiv-mcp/internal/tools"
)

const serverName = "arxiv-mcp"

var serveCmd = &cobra.Command{
	Use:   "serve [stdio|http]",
	Short: "Run the MCP server",
	Long: `Serve exposes the arXiv tools over MCP. The stdio transport (default)
speaks JSON-RPC on stdin/stdout for a local client. The http transport serves
the stateless streamable HTTP endpoint at server.path, plus /healthz and
/metrics, on server.host:server.port (default 0.0.0.0:8000).`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"stdio", "http"},
	RunE:      runServe,
}

func init() {
	serveCmd.Flags().String("host", "", "HTTP listen host (default 0.0.0.0)")
	serveCmd.Flags().Int("port", 0, "HTTP listen port (default 8000)")
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	transport := "stdio"
	if len(args) == 1 {
		transport = args[0]
	}

	ctx, stop := commandContext(cmd)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.close()

	mcpServer := tools.NewServer(serverName, version, a.handler)

	switch transport {
	case "stdio":
		return server.RunStdio(ctx, mcpServer, a.logger)
	case "http":
		return server.NewHTTP(a.cfg.Server, mcpServer, a.registry, a.logger).ListenAndServe(ctx)
	default:
		return fmt.Errorf("unknown transport %q (valid: stdio, http)", transport)
	}
}

// commandContext returns a context cancelled on interrupt.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}
