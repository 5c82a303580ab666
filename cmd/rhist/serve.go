package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/repohist/repohist-go/internal/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve repository queries to MCP clients over stdio",
	Long: `Run RepoHist as a Model Context Protocol server on stdin/stdout, so
agents and editors can query repository history through tools instead
of shelling out to git themselves.

The server exposes one tool per query (get_status, get_file_history,
get_related_files, ...). All logging goes to stderr; stdout carries
only the protocol stream.

Example client configuration:
  {"command": "rhist", "args": ["serve"], "cwd": "/path/to/repo"}`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, err := openService(ctx)
	if err != nil {
		return err
	}

	server := mcp.NewServer(service, Version)
	return server.Run(ctx)
}
