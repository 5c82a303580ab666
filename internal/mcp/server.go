// Package mcp exposes the repository operations as tools over the Model
// Context Protocol's stdio transport. Every failure from the service
// layer is converted into a descriptive tool error attached to the
// specific request; nothing is retried automatically.
package mcp

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/repohist/repohist-go/internal/logging"
	"github.com/repohist/repohist-go/internal/repo"
)

const serverName = "repohist"

// Server serves repository history and authorship tools to one MCP
// client over stdio.
type Server struct {
	server  *mcp.Server
	service *repo.Service
	logger  *slog.Logger
}

// NewServer wires every tool onto a fresh MCP server backed by service.
func NewServer(service *repo.Service, version string) *Server {
	s := &Server{
		service: service,
		logger:  logging.ForComponent("mcp"),
	}
	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)
	s.registerTools()
	return s
}

// Run serves requests over stdio until the client disconnects or ctx is
// cancelled. Stdout belongs to the transport; all logging goes to
// stderr.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving over stdio",
		"server", serverName,
		"root", s.service.Root())
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// instrument logs one tool invocation under a correlation id and returns
// the completion callback.
func (s *Server) instrument(tool string) func(error) {
	id := uuid.NewString()
	start := time.Now()
	s.logger.Debug("tool call", "tool", tool, "call_id", id)

	return func(err error) {
		elapsed := time.Since(start).Milliseconds()
		if err != nil {
			s.logger.Warn("tool call failed",
				"tool", tool,
				"call_id", id,
				"duration_ms", elapsed,
				"error", err)
			return
		}
		s.logger.Debug("tool call done",
			"tool", tool,
			"call_id", id,
			"duration_ms", elapsed)
	}
}
