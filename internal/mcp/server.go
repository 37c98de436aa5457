// ABOUTME: MCP server exposing licence metadata tools to AI agents.
// ABOUTME: Runs on stdio; tools cover parsing, classification, and lookup.

package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hamidahoderinwale/licences-db/internal/dataset"
)

type Server struct {
	server  *mcp.Server
	builder *dataset.Builder
}

func NewServer(builder *dataset.Builder) *Server {
	s := &Server{builder: builder}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "licdb",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools: true,
		},
	)

	s.registerTools()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
