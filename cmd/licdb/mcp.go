// ABOUTME: MCP command to start the MCP server.
// ABOUTME: Runs on stdio for integration with AI agents.

package main

import (
	"github.com/spf13/cobra"

	"github.com/hamidahoderinwale/licences-db/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long:  `Start the Model Context Protocol server exposing licence parsing, classification, and lookup tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		builder.Progress = nil // stdio carries the protocol, keep it quiet
		server := mcp.NewServer(builder)
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
