// ABOUTME: MCP tools for identifier parsing, FSF classification, and lookup.
// ABOUTME: Maps the CLI functionality to the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hamidahoderinwale/licences-db/internal/fsf"
	"github.com/hamidahoderinwale/licences-db/internal/spdx"
)

func (s *Server) registerTools() {
	// parse_identifier
	s.server.AddTool(&mcp.Tool{
		Name:        "parse_identifier",
		Description: "Decompose an SPDX short identifier into family, version, and version modifier",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"identifier": {"type": "string", "description": "SPDX short identifier, e.g. GPL-3.0-or-later"}
			},
			"required": ["identifier"]
		}`),
	}, s.handleParseIdentifier)

	// classify_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "classify_tags",
		Description: "Derive a GPL-compatibility label from FSF metadata tags",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"tags": {"type": "array", "items": {"type": "string"}, "description": "FSF tags, e.g. gpl-2-compatible, libre"}
			},
			"required": ["tags"]
		}`),
	}, s.handleClassifyTags)

	// get_license
	s.server.AddTool(&mcp.Tool{
		Name:        "get_license",
		Description: "Fetch the full dataset row for one licence, including FSF classification and page markdown",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "SPDX identifier, e.g. Apache-2.0"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetLicense)

	// list_licenses
	s.server.AddTool(&mcp.Tool{
		Name:        "list_licenses",
		Description: "List SPDX licences, optionally filtered by family",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"family": {"type": "string", "description": "Filter by licence family, e.g. GPL"},
				"limit": {"type": "integer", "description": "Max results", "default": 50}
			}
		}`),
	}, s.handleListLicenses)
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func (s *Server) handleParseIdentifier(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Identifier string `json:"identifier"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Identifier) == "" {
		return errorResult("identifier cannot be empty"), nil
	}

	parsed := spdx.Parse(params.Identifier)
	out := map[string]any{
		"family":   parsed.Family,
		"version":  nil,
		"modifier": nil,
	}
	if parsed.Version != "" {
		out["version"] = parsed.Version
	}
	if parsed.Modifier != spdx.ModifierNone {
		out["modifier"] = string(parsed.Modifier)
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleClassifyTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	return textResult(fsf.Classify(params.Tags)), nil
}

func (s *Server) handleGetLicense(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	row, err := s.builder.Lookup(ctx, params.ID)
	if err != nil {
		return errorResult("failed to get license: %v", err), nil
	}

	data, _ := json.MarshalIndent(row, "", "  ")
	return textResult(string(data)), nil
}

func (s *Server) handleListLicenses(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Family string `json:"family"`
		Limit  int    `json:"limit"`
	}
	params.Limit = 50 // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	entries, err := s.builder.Licenses(ctx)
	if err != nil {
		return errorResult("failed to list licenses: %v", err), nil
	}

	type item struct {
		ID     string `json:"spdx_id"`
		Name   string `json:"name"`
		Family string `json:"family"`
	}
	var items []item
	for _, entry := range entries {
		family := spdx.Parse(entry.LicenseID).Family
		if params.Family != "" && !strings.EqualFold(family, params.Family) {
			continue
		}
		items = append(items, item{ID: entry.LicenseID, Name: entry.Name, Family: family})
		if len(items) >= params.Limit {
			break
		}
	}

	data, _ := json.MarshalIndent(items, "", "  ")
	return textResult(string(data)), nil
}
