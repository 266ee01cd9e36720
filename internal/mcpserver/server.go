// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the STAC validator as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	stacvalidator "github.com/tschaub/stac-validator"
)

const serverInstructions = `stac-validator MCP server — validates STAC catalogs, collections, and items against the versioned STAC JSON Schemas.

Tools:
- validate — validate a STAC document by file path or URL. One mode per call: core (base schema only), custom (one supplied schema), extensions (item extension schemas), recursive (walk child and item links; -1 is unbounded), or default when no mode is set.
- schema_url — resolve the canonical schema address for a spec version and document type, or for an extension name.

Recursive validation fetches every reachable child, so point it at small catalogs or use a depth cap.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "stac-validator", Version: stacvalidator.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate a STAC catalog, collection, or item by file path or URL. Mode flags are mutually exclusive: core validates against the base schema only, custom against one supplied schema address, extensions against an item's stac_extensions schemas, recursive walks child and item links to the given depth (-1 unbounded). With no mode flag the default composition runs (core plus extensions for items). Returns one message per visited document and per-type valid/invalid tallies.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_url",
		Description: "Resolve the canonical JSON Schema address for a STAC spec version and document type (item, catalog, collection), or for an extension name. Extension names that are already URLs pass through unchanged.",
	}, handleSchemaURL)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
