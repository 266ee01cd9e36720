package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tschaub/stac-validator/schema"
)

type schemaURLInput struct {
	Version   string `json:"version"             jsonschema:"STAC spec version, e.g. 1.0.0"`
	Type      string `json:"type,omitempty"      jsonschema:"Document type: item, catalog, or collection"`
	Extension string `json:"extension,omitempty" jsonschema:"Extension name or URL; used instead of type when set"`
}

type schemaURLOutput struct {
	Address string `json:"address"`
}

func handleSchemaURL(_ context.Context, _ *mcp.CallToolRequest, input schemaURLInput) (*mcp.CallToolResult, schemaURLOutput, error) {
	if input.Version == "" {
		return errResult(errors.New("version is required")), schemaURLOutput{}, nil
	}

	var locator schema.Locator
	if input.Extension != "" {
		return nil, schemaURLOutput{
			Address: locator.ResolveExtension(input.Version, input.Extension),
		}, nil
	}
	addr, err := locator.Resolve(input.Version, input.Type)
	if err != nil {
		return errResult(err), schemaURLOutput{}, nil
	}
	return nil, schemaURLOutput{Address: addr}, nil
}
