package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tschaub/stac-validator/validator"
)

type validateInput struct {
	Ref        string `json:"ref"                  jsonschema:"File path or URL of the STAC document to validate"`
	Core       bool   `json:"core,omitempty"       jsonschema:"Validate against the core schema only"`
	Custom     string `json:"custom,omitempty"     jsonschema:"Validate against this schema address instead of a resolved one"`
	Extensions bool   `json:"extensions,omitempty" jsonschema:"Validate an item against its stac_extensions schemas"`
	Recursive  *int   `json:"recursive,omitempty"  jsonschema:"Walk child and item links to this depth; -1 is unbounded"`
	Links      bool   `json:"links,omitempty"      jsonschema:"Report link reachability"`
	Assets     bool   `json:"assets,omitempty"     jsonschema:"Report asset reachability"`
}

type validateOutput struct {
	Valid    bool                `json:"valid"`
	Messages []validator.Message `json:"messages"`
	Status   validator.Status    `json:"status"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	if input.Ref == "" {
		return errResult(errors.New("ref is required")), validateOutput{}, nil
	}

	opts := []validator.Option{
		validator.WithLinks(input.Links),
		validator.WithAssets(input.Assets),
	}
	if input.Core {
		opts = append(opts, validator.WithCoreValidation())
	}
	if input.Custom != "" {
		opts = append(opts, validator.WithCustomSchema(input.Custom))
	}
	if input.Extensions {
		opts = append(opts, validator.WithExtensionsValidation())
	}
	if input.Recursive != nil {
		opts = append(opts, validator.WithRecursive(*input.Recursive))
	}

	result, err := validator.Run(input.Ref, opts...)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}
	return nil, validateOutput{
		Valid:    result.Valid,
		Messages: result.Messages,
		Status:   result.Status,
	}, nil
}
