package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/tschaub/stac-validator/internal/cliutil"
	"github.com/tschaub/stac-validator/internal/mcpserver"
)

// HandleMCP executes the mcp command, serving MCP tools over stdio until the
// client disconnects.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: stac-validator mcp\n\n")
		cliutil.Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio exposing\n")
		cliutil.Writef(fs.Output(), "validate and schema_url tools. Intended to be launched by an MCP\n")
		cliutil.Writef(fs.Output(), "client, not interactively.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return mcpserver.Run(context.Background())
}
