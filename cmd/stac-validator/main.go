package main

import (
	"fmt"
	"os"

	stacvalidator "github.com/tschaub/stac-validator"
	"github.com/tschaub/stac-validator/cmd/stac-validator/commands"
	"github.com/tschaub/stac-validator/internal/cliutil"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("stac-validator v%s\n", stacvalidator.Version())
	case "help", "-h", "--help":
		printUsage()
	case "validate":
		if err := commands.HandleValidate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	known := []string{"validate", "mcp", "version", "help"}
	best := ""
	bestDist := 3
	for _, cmd := range known {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	cliutil.Writef(os.Stderr, "stac-validator - STAC catalog, collection, and item validation\n\n")
	cliutil.Writef(os.Stderr, "Usage: stac-validator <command> [flags] [arguments]\n\n")
	cliutil.Writef(os.Stderr, "Commands:\n")
	cliutil.Writef(os.Stderr, "  validate    Validate a STAC document by file path or URL\n")
	cliutil.Writef(os.Stderr, "  mcp         Run the MCP server over stdio\n")
	cliutil.Writef(os.Stderr, "  version     Show version information\n")
	cliutil.Writef(os.Stderr, "  help        Show this help message\n\n")
	cliutil.Writef(os.Stderr, "Run 'stac-validator <command> -h' for command-specific help.\n")
}
