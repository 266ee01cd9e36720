package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	stacvalidator "github.com/tschaub/stac-validator"
	"github.com/tschaub/stac-validator/internal/cliutil"
	"github.com/tschaub/stac-validator/validator"
)

// recursionDisabled is the --recursive default, meaning no traversal.
const recursionDisabled = -2

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Core       bool
	Custom     string
	Extensions bool
	Recursive  int
	Links      bool
	Assets     bool
	Verbose    bool
	Log        string
	Quiet      bool
	Timer      bool
	Format     string
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*flag.FlagSet, *ValidateFlags) {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags := &ValidateFlags{}

	fs.BoolVar(&flags.Core, "core", false, "validate against the core schema only")
	fs.StringVar(&flags.Custom, "custom", "", "validate against this schema address instead of a resolved one")
	fs.BoolVar(&flags.Extensions, "extensions", false, "validate an item against its stac_extensions schemas")
	fs.IntVar(&flags.Recursive, "recursive", recursionDisabled, "walk child and item links to this depth; -1 is unbounded")
	fs.BoolVar(&flags.Links, "links", false, "report link reachability")
	fs.BoolVar(&flags.Assets, "assets", false, "report asset reachability")
	fs.BoolVar(&flags.Verbose, "verbose", false, "print each message as JSON while validating")
	fs.StringVar(&flags.Log, "log", "", "write the full message list as JSON to this file")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output validation result, no diagnostic messages")
	fs.BoolVar(&flags.Timer, "timer", false, "print elapsed time after the run")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: stac-validator validate [flags] <file|url>\n\n")
		cliutil.Writef(fs.Output(), "Validate a STAC catalog, collection, or item against the STAC JSON Schemas.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nModes (mutually exclusive; default runs core plus extensions for items):\n")
		cliutil.Writef(fs.Output(), "  --core              base schema only\n")
		cliutil.Writef(fs.Output(), "  --custom <address>  one supplied schema\n")
		cliutil.Writef(fs.Output(), "  --extensions        item extension schemas\n")
		cliutil.Writef(fs.Output(), "  --recursive <n>     walk child and item links n levels deep (-1 unbounded)\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  stac-validator validate catalog.json\n")
		cliutil.Writef(fs.Output(), "  stac-validator validate --recursive -1 https://example.com/stac/catalog.json\n")
		cliutil.Writef(fs.Output(), "  stac-validator validate --custom ./my-schema.json item.json\n")
		cliutil.Writef(fs.Output(), "  stac-validator validate --format json catalog.json | jq '.Valid'\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Validation successful\n")
		cliutil.Writef(fs.Output(), "  1    Validation failed\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("validate command requires exactly one file path or URL")
	}

	ref := fs.Arg(0)

	// Validate format flag early to fail fast before expensive operations
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	opts := []validator.Option{
		validator.WithLinks(flags.Links),
		validator.WithAssets(flags.Assets),
	}
	if flags.Core {
		opts = append(opts, validator.WithCoreValidation())
	}
	if flags.Custom != "" {
		opts = append(opts, validator.WithCustomSchema(flags.Custom))
	}
	if flags.Extensions {
		opts = append(opts, validator.WithExtensionsValidation())
	}
	if flags.Recursive > recursionDisabled {
		opts = append(opts, validator.WithRecursive(flags.Recursive))
	}
	if flags.Log != "" {
		opts = append(opts, validator.WithLogFile(flags.Log))
	}
	if flags.Verbose && flags.Format == FormatText {
		opts = append(opts, validator.WithObserver(func(msg validator.Message) {
			data, err := json.MarshalIndent(msg, "", "    ")
			if err != nil {
				return
			}
			fmt.Println(string(data))
		}))
	}

	startTime := time.Now()
	result, err := validator.Run(ref, opts...)
	if err != nil {
		return fmt.Errorf("validating %s: %w", ref, err)
	}
	totalTime := time.Since(startTime)

	// Handle structured output formats
	if flags.Format == FormatJSON || flags.Format == FormatYAML {
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
		if flags.Timer {
			cliutil.Writef(os.Stderr, "%.3fs\n", totalTime.Seconds())
		}
		if !result.Valid {
			os.Exit(1)
		}
		return nil
	}

	// Text format output (diagnostics to stderr, like the other commands)
	if !flags.Quiet {
		cliutil.Writef(os.Stderr, "STAC Validator\n")
		cliutil.Writef(os.Stderr, "==============\n\n")
		cliutil.Writef(os.Stderr, "stac-validator version: %s\n", stacvalidator.Version())
		cliutil.Writef(os.Stderr, "Document: %s\n", ref)
		cliutil.Writef(os.Stderr, "Documents visited: %d\n\n", len(result.Messages))

		for _, msg := range result.Messages {
			if msg.ValidStac {
				cliutil.Writef(os.Stderr, "  ✓ %s (%s)\n", msg.Path, msg.AssetType)
			} else {
				cliutil.Writef(os.Stderr, "  ✗ %s: %s: %s\n", msg.Path, msg.ErrorType, msg.ErrorMessage)
			}
		}

		status := result.Status
		cliutil.Writef(os.Stderr, "\nCatalogs: %d valid, %d invalid\n", status.Catalogs.Valid, status.Catalogs.Invalid)
		cliutil.Writef(os.Stderr, "Collections: %d valid, %d invalid\n", status.Collections.Valid, status.Collections.Invalid)
		cliutil.Writef(os.Stderr, "Items: %d valid, %d invalid\n\n", status.Items.Valid, status.Items.Invalid)

		if result.Valid {
			cliutil.Writef(os.Stderr, "✓ Validation passed\n")
		} else {
			cliutil.Writef(os.Stderr, "✗ Validation failed\n")
		}
	}

	if flags.Timer {
		cliutil.Writef(os.Stderr, "%.3fs\n", totalTime.Seconds())
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}
