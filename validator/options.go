package validator

import (
	"errors"
	"fmt"

	"github.com/tschaub/stac-validator/fetcher"
)

// Option is a function that configures a validation run
type Option func(*runConfig) error

// runConfig holds configuration for a validation run
type runConfig struct {
	// Input source (exactly one must be set)
	ref      *string
	document map[string]any

	// Mode selection (at most one selector may be applied)
	mode    mode
	modeSet bool

	// Configuration options
	checkLinks  bool
	checkAssets bool
	logPath     string
	observer    func(Message)
	fetcher     fetcher.Interface
	logger      Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*runConfig, error) {
	cfg := &runConfig{
		mode:   defaultMode{},
		logger: NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.ref == nil && cfg.document == nil {
		return nil, errors.New("must specify an input source (use WithReference or WithDocument)")
	}
	if cfg.ref != nil && cfg.document != nil {
		return nil, errors.New("must specify exactly one input source")
	}

	if cfg.fetcher == nil {
		cfg.fetcher = fetcher.New()
	}
	return cfg, nil
}

// selectMode records a mode selection, rejecting a second selector.
func selectMode(cfg *runConfig, m mode) error {
	if cfg.modeSet {
		return errors.New("validation modes are mutually exclusive (choose one of WithCoreValidation, WithCustomSchema, WithExtensionsValidation, WithRecursive)")
	}
	cfg.mode = m
	cfg.modeSet = true
	return nil
}

// WithReference specifies a document reference (URL or local path) as the
// input source
func WithReference(ref string) Option {
	return func(cfg *runConfig) error {
		cfg.ref = &ref
		return nil
	}
}

// WithDocument specifies an already-parsed document as the input source.
// Report messages for a document input carry an empty path.
func WithDocument(doc map[string]any) Option {
	return func(cfg *runConfig) error {
		if doc == nil {
			return errors.New("document must not be nil")
		}
		cfg.document = doc
		return nil
	}
}

// WithCoreValidation selects core mode: check the document against the base
// schema for its type only
func WithCoreValidation() Option {
	return func(cfg *runConfig) error {
		return selectMode(cfg, coreMode{})
	}
}

// WithCustomSchema selects custom mode: check the document against the
// schema at the given address (URL or local path)
func WithCustomSchema(address string) Option {
	return func(cfg *runConfig) error {
		if address == "" {
			return errors.New("custom schema address must not be empty")
		}
		return selectMode(cfg, customMode{address: address})
	}
}

// WithExtensionsValidation selects extensions mode: check an item against
// each schema listed in its stac_extensions
func WithExtensionsValidation() Option {
	return func(cfg *runConfig) error {
		return selectMode(cfg, extensionsMode{})
	}
}

// WithRecursive selects recursive mode: walk the link graph from the root,
// validating every reachable document. maxDepth caps descent in child hops
// from the root; -1 means unbounded.
func WithRecursive(maxDepth int) Option {
	return func(cfg *runConfig) error {
		if maxDepth < -1 {
			return fmt.Errorf("recursion depth must be -1 (unbounded) or >= 0, got %d", maxDepth)
		}
		return selectMode(cfg, recursiveMode{maxDepth: maxDepth})
	}
}

// WithLinks enables or disables link reachability reporting on default and
// recursive runs
// Default: false
func WithLinks(enabled bool) Option {
	return func(cfg *runConfig) error {
		cfg.checkLinks = enabled
		return nil
	}
}

// WithAssets enables or disables asset reachability reporting on default
// and recursive runs
// Default: false
func WithAssets(enabled bool) Option {
	return func(cfg *runConfig) error {
		cfg.checkAssets = enabled
		return nil
	}
}

// WithLogFile writes the full ordered message list as indented JSON to path
// at the end of the run, overwriting any prior content
func WithLogFile(path string) Option {
	return func(cfg *runConfig) error {
		cfg.logPath = path
		return nil
	}
}

// WithObserver registers a callback invoked with each message as it is
// produced, in visit order. Used for streaming output during recursion.
func WithObserver(fn func(Message)) Option {
	return func(cfg *runConfig) error {
		cfg.observer = fn
		return nil
	}
}

// WithFetcher replaces the fetch collaborator used for documents, schemas,
// and link probes
// Default: fetcher.New()
func WithFetcher(f fetcher.Interface) Option {
	return func(cfg *runConfig) error {
		if f == nil {
			return errors.New("fetcher must not be nil")
		}
		cfg.fetcher = f
		return nil
	}
}

// WithLogger sets the logger for run diagnostics
// Default: NopLogger
func WithLogger(logger Logger) Option {
	return func(cfg *runConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		cfg.logger = logger
		return nil
	}
}
