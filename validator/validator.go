package validator

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tschaub/stac-validator/conformance"
	"github.com/tschaub/stac-validator/fetcher"
	"github.com/tschaub/stac-validator/schema"
	"github.com/tschaub/stac-validator/stacerrors"
)

// Run validates the document at ref (a URL or local path) with default
// settings plus any options.
func Run(ref string, opts ...Option) (*Result, error) {
	return RunWithOptions(append([]Option{WithReference(ref)}, opts...)...)
}

// RunDocument validates an already-parsed document.
func RunDocument(doc map[string]any, opts ...Option) (*Result, error) {
	return RunWithOptions(append([]Option{WithDocument(doc)}, opts...)...)
}

// RunWithOptions performs one validation run configured entirely by
// options. The returned error reports configuration or log-file problems;
// validation failures are carried in the Result, never as an error.
func RunWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	r := &run{
		cfg:     cfg,
		fetcher: cfg.fetcher,
		cache:   schema.NewCache[*conformance.Schema](),
		logger:  cfg.logger,
	}
	r.execute()

	result := &Result{
		Valid:    len(r.messages) > 0,
		Messages: r.messages,
		Status:   r.status,
	}
	for _, msg := range r.messages {
		if !msg.ValidStac {
			result.Valid = false
			break
		}
	}

	if cfg.logPath != "" {
		data, err := json.MarshalIndent(r.messages, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("encoding log output: %w", err)
		}
		if err := os.WriteFile(cfg.logPath, data, 0o644); err != nil {
			return nil, fmt.Errorf("writing log file: %w", err)
		}
	}
	return result, nil
}

// run carries the state of one validation run: the per-run schema cache,
// the accumulated report, and the root version applied during recursion.
// A fresh run is built per invocation so concurrent runs share nothing.
type run struct {
	cfg     *runConfig
	fetcher fetcher.Interface
	locator schema.Locator
	cache   *schema.Cache[*conformance.Schema]
	logger  Logger

	maxDepth    int
	rootVersion string
	messages    []Message
	status      Status
}

func (r *run) execute() {
	var ref string
	if r.cfg.ref != nil {
		ref = *r.cfg.ref
	}

	doc := r.cfg.document
	if doc == nil {
		fetched, err := r.fetcher.FetchJSON(ref)
		if err != nil {
			r.logger.Error("root document fetch failed", "ref", ref, "error", err)
			msg := Message{Path: ref, Schema: []string{}, ValidationMethod: methodName(r.cfg.mode)}
			r.emit(r.failed(msg, err))
			return
		}
		doc = fetched
	}

	if rec, ok := r.cfg.mode.(recursiveMode); ok {
		version, err := documentVersion(doc)
		if err != nil {
			stacType := DetectType(ref, doc)
			r.tally(stacType, false)
			r.emit(r.failed(r.newMessage(ref, stacType, "", "recursive"), err))
			return
		}
		r.rootVersion = version
		r.maxDepth = rec.maxDepth
		r.walk(ref, doc, 0)
		return
	}

	r.validateSingle(ref, doc, r.cfg.mode)
}

// validateSingle validates one document in a non-recursive mode and records
// its message.
func (r *run) validateSingle(ref string, doc map[string]any, m mode) {
	stacType := DetectType(ref, doc)
	version, err := documentVersion(doc)
	msg := r.newMessage(ref, stacType, version, methodName(m))
	if err != nil {
		msg = r.failed(msg, err)
	} else {
		msg = r.applyMode(msg, ref, doc, version, stacType, m)
	}
	r.tally(stacType, msg.ValidStac)
	r.emit(msg)
}

// applyMode runs the mode's checks against doc and fills msg with the
// outcome: the schema list exercised, the validity flag, and on failure the
// classified error. Link and asset reports attach only for the default
// composition, since the other modes check schemas and nothing else.
func (r *run) applyMode(msg Message, ref string, doc map[string]any, version, stacType string, m mode) Message {
	var schemas []string
	var err error
	switch m := m.(type) {
	case coreMode:
		var addr string
		addr, err = r.coreCheck(doc, version, stacType)
		if addr != "" {
			schemas = []string{addr}
		}
	case customMode:
		schemas = []string{m.address}
		err = r.checkAgainst(doc, m.address)
	case extensionsMode:
		schemas, err = r.extensionsCheck(doc, version, stacType)
	case defaultMode:
		schemas, err = r.defaultCheck(doc, version, stacType)
	}
	if schemas != nil {
		msg.Schema = schemas
	}
	if err != nil {
		return r.failed(msg, err)
	}
	msg.ValidStac = true
	if _, ok := m.(defaultMode); ok {
		if r.cfg.checkLinks {
			msg.LinksValidated = r.linksReport(ref, doc)
		}
		if r.cfg.checkAssets {
			msg.AssetsValidated = r.assetsReport(ref, doc)
		}
	}
	return msg
}

// coreCheck checks doc against the base schema for its type. The resolved
// address is returned even when the check fails so reports can name it.
func (r *run) coreCheck(doc map[string]any, version, stacType string) (string, error) {
	addr, err := r.locator.Resolve(version, stacType)
	if err != nil {
		return "", err
	}
	return addr, r.checkAgainst(doc, addr)
}

// extensionsCheck checks an item against each schema listed in its
// stac_extensions, in declaration order, stopping at the first failure.
// The returned list names every schema attempted, including a failing one.
// Non-item documents get a core check instead.
func (r *run) extensionsCheck(doc map[string]any, version, stacType string) ([]string, error) {
	if stacType != schema.TypeItem {
		addr, err := r.coreCheck(doc, version, stacType)
		if addr == "" {
			return []string{}, err
		}
		return []string{addr}, err
	}

	schemas := []string{}
	raw, ok := doc["stac_extensions"]
	if !ok {
		return schemas, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return schemas, &stacerrors.TypeMismatchError{Field: "stac_extensions", Want: "array", Got: raw}
	}
	for _, entry := range entries {
		name, ok := entry.(string)
		if !ok {
			return schemas, &stacerrors.TypeMismatchError{Field: "stac_extensions", Want: "string", Got: entry}
		}
		addr := r.locator.ResolveExtension(version, name)
		schemas = append(schemas, addr)
		if err := r.checkAgainst(doc, addr); err != nil {
			return schemas, err
		}
	}
	return schemas, nil
}

// defaultCheck runs the core check and, for items, the extension checks.
// The returned schema list holds any extension schemas exercised followed
// by the core schema.
func (r *run) defaultCheck(doc map[string]any, version, stacType string) ([]string, error) {
	coreAddr, err := r.coreCheck(doc, version, stacType)
	if err != nil {
		if coreAddr == "" {
			return []string{}, err
		}
		return []string{coreAddr}, err
	}
	if stacType != schema.TypeItem {
		return []string{coreAddr}, nil
	}
	extSchemas, err := r.extensionsCheck(doc, version, stacType)
	return append(extSchemas, coreAddr), err
}

// loadSchema returns the compiled schema for address, fetching and
// compiling at most once per address per run. Remote schemas are retrieved
// through the fetch collaborator; local paths compile with relative $ref
// support rooted at the schema's directory.
func (r *run) loadSchema(address string) (*conformance.Schema, error) {
	return r.cache.GetOrFetch(address, func(address string) (*conformance.Schema, error) {
		r.logger.Debug("compiling schema", "address", address)
		if fetcher.IsURL(address) {
			doc, err := r.fetcher.FetchJSON(address)
			if err != nil {
				return nil, err
			}
			return conformance.CompileDocument(address, doc)
		}
		return conformance.CompileFile(address)
	})
}

func (r *run) checkAgainst(doc map[string]any, address string) error {
	s, err := r.loadSchema(address)
	if err != nil {
		return err
	}
	return conformance.Check(doc, s)
}

func (r *run) newMessage(ref, stacType, version, method string) Message {
	return Message{
		Version:          version,
		Path:             ref,
		Schema:           []string{},
		AssetType:        strings.ToUpper(stacType),
		ValidationMethod: method,
	}
}

// failed marks msg invalid and attaches the classified error.
func (r *run) failed(msg Message, err error) Message {
	kind, text := stacerrors.Classify(err)
	msg.ValidStac = false
	msg.ErrorType = string(kind)
	msg.ErrorMessage = text
	return msg
}

// emit appends msg to the report and streams it to the observer.
func (r *run) emit(msg Message) {
	r.messages = append(r.messages, msg)
	if r.cfg.observer != nil {
		r.cfg.observer(msg)
	}
}

func (r *run) tally(stacType string, valid bool) {
	var t *Tally
	switch stacType {
	case schema.TypeCatalog:
		t = &r.status.Catalogs
	case schema.TypeCollection:
		t = &r.status.Collections
	case schema.TypeItem:
		t = &r.status.Items
	default:
		return
	}
	if valid {
		t.Valid++
	} else {
		t.Invalid++
	}
}

// documentVersion extracts the document's declared spec version.
func documentVersion(doc map[string]any) (string, error) {
	raw, ok := doc["stac_version"]
	if !ok {
		return "", &stacerrors.MissingFieldError{Field: "stac_version"}
	}
	version, ok := raw.(string)
	if !ok {
		return "", &stacerrors.TypeMismatchError{Field: "stac_version", Want: "string", Got: raw}
	}
	return version, nil
}

func methodName(m mode) string {
	switch m.(type) {
	case coreMode:
		return "core"
	case customMode:
		return "custom"
	case extensionsMode:
		return "extensions"
	case recursiveMode:
		return "recursive"
	default:
		return "default"
	}
}
