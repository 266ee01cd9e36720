package validator

// Message is the report unit for one visited document. The JSON field names
// are the stable report format that downstream consumers parse.
type Message struct {
	// Version is the spec version the document was validated against
	Version string `json:"version"`
	// Path is the reference (URL or local path) of the document
	Path string `json:"path"`
	// Schema lists the schema addresses exercised, in check order
	Schema []string `json:"schema"`
	// ValidStac reports whether the document passed. It is always present
	// in serialized output, even on error paths.
	ValidStac bool `json:"valid_stac"`
	// AssetType is the detected document type, upper-cased (ITEM, CATALOG,
	// COLLECTION). Empty when the document could not be fetched.
	AssetType string `json:"asset_type,omitempty"`
	// ValidationMethod names the mode that produced this message
	// (core, custom, extensions, default, recursive).
	ValidationMethod string `json:"validation_method,omitempty"`
	// ErrorType is the classified error kind, set only on failure
	ErrorType string `json:"error_type,omitempty"`
	// ErrorMessage is the human-readable failure description
	ErrorMessage string `json:"error_message,omitempty"`
	// LinksValidated holds the link reachability report when requested
	LinksValidated *LinkReport `json:"links_validated,omitempty"`
	// AssetsValidated holds the asset reachability report when requested
	AssetsValidated *LinkReport `json:"assets_validated,omitempty"`
}

// LinkReport partitions link or asset targets into four buckets. Every
// target lands in exactly one bucket, so the bucket sizes sum to the number
// of targets inspected.
type LinkReport struct {
	// FormatValid holds well-formed targets whose scheme is not probeable
	FormatValid []string `json:"format_valid"`
	// FormatInvalid holds targets that do not resolve to an absolute reference
	FormatInvalid []string `json:"format_invalid"`
	// RequestValid holds http(s) targets that answered a probe
	RequestValid []string `json:"request_valid"`
	// RequestInvalid holds http(s) targets that did not answer a probe
	RequestInvalid []string `json:"request_invalid"`
}

// newLinkReport creates a LinkReport with empty, non-nil buckets so they
// serialize as [] rather than null.
func newLinkReport() *LinkReport {
	return &LinkReport{
		FormatValid:    []string{},
		FormatInvalid:  []string{},
		RequestValid:   []string{},
		RequestInvalid: []string{},
	}
}

// Tally counts valid and invalid documents of one type.
type Tally struct {
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Status aggregates per-type tallies across one run.
type Status struct {
	Catalogs    Tally `json:"catalogs"`
	Collections Tally `json:"collections"`
	Items       Tally `json:"items"`
}

// Result is the outcome of one validation run.
type Result struct {
	// Valid is true when at least one document was visited and every
	// message in the report is valid.
	Valid bool
	// Messages is the ordered report, one entry per visited document,
	// in visit order.
	Messages []Message
	// Status tallies visited documents by detected type.
	Status Status
}
