package validator

// The validation modes form a closed set and exactly one is selected per
// run. Each variant carries its own configuration, so mutually exclusive
// settings cannot be combined.
type mode interface {
	isMode()
}

// coreMode checks the document against the base schema for its declared
// type. No extensions, no links, no assets.
type coreMode struct{}

// customMode checks the document against one externally supplied schema
// address instead of a resolved one.
type customMode struct {
	address string
}

// extensionsMode checks an item against each schema listed in
// stac_extensions, failing fast on the first non-conforming extension.
// Non-item documents degenerate to a core check.
type extensionsMode struct{}

// defaultMode runs the core check plus, for items, the extension checks,
// and attaches link/asset reports when those were requested.
type defaultMode struct{}

// recursiveMode walks the link graph from the root document, validating
// every reachable document with the default composition. maxDepth caps the
// number of child hops from the root; -1 means unbounded.
type recursiveMode struct {
	maxDepth int
}

func (coreMode) isMode()       {}
func (customMode) isMode()     {}
func (extensionsMode) isMode() {}
func (defaultMode) isMode()    {}
func (recursiveMode) isMode()  {}
