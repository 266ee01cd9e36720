// Package stacvalidator is the root of the stac-validator module, a toolkit for
// validating SpatioTemporal Asset Catalog (STAC) documents against the JSON
// Schemas published for their declared spec version.
//
// The module consists of the following packages:
//
//   - validator: the document validator and recursive catalog traversal engine
//   - schema: schema address resolution and per-run schema caching
//   - conformance: the JSON Schema conformance checker
//   - fetcher: fetching and parsing of documents from URLs or local paths
//   - stacerrors: structured error types and report error classification
//
// # Quick Start
//
// Validate a catalog and everything reachable from it:
//
//	import "github.com/tschaub/stac-validator/validator"
//
//	result, err := validator.Run("catalog.json", validator.WithRecursive(-1))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, msg := range result.Messages {
//		fmt.Printf("%s valid=%v\n", msg.Path, msg.ValidStac)
//	}
//
// Validate a single item against one custom schema:
//
//	result, err := validator.Run("item.json",
//		validator.WithCustomSchema("schemas/item.json"),
//	)
//
// # Command-Line Interface
//
// The module ships a CLI:
//
//	# Validate a document in default mode
//	stac-validator validate item.json
//
//	# Walk a catalog two levels deep, checking links as it goes
//	stac-validator validate --recursive 2 --links https://example.com/catalog.json
//
// Install the CLI:
//
//	go install github.com/tschaub/stac-validator/cmd/stac-validator@latest
//
// # Limitations
//
// The traversal engine treats link graphs as acyclic and performs no cycle
// detection; feeding it a catalog whose child links form a cycle will not
// terminate. This is a documented operator responsibility.
package stacvalidator
