// Package validator validates STAC catalogs, collections, and items against
// the versioned STAC JSON Schemas, optionally walking the catalog's link
// graph to validate every reachable document.
//
// # Validation Modes
//
// A run uses exactly one of five modes:
//
//   - core: check the document against the base schema for its type
//   - custom: check the document against one supplied schema address
//   - extensions: check an item against each schema in stac_extensions,
//     stopping at the first failure
//   - default: core plus, for items, extensions; link and asset
//     reachability reports attach here when requested
//   - recursive: walk child and item links depth-first from the root,
//     validating every visited document with the default composition
//
// The default mode applies when no selector option is given. Mode selectors
// are mutually exclusive; combining two returns a configuration error.
//
// # Reports
//
// Each visited document produces one [Message] with its resolved version,
// the schemas exercised, a definitive validity boolean, and on failure a
// classified error kind and description. Messages appear in visit order,
// which for recursion is link declaration order. The [Result] aggregates
// the messages with per-type valid/invalid tallies.
//
// # Usage
//
//	result, err := validator.Run("catalog.json", validator.WithRecursive(-1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range result.Messages {
//	    fmt.Println(msg.Path, msg.ValidStac)
//	}
//
// Validation failures are reported in the Result; the returned error covers
// configuration and log-file problems only.
package validator
