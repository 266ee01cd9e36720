// Package stacerrors provides structured error types for the stac-validator
// module and the classification of failures into report error kinds.
//
// Import path: github.com/tschaub/stac-validator/stacerrors
//
// Every failure surface in a validation run (fetching, decoding, schema
// address resolution, and schema conformance) funnels through [Classify]
// before it is attached to a validation message. Classify maps an error chain
// to one of the stable [Kind] values plus a human-readable message. Specific
// kinds always take precedence; [KindException] is the catch-all and matches
// last.
//
// The typed errors in this package support [errors.Is] and [errors.As]:
//
//	var conf *stacerrors.ConformanceError
//	if errors.As(err, &conf) {
//	    // conf.Path localizes the failure within the document
//	}
package stacerrors
