package stacerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnknownDocumentType indicates a document type the schema locator
	// cannot resolve an address for.
	ErrUnknownDocumentType = errors.New("unknown document type")

	// ErrConformance indicates a schema-conformance failure.
	ErrConformance = errors.New("conformance failure")
)

// HTTPStatusError reports a non-200 response while fetching a document,
// schema, or link target.
type HTTPStatusError struct {
	// URL is the address that was requested
	URL string
	// StatusCode is the HTTP status code of the response
	StatusCode int
	// Status is the full status line (e.g. "404 Not Found")
	Status string
}

// Error returns a human-readable error message.
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s (%s)", e.StatusCode, e.Status, e.URL)
}

// MissingFieldError reports a required document field that is absent.
type MissingFieldError struct {
	// Field is the name of the missing field
	Field string
}

// Error returns the field name quoted the way the report format expects.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("'%s'", e.Field)
}

// TypeMismatchError reports a document field carrying the wrong JSON type.
type TypeMismatchError struct {
	// Field is the name of the offending field, or "document" for the
	// top-level value
	Field string
	// Want is the expected JSON type (e.g. "object", "array")
	Want string
	// Got is the value that was found
	Got any
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s must be a JSON %s, got %T", e.Field, e.Want, e.Got)
}

// ConformanceError is a schema-conformance failure, localized to a path
// within the failing document when the checker can pinpoint it. An empty
// Path means the failure applies to the document root.
type ConformanceError struct {
	// Path holds the document path segments leading to the failure
	Path []string
	// Message is the checker's description of the failure
	Message string
}

// Error renders the failure with its path joined by an arrow separator, or
// as a root-level message when no path is available.
func (e *ConformanceError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("%s. Error is in %s", e.Message, strings.Join(e.Path, " -> "))
	}
	return fmt.Sprintf("%s of the root of the STAC object", e.Message)
}

// Is reports whether target matches this error type.
func (e *ConformanceError) Is(target error) bool {
	return target == ErrConformance
}
