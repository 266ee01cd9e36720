// Package conformance wraps the JSON Schema checker used to test documents
// against STAC schemas. It compiles schemas from local files or from
// already-fetched schema documents and converts checker failures into
// structured, path-qualified errors.
package conformance

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/tschaub/stac-validator/stacerrors"
)

// Schema is one compiled schema ready to check documents against.
type Schema struct {
	// Address is the resolved address the schema was built from, or empty
	// for schemas compiled from in-memory documents.
	Address string

	compiled *gojsonschema.Schema
}

// CompileFile compiles a schema from a local file. Relative $ref values
// inside the schema resolve against the schema's own directory, so local
// schemas split across files work without preprocessing.
func CompileFile(path string) (*Schema, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("conformance: resolving schema path: %w", err)
	}
	uri := "file://" + filepath.ToSlash(abs)
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader(uri))
	if err != nil {
		return nil, fmt.Errorf("conformance: compiling schema %s: %w", path, err)
	}
	return &Schema{Address: path, compiled: compiled}, nil
}

// CompileDocument compiles a schema from an already-fetched schema document.
// Used for remote schema addresses, where the fetch collaborator has already
// retrieved and parsed the schema body.
func CompileDocument(address string, doc map[string]any) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("conformance: compiling schema %s: %w", address, err)
	}
	return &Schema{Address: address, compiled: compiled}, nil
}

// Check tests document against s. A conformance failure returns a
// *stacerrors.ConformanceError localized to the first failing path the
// checker reports; any other failure is returned as-is.
func Check(document map[string]any, s *Schema) error {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(document))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	first := result.Errors()[0]
	return &stacerrors.ConformanceError{
		Path:    fieldPath(first.Field()),
		Message: first.Description(),
	}
}

// fieldPath splits the checker's dotted field locator into path segments.
// The checker reports "(root)" for failures it cannot localize.
func fieldPath(field string) []string {
	if field == "" || field == "(root)" {
		return nil
	}
	return strings.Split(field, ".")
}
