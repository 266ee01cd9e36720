// Package schema computes the canonical schema address for a STAC spec
// version and document type, and memoizes compiled schemas for the lifetime
// of one validation run.
package schema

import (
	"fmt"
	"strings"

	"github.com/tschaub/stac-validator/stacerrors"
)

// Document types the locator resolves addresses for.
const (
	TypeItem       = "item"
	TypeCatalog    = "catalog"
	TypeCollection = "collection"
)

// registryTemplate is the consolidated schema registry layout used by every
// version that is not in the legacy table.
const registryTemplate = "https://cdn.staclint.com/v%s/%s.json"

// extensionTemplate is the extension registry layout for bare extension names.
const extensionTemplate = "https://cdn.staclint.com/v%s/extension/%s.json"

// legacyPaths maps the pre-1.0 pre-release tags that predate the consolidated
// registry to their original repository layout. These must stay an explicit
// table: the layout changed between tags and cannot be inferred from the
// version string.
var legacyPaths = map[string]map[string]string{
	"0.4.0": {
		TypeCatalog: "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.4.0/static-catalog/json-schema/catalog.json",
		TypeItem:    "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.4.0/json-spec/json-schema/stac-item.json",
	},
	"0.4.1": {
		TypeCatalog: "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.4.1/static-catalog/json-schema/catalog.json",
		TypeItem:    "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.4.1/json-spec/json-schema/stac-item.json",
	},
	"0.5.0": {
		TypeCatalog: "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.5.0/static-catalog/json-schema/catalog.json",
		TypeItem:    "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.5.0/json-spec/json-schema/stac-item.json",
	},
	"0.5.1": {
		TypeCatalog: "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.5.1/static-catalog/json-schema/catalog.json",
		TypeItem:    "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.5.1/json-spec/json-schema/stac-item.json",
	},
	"0.5.2": {
		TypeCatalog: "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.5.2/static-catalog/json-schema/catalog.json",
		TypeItem:    "https://raw.githubusercontent.com/radiantearth/stac-spec/v0.5.2/json-spec/json-schema/stac-item.json",
	},
}

// Locator computes schema addresses. It performs no I/O: a resolved address
// is handed to the cache and fetch collaborator by the validator.
type Locator struct{}

// Resolve returns the canonical schema address for one spec version and
// document type. Identical inputs always yield an identical address.
// Unrecognized document types return stacerrors.ErrUnknownDocumentType.
func (Locator) Resolve(version, docType string) (string, error) {
	docType = strings.ToLower(docType)
	switch docType {
	case TypeItem, TypeCatalog, TypeCollection:
	default:
		return "", fmt.Errorf("%w: %q", stacerrors.ErrUnknownDocumentType, docType)
	}

	if legacy, ok := legacyPaths[version]; ok {
		if addr, ok := legacy[docType]; ok {
			return addr, nil
		}
		// The legacy repository layout carried no collection schema;
		// fall through to the registry template.
	}
	return fmt.Sprintf(registryTemplate, version, docType), nil
}

// ResolveExtension returns the schema address for one entry of
// stac_extensions. Entries that are already full URLs pass through
// untouched. Bare names are rewritten to the extension registry, with two
// historical quirks:
//
//   - the extension named "proj" was registered as "projection"
//   - the 1.0.0-beta.2 tag has no extension registry, so its extension
//     addresses are built against 1.0.0-beta.1 (this substitution applies to
//     the address only; the document's reported version is unaffected)
func (Locator) ResolveExtension(version, extension string) string {
	if strings.Contains(extension, "http") {
		return extension
	}
	if extension == "proj" {
		extension = "projection"
	}
	if version == "1.0.0-beta.2" {
		version = "1.0.0-beta.1"
	}
	return fmt.Sprintf(extensionTemplate, version, extension)
}
