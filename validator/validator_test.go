package validator

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher serves canned documents and schemas by reference and counts
// fetches per reference.
type stubFetcher struct {
	docs     map[string]map[string]any
	probeErr map[string]error
	fetches  map[string]int
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		docs:     make(map[string]map[string]any),
		probeErr: make(map[string]error),
		fetches:  make(map[string]int),
	}
}

func (f *stubFetcher) FetchJSON(ref string) (map[string]any, error) {
	f.fetches[ref]++
	doc, ok := f.docs[ref]
	if !ok {
		return nil, fmt.Errorf("fetching %s: %w", ref, fs.ErrNotExist)
	}
	return doc, nil
}

func (f *stubFetcher) Probe(ref string) error {
	return f.probeErr[ref]
}

// permissiveSchema accepts any object.
func permissiveSchema() map[string]any {
	return map[string]any{"type": "object"}
}

// requireFieldSchema accepts objects carrying the named property.
func requireFieldSchema(field string) map[string]any {
	return map[string]any{"type": "object", "required": []any{field}}
}

const (
	catalogSchemaV1 = "https://cdn.staclint.com/v1.0.0/catalog.json"
	itemSchemaV1    = "https://cdn.staclint.com/v1.0.0/item.json"
)

func catalogDoc(links ...map[string]any) map[string]any {
	raw := make([]any, 0, len(links))
	for _, link := range links {
		raw = append(raw, link)
	}
	return map[string]any{
		"type":         "Catalog",
		"stac_version": "1.0.0",
		"id":           "test-catalog",
		"links":        raw,
	}
}

func itemDoc() map[string]any {
	return map[string]any{
		"type":         "Feature",
		"stac_version": "1.0.0",
		"id":           "test-item",
	}
}

func TestRunCoreValid(t *testing.T) {
	f := newStubFetcher()
	f.docs["catalog.json"] = catalogDoc()
	f.docs[catalogSchemaV1] = permissiveSchema()

	result, err := Run("catalog.json", WithCoreValidation(), WithFetcher(f))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	assert.Equal(t, "1.0.0", msg.Version)
	assert.Equal(t, "catalog.json", msg.Path)
	assert.Equal(t, []string{catalogSchemaV1}, msg.Schema)
	assert.True(t, msg.ValidStac)
	assert.Equal(t, "CATALOG", msg.AssetType)
	assert.Equal(t, "core", msg.ValidationMethod)
	assert.Empty(t, msg.ErrorType)
	assert.Equal(t, 1, result.Status.Catalogs.Valid)
}

func TestRunCoreConformanceFailure(t *testing.T) {
	f := newStubFetcher()
	doc := catalogDoc()
	delete(doc, "id")
	f.docs["catalog.json"] = doc
	f.docs[catalogSchemaV1] = requireFieldSchema("id")

	result, err := Run("catalog.json", WithCoreValidation(), WithFetcher(f))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	assert.False(t, msg.ValidStac)
	assert.Equal(t, "ValidationError", msg.ErrorType)
	assert.Contains(t, msg.ErrorMessage, "of the root of the STAC object")
	assert.Equal(t, 1, result.Status.Catalogs.Invalid)
}

func TestRunCustomSchema(t *testing.T) {
	f := newStubFetcher()
	f.docs["item.json"] = itemDoc()
	f.docs["https://example.com/schema.json"] = requireFieldSchema("id")

	result, err := Run("item.json",
		WithCustomSchema("https://example.com/schema.json"),
		WithFetcher(f),
	)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	assert.Equal(t, []string{"https://example.com/schema.json"}, msg.Schema)
	assert.Equal(t, "custom", msg.ValidationMethod)
	assert.Equal(t, "ITEM", msg.AssetType)
}

func TestRunDocument(t *testing.T) {
	f := newStubFetcher()
	f.docs[catalogSchemaV1] = permissiveSchema()

	result, err := RunDocument(catalogDoc(), WithCoreValidation(), WithFetcher(f))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.Len(t, result.Messages, 1)
	assert.Empty(t, result.Messages[0].Path)
}

func TestRunMissingVersion(t *testing.T) {
	f := newStubFetcher()
	doc := catalogDoc()
	delete(doc, "stac_version")
	f.docs["catalog.json"] = doc

	result, err := Run("catalog.json", WithCoreValidation(), WithFetcher(f))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	assert.False(t, msg.ValidStac)
	assert.Equal(t, "KeyError", msg.ErrorType)
	assert.Equal(t, "'stac_version'", msg.ErrorMessage)
}

func TestRunRootFetchFailure(t *testing.T) {
	f := newStubFetcher()

	result, err := Run("missing.json", WithFetcher(f))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	assert.False(t, msg.ValidStac)
	assert.Equal(t, "FileNotFoundError", msg.ErrorType)
	assert.Empty(t, msg.AssetType)
}

func TestRunExtensions(t *testing.T) {
	f := newStubFetcher()
	doc := itemDoc()
	doc["stac_version"] = "1.0.0-beta.2"
	doc["stac_extensions"] = []any{"proj"}
	f.docs["item.json"] = doc

	// proj rewrites to projection, and the beta.2 registry gap resolves
	// against beta.1.
	extAddr := "https://cdn.staclint.com/v1.0.0-beta.1/extension/projection.json"
	f.docs[extAddr] = permissiveSchema()

	result, err := Run("item.json", WithExtensionsValidation(), WithFetcher(f))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	assert.Equal(t, "1.0.0-beta.2", msg.Version)
	assert.Equal(t, []string{extAddr}, msg.Schema)
	assert.Equal(t, "extensions", msg.ValidationMethod)
}

func TestRunExtensionsFailFast(t *testing.T) {
	f := newStubFetcher()
	doc := itemDoc()
	doc["stac_extensions"] = []any{"eo", "view"}
	f.docs["item.json"] = doc
	f.docs["https://cdn.staclint.com/v1.0.0/extension/eo.json"] = requireFieldSchema("absent")
	f.docs["https://cdn.staclint.com/v1.0.0/extension/view.json"] = permissiveSchema()

	result, err := Run("item.json", WithExtensionsValidation(), WithFetcher(f))
	require.NoError(t, err)

	assert.False(t, result.Valid)
	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	assert.Equal(t, "ValidationError", msg.ErrorType)
	// The first failure stops remaining extension checks.
	assert.Equal(t, []string{"https://cdn.staclint.com/v1.0.0/extension/eo.json"}, msg.Schema)
	assert.Zero(t, f.fetches["https://cdn.staclint.com/v1.0.0/extension/view.json"])
}

func TestRunExtensionsNonItem(t *testing.T) {
	f := newStubFetcher()
	f.docs["catalog.json"] = catalogDoc()
	f.docs[catalogSchemaV1] = permissiveSchema()

	result, err := Run("catalog.json", WithExtensionsValidation(), WithFetcher(f))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, []string{catalogSchemaV1}, result.Messages[0].Schema)
}

func TestRunDefaultItemSchemaOrder(t *testing.T) {
	f := newStubFetcher()
	doc := itemDoc()
	doc["stac_extensions"] = []any{"eo"}
	f.docs["item.json"] = doc
	extAddr := "https://cdn.staclint.com/v1.0.0/extension/eo.json"
	f.docs[extAddr] = permissiveSchema()
	f.docs[itemSchemaV1] = permissiveSchema()

	result, err := Run("item.json", WithFetcher(f))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	require.Len(t, result.Messages, 1)
	msg := result.Messages[0]
	assert.Equal(t, "default", msg.ValidationMethod)
	// Extension schemas precede the core schema in the report.
	assert.Equal(t, []string{extAddr, itemSchemaV1}, msg.Schema)
}

func TestCoreAndDefaultAgree(t *testing.T) {
	f := newStubFetcher()
	f.docs["catalog.json"] = catalogDoc()
	f.docs[catalogSchemaV1] = requireFieldSchema("id")

	core, err := Run("catalog.json", WithCoreValidation(), WithFetcher(f))
	require.NoError(t, err)
	byDefault, err := Run("catalog.json", WithFetcher(f))
	require.NoError(t, err)

	assert.Equal(t, core.Valid, byDefault.Valid)
	assert.Equal(t, core.Messages[0].Schema, byDefault.Messages[0].Schema)
}

func TestSchemaFetchedOncePerRun(t *testing.T) {
	f := newStubFetcher()
	doc := itemDoc()
	doc["stac_extensions"] = []any{"eo", "eo"}
	f.docs["item.json"] = doc
	f.docs["https://cdn.staclint.com/v1.0.0/extension/eo.json"] = permissiveSchema()
	f.docs[itemSchemaV1] = permissiveSchema()

	result, err := Run("item.json", WithFetcher(f))
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, 1, f.fetches["https://cdn.staclint.com/v1.0.0/extension/eo.json"])
}
