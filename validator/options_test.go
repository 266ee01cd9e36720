package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOptionsRequiresInput(t *testing.T) {
	_, err := RunWithOptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input source")
}

func TestApplyOptionsRejectsTwoInputs(t *testing.T) {
	_, err := RunWithOptions(
		WithReference("catalog.json"),
		WithDocument(map[string]any{}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one input source")
}

func TestModeSelectorsAreMutuallyExclusive(t *testing.T) {
	_, err := RunWithOptions(
		WithReference("catalog.json"),
		WithCoreValidation(),
		WithRecursive(-1),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestWithRecursiveRejectsBadDepth(t *testing.T) {
	_, err := RunWithOptions(WithReference("catalog.json"), WithRecursive(-2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursion depth")
}

func TestWithCustomSchemaRejectsEmptyAddress(t *testing.T) {
	_, err := RunWithOptions(WithReference("catalog.json"), WithCustomSchema(""))
	require.Error(t, err)
}

func TestWithFetcherRejectsNil(t *testing.T) {
	_, err := RunWithOptions(WithReference("catalog.json"), WithFetcher(nil))
	require.Error(t, err)
}

func TestWithLoggerRejectsNil(t *testing.T) {
	_, err := RunWithOptions(WithReference("catalog.json"), WithLogger(nil))
	require.Error(t, err)
}

func TestWithDocumentRejectsNil(t *testing.T) {
	_, err := RunWithOptions(WithDocument(nil))
	require.Error(t, err)
}
