package conformance

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tschaub/stac-validator/stacerrors"
)

var itemSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "type"},
	"properties": map[string]any{
		"id":   map[string]any{"type": "string"},
		"type": map[string]any{"type": "string"},
		"properties": map[string]any{
			"type":     "object",
			"required": []any{"datetime"},
		},
	},
}

func TestCheckValid(t *testing.T) {
	s, err := CompileDocument("mem://item.json", itemSchema)
	require.NoError(t, err)

	doc := map[string]any{"id": "example", "type": "Feature"}
	assert.NoError(t, Check(doc, s))
}

func TestCheckRootFailure(t *testing.T) {
	s, err := CompileDocument("mem://item.json", itemSchema)
	require.NoError(t, err)

	doc := map[string]any{"type": "Feature"}
	err = Check(doc, s)

	var conf *stacerrors.ConformanceError
	require.True(t, errors.As(err, &conf), "expected *stacerrors.ConformanceError, got %T", err)
	assert.Empty(t, conf.Path)
	assert.Contains(t, conf.Error(), "of the root of the STAC object")
}

func TestCheckNestedFailure(t *testing.T) {
	s, err := CompileDocument("mem://item.json", itemSchema)
	require.NoError(t, err)

	doc := map[string]any{
		"id":         "example",
		"type":       "Feature",
		"properties": map[string]any{},
	}
	err = Check(doc, s)

	var conf *stacerrors.ConformanceError
	require.True(t, errors.As(err, &conf), "expected *stacerrors.ConformanceError, got %T", err)
	assert.Equal(t, []string{"properties"}, conf.Path)
	assert.Contains(t, conf.Error(), "Error is in properties")
}

// TestCompileFileRelativeRefs verifies relative $ref values resolve against
// the schema's directory, the behavior custom local schemas depend on.
func TestCompileFileRelativeRefs(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "geometry.json", `{
		"type": "object",
		"required": ["coordinates"]
	}`)
	writeSchema(t, dir, "item.json", `{
		"type": "object",
		"required": ["geometry"],
		"properties": {
			"geometry": {"$ref": "geometry.json"}
		}
	}`)

	s, err := CompileFile(filepath.Join(dir, "item.json"))
	require.NoError(t, err)

	valid := map[string]any{
		"geometry": map[string]any{"coordinates": []any{1.0, 2.0}},
	}
	assert.NoError(t, Check(valid, s))

	invalid := map[string]any{
		"geometry": map[string]any{},
	}
	err = Check(invalid, s)
	var conf *stacerrors.ConformanceError
	require.True(t, errors.As(err, &conf))
	assert.Equal(t, []string{"geometry"}, conf.Path)
}

func TestCompileFileMissing(t *testing.T) {
	_, err := CompileFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func writeSchema(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}
