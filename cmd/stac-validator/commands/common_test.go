package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(format))
	}
	for _, format := range []string{"", "xml", "JSON", "text "} {
		assert.Error(t, ValidateOutputFormat(format), "format %q", format)
	}
}

func TestOutputStructuredRejectsText(t *testing.T) {
	err := OutputStructured(map[string]any{"a": 1}, FormatText)
	assert.Error(t, err)
}
