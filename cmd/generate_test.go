package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument_CreatesDestinationDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "index.html")

	require.NoError(t, writeDocument(path, "<html></html>"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestWriteDocument_OverwritesExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.md")

	require.NoError(t, writeDocument(path, "old content that is longer"))
	require.NoError(t, writeDocument(path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
