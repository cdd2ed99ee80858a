package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInventory creates a temp inventory file with the given content.
func writeInventory(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestNewSource tests extension dispatch.
func TestNewSource(t *testing.T) {
	t.Run("csv file", func(t *testing.T) {
		path := writeInventory(t, "inv.csv", "name\n")
		src, err := NewSource(path)
		require.NoError(t, err)
		assert.IsType(t, &csvSource{}, src)
	})

	t.Run("json file", func(t *testing.T) {
		path := writeInventory(t, "inv.json", "[]")
		src, err := NewSource(path)
		require.NoError(t, err)
		assert.IsType(t, &jsonSource{}, src)
	})

	t.Run("extension is case-insensitive", func(t *testing.T) {
		path := writeInventory(t, "inv.CSV", "name\n")
		_, err := NewSource(path)
		assert.NoError(t, err)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewSource("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewSource("does-not-exist.csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inventory file")
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := writeInventory(t, "inv.xlsx", "binary")
		_, err := NewSource(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported inventory format")
	})
}
