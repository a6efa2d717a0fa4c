package utils

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadJSON tests the JSON loading functionality
func TestLoadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"valid.json":       {Data: []byte(`{"name": "test", "value": 42}`)},
		"invalid.json":     {Data: []byte(`{"name": `)},
		"nested/list.json": {Data: []byte(`[1, 2, 3]`)},
	}

	t.Run("loads valid JSON file successfully", func(t *testing.T) {
		var result struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		}

		err := LoadJSON(fsys, "valid.json", &result)

		require.NoError(t, err)
		assert.Equal(t, "test", result.Name)
		assert.Equal(t, 42, result.Value)
	})

	t.Run("loads from nested path", func(t *testing.T) {
		var result []int
		require.NoError(t, LoadJSON(fsys, "nested/list.json", &result))
		assert.Equal(t, []int{1, 2, 3}, result)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		var result map[string]interface{}
		err := LoadJSON(fsys, "missing.json", &result)

		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		var result map[string]interface{}
		err := LoadJSON(fsys, "invalid.json", &result)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}
