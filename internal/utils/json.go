package utils

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// LoadJSON reads name from fsys and unmarshals it into target.
func LoadJSON(fsys fs.FS, name string, target interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", name, err)
	}
	return nil
}
