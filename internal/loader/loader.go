// Package loader reads portfolio inventories from CSV and JSON files.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Texasdada13/apptriage/internal/contract"
)

// NewSource returns a RecordSource for the given inventory path, dispatching
// on the file extension.
func NewSource(path string) (contract.RecordSource, error) {
	if path == "" {
		return nil, fmt.Errorf("inventory path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("inventory file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &csvSource{path: path}, nil
	case ".json":
		return &jsonSource{path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported inventory format %q (expected .csv or .json)", filepath.Ext(path))
	}
}
