// Package clean is the post-processing pass: it deduplicates the raw
// record collection, normalizes text, prices, and image lists, and writes
// the cleaned JSON and CSV artifacts.
package clean

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrMissingInput is returned when a required input file does not exist.
var ErrMissingInput = errors.New("input file not found")

// Load reads a raw record file. The file may hold a single object or an
// array of objects; a bare object is treated as a one-element list. Any
// other top level is a fatal error.
func Load(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	switch v := parsed.(type) {
	case map[string]any:
		return []any{v}, nil
	case []any:
		return v, nil
	default:
		return nil, fmt.Errorf("%s: top-level JSON must be an object or an array", path)
	}
}
