package spider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonesrussell/cleverscrape/internal/models"
)

// WriteRaw writes the collected records as a pretty-printed JSON array.
// The whole collection is serialized in memory first, so a failed run
// never leaves a partial file behind.
func WriteRaw(path string, items []models.RawItem) error {
	if items == nil {
		items = []models.RawItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode raw items: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
