package clean

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonesrussell/cleverscrape/internal/models"
)

// WriteJSON writes the cleaned records as a pretty-printed UTF-8 JSON
// array. The whole array is encoded in memory before anything touches
// the filesystem, so no partial artifact is ever persisted.
func WriteJSON(path string, items []models.CleanedItem) error {
	if items == nil {
		items = []models.CleanedItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("failed to encode cleaned items: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes the cleaned records as UTF-8 CSV with the fixed column
// order, one header row plus one row per record. Absent fields are empty
// cells.
func WriteCSV(path string, items []models.CleanedItem) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(models.CleanedFieldOrder); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range items {
		if err := w.Write(items[i].Record()); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
