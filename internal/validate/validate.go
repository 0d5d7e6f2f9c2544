// Package validate cross-checks the cleaned JSON and CSV artifacts. All
// checks are read-only; results come back as report structs for the
// command layer to render.
package validate

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jonesrussell/cleverscrape/internal/clean"
	"github.com/jonesrussell/cleverscrape/internal/models"
)

// RequiredFields are the fields every cleaned record is expected to carry.
var RequiredFields = []string{"product_name", "product_url", "price", "currency", "images"}

// JSONReport summarizes the cleaned JSON artifact.
type JSONReport struct {
	// Total is the number of items in the artifact.
	Total int
	// Missing counts, per required field, the items with an empty value.
	Missing map[string]int
}

// Complete reports whether every required field was present on every item.
func (r *JSONReport) Complete() bool {
	for _, n := range r.Missing {
		if n > 0 {
			return false
		}
	}
	return true
}

// CSVReport compares the CSV artifact's row count against the JSON one.
type CSVReport struct {
	Rows      int
	JSONItems int
}

// Match reports whether the two artifacts hold the same number of records.
func (r *CSVReport) Match() bool {
	return r.Rows == r.JSONItems
}

// CheckJSON loads the cleaned JSON artifact and counts missing required
// fields.
func CheckJSON(path string) (*JSONReport, error) {
	items, err := loadCleaned(path)
	if err != nil {
		return nil, err
	}

	report := &JSONReport{
		Total:   len(items),
		Missing: make(map[string]int, len(RequiredFields)),
	}
	for i := range items {
		for _, field := range RequiredFields {
			if items[i].Field(field) == "" {
				report.Missing[field]++
			}
		}
	}
	return report, nil
}

// CheckCSV loads the CSV artifact and compares its row count against the
// JSON artifact's item count.
func CheckCSV(csvPath, jsonPath string) (*CSVReport, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", clean.ErrMissingInput, csvPath)
		}
		return nil, fmt.Errorf("failed to open %s: %w", csvPath, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", csvPath, err)
	}
	rows := len(records)
	if rows > 0 {
		rows-- // header
	}

	items, err := loadCleaned(jsonPath)
	if err != nil {
		return nil, err
	}

	return &CSVReport{Rows: rows, JSONItems: len(items)}, nil
}

// loadCleaned reads a cleaned JSON artifact.
func loadCleaned(path string) ([]models.CleanedItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", clean.ErrMissingInput, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []models.CleanedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return items, nil
}
