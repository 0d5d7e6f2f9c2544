package validate_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/cleverscrape/internal/clean"
	"github.com/jonesrussell/cleverscrape/internal/logger"
	"github.com/jonesrussell/cleverscrape/internal/models"
	"github.com/jonesrussell/cleverscrape/internal/validate"
)

// writeArtifacts runs the cleaning pass over entries and writes both
// artifacts into a temp dir, returning their paths.
func writeArtifacts(t *testing.T, entries []any) (jsonPath, csvPath string) {
	t.Helper()

	items, _ := clean.Process(entries, logger.NewNoOp())
	dir := t.TempDir()
	jsonPath = filepath.Join(dir, "cleaned_output.json")
	csvPath = filepath.Join(dir, "cleaned_output.csv")
	require.NoError(t, clean.WriteJSON(jsonPath, items))
	require.NoError(t, clean.WriteCSV(csvPath, items))
	return jsonPath, csvPath
}

func TestCheckJSON_CompleteRecords(t *testing.T) {
	t.Parallel()

	jsonPath, _ := writeArtifacts(t, []any{
		map[string]any{
			"unique_id":    "1",
			"product_name": "clever Apfelsaft",
			"product_url":  "http://x/p/1",
			"price":        "€ 1,19",
			"currency":     "€",
			"images":       "https://cdn.example.com/a.jpg",
		},
	})

	report, err := validate.CheckJSON(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.True(t, report.Complete())
}

func TestCheckJSON_MissingFieldsCounted(t *testing.T) {
	t.Parallel()

	jsonPath, _ := writeArtifacts(t, []any{
		map[string]any{"unique_id": "1", "product_name": "Ohne Preis"},
		map[string]any{"unique_id": "2", "price": "€ 2,00"},
	})

	report, err := validate.CheckJSON(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.False(t, report.Complete())
	assert.Equal(t, 1, report.Missing["product_name"])
	assert.Equal(t, 1, report.Missing["price"])
	assert.Equal(t, 2, report.Missing["product_url"])
	assert.Equal(t, 2, report.Missing["images"])
}

func TestCheckCSV_CountsMatch(t *testing.T) {
	t.Parallel()

	jsonPath, csvPath := writeArtifacts(t, []any{
		map[string]any{"unique_id": "1"},
		map[string]any{"unique_id": "2"},
	})

	report, err := validate.CheckCSV(csvPath, jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Rows)
	assert.Equal(t, 2, report.JSONItems)
	assert.True(t, report.Match())
}

func TestCheckCSV_Mismatch(t *testing.T) {
	t.Parallel()

	jsonPath, csvPath := writeArtifacts(t, []any{
		map[string]any{"unique_id": "1"},
		map[string]any{"unique_id": "2"},
	})

	// Rewrite the CSV with one record missing.
	items, _ := clean.Process([]any{map[string]any{"unique_id": "1"}}, logger.NewNoOp())
	require.NoError(t, clean.WriteCSV(csvPath, items))

	report, err := validate.CheckCSV(csvPath, jsonPath)
	require.NoError(t, err)
	assert.False(t, report.Match())
}

func TestCheckJSON_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := validate.CheckJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, clean.ErrMissingInput)
}

func TestRequiredFieldsAreCleanedColumns(t *testing.T) {
	t.Parallel()

	// Guards against the required-field list drifting away from the
	// actual record schema.
	cols := make(map[string]struct{}, len(models.CleanedFieldOrder))
	for _, c := range models.CleanedFieldOrder {
		cols[c] = struct{}{}
	}
	for _, f := range validate.RequiredFields {
		_, ok := cols[f]
		assert.True(t, ok, "required field %s is not a cleaned column", f)
	}
}
