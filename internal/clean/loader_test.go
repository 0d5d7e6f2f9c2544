package clean_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/cleverscrape/internal/clean"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "output.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Array(t *testing.T) {
	t.Parallel()

	entries, err := clean.Load(writeFixture(t, `[{"unique_id":"1"},{"unique_id":"2"}]`))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLoad_BareObjectWrapped(t *testing.T) {
	t.Parallel()

	entries, err := clean.Load(writeFixture(t, `{"unique_id":"1"}`))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	item, ok := entries[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1", item["unique_id"])
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := clean.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, clean.ErrMissingInput)
}

func TestLoad_ScalarTopLevelRejected(t *testing.T) {
	t.Parallel()

	_, err := clean.Load(writeFixture(t, `"just a string"`))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := clean.Load(writeFixture(t, `[{"unique_id":`))
	assert.Error(t, err)
}
