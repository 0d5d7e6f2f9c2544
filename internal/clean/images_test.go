package clean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/cleverscrape/internal/clean"
)

func TestFlattenImages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want []string
	}{
		{
			name: "nil",
			in:   nil,
			want: nil,
		},
		{
			name: "plain string",
			in:   "https://cdn.example.com/a.jpg",
			want: []string{"https://cdn.example.com/a.jpg"},
		},
		{
			name: "comma separated string",
			in:   "http://cdn/a.jpg, http://cdn/b.jpg",
			want: []string{"http://cdn/a.jpg", "http://cdn/b.jpg"},
		},
		{
			name: "list with duplicates",
			in:   []any{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
			want: []string{"https://cdn.example.com/a.jpg"},
		},
		{
			name: "mapping of lists",
			in: map[string]any{
				"main": []any{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
			},
			want: []string{"https://cdn.example.com/a.jpg"},
		},
		{
			name: "nested list serialized",
			in: []any{
				[]any{"https://cdn.example.com/a.jpg"},
				map[string]any{"thumb": "https://cdn.example.com/b.jpg"},
			},
			want: []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		},
		{
			name: "schemeless pieces dropped, http verbatim kept",
			in:   "http:broken-but-http; not-a-url",
			want: []string{"http:broken-but-http"},
		},
		{
			name: "no urls at all",
			in:   "just text, nothing else",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, clean.FlattenImages(tc.in))
		})
	}
}

func TestImageURLs_KeySelection(t *testing.T) {
	t.Parallel()

	t.Run("preferred key wins", func(t *testing.T) {
		t.Parallel()

		item := map[string]any{
			"images":    []any{"https://cdn.example.com/a.jpg"},
			"image":     "https://cdn.example.com/ignored.jpg",
			"thumbnail": "https://cdn.example.com/also-ignored.jpg",
		}
		assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, clean.ImageURLs(item))
	})

	t.Run("empty preferred key falls through", func(t *testing.T) {
		t.Parallel()

		item := map[string]any{
			"images": []any{},
			"image":  "https://cdn.example.com/b.jpg",
		}
		assert.Equal(t, []string{"https://cdn.example.com/b.jpg"}, clean.ImageURLs(item))
	})

	t.Run("hinted key name", func(t *testing.T) {
		t.Parallel()

		item := map[string]any{
			"produktbild": "https://cdn.example.com/c.jpg",
			"name":        "clever Apfelsaft",
		}
		assert.Equal(t, []string{"https://cdn.example.com/c.jpg"}, clean.ImageURLs(item))
	})

	t.Run("cdn sniff fallback", func(t *testing.T) {
		t.Parallel()

		item := map[string]any{
			"media": "https://cdn.example.com/d.jpg",
			"name":  "clever Orangensaft",
		}
		assert.Equal(t, []string{"https://cdn.example.com/d.jpg"}, clean.ImageURLs(item))
	})

	t.Run("nothing image-like", func(t *testing.T) {
		t.Parallel()

		item := map[string]any{"name": "clever Wasser"}
		assert.Empty(t, clean.ImageURLs(item))
	})
}
