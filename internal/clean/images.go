package clean

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// urlRe matches an http(s) URL up to the next delimiter.
var urlRe = regexp.MustCompile(`(?i)https?://[^\s"',;]+`)

// delimRe splits comma/semicolon-separated URL lists.
var delimRe = regexp.MustCompile(`[;,]\s*`)

// preferredImageKeys are tried first, in priority order, when choosing
// which field of a raw record holds the images.
var preferredImageKeys = []string{"images", "image", "image_urls", "image_url", "imageUrls"}

// imageKeyHints mark field names that likely contain images.
var imageKeyHints = []string{"image", "img", "picture", "foto", "bild"}

// urlsFromString extracts URLs from free text: pattern match first, then
// splitting on commas/semicolons and re-scanning each piece.
func urlsFromString(s string) []string {
	if s == "" {
		return nil
	}
	if found := urlRe.FindAllString(s, -1); found != nil {
		return found
	}
	var out []string
	for _, piece := range delimRe.Split(s, -1) {
		piece = strings.Trim(strings.TrimSpace(piece), `"'`)
		if m := urlRe.FindString(piece); m != "" {
			out = append(out, m)
		}
	}
	return out
}

// FlattenImages reduces any nesting of lists, mappings, and strings to a
// flat, order-preserving, de-duplicated list of URL strings. Lists are
// walked element-wise, mappings value-wise with keys sorted so output is
// deterministic, and the string case is the recursion base.
func FlattenImages(value any) []string {
	var out []string
	seen := make(map[string]struct{})
	flattenInto(value, &out, seen)
	return out
}

func flattenInto(value any, out *[]string, seen map[string]struct{}) {
	switch v := value.(type) {
	case nil:
	case []any:
		for _, el := range v {
			if el == nil {
				continue
			}
			switch el.(type) {
			case []any, map[string]any:
				// Non-scalar elements are serialized to text first.
				if data, err := json.Marshal(el); err == nil {
					appendURLs(urlsFromString(string(data)), out, seen)
				}
			default:
				appendURLs(urlsFromString(stringify(el)), out, seen)
			}
		}
	case map[string]any:
		for _, k := range sortedKeys(v) {
			flattenInto(v[k], out, seen)
		}
	case string:
		urls := urlsFromString(v)
		if len(urls) == 0 {
			// Last resort: comma/semicolon-delimited pieces that
			// literally start with "http" are taken verbatim.
			for _, piece := range delimRe.Split(v, -1) {
				piece = strings.Trim(strings.TrimSpace(piece), `"'`)
				if strings.HasPrefix(piece, "http") {
					urls = append(urls, piece)
				}
			}
		}
		appendURLs(urls, out, seen)
	default:
		flattenInto(stringify(v), out, seen)
	}
}

// appendURLs adds urls to out, dropping empties and duplicates.
func appendURLs(urls []string, out *[]string, seen map[string]struct{}) {
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		*out = append(*out, u)
	}
}

// ImageURLs picks the image field of a raw record and flattens it.
// Selection order: exact preferred key names, then any key whose name
// hints at images, then any field whose serialized text mentions a CDN
// or URL at all.
func ImageURLs(item map[string]any) []string {
	for _, key := range preferredImageKeys {
		if v, ok := item[key]; ok {
			if urls := FlattenImages(v); len(urls) > 0 {
				return urls
			}
		}
	}

	for _, key := range guessImageKeys(item) {
		if urls := FlattenImages(item[key]); len(urls) > 0 {
			return urls
		}
	}

	for _, key := range sortedKeys(item) {
		v := item[key]
		switch v.(type) {
		case []any, map[string]any, string:
		default:
			continue
		}
		sval := stringifyField(v)
		lower := strings.ToLower(sval)
		if !strings.Contains(lower, "cdn") && !strings.Contains(lower, "http") {
			continue
		}
		if urls := FlattenImages(v); len(urls) > 0 {
			return urls
		}
	}

	return nil
}

// guessImageKeys returns the record's keys whose names hint at images.
func guessImageKeys(item map[string]any) []string {
	var keys []string
	for _, k := range sortedKeys(item) {
		lower := strings.ToLower(k)
		for _, hint := range imageKeyHints {
			if strings.Contains(lower, hint) {
				keys = append(keys, k)
				break
			}
		}
	}
	return keys
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// stringifyField serializes a non-string field to JSON text for the
// cdn/http sniff, matching how nested values are scanned.
func stringifyField(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprint(v)
}
