package clean

import (
	"strings"

	"github.com/jonesrussell/cleverscrape/internal/logger"
	"github.com/jonesrussell/cleverscrape/internal/models"
)

// dedupKeyFields is the identity priority list: the first non-empty of
// these per record is its dedup key.
var dedupKeyFields = []string{"unique_id", "product_id", "product_url"}

// Stats summarizes one cleaning run for the operator report.
type Stats struct {
	// Input is the number of top-level entries read.
	Input int
	// Cleaned is the number of records emitted.
	Cleaned int
	// Removed is the number of records dropped as duplicates.
	Removed int
	// WithImages is the number of emitted records that kept at least one image.
	WithImages int
}

// Process runs the cleaning pass over the raw entries: non-record entries
// are skipped silently, duplicates (by dedup key) are dropped and
// counted, and every surviving record is normalized field by field.
func Process(entries []any, log logger.Interface) ([]models.CleanedItem, Stats) {
	cleaned := make([]models.CleanedItem, 0, len(entries))
	stats := Stats{Input: len(entries)}
	seenKeys := make(map[string]struct{})

	for _, entry := range entries {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		if key := dedupKey(item); key != "" {
			if _, dup := seenKeys[key]; dup {
				stats.Removed++
				log.Debug("Duplicate record dropped", "key", key)
				continue
			}
			seenKeys[key] = struct{}{}
		}

		out := cleanItem(item)
		if out.Images != "" {
			stats.WithImages++
		}
		cleaned = append(cleaned, out)
	}

	stats.Cleaned = len(cleaned)
	return cleaned, stats
}

// dedupKey returns the record's identity: the first non-empty of the key
// fields, compared for exact string equality across the run.
func dedupKey(item map[string]any) string {
	for _, field := range dedupKeyFields {
		v, ok := item[field]
		if !ok || v == nil {
			continue
		}
		if s := stringify(v); s != "" {
			return s
		}
	}
	return ""
}

// cleanItem normalizes one raw record into a CleanedItem.
func cleanItem(item map[string]any) models.CleanedItem {
	out := models.CleanedItem{
		ProductURL:         Text(item["product_url"]),
		ProductName:        Text(item["product_name"]),
		Currency:           Text(item["currency"]),
		ProductDescription: Text(item["product_description"]),
		UniqueID:           Text(item["unique_id"]),
		ProductID:          Text(item["product_id"]),
		Ingredients:        Text(item["ingredients"]),
		Details:            Text(item["details"]),
	}

	out.Price, out.RegularPrice = NormalizePrice(priceSource(item))
	out.Images = strings.Join(ImageURLs(item), ";")

	return out
}

// priceSource picks the raw price text: the price field, falling back to
// the spider's inline regular_price.
func priceSource(item map[string]any) string {
	for _, field := range []string{"price", "regular_price"} {
		v, ok := item[field]
		if !ok || v == nil {
			continue
		}
		if s := stringify(v); s != "" {
			return s
		}
	}
	return ""
}
