package clean

import (
	"regexp"
	"strconv"
	"strings"
)

// priceRe matches a number optionally grouped by thousands separators
// (space, dot, or comma) with an optional 1-2 digit fractional part.
var priceRe = regexp.MustCompile(`\d{1,3}(?:[ .,]\d{3})*(?:[,.\s]\d{1,2})?`)

// cleanedReplacer strips grouping spaces (regular and narrow NBSP) from
// the matched run before separator disambiguation.
var cleanedReplacer = strings.NewReplacer(" ", "", "\u202f", "")

// NormalizePrice locates the numeric substring of a free-text price and
// normalizes it to a "123.45"-style decimal string.
//
// Separator disambiguation: commas without dots mean comma is the decimal
// separator; dots without commas mean the run is already decimal; with
// both (or neither) the comma is taken as decimal and dots as thousands
// grouping. Returns the raw matched substring and the normalized value;
// when parsing fails the raw text is kept and the normalized value is
// empty, and when no numeric substring exists both are empty.
func NormalizePrice(value string) (raw, normalized string) {
	s := strings.TrimSpace(strings.ReplaceAll(value, "\u00a0", " "))
	if s == "" {
		return "", ""
	}

	raw = priceRe.FindString(s)
	if raw == "" {
		return "", ""
	}

	cleaned := cleanedReplacer.Replace(raw)

	var numeric string
	switch {
	case strings.Contains(cleaned, ",") && !strings.Contains(cleaned, "."):
		numeric = strings.ReplaceAll(cleaned, ",", ".")
	case strings.Contains(cleaned, ".") && !strings.Contains(cleaned, ","):
		numeric = cleaned
	default:
		numeric = strings.ReplaceAll(strings.ReplaceAll(cleaned, ".", ""), ",", ".")
	}

	f, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return raw, ""
	}
	return raw, strconv.FormatFloat(f, 'f', 2, 64)
}
