package clean

import (
	"fmt"
	"strings"
)

// Text normalizes any field value to a whitespace-collapsed string:
// runs of whitespace (including NBSP) become a single space, the ends are
// trimmed, and nil becomes the empty string. Non-string scalars are
// stringified first.
func Text(v any) string {
	if v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return strings.Join(strings.Fields(s), " ")
}
