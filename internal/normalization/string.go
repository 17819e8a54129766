package normalization

import (
	"strings"
)

// NormalizeID turns a raw national identifier into its canonical form:
// surrounding whitespace stripped, letters upper-cased. The same form is
// used as the storage key and for every lookup comparison.
func NormalizeID(input string) string {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	return normalized
}

func NormalizeName(input string) string {
	return strings.TrimSpace(input)
}
