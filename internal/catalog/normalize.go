package catalog

import "strings"

// CleanPartNumber produces the canonical catalog key for a human-entered
// part number: trimmed, uppercased, with separators (hyphen, whitespace,
// slash, backslash), periods, commas and every other non-alphanumeric
// character removed. "12-345 A" and "12345A" normalize to the same key.
//
// The result may be empty; callers must treat an empty key as invalid
// input, never as a valid catalog key.
func CleanPartNumber(input string) string {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
