package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanPartNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "AB123", "AB123"},
		{"lowercase", "ab123", "AB123"},
		{"hyphen and space", "12-345 A", "12345A"},
		{"slash", "ABC/123", "ABC123"},
		{"backslash", `ABC\123`, "ABC123"},
		{"periods and commas", "1.2,3", "123"},
		{"surrounding whitespace", "  ab-12  ", "AB12"},
		{"only separators", "-- . /", ""},
		{"empty", "", ""},
		{"unicode stripped", "AB№12", "AB12"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanPartNumber(tc.input))
		})
	}
}

func TestCleanPartNumberIdempotent(t *testing.T) {
	for _, input := range []string{"12-345 A", "ab/cd.12", "X Y Z"} {
		once := CleanPartNumber(input)
		assert.Equal(t, once, CleanPartNumber(once), "cleaning must be idempotent for %q", input)
	}
}
