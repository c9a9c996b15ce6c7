package util

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFKC so ligatures and full-width forms coming out of
// PDF extraction compare equal to their plain spellings.
func Normalize(s string) string {
	return norm.NFKC.String(s)
}

// Clean normalizes the text and collapses every whitespace run into a single space.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(Normalize(s)), " ")
}
