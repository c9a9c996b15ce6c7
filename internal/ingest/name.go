package ingest

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CandidateName derives a display name from a file name:
// "jane_doe_cv.pdf" becomes "Jane Doe Cv".
func CandidateName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return cases.Title(language.Und).String(strings.ReplaceAll(stem, "_", " "))
}
