// Package ingest reads candidate documents and assessment requests from disk.
package ingest

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/spigell/cv-screener/internal/util"
)

// ErrUnsupportedFormat is returned for file extensions that cannot be read.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// SupportedExtensions lists the extensions ExtractText understands.
var SupportedExtensions = []string{".pdf", ".docx", ".txt", ".md"}

var (
	xmlParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag          = regexp.MustCompile(`<[^>]*>`)
)

// ExtractError reports a document that could not be read.
type ExtractError struct {
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract text from %q: %v", e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// IsSupported reports whether path has an extension ExtractText can read.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ExtractText returns the whitespace-collapsed plain text of the document at path.
func ExtractText(path string) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDocx(path)
	default:
		return "", &ExtractError{Path: path, Err: ErrUnsupportedFormat}
	}
	if err != nil {
		return "", &ExtractError{Path: path, Err: err}
	}

	return util.Clean(text), nil
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractDocx(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

func stripDocxXML(content string) string {
	content = xmlParagraphEnd.ReplaceAllString(content, "\n")
	return html.UnescapeString(xmlTag.ReplaceAllString(content, ""))
}
