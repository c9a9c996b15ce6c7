package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spigell/cv-screener/internal/ingest"
)

// Document is a candidate file moving through the filter steps.
type Document struct {
	Name string `json:"name"`
	Path string `json:"path"`
	// Hash is the sha256 of the extracted text, set by the extract step.
	Hash string `json:"hash,omitempty"`
	Text string `json:"-"`
}

// Documents is the working set of a scan.
type Documents struct {
	Items   []*Document
	Skipped []Skipped
}

// Skipped records a document that left the pipeline without a result.
type Skipped struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Step   string `json:"step"`
	Reason string `json:"reason"`
}

// Discover lists the regular files directly inside dir, sorted by name.
func Discover(dir string) (*Documents, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read resumes directory: %w", err)
	}

	docs := &Documents{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		docs.Items = append(docs.Items, &Document{
			Name: ingest.CandidateName(path),
			Path: path,
		})
	}
	sort.Slice(docs.Items, func(i, j int) bool { return docs.Items[i].Path < docs.Items[j].Path })
	return docs, nil
}

// FromPaths builds a working set from explicit file paths.
func FromPaths(paths ...string) *Documents {
	docs := &Documents{}
	for _, path := range paths {
		docs.Items = append(docs.Items, &Document{Name: ingest.CandidateName(path), Path: path})
	}
	return docs
}

func (d *Documents) Len() int {
	return len(d.Items)
}

// Keep retains the documents for which keep returns an empty reason and
// records the others as skipped by step. It returns the dropped names.
func (d *Documents) Keep(step string, keep func(*Document) string) []string {
	var dropped []string
	kept := d.Items[:0]
	for _, doc := range d.Items {
		reason := keep(doc)
		if reason == "" {
			kept = append(kept, doc)
			continue
		}
		d.Skipped = append(d.Skipped, Skipped{Name: doc.Name, Path: doc.Path, Step: step, Reason: reason})
		dropped = append(dropped, doc.Name)
	}
	for i := len(kept); i < len(d.Items); i++ {
		d.Items[i] = nil
	}
	d.Items = kept
	return dropped
}
