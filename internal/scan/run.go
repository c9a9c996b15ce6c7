package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spigell/cv-screener/internal/assessment"
)

// Run is the outcome of a batch scan.
type Run struct {
	ID        uuid.UUID       `json:"id"`
	StartedAt time.Time       `json:"started_at"`
	JobText   string          `json:"job_text"`
	Steps     map[string]Step `json:"steps"`
	Results   []Result        `json:"results"`
	Skipped   []Skipped       `json:"skipped"`
}

// Result is one assessed candidate.
type Result struct {
	Name   string               `json:"name"`
	Path   string               `json:"path"`
	Hash   string               `json:"hash"`
	Report *assessment.QAReport `json:"report"`
}

// Ranking renders one line per candidate in result order.
func (r *Run) Ranking() []string {
	lines := make([]string, 0, len(r.Results))
	for i, res := range r.Results {
		lines = append(lines, fmt.Sprintf("%2d. %-30s %6.2f  %-6s %s  %s",
			i+1, res.Name, res.Report.FinalWeightedScore,
			res.Report.Recommendation, res.Report.QAGrade, res.Report.Classification,
		))
	}
	return lines
}

// Find returns the result for a candidate name, matched case-insensitively.
func (r *Run) Find(name string) *Result {
	for i := range r.Results {
		if strings.EqualFold(r.Results[i].Name, name) {
			return &r.Results[i]
		}
	}
	return nil
}

// Names lists candidate names in result order.
func (r *Run) Names() []string {
	names := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		names = append(names, res.Name)
	}
	return names
}

// DumpToTmpFile writes the run as indented JSON to a new temporary file.
func (r *Run) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "cv-screener-run_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ToExcluded converts the assessed candidates into exclude file entries.
func (r *Run) ToExcluded() *ExcludedCandidates {
	now := time.Now().UTC()
	excluded := &ExcludedCandidates{}
	for _, res := range r.Results {
		excluded.Items = append(excluded.Items, &ExcludedCandidate{
			Hash:       res.Hash,
			Name:       res.Name,
			Path:       res.Path,
			RunID:      r.ID.String(),
			ExcludedAt: now,
		})
	}
	return excluded
}

// AppendToExcludeFile adds the assessed candidates to the exclude file at path,
// creating it when needed.
func (r *Run) AppendToExcludeFile(path string) error {
	existing, err := LoadExcluded(path)
	if err != nil {
		return fmt.Errorf("read exclude file: %w", err)
	}
	existing.Append(r.ToExcluded())
	if err := existing.ToFile(path); err != nil {
		return fmt.Errorf("write exclude file: %w", err)
	}
	return nil
}
