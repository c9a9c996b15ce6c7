package scan

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"
)

// ExcludedCandidates is the content of an exclude file.
type ExcludedCandidates struct {
	Items []*ExcludedCandidate `json:"items"`
}

// ExcludedCandidate identifies an already scanned document by content hash.
type ExcludedCandidate struct {
	Hash       string    `json:"hash"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	RunID      string    `json:"run_id"`
	ExcludedAt time.Time `json:"excluded_at"`
}

// LoadExcluded reads an exclude file. A missing or empty file yields an empty list.
func LoadExcluded(path string) (*ExcludedCandidates, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ExcludedCandidates{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return &ExcludedCandidates{}, nil
	}

	var excluded ExcludedCandidates
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedCandidates) Append(other *ExcludedCandidates) {
	e.Items = append(e.Items, other.Items...)
}

// Hashes returns the set of excluded content hashes.
func (e *ExcludedCandidates) Hashes() map[string]struct{} {
	hashes := make(map[string]struct{}, len(e.Items))
	for _, item := range e.Items {
		hashes[item.Hash] = struct{}{}
	}
	return hashes
}

// ToFile overwrites path with the list.
func (e *ExcludedCandidates) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
