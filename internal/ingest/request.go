package ingest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"

	"github.com/spigell/cv-screener/internal/scoring"
	"github.com/spigell/cv-screener/internal/screening"
)

//go:embed request.schema.json
var requestSchema string

// Request is a decoded assessment request file.
type Request struct {
	JobText    string
	ResumeText string
	// RequiredSkills is nil when the request does not list any.
	RequiredSkills []string
	Scoring        scoring.Config
}

type rawRequest struct {
	JobText        string         `json:"job_text"`
	JobFile        string         `json:"job_file"`
	ResumeText     string         `json:"resume_text"`
	ResumeFile     string         `json:"resume_file"`
	RequiredSkills any            `json:"required_skills"`
	Policy         map[string]any `json:"policy"`
}

// SchemaError lists the schema violations of a request file.
type SchemaError struct {
	Path   string
	Errors []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("request %q does not match schema: %s", e.Path, strings.Join(e.Errors, "; "))
}

// LoadRequest reads and validates a JSON request file. Policy overrides are
// applied on top of base. Relative job_file and resume_file paths are resolved
// against the request file directory.
func LoadRequest(path string, base scoring.Config) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request file: %w", err)
	}

	if err := validateRequest(path, data); err != nil {
		return nil, err
	}

	var raw rawRequest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode request file: %w", err)
	}

	req := &Request{JobText: raw.JobText, ResumeText: raw.ResumeText}
	dir := filepath.Dir(path)

	if raw.JobFile != "" {
		if req.JobText, err = ExtractText(resolve(dir, raw.JobFile)); err != nil {
			return nil, err
		}
	}
	if raw.ResumeFile != "" {
		if req.ResumeText, err = ExtractText(resolve(dir, raw.ResumeFile)); err != nil {
			return nil, err
		}
	}

	switch skills := raw.RequiredSkills.(type) {
	case string:
		req.RequiredSkills = screening.ParseSkills(skills)
	case []any:
		req.RequiredSkills = make([]string, 0, len(skills))
		for _, s := range skills {
			if str, ok := s.(string); ok && strings.TrimSpace(str) != "" {
				req.RequiredSkills = append(req.RequiredSkills, strings.TrimSpace(str))
			}
		}
	}

	if req.Scoring, err = ApplyPolicy(base, raw.Policy); err != nil {
		return nil, err
	}
	return req, nil
}

// ApplyPolicy decodes overrides onto a copy of base and validates the result.
func ApplyPolicy(base scoring.Config, overrides map[string]any) (scoring.Config, error) {
	cfg := base
	if len(overrides) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "json",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return base, fmt.Errorf("create policy decoder: %w", err)
	}
	if err := decoder.Decode(overrides); err != nil {
		return base, fmt.Errorf("decode policy overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

func validateRequest(path string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(requestSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate request file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Path: path, Errors: make([]string, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		schemaErr.Errors = append(schemaErr.Errors, desc.String())
	}
	return schemaErr
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
