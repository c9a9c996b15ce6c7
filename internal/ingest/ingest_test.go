package ingest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-screener/internal/scoring"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExtractTextPlain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := writeFile(t, dir, "cv.txt", "  Jane Doe\n\n  Go   developer\t5 years ")
	md := writeFile(t, dir, "cv.MD", "# Summary\n\n- Python\n- ﬁnance")

	got, err := ExtractText(txt)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe Go developer 5 years", got)

	got, err = ExtractText(md)
	require.NoError(t, err)
	assert.Equal(t, "# Summary - Python - finance", got)
}

func TestExtractTextErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := ExtractText(writeFile(t, dir, "photo.png", "not text"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, filepath.Join(dir, "photo.png"), extractErr.Path)

	_, err = ExtractText(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = ExtractText(writeFile(t, dir, "broken.pdf", "not a pdf"))
	require.Error(t, err)
	require.True(t, errors.As(err, &extractErr))

	_, err = ExtractText(writeFile(t, dir, "broken.docx", "not a zip"))
	require.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"a.pdf", "b.DOCX", "c.txt", "d.md"} {
		assert.True(t, IsSupported(name), name)
	}
	for _, name := range []string{"a.doc", "b.png", "noext"} {
		assert.False(t, IsSupported(name), name)
	}
}

func TestStripDocxXML(t *testing.T) {
	t.Parallel()

	content := `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>R&amp;D engineer</w:t><w:tab/><w:t>Go</w:t></w:r></w:p></w:body></w:document>`

	assert.Equal(t, "Jane Doe\nR&D engineer\nGo\n", stripDocxXML(content))
}

func TestCandidateName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"resumes/jane_doe.pdf":      "Jane Doe",
		"JOHN_SMITH_CV.docx":        "John Smith Cv",
		"/tmp/maría_lópez.txt":      "María López",
		"plain":                     "Plain",
		"archive.v2/first_last.txt": "First Last",
	}

	for in, want := range tests {
		assert.Equal(t, want, CandidateName(in), in)
	}
}

func TestLoadRequest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "job.txt", "Backend Engineer needing Python,   Django")

	tests := []struct {
		name       string
		body       string
		wantJob    string
		wantSkills []string
		check      func(t *testing.T, cfg scoring.Config)
	}{
		{
			name:       "inline job with skill array",
			body:       `{"job_text": "Go developer", "required_skills": ["Go", " SQL ", ""]}`,
			wantJob:    "Go developer",
			wantSkills: []string{"Go", "SQL"},
		},
		{
			name:       "job file with comma skills",
			body:       `{"job_file": "job.txt", "required_skills": "Python, Django,"}`,
			wantJob:    "Backend Engineer needing Python, Django",
			wantSkills: []string{"Python", "Django"},
		},
		{
			name:    "skills omitted",
			body:    `{"job_text": "Go developer"}`,
			wantJob: "Go developer",
		},
		{
			name:    "policy overrides",
			body:    `{"job_text": "x", "policy": {"simple": {"mode": "single_threshold", "single_threshold": "50"}, "qa": {"risk_penalty": 10}}}`,
			wantJob: "x",
			check: func(t *testing.T, cfg scoring.Config) {
				assert.Equal(t, scoring.ModeSingleThreshold, cfg.Simple.Mode)
				assert.Equal(t, 50.0, cfg.Simple.SingleThreshold)
				assert.Equal(t, 10.0, cfg.QA.RiskPenalty)
				assert.Equal(t, 0.6, cfg.Simple.SemanticWeight)
			},
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".json", tt.body)

			req, err := LoadRequest(path, scoring.DefaultConfig())
			require.NoError(t, err)
			assert.Equal(t, tt.wantJob, req.JobText)
			assert.Equal(t, tt.wantSkills, req.RequiredSkills)
			if tt.check != nil {
				tt.check(t, req.Scoring)
			}
		})
	}
}

func TestLoadRequestRejects(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"no job":             `{"required_skills": ["Go"]}`,
		"both job sources":   `{"job_text": "a", "job_file": "b.txt"}`,
		"unknown field":      `{"job_text": "a", "salary": 10}`,
		"skills wrong type":  `{"job_text": "a", "required_skills": 5}`,
		"unknown policy key": `{"job_text": "a", "policy": {"simple": {"bonus": 1}}}`,
		"invalid policy":     `{"job_text": "a", "policy": {"simple": {"semantic_weight": 3}}}`,
		"not json":           `{job_text`,
	}

	dir := t.TempDir()
	i := 0
	for name, body := range tests {
		i++
		path := writeFile(t, dir, "req"+string(rune('a'+i))+".json", body)
		_, err := LoadRequest(path, scoring.DefaultConfig())
		assert.Error(t, err, name)
	}

	var schemaErr *SchemaError
	_, err := LoadRequest(writeFile(t, dir, "schema.json", `{"salary": 1}`), scoring.DefaultConfig())
	require.ErrorAs(t, err, &schemaErr)
	assert.NotEmpty(t, schemaErr.Errors)
}

func TestApplyPolicyKeepsBaseOnError(t *testing.T) {
	t.Parallel()

	base := scoring.DefaultConfig()
	got, err := ApplyPolicy(base, map[string]any{"qa": map[string]any{"hire_threshold": 10}})
	require.Error(t, err)
	assert.Equal(t, base, got)

	got, err = ApplyPolicy(base, nil)
	require.NoError(t, err)
	assert.Equal(t, base, got)
}
