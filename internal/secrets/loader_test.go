package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}
	t.Setenv("CV_SCREENER_TEST_KEY", "from-env")

	got, err := Load(Source{Name: "gemini api key", File: path, Env: "CV_SCREENER_TEST_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file secret, got %q", got)
	}
}

func TestLoadFallsBackToEnvThenValue(t *testing.T) {
	t.Setenv("CV_SCREENER_TEST_KEY", " from-env ")

	got, err := Load(Source{Env: "CV_SCREENER_TEST_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env secret, got %q", got)
	}

	t.Setenv("CV_SCREENER_TEST_KEY", "")
	got, err = Load(Source{Env: "CV_SCREENER_TEST_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("expected inline secret, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, []byte("   "), 0o600); err != nil {
		t.Fatalf("write empty file: %v", err)
	}

	tests := []struct {
		name    string
		src     Source
		contain string
	}{
		{name: "missing file", src: Source{Name: "api key", File: filepath.Join(dir, "absent")}, contain: "reading api key from file"},
		{name: "empty file", src: Source{Name: "api key", File: empty}, contain: "is empty"},
		{name: "nothing configured", src: Source{}, contain: "secret is not configured"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contain) {
				t.Fatalf("expected error to contain %q, got %v", tt.contain, err)
			}
		})
	}
}
