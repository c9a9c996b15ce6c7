package scan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/ingest"
)

const (
	ExtensionFilterName   = "extension"
	ExtractFilterName     = "extract"
	ExcludeFileFilterName = "exclude_file"
	EmptyTextFilterName   = "empty_text"
)

type extensionFilter struct {
	allowed map[string]struct{}
}

// NewExtension drops documents whose extension is not configured.
func NewExtension() Filter {
	return &extensionFilter{}
}

func (f *extensionFilter) Name() string { return ExtensionFilterName }

func (f *extensionFilter) Disable(string) {}

func (f *extensionFilter) IsEnabled() bool { return true }

func (f *extensionFilter) Validate(cfg *Config) error {
	f.allowed = make(map[string]struct{})
	for _, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !ingest.IsSupported("x" + ext) {
			return fmt.Errorf("extension %q is not supported", ext)
		}
		f.allowed[ext] = struct{}{}
	}
	return nil
}

func (f *extensionFilter) Apply(_ context.Context, deps Deps, d *Documents) (*Documents, Step, error) {
	initial := d.Len()
	dropped := d.Keep(f.Name(), func(doc *Document) string {
		if _, ok := f.allowed[strings.ToLower(filepath.Ext(doc.Path))]; ok {
			return ""
		}
		return "extension not allowed"
	})
	if len(dropped) > 0 {
		deps.Logger.Info("excluding documents by extension",
			zap.Strings("excluded_documents", dropped),
			zap.Int("documents_left", d.Len()),
		)
	}
	return d, Step{Initial: initial, Dropped: len(dropped), Left: d.Len()}, nil
}

type extractFilter struct{}

// NewExtract reads each document's text and drops those that cannot be read.
func NewExtract() Filter {
	return &extractFilter{}
}

func (f *extractFilter) Name() string { return ExtractFilterName }

func (f *extractFilter) Disable(string) {}

func (f *extractFilter) IsEnabled() bool { return true }

func (f *extractFilter) Validate(*Config) error { return nil }

func (f *extractFilter) Apply(ctx context.Context, deps Deps, d *Documents) (*Documents, Step, error) {
	initial := d.Len()
	dropped := d.Keep(f.Name(), func(doc *Document) string {
		if err := ctx.Err(); err != nil {
			return err.Error()
		}
		text, err := ingest.ExtractText(doc.Path)
		if err != nil {
			deps.Logger.Warn("document text extraction failed", zap.String("path", doc.Path), zap.Error(err))
			return err.Error()
		}
		sum := sha256.Sum256([]byte(text))
		doc.Text = text
		doc.Hash = hex.EncodeToString(sum[:])
		return ""
	})
	if err := ctx.Err(); err != nil {
		return d, Step{}, err
	}
	return d, Step{Initial: initial, Dropped: len(dropped), Left: d.Len()}, nil
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile drops documents whose content hash is listed in the exclude file.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return ExcludeFileFilterName }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = strings.TrimSpace(cfg.ExcludeFile)
	return nil
}

func (f *excludeFileFilter) Apply(_ context.Context, deps Deps, d *Documents) (*Documents, Step, error) {
	initial := d.Len()
	if f.path == "" {
		return d, Step{Initial: initial, Dropped: 0, Left: d.Len()}, nil
	}

	excluded, err := LoadExcluded(f.path)
	if err != nil {
		return d, Step{}, fmt.Errorf("getting excluded candidates from file: %w", err)
	}

	hashes := excluded.Hashes()
	dropped := d.Keep(f.Name(), func(doc *Document) string {
		if _, ok := hashes[doc.Hash]; ok {
			return "already scanned"
		}
		return ""
	})
	if len(dropped) > 0 {
		deps.Logger.Info("excluding documents based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_documents", dropped),
			zap.Int("documents_left", d.Len()),
		)
	}
	return d, Step{Initial: initial, Dropped: len(dropped), Left: d.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type emptyTextFilter struct {
	disabled bool
	reason   string
}

// NewEmptyText drops documents without any extracted text.
func NewEmptyText() Filter {
	return &emptyTextFilter{}
}

func (f *emptyTextFilter) Name() string { return EmptyTextFilterName }

func (f *emptyTextFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *emptyTextFilter) IsEnabled() bool { return !f.disabled }

func (f *emptyTextFilter) Validate(*Config) error { return nil }

func (f *emptyTextFilter) Apply(_ context.Context, deps Deps, d *Documents) (*Documents, Step, error) {
	initial := d.Len()
	dropped := d.Keep(f.Name(), func(doc *Document) string {
		if strings.TrimSpace(doc.Text) == "" {
			return "no text could be extracted"
		}
		return ""
	})
	if len(dropped) > 0 {
		deps.Logger.Info("excluding documents without text",
			zap.Strings("excluded_documents", dropped),
			zap.Int("documents_left", d.Len()),
		)
	}
	return d, Step{Initial: initial, Dropped: len(dropped), Left: d.Len()}, nil
}

func (f *emptyTextFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason}
}
