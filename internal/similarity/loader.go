package similarity

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/ai/gemini"
)

const defaultProbeTimeout = 15 * time.Second

// GeminiOptions configures the Gemini embedding loader.
type GeminiOptions struct {
	APIKey       string
	Model        string
	MaxRetries   int
	ProbeTimeout time.Duration
}

// GeminiLoader creates a Gemini embedder and probes it with a short request
// so an unusable key or model is detected before the first real score.
func GeminiLoader(opts GeminiOptions, l *zap.Logger) Loader {
	return func(ctx context.Context) LoadResult {
		embedder, err := gemini.NewEmbedder(ctx, opts.APIKey, opts.Model, opts.MaxRetries, l)
		if err != nil {
			return LoadResult{Err: fmt.Errorf("create gemini embedder: %w", err)}
		}

		timeout := opts.ProbeTimeout
		if timeout <= 0 {
			timeout = defaultProbeTimeout
		}
		probeCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if _, err := embedder.Embed(probeCtx, "probe"); err != nil {
			return LoadResult{Err: fmt.Errorf("probe embedding model %q: %w", embedder.Model(), err)}
		}

		return LoadResult{Engine: NewEmbedding(embedder, l)}
	}
}

// StaticLoader always yields e.
func StaticLoader(e Engine) Loader {
	return func(context.Context) LoadResult {
		return LoadResult{Engine: e}
	}
}

// FailingLoader always reports err, forcing the TF-IDF fallback.
func FailingLoader(err error) Loader {
	return func(context.Context) LoadResult {
		return LoadResult{Err: err}
	}
}
