package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel      = "text-embedding-004"
	defaultMaxRetries = 2
	// Gemini rejects embedding requests above roughly 10k tokens.
	maxInputBytes = 40000
	baseBackoff   = 500 * time.Millisecond
)

var sleep = time.Sleep

type embedModels interface {
	EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error)
}

// Embedder wraps the Google GenAI client to produce text embeddings.
type Embedder struct {
	models     embedModels
	model      string
	maxRetries int
	logger     *zap.Logger
}

// NewEmbedder creates an Embedder configured for the Gemini API backend.
func NewEmbedder(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*Embedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Embedder{
		models:     client.Models,
		model:      model,
		maxRetries: maxRetries,
		logger:     logger,
	}, nil
}

// Embed returns one vector per text. Temporary API failures are retried with
// linear backoff up to maxRetries times after the first attempt.
func (e *Embedder) Embed(ctx context.Context, texts ...string) ([][]float32, error) {
	if e == nil || e.models == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}
	if len(texts) == 0 {
		return nil, errors.New("at least one text is required")
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.Text(truncateUTF8(text, maxInputBytes))...)
	}

	attempts := e.maxRetries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := e.models.EmbedContent(ctx, e.model, contents, nil)
		if err == nil {
			return vectors(resp, len(texts))
		}

		lastErr = err
		if !isTemporary(err) || attempt == attempts {
			break
		}

		delay := time.Duration(attempt) * baseBackoff
		e.logger.Debug("gemini embed content failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		sleep(delay)
	}

	return nil, fmt.Errorf("embed content: %w", lastErr)
}

// Model returns the embedding model identifier.
func (e *Embedder) Model() string {
	if e == nil {
		return ""
	}
	return e.model
}

// truncateUTF8 cuts s to at most limit bytes without splitting a rune.
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

func vectors(resp *genai.EmbedContentResponse, want int) ([][]float32, error) {
	if resp == nil || len(resp.Embeddings) != want {
		return nil, errors.New("gemini api returned unexpected embeddings count")
	}

	out := make([][]float32, 0, want)
	for _, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, errors.New("gemini api returned empty embedding")
		}
		out = append(out, emb.Values)
	}
	return out, nil
}

func isTemporary(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}
