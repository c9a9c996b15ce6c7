package similarity

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/ai"
	"github.com/spigell/cv-screener/internal/logger"
)

// Embedding scores a pair of texts by cosine similarity of their embeddings.
type Embedding struct {
	embedder ai.Embedder
	logger   *zap.Logger
}

// NewEmbedding wraps an embedder as a similarity engine.
func NewEmbedding(embedder ai.Embedder, l *zap.Logger) *Embedding {
	return &Embedding{
		embedder: embedder,
		logger:   logger.WithCommonFields(l, EmbeddingEngineName, embedder.Model()),
	}
}

// Name implements Engine.
func (*Embedding) Name() string {
	return EmbeddingEngineName
}

// Model returns the underlying embedding model identifier.
func (e *Embedding) Model() string {
	return e.embedder.Model()
}

// Similarity implements Engine. Embedding failures score 0 and are logged.
func (e *Embedding) Similarity(ctx context.Context, a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}

	vecs, err := e.embedder.Embed(ctx, a, b)
	if err != nil {
		e.logger.Warn("embedding texts failed, scoring similarity as 0", zap.Error(err))
		return 0
	}
	if len(vecs) != 2 {
		e.logger.Warn("embedder returned unexpected vector count", zap.Int("count", len(vecs)))
		return 0
	}

	return toScore(cosine(widen(vecs[0]), widen(vecs[1])))
}

func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
