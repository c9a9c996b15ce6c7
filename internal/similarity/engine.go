// Package similarity scores the semantic closeness of two texts on a 0-100 scale.
package similarity

import (
	"context"
	"math"

	"github.com/spigell/cv-screener/internal/util"
)

const (
	// EmbeddingEngineName identifies the embedding-backed engine.
	EmbeddingEngineName = "embedding"
	// TFIDFEngineName identifies the TF-IDF fallback engine.
	TFIDFEngineName = "tfidf"
)

// Engine computes a similarity score in [0,100] for a pair of texts.
// Implementations never fail: degenerate input or backend errors score 0.
type Engine interface {
	Similarity(ctx context.Context, a, b string) float64
	Name() string
}

// cosine returns the cosine of the angle between a and b, or 0 when either
// vector has no magnitude or the lengths differ.
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func toScore(cos float64) float64 {
	return util.Clamp(cos * 100)
}
