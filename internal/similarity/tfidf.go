package similarity

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// TFIDF scores a pair of texts by cosine similarity of their TF-IDF vectors,
// fitted on exactly those two documents.
type TFIDF struct{}

// NewTFIDF returns the TF-IDF engine.
func NewTFIDF() *TFIDF {
	return &TFIDF{}
}

// Name implements Engine.
func (*TFIDF) Name() string {
	return TFIDFEngineName
}

// Similarity implements Engine.
func (*TFIDF) Similarity(_ context.Context, a, b string) float64 {
	docs := [2]map[string]float64{termCounts(a), termCounts(b)}

	df := make(map[string]int)
	for _, doc := range docs {
		for term := range doc {
			df[term]++
		}
	}
	if len(df) == 0 {
		return 0
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)

	n := float64(len(docs))
	vectors := [2][]float64{make([]float64, len(vocab)), make([]float64, len(vocab))}
	for i, term := range vocab {
		idf := math.Log((1+n)/(1+float64(df[term]))) + 1
		for d, doc := range docs {
			vectors[d][i] = doc[term] * idf
		}
	}

	return toScore(cosine(vectors[0], vectors[1]))
}

func termCounts(text string) map[string]float64 {
	counts := make(map[string]float64)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		counts[tok]++
	}
	return counts
}
