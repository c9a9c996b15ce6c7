package similarity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTFIDFSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical texts", a: "Python Django developer with REST experience", b: "Python Django developer with REST experience", want: 100},
		{name: "disjoint vocabularies", a: "kubernetes terraform", b: "watercolor painting", want: 0},
		{name: "empty first", a: "", b: "python developer", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "only stop words", a: "the and of", b: "it is we", want: 0},
		{name: "single characters dropped", a: "a b c", b: "a b c", want: 0},
	}

	engine := NewTFIDF()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, engine.Similarity(context.Background(), tt.a, tt.b), 1e-9)
		})
	}
}

func TestTFIDFPartialOverlap(t *testing.T) {
	t.Parallel()

	engine := NewTFIDF()
	got := engine.Similarity(context.Background(),
		"Senior Python developer. Django, REST APIs, PostgreSQL.",
		"Python engineer with Django experience and Java background",
	)

	if got <= 0 || got >= 100 {
		t.Fatalf("expected partial overlap score in (0,100), got %v", got)
	}
	assert.InDelta(t, got, engine.Similarity(context.Background(),
		"Python engineer with Django experience and Java background",
		"Senior Python developer. Django, REST APIs, PostgreSQL.",
	), 1e-9, "similarity should be symmetric")
}

func TestTFIDFCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := NewTFIDF().Similarity(context.Background(), "GOLANG Kubernetes", "golang kubernetes")
	assert.InDelta(t, 100, got, 1e-9)
}

func TestCosine(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1, cosine([]float64{1, 2}, []float64{2, 4}), 1e-12)
	assert.InDelta(t, 0, cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)
	assert.Zero(t, cosine([]float64{0, 0}, []float64{1, 1}))
	assert.Zero(t, cosine([]float64{1}, []float64{1, 1}))
	assert.Zero(t, cosine(nil, nil))
}
