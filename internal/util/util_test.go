package util

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  float64
		expect float64
	}{
		{name: "below range", input: -12.5, expect: 0},
		{name: "inside range", input: 42.42, expect: 42.42},
		{name: "above range", input: 180, expect: 100},
		{name: "nan", input: math.NaN(), expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Clamp(tt.input); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	if got := Round2(66.66666); got != 66.67 {
		t.Fatalf("expected 66.67, got %v", got)
	}
	if got := Round2(80); got != 80 {
		t.Fatalf("expected 80, got %v", got)
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "collapses whitespace", input: "  Senior\n\n Engineer\t Go  ", expect: "Senior Engineer Go"},
		{name: "expands ligatures", input: "certiﬁcation", expect: "certification"},
		{name: "full width digits", input: "５ years", expect: "5 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Clean(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
