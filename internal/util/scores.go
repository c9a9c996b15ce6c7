package util

import "math"

const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Clamp bounds a score to [MinScore, MaxScore]. NaN collapses to MinScore.
func Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return MinScore
	}
	return math.Max(MinScore, math.Min(MaxScore, v))
}

// Round2 rounds to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
