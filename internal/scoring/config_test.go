package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.6, cfg.Simple.SemanticWeight)
	assert.Equal(t, ModeThreeTier, cfg.Simple.Mode)
	assert.Equal(t, 7.0, cfg.QA.RiskPenalty)
	assert.Equal(t, 60.0, cfg.Grading.ADocQuality)
}

func TestConfigValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "weight above one", mutate: func(c *Config) { c.Simple.SemanticWeight = 1.5 }},
		{name: "negative penalty", mutate: func(c *Config) { c.QA.RiskPenalty = -1 }},
		{name: "unknown mode", mutate: func(c *Config) { c.Simple.Mode = "five_tier" }},
		{name: "threshold out of range", mutate: func(c *Config) { c.Simple.SingleThreshold = 120 }},
		{name: "shortlist below maybe", mutate: func(c *Config) { c.Simple.ShortlistThreshold = 30 }},
		{name: "hire below hold", mutate: func(c *Config) { c.QA.HireThreshold = 50 }},
		{name: "grade cut-offs unordered", mutate: func(c *Config) { c.Grading.BThreshold = 90 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
