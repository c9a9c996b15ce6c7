package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYears(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{name: "plain", text: "5 years of experience", want: 5, found: true},
		{name: "plus and abbreviation", text: "3+ yrs Python", want: 3, found: true},
		{name: "maximum wins", text: "2 years Go, 7 Years Java, 4yr SQL", want: 7, found: true},
		{name: "uppercase", text: "10 YEARS", want: 10, found: true},
		{name: "none", text: "seasoned engineer", found: false},
		{name: "empty", text: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractYears(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExperienceMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		job       string
		resume    string
		wantScore float64
		wantNotes string
	}{
		{
			name:      "resume missing years",
			job:       "5+ years required",
			resume:    "experienced developer",
			wantScore: 50,
			wantNotes: "Insufficient explicit experience data in JD or resume.",
		},
		{
			name:      "job missing years",
			job:       "developer",
			resume:    "4 years",
			wantScore: 50,
			wantNotes: "Insufficient explicit experience data in JD or resume.",
		},
		{
			name:      "partial",
			job:       "5+ years",
			resume:    "3 years",
			wantScore: 60,
			wantNotes: "JD requires approximately 5+ years; resume indicates about 3 years.",
		},
		{
			name:      "over qualified clamps",
			job:       "2 years",
			resume:    "8 years",
			wantScore: 100,
			wantNotes: "JD requires approximately 2+ years; resume indicates about 8 years.",
		},
		{
			name:      "zero years required",
			job:       "0 years",
			resume:    "1 year",
			wantScore: 100,
			wantNotes: "JD requires approximately 0+ years; resume indicates about 1 years.",
		},
		{
			name:      "rounded",
			job:       "3 years",
			resume:    "2 years",
			wantScore: 66.67,
			wantNotes: "JD requires approximately 3+ years; resume indicates about 2 years.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, notes := ExperienceMatch(tt.job, tt.resume)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
			assert.Equal(t, tt.wantNotes, notes)
		})
	}
}
