package screening

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeCertifications(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		job        string
		resume     string
		wantStatus CertificationStatus
		wantDetail string
	}{
		{
			name:       "none in job",
			job:        "Backend developer",
			resume:     "PMP",
			wantStatus: CertificationsNotSpecified,
			wantDetail: "Job description does not specify mandatory certifications.",
		},
		{
			name:       "all present",
			job:        "Must be AWS Certified and PMP",
			resume:     "aws certified solutions architect, pmp",
			wantStatus: CertificationsAllPresent,
			wantDetail: "All key certifications mentioned in JD are present in the resume.",
		},
		{
			name:       "missing in vocabulary order",
			job:        "CISSP, Azure and PMP required",
			resume:     "Azure administrator",
			wantStatus: CertificationsMissing,
			wantDetail: "Missing certifications: pmp, cissp.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, detail := AnalyzeCertifications(tt.job, tt.resume)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

func TestDetectComplianceIssues(t *testing.T) {
	t.Parallel()

	issues := DetectComplianceIssues(
		"Requires Security Clearance, a background check and a work permit.",
		"Holds an active work permit.",
	)
	assert.Equal(t, []string{
		"JD mentions 'background check' but the resume does not explicitly address it.",
		"JD mentions 'security clearance' but the resume does not explicitly address it.",
	}, issues)

	none := DetectComplianceIssues("Go developer", "")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDetectRiskFlags(t *testing.T) {
	t.Parallel()

	flags := DetectRiskFlags("Was on probation after a layoff; received a Warning Letter.")
	assert.Equal(t, []string{
		"Resume contains potential risk term: 'layoff'.",
		"Resume contains potential risk term: 'probation'.",
		"Resume contains potential risk term: 'warning letter'.",
	}, flags)

	none := DetectRiskFlags("clean record")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestAssessQuality(t *testing.T) {
	t.Parallel()

	full := "Summary Objective Experience Education Skills Work Employment Certification Project Contact Email " +
		strings.Repeat("word ", 489)

	tests := []struct {
		name      string
		text      string
		wantScore float64
		wantLabel string
	}{
		{name: "empty", text: "", wantScore: 0, wantLabel: QualityIncomplete},
		{name: "short after trim", text: "   Experience: Go   ", wantScore: 0, wantLabel: QualityIncomplete},
		{name: "complete", text: full, wantScore: 100, wantLabel: QualityHigh},
		{
			// 12 words, 2 of 11 sections: 0.5*2.4 + 0.5*18.18 = 10.29
			name:      "sparse",
			text:      "Experience with many things and skills in a lot of areas yes",
			wantScore: 10.29,
			wantLabel: QualityPoor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			score, label := AssessQuality(tt.text)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestQualityLabelBoundaries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, QualityHigh, qualityLabel(80))
	assert.Equal(t, QualityGood, qualityLabel(79.99))
	assert.Equal(t, QualityGood, qualityLabel(55))
	assert.Equal(t, QualityFair, qualityLabel(30))
	assert.Equal(t, QualityPoor, qualityLabel(29.99))
}
