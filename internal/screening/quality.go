package screening

import (
	"math"
	"strings"

	"github.com/spigell/cv-screener/internal/util"
)

// Document quality labels.
const (
	QualityIncomplete = "Incomplete or unreadable document"
	QualityHigh       = "High quality – complete and well-structured"
	QualityGood       = "Good – main sections present"
	QualityFair       = "Fair – some sections missing or brief"
	QualityPoor       = "Needs improvement – sparse or unclear content"
)

const (
	minDocumentChars = 50
	// 500 words give a full length score.
	wordsPerPoint = 5.0
)

var sectionTerms = []string{
	"experience", "education", "skills", "summary", "objective",
	"work", "employment", "certification", "project", "contact", "email",
}

// AssessQuality rates how complete the résumé looks from its length and the
// common section names it mentions.
func AssessQuality(resumeText string) (float64, string) {
	if len([]rune(strings.TrimSpace(resumeText))) < minDocumentChars {
		return 0, QualityIncomplete
	}

	lower := strings.ToLower(resumeText)
	hits := 0
	for _, term := range sectionTerms {
		if strings.Contains(lower, term) {
			hits++
		}
	}

	length := math.Min(100, float64(len(strings.Fields(resumeText)))/wordsPerPoint)
	section := float64(hits) / float64(len(sectionTerms)) * 100
	score := util.Round2(util.Clamp(0.5*length + 0.5*section))

	return score, qualityLabel(score)
}

func qualityLabel(score float64) string {
	switch {
	case score >= 80:
		return QualityHigh
	case score >= 55:
		return QualityGood
	case score >= 30:
		return QualityFair
	default:
		return QualityPoor
	}
}
