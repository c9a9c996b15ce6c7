package screening

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/cv-screener/internal/util"
)

const (
	neutralExperienceScore = 50.0
	insufficientExperience = "Insufficient explicit experience data in JD or resume."
)

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*(?:years?|yrs?)`)

// ExtractYears returns the largest "N years" style figure in text.
func ExtractYears(text string) (int, bool) {
	matches := yearsPattern.FindAllStringSubmatch(strings.ToLower(text), -1)

	best, found := 0, false
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if !found || n > best {
			best, found = n, true
		}
	}
	return best, found
}

// ExperienceMatch compares the years asked for by the job with the years
// claimed by the résumé.
func ExperienceMatch(jobText, resumeText string) (float64, string) {
	jobYears, okJob := ExtractYears(jobText)
	resumeYears, okResume := ExtractYears(resumeText)
	if !okJob || !okResume {
		return neutralExperienceScore, insufficientExperience
	}

	ratio := 1.0
	if jobYears > 0 {
		ratio = float64(resumeYears) / float64(jobYears)
	}

	notes := fmt.Sprintf("JD requires approximately %d+ years; resume indicates about %d years.", jobYears, resumeYears)
	return util.Round2(util.Clamp(ratio * 100)), notes
}
