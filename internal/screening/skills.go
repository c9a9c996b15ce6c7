// Package screening holds the rule-based checks run on a résumé against a job description.
package screening

import "strings"

// SkillMatch splits the required skills into those found in the résumé and
// those that are not. Both lists keep input order.
type SkillMatch struct {
	Matched []string `json:"matched_skills"`
	Missing []string `json:"missing_skills"`
}

// MatchSkills reports which required skills occur in resumeText as
// case-insensitive substrings.
func MatchSkills(resumeText string, required []string) SkillMatch {
	lower := strings.ToLower(resumeText)
	match := SkillMatch{
		Matched: make([]string, 0, len(required)),
		Missing: make([]string, 0),
	}

	for _, skill := range required {
		if strings.Contains(lower, strings.ToLower(skill)) {
			match.Matched = append(match.Matched, skill)
			continue
		}
		match.Missing = append(match.Missing, skill)
	}
	return match
}

// ParseSkills splits a comma separated list, trimming entries and dropping empty ones.
func ParseSkills(raw string) []string {
	skills := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}
