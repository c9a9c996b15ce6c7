package screening

import (
	"fmt"
	"strings"
)

var complianceTerms = []string{
	"background check",
	"drug test",
	"security clearance",
	"work authorization",
	"work permit",
}

var riskTerms = []string{
	"terminated",
	"fired",
	"layoff",
	"disciplinary",
	"probation",
	"criminal",
	"conviction",
	"warning letter",
}

// DetectComplianceIssues lists compliance requirements of the job that the résumé does not mention.
func DetectComplianceIssues(jobText, resumeText string) []string {
	job := strings.ToLower(jobText)
	resume := strings.ToLower(resumeText)

	issues := make([]string, 0)
	for _, term := range complianceTerms {
		if strings.Contains(job, term) && !strings.Contains(resume, term) {
			issues = append(issues, fmt.Sprintf("JD mentions '%s' but the resume does not explicitly address it.", term))
		}
	}
	return issues
}

// DetectRiskFlags lists risk terms found in the résumé.
func DetectRiskFlags(resumeText string) []string {
	resume := strings.ToLower(resumeText)

	flags := make([]string, 0)
	for _, term := range riskTerms {
		if strings.Contains(resume, term) {
			flags = append(flags, fmt.Sprintf("Resume contains potential risk term: '%s'.", term))
		}
	}
	return flags
}
