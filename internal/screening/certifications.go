package screening

import (
	"fmt"
	"strings"
)

// CertificationStatus summarises certification coverage.
type CertificationStatus string

const (
	CertificationsNotSpecified CertificationStatus = "NOT_SPECIFIED"
	CertificationsAllPresent   CertificationStatus = "ALL_PRESENT"
	CertificationsMissing      CertificationStatus = "MISSING"
)

var certificationTerms = []string{
	"aws certified",
	"azure",
	"gcp",
	"pmp",
	"cissp",
	"cisa",
	"cism",
	"scrum master",
	"csm",
	"salesforce",
}

// AnalyzeCertifications checks that every known certification named in the job
// text also appears in the résumé.
func AnalyzeCertifications(jobText, resumeText string) (CertificationStatus, string) {
	job := strings.ToLower(jobText)
	resume := strings.ToLower(resumeText)

	var required, missing []string
	for _, term := range certificationTerms {
		if !strings.Contains(job, term) {
			continue
		}
		required = append(required, term)
		if !strings.Contains(resume, term) {
			missing = append(missing, term)
		}
	}

	switch {
	case len(required) == 0:
		return CertificationsNotSpecified, "Job description does not specify mandatory certifications."
	case len(missing) == 0:
		return CertificationsAllPresent, "All key certifications mentioned in JD are present in the resume."
	default:
		return CertificationsMissing, fmt.Sprintf("Missing certifications: %s.", strings.Join(missing, ", "))
	}
}
