package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spigell/cv-screener/internal/screening"
	"github.com/spigell/cv-screener/internal/util"
)

// Classification is the outcome of the simple policy.
type Classification string

const (
	Shortlisted Classification = "SHORTLISTED"
	Maybe       Classification = "MAYBE"
	Rejected    Classification = "REJECTED"
)

// Recommendation is the outcome of the QA policy.
type Recommendation string

const (
	Hire   Recommendation = "HIRE"
	Hold   Recommendation = "HOLD"
	Reject Recommendation = "REJECT"
)

// Grade is a QA letter grade.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

var verdicts = map[Grade]string{
	GradeA: "Best QA – Strong match, document and checks passed. Ready for next stage.",
	GradeB: "Good QA – Meets requirements. Minor gaps (e.g. certs) can be clarified.",
	GradeC: "Hold – Some criteria met. Review experience, certs or compliance before deciding.",
	GradeD: "Does not meet QA – Significant gaps, compliance or risk issues. Not recommended.",
}

// ScoreBundle is the result of the simple policy.
type ScoreBundle struct {
	SemanticScore  float64        `json:"semantic_score"`
	SkillScore     float64        `json:"skill_score"`
	FinalScore     float64        `json:"final_score"`
	Classification Classification `json:"classification"`
	MatchedSkills  []string       `json:"matched_skills"`
	MissingSkills  []string       `json:"missing_skills"`
	Explanation    string         `json:"explanation"`
}

// Aggregator applies a Config to component scores.
type Aggregator struct {
	cfg Config
}

// NewAggregator returns an Aggregator for cfg.
func NewAggregator(cfg Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// SkillScore is the percentage of required skills matched, 100 when none are required.
func SkillScore(matched, total int) float64 {
	if total <= 0 {
		return util.MaxScore
	}
	return util.Clamp(float64(matched) / float64(total) * 100)
}

// Simple combines semantic and skill scores.
func (a *Aggregator) Simple(semantic, skill float64, matched, missing []string) ScoreBundle {
	semantic = util.Clamp(semantic)
	skill = util.Clamp(skill)
	cfg := a.cfg.Simple

	final := util.Clamp(semantic*cfg.SemanticWeight + skill*cfg.SkillWeight)
	class := a.classify(final)

	if matched == nil {
		matched = []string{}
	}
	if missing == nil {
		missing = []string{}
	}

	return ScoreBundle{
		SemanticScore:  util.Round2(semantic),
		SkillScore:     util.Round2(skill),
		FinalScore:     util.Round2(final),
		Classification: class,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Explanation:    explain(final, semantic, skill, len(matched), len(matched)+len(missing), class),
	}
}

func (a *Aggregator) classify(final float64) Classification {
	cfg := a.cfg.Simple
	if cfg.Mode == ModeSingleThreshold {
		if final >= cfg.SingleThreshold {
			return Shortlisted
		}
		return Rejected
	}

	switch {
	case final >= cfg.ShortlistThreshold:
		return Shortlisted
	case final >= cfg.MaybeThreshold:
		return Maybe
	default:
		return Rejected
	}
}

func explain(final, semantic, skill float64, matched, total int, class Classification) string {
	return fmt.Sprintf(
		"The resume achieved an overall match score of %.1f%%. "+
			"Semantic relevance to the job description: %.1f%%. "+
			"Skills matched: %d out of %d required skills (%.1f%%). "+
			"Classification: %s.",
		final, semantic, matched, total, skill, cases.Title(language.English).String(strings.ToLower(string(class))),
	)
}

// QA combines semantic, skill and experience scores, subtracts penalties for
// compliance issues and risk flags and recommends an action.
func (a *Aggregator) QA(semantic, skill, experience float64, complianceCount, riskCount int) (float64, Recommendation) {
	cfg := a.cfg.QA

	base := util.Clamp(semantic)*cfg.SemanticWeight +
		util.Clamp(skill)*cfg.SkillWeight +
		util.Clamp(experience)*cfg.ExperienceWeight
	penalty := float64(complianceCount)*cfg.CompliancePenalty + float64(riskCount)*cfg.RiskPenalty
	final := util.Clamp(base - penalty)

	var rec Recommendation
	switch {
	case final >= cfg.HireThreshold && complianceCount == 0 && riskCount == 0:
		rec = Hire
	case final >= cfg.HoldThreshold:
		rec = Hold
	default:
		rec = Reject
	}

	return util.Round2(final), rec
}

// Grade assigns a letter grade and verdict. The first matching rule wins.
// cert and rec do not influence the grade.
func (a *Aggregator) Grade(final, docQuality float64, _ screening.CertificationStatus, compliance, risk int, _ Recommendation) (Grade, string) {
	cfg := a.cfg.Grading
	clean := compliance == 0 && risk == 0

	var g Grade
	switch {
	case final >= cfg.AThreshold && docQuality >= cfg.ADocQuality && clean:
		g = GradeA
	case final >= cfg.BThreshold && clean:
		g = GradeB
	case final >= cfg.CThreshold || clean:
		g = GradeC
	default:
		g = GradeD
	}
	return g, verdicts[g]
}
