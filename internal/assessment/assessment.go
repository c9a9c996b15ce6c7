// Package assessment scores a résumé against a job description.
package assessment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/lexical"
	"github.com/spigell/cv-screener/internal/logger"
	"github.com/spigell/cv-screener/internal/scoring"
	"github.com/spigell/cv-screener/internal/screening"
	"github.com/spigell/cv-screener/internal/similarity"
)

// ErrAssessment is returned when the pipeline fails unexpectedly.
var ErrAssessment = errors.New("assessment failed")

// Input is one (job, résumé) pair. A nil RequiredSkills means the skills are
// derived from the job text; an empty non-nil list means none are required.
type Input struct {
	JobText        string   `json:"job_text"`
	ResumeText     string   `json:"resume_text"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// QAReport is the extended assessment.
type QAReport struct {
	scoring.ScoreBundle

	ExperienceMatchScore float64                       `json:"experience_match_score"`
	ExperienceNotes      string                        `json:"experience_notes"`
	CertificationStatus  screening.CertificationStatus `json:"certification_status"`
	CertificationDetails string                        `json:"certification_details"`
	ComplianceIssues     []string                      `json:"compliance_issues"`
	RiskFlags            []string                      `json:"risk_flags"`
	DocumentQualityScore float64                       `json:"document_quality_score"`
	DocumentQualityLabel string                        `json:"document_quality_label"`
	FinalWeightedScore   float64                       `json:"final_weighted_score"`
	Recommendation       scoring.Recommendation        `json:"recommendation"`
	QAGrade              scoring.Grade                 `json:"qa_grade"`
	QAVerdict            string                        `json:"qa_verdict"`

	Engine         string   `json:"engine"`
	RequiredSkills []string `json:"required_skills"`
}

// Assessor runs the scoring pipeline. It is safe for concurrent use.
type Assessor struct {
	aggregator *scoring.Aggregator
	similarity similarity.Engine
	extractor  *lexical.Extractor
	logger     *zap.Logger
}

// New builds an Assessor. A nil sim falls back to TF-IDF and a nil lex to
// plain-token keyword extraction.
func New(cfg scoring.Config, sim similarity.Engine, lex *lexical.Extractor, l *zap.Logger) (*Assessor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sim == nil {
		sim = similarity.NewTFIDF()
	}
	if lex == nil {
		lex = lexical.NewExtractor(nil)
	}

	return &Assessor{
		aggregator: scoring.NewAggregator(cfg),
		similarity: sim,
		extractor:  lex,
		logger:     logger.OrNop(l),
	}, nil
}

// DeriveSkills returns the keyword list used when a caller supplies no skills.
func (a *Assessor) DeriveSkills(text string) []string {
	return a.extractor.Keywords(text)
}

// Score runs the simple policy.
func (a *Assessor) Score(ctx context.Context, in Input) (bundle *scoring.ScoreBundle, err error) {
	defer a.recoverPanic("score", &err)

	b, _, _ := a.score(ctx, in)
	return &b, nil
}

// Assess runs the extended QA policy. The report also carries the simple bundle.
func (a *Assessor) Assess(ctx context.Context, in Input) (report *QAReport, err error) {
	defer a.recoverPanic("assess", &err)

	bundle, skills, engine := a.score(ctx, in)

	experience, notes := screening.ExperienceMatch(in.JobText, in.ResumeText)
	certStatus, certDetails := screening.AnalyzeCertifications(in.JobText, in.ResumeText)
	compliance := screening.DetectComplianceIssues(in.JobText, in.ResumeText)
	risks := screening.DetectRiskFlags(in.ResumeText)
	docScore, docLabel := screening.AssessQuality(in.ResumeText)

	final, rec := a.aggregator.QA(bundle.SemanticScore, bundle.SkillScore, experience, len(compliance), len(risks))
	grade, verdict := a.aggregator.Grade(final, docScore, certStatus, len(compliance), len(risks), rec)

	a.logger.Debug("assessment complete",
		zap.String(logger.FieldEngine, engine),
		zap.Float64("final_weighted_score", final),
		zap.String("recommendation", string(rec)),
		zap.String("qa_grade", string(grade)),
	)

	return &QAReport{
		ScoreBundle:          bundle,
		ExperienceMatchScore: experience,
		ExperienceNotes:      notes,
		CertificationStatus:  certStatus,
		CertificationDetails: certDetails,
		ComplianceIssues:     compliance,
		RiskFlags:            risks,
		DocumentQualityScore: docScore,
		DocumentQualityLabel: docLabel,
		FinalWeightedScore:   final,
		Recommendation:       rec,
		QAGrade:              grade,
		QAVerdict:            verdict,
		Engine:               engine,
		RequiredSkills:       skills,
	}, nil
}

func (a *Assessor) score(ctx context.Context, in Input) (scoring.ScoreBundle, []string, string) {
	skills := in.RequiredSkills
	if skills == nil {
		skills = a.DeriveSkills(in.JobText)
	}

	semantic := a.similarity.Similarity(ctx, in.JobText, in.ResumeText)
	match := screening.MatchSkills(in.ResumeText, skills)
	skill := scoring.SkillScore(len(match.Matched), len(skills))

	return a.aggregator.Simple(semantic, skill, match.Matched, match.Missing), skills, a.similarity.Name()
}

func (a *Assessor) recoverPanic(op string, err *error) {
	if r := recover(); r != nil {
		a.logger.Error("assessment pipeline panicked", zap.String("operation", op), zap.Any("panic", r))
		*err = fmt.Errorf("%s: %w: %v", op, ErrAssessment, r)
	}
}
