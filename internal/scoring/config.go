// Package scoring turns component scores into a final score, a classification
// and a QA grade.
package scoring

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Mode selects how the simple policy classifies a final score.
type Mode string

const (
	ModeThreeTier       Mode = "three_tier"
	ModeSingleThreshold Mode = "single_threshold"
)

// Config holds every weight and threshold used by the Aggregator.
type Config struct {
	Simple  SimpleConfig  `mapstructure:"simple" json:"simple"`
	QA      QAConfig      `mapstructure:"qa" json:"qa"`
	Grading GradingConfig `mapstructure:"grading" json:"grading"`
}

// SimpleConfig drives the semantic plus skills policy.
type SimpleConfig struct {
	SemanticWeight     float64 `mapstructure:"semantic-weight" json:"semantic_weight" validate:"gte=0,lte=1"`
	SkillWeight        float64 `mapstructure:"skill-weight" json:"skill_weight" validate:"gte=0,lte=1"`
	Mode               Mode    `mapstructure:"mode" json:"mode" validate:"oneof=three_tier single_threshold"`
	ShortlistThreshold float64 `mapstructure:"shortlist-threshold" json:"shortlist_threshold" validate:"gte=0,lte=100,gtefield=MaybeThreshold"`
	MaybeThreshold     float64 `mapstructure:"maybe-threshold" json:"maybe_threshold" validate:"gte=0,lte=100"`
	SingleThreshold    float64 `mapstructure:"single-threshold" json:"single_threshold" validate:"gte=0,lte=100"`
}

// QAConfig drives the extended policy with experience and penalties.
type QAConfig struct {
	SemanticWeight    float64 `mapstructure:"semantic-weight" json:"semantic_weight" validate:"gte=0,lte=1"`
	SkillWeight       float64 `mapstructure:"skill-weight" json:"skill_weight" validate:"gte=0,lte=1"`
	ExperienceWeight  float64 `mapstructure:"experience-weight" json:"experience_weight" validate:"gte=0,lte=1"`
	CompliancePenalty float64 `mapstructure:"compliance-penalty" json:"compliance_penalty" validate:"gte=0,lte=100"`
	RiskPenalty       float64 `mapstructure:"risk-penalty" json:"risk_penalty" validate:"gte=0,lte=100"`
	HireThreshold     float64 `mapstructure:"hire-threshold" json:"hire_threshold" validate:"gte=0,lte=100,gtefield=HoldThreshold"`
	HoldThreshold     float64 `mapstructure:"hold-threshold" json:"hold_threshold" validate:"gte=0,lte=100"`
}

// GradingConfig holds the letter grade cut-offs.
type GradingConfig struct {
	AThreshold  float64 `mapstructure:"a-threshold" json:"a_threshold" validate:"gte=0,lte=100,gtefield=BThreshold"`
	ADocQuality float64 `mapstructure:"a-doc-quality" json:"a_doc_quality" validate:"gte=0,lte=100"`
	BThreshold  float64 `mapstructure:"b-threshold" json:"b_threshold" validate:"gte=0,lte=100,gtefield=CThreshold"`
	CThreshold  float64 `mapstructure:"c-threshold" json:"c_threshold" validate:"gte=0,lte=100"`
}

// DefaultConfig returns the stock weights and thresholds.
func DefaultConfig() Config {
	return Config{
		Simple: SimpleConfig{
			SemanticWeight:     0.6,
			SkillWeight:        0.4,
			Mode:               ModeThreeTier,
			ShortlistThreshold: 65,
			MaybeThreshold:     40,
			SingleThreshold:    45,
		},
		QA: QAConfig{
			SemanticWeight:    0.4,
			SkillWeight:       0.35,
			ExperienceWeight:  0.25,
			CompliancePenalty: 5,
			RiskPenalty:       7,
			HireThreshold:     80,
			HoldThreshold:     55,
		},
		Grading: GradingConfig{
			AThreshold:  80,
			ADocQuality: 60,
			BThreshold:  65,
			CThreshold:  50,
		},
	}
}

var validate = validator.New()

// Validate checks that weights are in [0,1] and thresholds in [0,100] and ordered.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid scoring config: %w", err)
	}
	return nil
}
