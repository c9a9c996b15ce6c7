package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/assessment"
	"github.com/spigell/cv-screener/internal/ingest"
	"github.com/spigell/cv-screener/internal/scoring"
	"github.com/spigell/cv-screener/internal/screening"
)

const (
	policySimple = "simple"
	policyQA     = "qa"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess a single résumé against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		assess(cmd)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().String("job", "", "job description file (.txt, .md, .pdf, .docx)")
	assessCmd.Flags().String("resume", "", "résumé file (.txt, .md, .pdf, .docx)")
	assessCmd.Flags().String("skills", "", "comma separated required skills. Derived from the job description when unset.")
	assessCmd.Flags().String("policy", policyQA, "scoring policy: simple or qa")
	assessCmd.Flags().String("request", "", "JSON request file with job, résumé, skills and policy overrides")
}

func assess(cmd *cobra.Command) {
	ctx := context.Background()
	config, logger := setup()

	in, scoringCfg, err := assessInput(cmd, config)
	if err != nil {
		logger.Fatal("reading assessment input", zap.Error(err))
	}

	assessor, err := newAssessor(config, scoringCfg, logger)
	if err != nil {
		logger.Fatal("creating an assessor", zap.Error(err))
	}

	var result any
	switch policy, _ := cmd.Flags().GetString("policy"); policy {
	case policySimple:
		result, err = assessor.Score(ctx, in)
	case policyQA:
		result, err = assessor.Assess(ctx, in)
	default:
		logger.Fatal("unsupported policy", zap.String("policy", policy))
	}
	if err != nil {
		logger.Fatal("assessing the résumé", zap.Error(err))
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("encoding the result", zap.Error(err))
	}
	fmt.Println(string(pretty))
}

func assessInput(cmd *cobra.Command, config *Config) (assessment.Input, scoring.Config, error) {
	var in assessment.Input
	cfg := config.Scoring

	if path, _ := cmd.Flags().GetString("request"); path != "" {
		req, err := ingest.LoadRequest(path, cfg)
		if err != nil {
			return in, cfg, err
		}
		in = assessment.Input{JobText: req.JobText, ResumeText: req.ResumeText, RequiredSkills: req.RequiredSkills}
		cfg = req.Scoring
	}

	if jobPath, _ := cmd.Flags().GetString("job"); jobPath != "" || in.JobText == "" {
		text, err := readJob(jobPath)
		if err != nil {
			return in, cfg, err
		}
		in.JobText = text
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	if resumePath != "" {
		text, err := ingest.ExtractText(resumePath)
		if err != nil {
			return in, cfg, err
		}
		in.ResumeText = text
	} else if in.ResumeText == "" {
		return in, cfg, fmt.Errorf("résumé file is required (--resume)")
	}

	if cmd.Flags().Changed("skills") {
		raw, _ := cmd.Flags().GetString("skills")
		in.RequiredSkills = screening.ParseSkills(raw)
	}

	return in, cfg, nil
}
