package scan

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/cv-screener/internal/assessment"
	"github.com/spigell/cv-screener/internal/logger"
)

// Assessor scores one candidate.
type Assessor interface {
	Assess(ctx context.Context, in assessment.Input) (*assessment.QAReport, error)
}

// Runner executes batch scans.
type Runner struct {
	cfg      Config
	assessor Assessor
	filters  []Filter
	logger   *zap.Logger
}

// NewRunner validates cfg and returns a Runner using the default filters.
func NewRunner(cfg Config, a Assessor, l *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg:      cfg,
		assessor: a,
		filters:  DefaultFilters(),
		logger:   logger.OrNop(l),
	}, nil
}

// Filters exposes the configured steps, e.g. to disable one by name.
func (r *Runner) Filters() []Filter {
	return r.filters
}

const jobPreviewRunes = 80

// Run filters docs and assesses the remaining candidates concurrently.
// Candidates whose assessment fails are logged and reported as skipped.
func (r *Runner) Run(ctx context.Context, jobText string, skills []string, docs *Documents) (*Run, error) {
	run := &Run{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
		JobText:   jobText,
	}
	log := r.logger.With(zap.String(logger.FieldRunID, run.ID.String()))

	for _, status := range Describe(r.filters) {
		log.Debug("filter status",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	docs, steps, err := Filtrate(ctx, &r.cfg, Deps{Logger: log}, r.filters, docs)
	if err != nil {
		return nil, err
	}
	run.Steps = steps
	run.Skipped = append(run.Skipped, docs.Skipped...)

	results := make([]*Result, docs.Len())
	failures := make([]*Skipped, docs.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)
	for i, doc := range docs.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			report, err := r.assessor.Assess(gctx, assessment.Input{
				JobText:        jobText,
				ResumeText:     doc.Text,
				RequiredSkills: skills,
			})
			if err != nil {
				log.Warn("candidate assessment failed, skipping",
					zap.String(logger.FieldCandidate, doc.Name),
					zap.Error(err),
				)
				failures[i] = &Skipped{Name: doc.Name, Path: doc.Path, Step: "assessment", Reason: err.Error()}
				return nil
			}

			log.Debug("candidate assessed",
				zap.String(logger.FieldCandidate, doc.Name),
				zap.Float64("final_weighted_score", report.FinalWeightedScore),
			)
			results[i] = &Result{Name: doc.Name, Path: doc.Path, Hash: doc.Hash, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range results {
		if results[i] != nil {
			run.Results = append(run.Results, *results[i])
		}
		if failures[i] != nil {
			run.Skipped = append(run.Skipped, *failures[i])
		}
	}
	sortResults(run.Results)

	log.Info("scan finished",
		zap.String("job", logger.TruncateForLog(jobText, jobPreviewRunes)),
		zap.Int("assessed", len(run.Results)),
		zap.Int("skipped", len(run.Skipped)),
	)
	return run, nil
}

func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Report.FinalWeightedScore, results[j].Report.FinalWeightedScore
		if a != b {
			return a > b
		}
		return results[i].Name < results[j].Name
	})
}
