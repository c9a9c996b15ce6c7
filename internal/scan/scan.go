// Package scan assesses a directory of résumés against one job description.
package scan

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/logger"
)

// Filter is a single step that narrows the documents of a scan.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, d *Documents) (*Documents, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int `json:"initial"`
	Dropped int `json:"dropped"`
	Left    int `json:"left"`
}

// Config controls a batch scan.
type Config struct {
	Concurrency int      `mapstructure:"concurrency" validate:"gte=1,lte=64"`
	Extensions  []string `mapstructure:"extensions" validate:"min=1,dive,startswith=."`
	ExcludeFile string   `mapstructure:"exclude-file"`
}

// DefaultConfig returns the default scan settings.
func DefaultConfig() Config {
	return Config{
		Concurrency: 4,
		Extensions:  []string{".pdf", ".docx", ".txt", ".md"},
	}
}

var validate = validator.New()

// Validate checks the scan settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid scan config: %w", err)
	}
	return nil
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

// DefaultFilters returns the standard step order.
func DefaultFilters() []Filter {
	return []Filter{
		NewExtension(),
		NewExtract(),
		NewExcludeFile(),
		NewEmptyText(),
	}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Filtrate executes the supplied filters sequentially.
func Filtrate(ctx context.Context, cfg *Config, deps Deps, steps []Filter, d *Documents) (*Documents, map[string]Step, error) {
	deps.Logger = logger.OrNop(deps.Logger)

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	results := make(map[string]Step, len(steps))
	for _, step := range steps {
		if !step.IsEnabled() {
			deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, d)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		results[step.Name()] = info
		d = next
	}

	return d, results, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
