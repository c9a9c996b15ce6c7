package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/cv-screener/internal/assessment"
	"github.com/spigell/cv-screener/internal/ingest"
	"github.com/spigell/cv-screener/internal/lexical"
	"github.com/spigell/cv-screener/internal/logger"
	"github.com/spigell/cv-screener/internal/scoring"
	"github.com/spigell/cv-screener/internal/secrets"
	"github.com/spigell/cv-screener/internal/similarity"
)

// setup builds the logger and reads the config, exiting on failure.
func setup() (*Config, *zap.Logger) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l.Debug("starting", zap.String("app", app), zap.String("version", version))
	return config, l
}

func newSimilarity(config *Config, l *zap.Logger) (similarity.Engine, error) {
	engine := strings.ToLower(strings.TrimSpace(config.Similarity.Engine))
	switch engine {
	case engineTFIDF:
		return similarity.NewProvider(nil, l), nil
	case engineAuto, "":
	default:
		return nil, fmt.Errorf("unsupported similarity engine: %s", config.Similarity.Engine)
	}

	gem := config.Similarity.Gemini
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: gem.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  gem.APIKeyFile,
	})
	if err != nil {
		l.Warn("gemini api key unavailable", zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY, GEMINI_API_KEY_FILE or similarity.gemini.api-key-file"),
		)
		return similarity.NewProvider(similarity.FailingLoader(err), l), nil
	}

	return similarity.NewProvider(similarity.GeminiLoader(similarity.GeminiOptions{
		APIKey:     apiKey,
		Model:      gem.Model,
		MaxRetries: gem.MaxRetries,
	}, l), l), nil
}

func newAssessor(config *Config, cfg scoring.Config, l *zap.Logger) (*assessment.Assessor, error) {
	sim, err := newSimilarity(config, l)
	if err != nil {
		return nil, err
	}
	lex := lexical.NewExtractor(lexical.NewProvider(config.Lexical.Language, l))

	return assessment.New(cfg, sim, lex, l)
}

func readJob(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("job description file is required (--job)")
	}
	return ingest.ExtractText(path)
}
