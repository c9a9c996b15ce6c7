package cmd

import (
	"errors"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/cv-screener/internal/scan"
	"github.com/spigell/cv-screener/internal/scoring"
)

const (
	app = "cv-screener"

	engineAuto  = "auto"
	engineTFIDF = "tfidf"
)

type Config struct {
	Similarity *SimilarityConfig `mapstructure:"similarity"`
	Lexical    *LexicalConfig    `mapstructure:"lexical"`
	Scoring    scoring.Config    `mapstructure:"scoring"`
	Scan       scan.Config       `mapstructure:"scan"`
}

type SimilarityConfig struct {
	Engine string        `mapstructure:"engine"`
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

type LexicalConfig struct {
	Language string `mapstructure:"language"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "cv-screener scores résumés against a job description and explains the verdict",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-screener.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults()
}

func setDefaults() {
	def := scoring.DefaultConfig()
	viper.SetDefault("similarity.engine", engineAuto)
	viper.SetDefault("similarity.gemini.model", "text-embedding-004")
	viper.SetDefault("similarity.gemini.max-retries", 2)
	viper.SetDefault("lexical.language", "english")

	viper.SetDefault("scoring.simple.semantic-weight", def.Simple.SemanticWeight)
	viper.SetDefault("scoring.simple.skill-weight", def.Simple.SkillWeight)
	viper.SetDefault("scoring.simple.mode", string(def.Simple.Mode))
	viper.SetDefault("scoring.simple.shortlist-threshold", def.Simple.ShortlistThreshold)
	viper.SetDefault("scoring.simple.maybe-threshold", def.Simple.MaybeThreshold)
	viper.SetDefault("scoring.simple.single-threshold", def.Simple.SingleThreshold)

	viper.SetDefault("scoring.qa.semantic-weight", def.QA.SemanticWeight)
	viper.SetDefault("scoring.qa.skill-weight", def.QA.SkillWeight)
	viper.SetDefault("scoring.qa.experience-weight", def.QA.ExperienceWeight)
	viper.SetDefault("scoring.qa.compliance-penalty", def.QA.CompliancePenalty)
	viper.SetDefault("scoring.qa.risk-penalty", def.QA.RiskPenalty)
	viper.SetDefault("scoring.qa.hire-threshold", def.QA.HireThreshold)
	viper.SetDefault("scoring.qa.hold-threshold", def.QA.HoldThreshold)

	viper.SetDefault("scoring.grading.a-threshold", def.Grading.AThreshold)
	viper.SetDefault("scoring.grading.a-doc-quality", def.Grading.ADocQuality)
	viper.SetDefault("scoring.grading.b-threshold", def.Grading.BThreshold)
	viper.SetDefault("scoring.grading.c-threshold", def.Grading.CThreshold)

	scanDef := scan.DefaultConfig()
	viper.SetDefault("scan.concurrency", scanDef.Concurrency)
	viper.SetDefault("scan.extensions", scanDef.Extensions)
	viper.SetDefault("scan.exclude-file", "")
}

func initConfig() {
	// A missing .env file is normal.
	_ = godotenv.Load()

	viper.SetEnvPrefix("CV_SCREENER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("similarity.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was requested explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Similarity == nil {
		config.Similarity = &SimilarityConfig{Engine: engineAuto}
	}
	if config.Similarity.Gemini == nil {
		config.Similarity.Gemini = &GeminiConfig{}
	}
	if config.Lexical == nil {
		config.Lexical = &LexicalConfig{}
	}

	return config, nil
}
